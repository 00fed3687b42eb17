package handler

import (
	"errors"
	"io"
	"net/http"
	"regexp"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Anshvachhani998/Terdl-api/internal/app/service"
	"github.com/Anshvachhani998/Terdl-api/internal/models"
	"github.com/Anshvachhani998/Terdl-api/internal/storage"
)

// manifestNamePattern matches the generated names only, which keeps the /temp
// route from serving anything else.
var manifestNamePattern = regexp.MustCompile(`^[0-9a-f]{32}\.m3u8$`)

type ManifestHandler struct {
	manifests *service.ManifestService
	store     *storage.ManifestStore
	baseURL   string
	logger    *zap.Logger
}

func NewManifest(manifests *service.ManifestService, store *storage.ManifestStore, baseURL string, l *zap.Logger) *ManifestHandler {
	return &ManifestHandler{
		manifests: manifests,
		store:     store,
		baseURL:   baseURL,
		logger:    l,
	}
}

// Generate writes a new playlist and returns its link. Source URLs may be
// overridden per request with ?video= and ?audio=.
func (h *ManifestHandler) Generate(res http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()

	link, err := h.manifests.Generate(req.Context(), query.Get("video"), query.Get("audio"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingURL):
			writeJSON(res, http.StatusBadRequest, models.StreamError{Error: "No source URLs configured."})
		case errors.Is(err, service.ErrInvalidURL):
			writeJSON(res, http.StatusBadRequest, models.StreamError{Error: "Invalid source URL."})
		default:
			h.logger.Info("cannot generate manifest", zap.Error(err))
			res.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	writeJSON(res, http.StatusOK, models.ManifestResponse{M3U8Link: h.baseURL + link})
}

// Serve returns a previously generated playlist by name.
func (h *ManifestHandler) Serve(res http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "filename")
	if !manifestNamePattern.MatchString(name) {
		http.Error(res, "Route not found", http.StatusNotFound)
		return
	}

	f, err := h.store.Open(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(res, "Route not found", http.StatusNotFound)
			return
		}
		http.Error(res, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer f.Close()

	res.Header().Set("Content-Type", "application/vnd.apple.mpegurl")

	if _, err := io.Copy(res, f); err != nil {
		h.logger.Info("cannot serve manifest", zap.Error(err))
	}
}
