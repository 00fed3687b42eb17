package handler

import (
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/Anshvachhani998/Terdl-api/internal/app/service"
	"github.com/Anshvachhani998/Terdl-api/internal/models"
)

type ShortenHandler struct {
	service service.VideoServiceIface
	logger  *zap.Logger
}

func NewShorten(s service.VideoServiceIface, l *zap.Logger) *ShortenHandler {
	return &ShortenHandler{
		service: s,
		logger:  l,
	}
}

// Shorten registers a video URL and returns the derived links. The URL and
// optional name come from a JSON body on POST or from the query string; a
// malformed body is treated as absent so the query fallback still applies.
func (h *ShortenHandler) Shorten(res http.ResponseWriter, req *http.Request) {
	var rawURL, name string

	if req.Method == http.MethodPost {
		var body models.ShortenRequest
		if err := decodeJSONBody(res, req, &body); err == nil {
			rawURL = body.URL
			name = body.Name
		}
	}

	if rawURL == "" {
		query := req.URL.Query()
		rawURL = query.Get("url")
		name = query.Get("name")
	}

	result, err := h.service.CreateVideoLink(req.Context(), rawURL, name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingURL):
			writeJSON(res, http.StatusBadRequest, models.ErrorResponse{Error: "No URL provided."})
		case errors.Is(err, service.ErrInvalidURL):
			writeJSON(res, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid URL."})
		default:
			h.logger.Info(fmt.Sprintf("unable to store url: %s", err.Error()))
			res.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	writeJSON(res, http.StatusOK, result)
}
