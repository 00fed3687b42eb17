package handler

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Anshvachhani998/Terdl-api/internal/app/service"
	"github.com/Anshvachhani998/Terdl-api/internal/models"
	"github.com/Anshvachhani998/Terdl-api/internal/storage"
)

//go:embed templates/player.html
var templatesFS embed.FS

var playerTemplate = template.Must(template.ParseFS(templatesFS, "templates/player.html"))

type GetHandler struct {
	service service.VideoServiceIface
	logger  *zap.Logger
}

func NewGet(s service.VideoServiceIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		service: s,
		logger:  l,
	}
}

// Home serves the static informational page.
func (h *GetHandler) Home(res http.ResponseWriter, req *http.Request) {
	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	res.WriteHeader(http.StatusOK)

	if _, err := res.Write([]byte(homeHTML)); err != nil {
		h.logger.Info("cannot write home page", zap.Error(err))
	}
}

// ShortRedirect sends /s/{id} to the player page.
func (h *GetHandler) ShortRedirect(res http.ResponseWriter, req *http.Request) {
	id := chi.URLParam(req, "id")

	http.Redirect(res, req, "/player?vid="+id, http.StatusFound)
}

// Player renders the player page for /player?vid=N or /player?url=VIDEO_LINK.
// An absent or unknown id degrades to the Expired page, never an error.
func (h *GetHandler) Player(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	query := req.URL.Query()

	// Raw-URL form: play the given link directly, no allocated id involved.
	if rawURL := query.Get("url"); rawURL != "" && service.IsValidURL(rawURL) {
		name := query.Get("name")
		if name == "" {
			name = storage.DefaultFilename
		}

		h.renderPage(res, service.PlayerPage{URL: rawURL, Filename: name})
		return
	}

	id, err := strconv.ParseInt(query.Get("vid"), 10, 64)
	if err != nil {
		id = 0
	}

	h.renderPlayer(ctx, res, id)
}

// Download handles /{filename}/download/{id}, the short link target.
func (h *GetHandler) Download(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		http.Error(res, "Route not found", http.StatusNotFound)
		return
	}

	h.renderPlayer(ctx, res, id)
}

func (h *GetHandler) renderPlayer(ctx context.Context, res http.ResponseWriter, id int64) {
	h.renderPage(res, h.service.ResolvePlayer(ctx, id))
}

func (h *GetHandler) renderPage(res http.ResponseWriter, page service.PlayerPage) {
	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	res.WriteHeader(http.StatusOK)

	if err := playerTemplate.Execute(res, page); err != nil {
		h.logger.Info("cannot render player", zap.Error(err))
	}
}

// API validates and echoes back a download link.
func (h *GetHandler) API(res http.ResponseWriter, req *http.Request) {
	rawURL := req.URL.Query().Get("url")
	if rawURL == "" {
		writeJSON(res, http.StatusBadRequest, models.StreamError{Error: "No URL provided. Use ?url=VIDEO_LINK"})
		return
	}

	if !service.IsValidURL(rawURL) {
		writeJSON(res, http.StatusBadRequest, models.StreamError{Error: "Invalid URL. Only HTTP/HTTPS URLs are allowed."})
		return
	}

	writeJSON(res, http.StatusOK, models.APIResponse{Success: true, DownloadLink: rawURL})
}

// Ping reports whether the backing store is reachable.
func (h *GetHandler) Ping(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	if err := h.service.PingContext(ctx); err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	res.WriteHeader(http.StatusOK)
}

// Stats reports service-wide counters. Guarded by the trusted-subnet
// middleware at the router.
func (h *GetHandler) Stats(res http.ResponseWriter, req *http.Request) {
	ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
	defer cancel()

	stats, err := h.service.GetStats(ctx)
	if err != nil {
		http.Error(res, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(res, http.StatusOK, stats)
}

const homeHTML = `<html>
<head>
    <title>Video Player &amp; Download API</title>
    <style>
        body { background: #000; color: #fff; font-family: Arial, sans-serif; text-align: center; padding: 50px; }
        h1 { color: #4A90E2; }
        .endpoint { background: #1a1a1a; padding: 20px; margin: 20px auto; border-radius: 8px; max-width: 800px; }
        code { background: #333; padding: 5px 10px; border-radius: 4px; color: #4A90E2; }
        a { color: #7dc3ff; }
    </style>
</head>
<body>
    <h1>Video Player &amp; Download API</h1>
    <div class="endpoint">
        <h3>Player Endpoint</h3>
        <p>Open player with id: <code>/player?vid=VIDEO_ID</code></p>
        <p>Open player with a raw link: <code>/player?url=VIDEO_LINK</code></p>
    </div>
    <div class="endpoint">
        <h3>Shorten Endpoint</h3>
        <p>Create a short link: <code>/shorten?url=VIDEO_LINK</code> (GET) or POST JSON <code>{"url":"..."}</code></p>
    </div>
    <div class="endpoint">
        <h3>Short Link</h3>
        <p>Short link format: <code>/s/&lt;VIDEO_ID&gt;</code> (redirects to player)</p>
    </div>
</body>
</html>`
