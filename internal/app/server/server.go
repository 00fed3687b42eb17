package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Anshvachhani998/Terdl-api/internal/app/handler"
	"github.com/Anshvachhani998/Terdl-api/internal/app/service"
	"github.com/Anshvachhani998/Terdl-api/internal/middleware"
	"github.com/Anshvachhani998/Terdl-api/internal/storage"
)

// Init wires the handlers into the router. The streaming and manifest routes
// stay outside the gzip group: the relay forwards upstream Content-Length
// verbatim and must not be recompressed.
func Init(baseURL string, log *zap.Logger, videoService service.VideoServiceIface, proxy *service.StreamProxy, manifests *service.ManifestService, manifestStore *storage.ManifestStore, trustedSubnet string) *chi.Mux {

	getHandler := handler.NewGet(videoService, log)
	shortenHandler := handler.NewShorten(videoService, log)
	streamHandler := handler.NewStream(videoService, proxy, log)
	manifestHandler := handler.NewManifest(manifests, manifestStore, baseURL, log)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestLogging(log))

	r.Group(func(r chi.Router) {
		r.Use(middleware.WithGZIP)
		r.Use(middleware.WithGZIPBody)

		r.Get("/", getHandler.Home)
		r.Get("/shorten", shortenHandler.Shorten)
		r.Post("/shorten", shortenHandler.Shorten)
		r.Get("/s/{id}", getHandler.ShortRedirect)
		r.Get("/player", getHandler.Player)
		r.Get("/{filename}/download/{id}", getHandler.Download)
		r.Get("/api", getHandler.API)
		r.Get("/generate", manifestHandler.Generate)
		r.Get("/ping", getHandler.Ping)

		r.Route("/api/internal", func(r chi.Router) {
			r.Use(middleware.WithSubnet(trustedSubnet))
			r.Get("/stats", getHandler.Stats)
		})
	})

	r.Get("/cdn/{id}", streamHandler.Stream)
	r.Get("/temp/{filename}", manifestHandler.Serve)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
