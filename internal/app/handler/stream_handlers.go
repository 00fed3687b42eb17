package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Anshvachhani998/Terdl-api/internal/app/service"
	"github.com/Anshvachhani998/Terdl-api/internal/models"
)

type StreamHandler struct {
	service service.VideoServiceIface
	proxy   *service.StreamProxy
	logger  *zap.Logger
}

func NewStream(s service.VideoServiceIface, proxy *service.StreamProxy, l *zap.Logger) *StreamHandler {
	return &StreamHandler{
		service: s,
		proxy:   proxy,
		logger:  l,
	}
}

// Stream relays the stored video URL to the caller. Unknown ids fail before
// any upstream request; upstream fetch failures map to 500 with the transport
// error text. The outbound request runs on the inbound request context, so a
// client disconnect aborts the relay.
func (h *StreamHandler) Stream(res http.ResponseWriter, req *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(req, "id"), 10, 64)
	if err != nil {
		writeJSON(res, http.StatusNotFound, models.StreamError{Error: "Video not found"})
		return
	}

	record, err := h.service.GetVideoByID(req.Context(), id)
	if err != nil {
		writeJSON(res, http.StatusNotFound, models.StreamError{Error: "Video not found"})
		return
	}

	resp, err := h.proxy.Fetch(req.Context(), record.Original, req.Header)
	if err != nil {
		h.logger.Info("upstream fetch failed", zap.Int64("id", id), zap.Error(err))
		writeJSON(res, http.StatusInternalServerError, models.StreamError{Error: "Failed to stream video: " + err.Error()})
		return
	}
	defer resp.Body.Close()

	// Errors past this point happen mid-stream; the status line is already
	// sent, so there is nothing left to report to the client.
	_ = h.proxy.Relay(res, resp)
}
