package service

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// streamChunkSize is the relay buffer size. Chunks are forwarded as they
// arrive so playback can start before the upstream body is complete.
const streamChunkSize = 8192

// DefaultStreamTimeout bounds establishing the upstream response: dial,
// TLS handshake and response headers. The body relay itself is unbounded,
// long videos take as long as they take.
const DefaultStreamTimeout = 30 * time.Second

const defaultUserAgent = "Mozilla/5.0"

// StreamProxy fetches a stored video URL and relays the response body.
// One upstream attempt per inbound request, no retries.
type StreamProxy struct {
	client *http.Client
	logger *zap.Logger
}

func NewStreamProxy(logger *zap.Logger, timeout time.Duration) *StreamProxy {
	if timeout == 0 {
		timeout = DefaultStreamTimeout
	}

	// The timeout is applied per phase on the transport, never as
	// http.Client.Timeout: that one keeps running while the body is read
	// and would cut off any relay longer than the budget.
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout: timeout,
		}).DialContext,
		TLSHandshakeTimeout:   timeout,
		ResponseHeaderTimeout: timeout,
	}

	return &StreamProxy{
		client: &http.Client{Transport: transport},
		logger: logger,
	}
}

// Fetch issues the single outbound GET. The inbound Range header is forwarded
// verbatim, which is what keeps seeking working in players. Setting
// Accept-Encoding explicitly also disables the transport's transparent gzip,
// so Content-Length stays meaningful for the relay.
func (p *StreamProxy) Fetch(ctx context.Context, originURL string, inbound http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, originURL, nil)
	if err != nil {
		return nil, err
	}

	userAgent := inbound.Get("User-Agent")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept-Encoding", "identity")
	req.Header.Set("Connection", "keep-alive")

	if rangeHeader := inbound.Get("Range"); rangeHeader != "" {
		req.Header.Set("Range", rangeHeader)
	}

	return p.client.Do(req)
}

// Relay copies the upstream status, the header subset a player needs, and the
// body in fixed-size chunks, flushing after each one. Returns once the body is
// exhausted or the client goes away.
func (p *StreamProxy) Relay(w http.ResponseWriter, resp *http.Response) error {
	header := w.Header()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "video/mp4"
	}
	header.Set("Content-Type", contentType)
	header.Set("Accept-Ranges", "bytes")
	header.Set("Cache-Control", "public, max-age=3600")

	if contentLength := resp.Header.Get("Content-Length"); contentLength != "" {
		header.Set("Content-Length", contentLength)
	}
	if contentRange := resp.Header.Get("Content-Range"); contentRange != "" {
		header.Set("Content-Range", contentRange)
	}

	w.WriteHeader(resp.StatusCode)

	flusher, _ := w.(http.Flusher)
	buf := make([]byte, streamChunkSize)

	for {
		n, err := resp.Body.Read(buf)
		if n > 0 {
			if _, writeErr := w.Write(buf[:n]); writeErr != nil {
				p.logger.Info("client went away mid-stream", zap.Error(writeErr))
				return writeErr
			}
			if flusher != nil {
				flusher.Flush()
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}
