// Package models defines the request and response data structures used
// for communication between the client and the video link service.
package models

// ShortenRequest represents a request to register a video URL.
type ShortenRequest struct {
	// URL is the original video URL to store.
	URL string `json:"url"`

	// Name is an optional display filename for the video.
	Name string `json:"name,omitempty"`
}

// ShortenResponse represents the response containing the derived links.
type ShortenResponse struct {
	Success   bool   `json:"success"`
	VideoID   int64  `json:"video_id"`
	ShortURL  string `json:"short_url"`
	PlayerURL string `json:"player_url"`
	CDNURL    string `json:"cdn_url"`
	Filename  string `json:"filename"`
}

// ErrorResponse is the JSON error envelope for the shorten and api endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// StreamError is the bare error envelope used by the streaming path.
type StreamError struct {
	Error string `json:"error"`
}

// APIResponse echoes back a validated download link.
type APIResponse struct {
	Success      bool   `json:"success"`
	DownloadLink string `json:"download_link"`
}

// ManifestResponse carries the link to a freshly generated playlist.
type ManifestResponse struct {
	M3U8Link string `json:"m3u8_link"`
}
