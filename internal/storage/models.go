package storage

// DefaultFilename is used when a shorten request carries no display name.
const DefaultFilename = "video.mp4"

// VideoRecord is a stored video URL with its assigned numeric id.
type VideoRecord struct {
	ID       int64  `json:"video_id"`
	Original string `json:"url"`
	Filename string `json:"filename"`
}

// StatsRecord holds service-wide counters for the internal stats endpoint.
type StatsRecord struct {
	Videos int `json:"videos"`
}
