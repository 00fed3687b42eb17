package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Anshvachhani998/Terdl-api/internal/storage"
)

// ManifestService renders master playlists for adaptive playback: one audio
// track plus a single 720p video variant. Each playlist is written once under
// a random name and served back by the /temp route.
type ManifestService struct {
	store           *storage.ManifestStore
	logger          *zap.Logger
	defaultVideoURL string
	defaultAudioURL string
}

func NewManifest(store *storage.ManifestStore, logger *zap.Logger, defaultVideoURL, defaultAudioURL string) *ManifestService {
	return &ManifestService{
		store:           store,
		logger:          logger,
		defaultVideoURL: defaultVideoURL,
		defaultAudioURL: defaultAudioURL,
	}
}

// Generate writes a new playlist referencing the given source URLs, falling
// back to the configured defaults, and returns its serving path.
func (s *ManifestService) Generate(ctx context.Context, videoURL, audioURL string) (string, error) {
	if videoURL == "" {
		videoURL = s.defaultVideoURL
	}
	if audioURL == "" {
		audioURL = s.defaultAudioURL
	}

	if videoURL == "" || audioURL == "" {
		return "", ErrMissingURL
	}
	if !IsValidURL(videoURL) || !IsValidURL(audioURL) {
		return "", ErrInvalidURL
	}

	name := strings.ReplaceAll(uuid.NewString(), "-", "") + ".m3u8"

	if err := s.store.Write(name, []byte(masterPlaylist(videoURL, audioURL))); err != nil {
		return "", err
	}

	s.logger.Info("generated manifest", zap.String("name", name))

	return "/temp/" + name, nil
}

func masterPlaylist(videoURL, audioURL string) string {
	var b strings.Builder

	b.WriteString("#EXTM3U\n\n")
	fmt.Fprintf(&b, "#EXT-X-MEDIA:TYPE=AUDIO,GROUP-ID=%q,NAME=%q,DEFAULT=YES,AUTOSELECT=YES,URI=%q\n\n", "audio_group", "English", audioURL)
	fmt.Fprintf(&b, "#EXT-X-STREAM-INF:BANDWIDTH=2000000,RESOLUTION=1280x720,AUDIO=%q\n", "audio_group")
	b.WriteString(videoURL)
	b.WriteString("\n")

	return b.String()
}
