package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"

	"github.com/Anshvachhani998/Terdl-api/internal/models"
	"github.com/Anshvachhani998/Terdl-api/internal/storage"
)

var (
	ErrMissingURL = errors.New("no URL provided")
	ErrInvalidURL = errors.New("invalid URL")
)

// ExpiredURL is rendered by the player page when an id is unknown, instead
// of failing the request.
const ExpiredURL = "https://effective-zebra-wqr496wpv6p3g6vx.github.dev/"

// ExpiredLabel is the display name shown on the sentinel page.
const ExpiredLabel = "Expired"

// PlayerPage describes what the player template renders.
type PlayerPage struct {
	URL      string
	Filename string
}

type VideoService struct {
	repository storage.StorageI
	logger     *zap.Logger
	baseURL    string
}

func NewVideo(repo storage.StorageI, logger *zap.Logger, baseURL string) *VideoService {
	return &VideoService{
		repository: repo,
		logger:     logger,
		baseURL:    baseURL,
	}
}

// CreateVideoLink validates the URL, allocates an id and derives the short,
// player and cdn links from the service base address.
func (s *VideoService) CreateVideoLink(ctx context.Context, rawURL string, name string) (*models.ShortenResponse, error) {
	if rawURL == "" {
		return nil, ErrMissingURL
	}

	if !IsValidURL(rawURL) {
		return nil, ErrInvalidURL
	}

	record, err := s.repository.Allocate(ctx, rawURL, name)
	if err != nil {
		return nil, err
	}

	return &models.ShortenResponse{
		Success:   true,
		VideoID:   record.ID,
		ShortURL:  fmt.Sprintf("%s/%s/download/%d", s.baseURL, record.Filename, record.ID),
		PlayerURL: fmt.Sprintf("%s/player?vid=%d&name=%s", s.baseURL, record.ID, url.QueryEscape(record.Filename)),
		CDNURL:    fmt.Sprintf("%s/cdn/%d", s.baseURL, record.ID),
		Filename:  record.Filename,
	}, nil
}

func (s *VideoService) GetVideoByID(ctx context.Context, id int64) (storage.VideoRecord, error) {
	return s.repository.FindByID(ctx, id)
}

// ResolvePlayer maps an id to what the player page should show. Unknown ids
// degrade to the Expired sentinel page rather than an error.
func (s *VideoService) ResolvePlayer(ctx context.Context, id int64) PlayerPage {
	record, err := s.repository.FindByID(ctx, id)
	if err != nil {
		s.logger.Info("serving expired page", zap.Int64("id", id))
		return PlayerPage{URL: ExpiredURL, Filename: ExpiredLabel}
	}

	return PlayerPage{URL: record.Original, Filename: record.Filename}
}

func (s *VideoService) GetStats(ctx context.Context) (storage.StatsRecord, error) {
	return s.repository.GetStats(ctx)
}

func (s *VideoService) PingContext(ctx context.Context) error {
	return s.repository.PingContext(ctx)
}
