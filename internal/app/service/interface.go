package service

import (
	"context"

	"github.com/Anshvachhani998/Terdl-api/internal/models"
	"github.com/Anshvachhani998/Terdl-api/internal/storage"
)

// VideoServiceIface is implemented by VideoService and mocked in handler tests.
type VideoServiceIface interface {
	CreateVideoLink(ctx context.Context, rawURL string, name string) (*models.ShortenResponse, error)
	GetVideoByID(ctx context.Context, id int64) (storage.VideoRecord, error)
	ResolvePlayer(ctx context.Context, id int64) PlayerPage
	GetStats(ctx context.Context) (storage.StatsRecord, error)
	PingContext(ctx context.Context) error
}
