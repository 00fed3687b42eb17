package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when an id was never allocated.
var ErrNotFound = errors.New("not found")

type StorageI interface {
	Allocate(context.Context, string, string) (VideoRecord, error)
	FindByID(context.Context, int64) (VideoRecord, error)
	GetStats(context.Context) (StatsRecord, error)
	PingContext(context.Context) error
}
