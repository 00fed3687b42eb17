package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeManifestFS struct {
	sweeps atomic.Int32
}

func (f *fakeManifestFS) SweepOlderThan(cutoff time.Time) (int, error) {
	f.sweeps.Add(1)
	return 1, nil
}

func TestManifestSweeper_DisabledWithZeroTTL(t *testing.T) {
	fs := &fakeManifestFS{}
	sweeper := NewManifestSweeper(zap.NewNop(), fs, 0)

	done := make(chan struct{})
	go func() {
		sweeper.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper with zero TTL should return immediately")
	}

	assert.Equal(t, int32(0), fs.sweeps.Load())
}

func TestManifestSweeper_Sweeps(t *testing.T) {
	fs := &fakeManifestFS{}
	sweeper := NewManifestSweeper(zap.NewNop(), fs, 40*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return fs.sweeps.Load() >= 1
	}, time.Second, 10*time.Millisecond)

	cancel()
	<-done
}
