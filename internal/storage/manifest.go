package storage

import (
	"io"
	"os"
	"time"

	"github.com/spf13/afero"
)

// ManifestStore writes generated playlist files into a flat directory.
// Backed by afero so tests can run against an in-memory filesystem.
type ManifestStore struct {
	fs  afero.Fs
	dir string
}

func NewManifestStore(fs afero.Fs, dir string) (*ManifestStore, error) {
	if err := fs.MkdirAll(dir, 0770); err != nil {
		return nil, err
	}

	return &ManifestStore{fs: afero.NewBasePathFs(fs, dir), dir: dir}, nil
}

func (ms *ManifestStore) Write(name string, content []byte) error {
	return afero.WriteFile(ms.fs, name, content, 0660)
}

// Open returns a reader for a previously written manifest.
// Missing files surface as ErrNotFound so handlers can map them to 404.
func (ms *ManifestStore) Open(name string) (io.ReadCloser, error) {
	f, err := ms.fs.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return f, nil
}

// SweepOlderThan removes manifests whose mtime is before the cutoff and
// reports how many were deleted.
func (ms *ManifestStore) SweepOlderThan(cutoff time.Time) (int, error) {
	infos, err := afero.ReadDir(ms.fs, ".")
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, info := range infos {
		if info.IsDir() || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := ms.fs.Remove(info.Name()); err != nil {
			return removed, err
		}
		removed++
	}

	return removed, nil
}
