// Package store persists pixel artifacts as PNG files on an abstract
// filesystem. PNG is lossless, which the artifact format requires:
// every payload byte must survive the round trip through the image
// unchanged.
package store

import (
	"errors"
	"fmt"
	"image"
	"image/png"

	"github.com/absfs/absfs"
	"github.com/google/uuid"
)

// ArtifactExt is the file extension of stored artifacts
const ArtifactExt = ".png"

// Store reads and writes artifacts on an absfs.FileSystem.
type Store struct {
	fs absfs.FileSystem
}

// New creates a store backed by the given filesystem.
func New(fs absfs.FileSystem) (*Store, error) {
	if fs == nil {
		return nil, errors.New("filesystem cannot be nil")
	}
	return &Store{fs: fs}, nil
}

// WriteArtifact PNG-encodes the pixel grid to the named file.
func (s *Store) WriteArtifact(name string, img image.Image) error {
	f, err := s.fs.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create artifact %s: %w", name, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode artifact %s: %w", name, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close artifact %s: %w", name, err)
	}
	return nil
}

// ReadArtifact loads the named file back into a pixel grid.
func (s *Store) ReadArtifact(name string) (image.Image, error) {
	f, err := s.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open artifact %s: %w", name, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode artifact %s: %w", name, err)
	}
	return img, nil
}

// DefaultArtifactName returns a fresh collision-free artifact filename.
func DefaultArtifactName() string {
	return "soundseal-" + uuid.NewString() + ArtifactExt
}
