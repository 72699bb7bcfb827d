package storage

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

const thumbWidth = 320

// LocalStorage writes uploads (payment slips, product images) under a base
// directory, grouped by kind. Stored paths are relative so they can be served
// from the static /uploads route.
type LocalStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	for _, kind := range []string{"products", "slips"} {
		if err := os.MkdirAll(filepath.Join(baseDir, kind), 0o755); err != nil {
			return nil, fmt.Errorf("creating upload directory: %w", err)
		}
	}

	return &LocalStorage{baseDir: baseDir}, nil
}

// Save writes the upload with a generated name and returns the relative path.
func (s *LocalStorage) Save(kind, originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.NewString() + ext
	relPath := filepath.Join(kind, name)

	dst, err := os.Create(filepath.Join(s.baseDir, relPath))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("writing upload file: %w", err)
	}

	return relPath, nil
}

// SaveImage stores the full image and a resized thumbnail. Returns both
// relative paths. Non-image data fails decoding and is rejected.
func (s *LocalStorage) SaveImage(kind, originalName string, r io.Reader) (string, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return "", "", fmt.Errorf("decoding image: %w", err)
	}

	ext := ".jpg"
	if format == "png" {
		ext = ".png"
	}

	name := uuid.NewString()
	fullPath := filepath.Join(kind, name+ext)
	thumbPath := filepath.Join(kind, name+"_thumb"+ext)

	if err := s.encode(fullPath, img, format); err != nil {
		return "", "", err
	}

	thumb := resize.Resize(thumbWidth, 0, img, resize.Lanczos3)
	if err := s.encode(thumbPath, thumb, format); err != nil {
		return "", "", err
	}

	return fullPath, thumbPath, nil
}

func (s *LocalStorage) encode(relPath string, img image.Image, format string) error {
	f, err := os.Create(filepath.Join(s.baseDir, relPath))
	if err != nil {
		return fmt.Errorf("creating image file: %w", err)
	}
	defer f.Close()

	if format == "png" {
		return png.Encode(f, img)
	}
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 85})
}

func (s *LocalStorage) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}
	return os.Remove(filepath.Join(s.baseDir, relPath))
}

func (s *LocalStorage) BaseDir() string {
	return s.baseDir
}
