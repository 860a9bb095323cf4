// Package files stores uploaded profile images on disk and reads them back
// base64-encoded for the download endpoint.
package files

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

// ErrBadExtension is returned for uploads that are not png or jpg images.
var ErrBadExtension = errors.New("only png or jpg uploads are allowed")

// Storage saves uploaded images under a single directory, keyed by their
// original filename.
type Storage struct {
	dir string
}

// New creates the upload directory if needed and returns a Storage over it.
func New(dir string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Storage{dir: dir}, nil
}

// Save writes the uploaded file to disk under its original filename and
// returns that filename. Uploads without a png/jpg extension are rejected
// with ErrBadExtension before anything is written.
func (s *Storage) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	name := filepath.Base(header.Filename)
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".jpg", ".jpeg":
	default:
		return "", ErrBadExtension
	}

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}
	return name, nil
}

// ReadBase64 reads a stored image back as a base64 string.
// Returns os.ErrNotExist (wrapped) if no such image was uploaded.
func (s *Storage) ReadBase64(name string) (string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil {
		return "", fmt.Errorf("failed to read image %q: %w", name, err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
