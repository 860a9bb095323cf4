package service

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"

	"contas/internal/files"
)

// ImageService serves previously uploaded profile images.
type ImageService struct {
	uploads *files.Storage
	logger  *slog.Logger
}

// NewImageService creates a new image service over the given upload storage.
func NewImageService(uploads *files.Storage, logger *slog.Logger) *ImageService {
	return &ImageService{uploads: uploads, logger: logger}
}

// Download handles GET /download/image. The image name comes from the
// "imgname" header; the body carries the file base64-encoded.
func (s *ImageService) Download(w http.ResponseWriter, r *http.Request) {
	name := r.Header.Get("imgname")

	encoded, err := s.uploads.ReadBase64(name)
	if name == "" || errors.Is(err, fs.ErrNotExist) {
		writeMessage(w, http.StatusNotFound, "Imagem não encontrada!")
		return
	}
	if err != nil {
		s.logger.Error("Failed to read image", "imgname", name, "error", err)
		writeMessage(w, http.StatusInternalServerError, serverErrorMessage)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"image": encoded})
}
