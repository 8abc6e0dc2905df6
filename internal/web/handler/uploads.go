package handler

import (
	"errors"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/gorilla/mux"

	"github.com/teamlineup/lineup/internal/model"
	"github.com/teamlineup/lineup/internal/services/photos"
)

// UploadsHandler serves stored player photos
type UploadsHandler struct {
	photosService *photos.Service
	logger        *slog.Logger
}

// NewUploadsHandler creates a new UploadsHandler
func NewUploadsHandler(photosService *photos.Service, logger *slog.Logger) *UploadsHandler {
	return &UploadsHandler{
		photosService: photosService,
		logger:        logger,
	}
}

// Serve streams a photo by its storage key
func (h *UploadsHandler) Serve(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["filename"]

	content, err := h.photosService.Open(key)
	if err != nil {
		if errors.Is(err, model.ErrPhotoNotFound) || errors.Is(err, model.ErrInvalidFilename) {
			http.NotFound(w, r)
			return
		}
		h.logger.Error("failed to open photo",
			slog.String("key", key),
			slog.Any("error", err),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	defer content.Close()

	if ctype := mime.TypeByExtension(filepath.Ext(key)); ctype != "" {
		w.Header().Set("Content-Type", ctype)
	} else {
		w.Header().Set("Content-Type", "application/octet-stream")
	}

	if _, err := io.Copy(w, content); err != nil {
		h.logger.Warn("failed to stream photo",
			slog.String("key", key),
			slog.Any("error", err),
		)
	}
}
