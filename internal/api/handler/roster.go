package handler

import (
	"io"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/teamlineup/lineup/internal/api/response"
	"github.com/teamlineup/lineup/internal/model"
	"github.com/teamlineup/lineup/internal/services/photos"
	"github.com/teamlineup/lineup/internal/services/roster"
)

// maxUploadBytes bounds the in-memory portion of a photo upload
const maxUploadBytes = 10 << 20 // 10 MiB

// RosterHandler handles roster endpoints
type RosterHandler struct {
	rosterService *roster.Service
	photosService *photos.Service
	logger        *slog.Logger
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(rosterService *roster.Service, photosService *photos.Service, logger *slog.Logger) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
		photosService: photosService,
		logger:        logger,
	}
}

// List handles GET /api/v1/players
func (h *RosterHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.rosterService.List(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerListFromModel(players))
}

// Add handles POST /api/v1/players (multipart: name, number, photo)
func (h *RosterHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		WriteError(w, NewInvalidRequestError("expected multipart form data"))
		return
	}

	name := r.FormValue("name")
	number := r.FormValue("number")

	file, header, err := r.FormFile("photo")
	if err != nil {
		WriteError(w, model.NewValidationError("photo"))
		return
	}
	defer file.Close()

	key, err := h.photosService.Store(header.Filename, file)
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.rosterService.Add(r.Context(), name, number, key)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Get handles GET /api/v1/players/{id}
func (h *RosterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.rosterService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Delete handles DELETE /api/v1/players/{id}
func (h *RosterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := playerID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.rosterService.Delete(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// ServePhoto handles GET /api/v1/photos/{key}
func (h *RosterHandler) ServePhoto(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	content, err := h.photosService.Open(key)
	if err != nil {
		WriteError(w, err)
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

func playerID(r *http.Request) (model.PlayerID, error) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, NewInvalidRequestError("player id must be an integer")
	}
	return model.PlayerID(id), nil
}
