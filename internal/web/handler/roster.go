package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/teamlineup/lineup/internal/model"
	"github.com/teamlineup/lineup/internal/services/photos"
	"github.com/teamlineup/lineup/internal/services/roster"
	"github.com/teamlineup/lineup/internal/web/middleware"
	"github.com/teamlineup/lineup/internal/web/templates/layout"
	"github.com/teamlineup/lineup/internal/web/templates/pages"
)

// maxUploadBytes bounds the in-memory portion of a photo upload
const maxUploadBytes = 10 << 20 // 10 MiB

// RosterHandler handles the lineup and player management pages
type RosterHandler struct {
	rosterService *roster.Service
	photosService *photos.Service
	logger        *slog.Logger
}

// NewRosterHandler creates a new RosterHandler
func NewRosterHandler(rosterService *roster.Service, photosService *photos.Service, logger *slog.Logger) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
		photosService: photosService,
		logger:        logger,
	}
}

// Lineup renders the team lineup
func (h *RosterHandler) Lineup(w http.ResponseWriter, r *http.Request) {
	players, err := h.rosterService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list players", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pages.LineupData{
		PageData: h.pageData(r, "Lineup"),
		Players:  players,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.Lineup(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// AddPlayerPage renders the add-player form
func (h *RosterHandler) AddPlayerPage(w http.ResponseWriter, r *http.Request) {
	players, err := h.rosterService.List(r.Context())
	if err != nil {
		h.logger.Error("failed to list players", slog.Any("error", err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := pages.AddPlayerData{
		PageData: h.pageData(r, "Add player"),
		Players:  players,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pages.AddPlayer(data).Render(r.Context(), w); err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// AddPlayer handles the multipart add-player form submission
func (h *RosterHandler) AddPlayer(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		middleware.SetFlash(w, "error", "Invalid form data")
		http.Redirect(w, r, "/add_player", http.StatusSeeOther)
		return
	}

	name := r.FormValue("name")
	number := r.FormValue("number")

	file, header, err := r.FormFile("photo")
	if err != nil {
		if name == "" || number == "" {
			middleware.SetFlash(w, "error", "All fields are required")
		} else {
			middleware.SetFlash(w, "error", "A photo is required")
		}
		http.Redirect(w, r, "/add_player", http.StatusSeeOther)
		return
	}
	defer file.Close()

	if name == "" || number == "" {
		middleware.SetFlash(w, "error", "All fields are required")
		http.Redirect(w, r, "/add_player", http.StatusSeeOther)
		return
	}

	key, err := h.photosService.Store(header.Filename, file)
	if err != nil {
		if errors.Is(err, model.ErrInvalidFilename) {
			middleware.SetFlash(w, "error", "That photo filename can't be used")
		} else {
			h.logger.Error("failed to store photo", slog.Any("error", err))
			middleware.SetFlash(w, "error", "Failed to store the photo")
		}
		http.Redirect(w, r, "/add_player", http.StatusSeeOther)
		return
	}

	player, err := h.rosterService.Add(r.Context(), name, number, key)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			middleware.SetFlash(w, "error", "All fields are required")
		} else {
			h.logger.Error("failed to add player", slog.Any("error", err))
			middleware.SetFlash(w, "error", "Failed to add the player")
		}
		http.Redirect(w, r, "/add_player", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "success", "Added "+player.Name+" to the lineup")
	http.Redirect(w, r, "/add_player", http.StatusSeeOther)
}

// Delete handles player removal
func (h *RosterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		middleware.SetFlash(w, "error", "Unknown player")
		http.Redirect(w, r, "/add_player", http.StatusSeeOther)
		return
	}

	if err := h.rosterService.Delete(r.Context(), model.PlayerID(id)); err != nil {
		if errors.Is(err, model.ErrPlayerNotFound) {
			middleware.SetFlash(w, "error", "Unknown player")
		} else {
			h.logger.Error("failed to delete player",
				slog.Int64("player_id", id),
				slog.Any("error", err),
			)
			middleware.SetFlash(w, "error", "Failed to delete the player")
		}
		http.Redirect(w, r, "/add_player", http.StatusSeeOther)
		return
	}

	middleware.SetFlash(w, "success", "Player removed")
	http.Redirect(w, r, "/add_player", http.StatusSeeOther)
}

func (h *RosterHandler) pageData(r *http.Request, title string) layout.PageData {
	data := layout.PageData{
		Title: title,
		Flash: middleware.GetFlash(r.Context()),
	}
	if user := middleware.GetUser(r.Context()); user != nil {
		data.Username = user.Username
	}
	return data
}
