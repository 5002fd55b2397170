package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/algoroadmap/roadmap-server/internal/logger"
	"github.com/algoroadmap/roadmap-server/internal/model"
)

// NoteService defines note listing and ownership-checked mutations.
type NoteService interface {
	ListNotes(ctx context.Context, userID uuid.UUID, filter model.NoteFilter) ([]model.Note, error)
	CreateNote(ctx context.Context, params model.CreateNoteParams) (model.Note, error)
	UpdateNote(ctx context.Context, userID, noteID uuid.UUID, text string) (model.Note, error)
	DeleteNote(ctx context.Context, userID, noteID uuid.UUID) error
}

// Note handles HTTP endpoints for personal notes.
type Note struct {
	noteService    NoteService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewNote creates a new Note handler.
func NewNote(noteService NoteService, contextManager model.ContextManager, logger *logger.Logger) *Note {
	return &Note{
		noteService:    noteService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createNoteRequest struct {
	ChapterID string `json:"chapterId"`
	Text      string `json:"text"`
}

type updateNoteRequest struct {
	Text string `json:"text"`
}

func (h *Note) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("Note handler: user id missing from context",
			"path", r.URL.Path)
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing authorization token"})
		return uuid.Nil, false
	}
	return userID, true
}

// List returns the caller's notes, newest first, optionally filtered by the
// chapterId query parameter.
func (h *Note) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	filter := model.NoteFilter{ChapterID: r.URL.Query().Get("chapterId")}

	notes, err := h.noteService.ListNotes(r.Context(), userID, filter)
	if err != nil {
		h.logger.Error("Note handler: failed to list notes",
			"user_id", userID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponses(notes))
}

// Create stores a new note owned by the caller.
func (h *Note) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req createNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	note, err := h.noteService.CreateNote(r.Context(), model.CreateNoteParams{
		OwnerID:   userID,
		ChapterID: req.ChapterID,
		Text:      req.Text,
	})
	if err != nil {
		h.logger.Info("Note handler: create failed",
			"user_id", userID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toNoteResponse(note))
}

// Update replaces the text of a note owned by the caller.
func (h *Note) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	noteID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid note id"})
		return
	}

	var req updateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	note, err := h.noteService.UpdateNote(r.Context(), userID, noteID, req.Text)
	if err != nil {
		h.logger.Info("Note handler: update failed",
			"note_id", noteID,
			"user_id", userID,
			"error", err.Error())
		h.handleNoteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toNoteResponse(note))
}

// Delete removes a note owned by the caller.
func (h *Note) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	noteID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid note id"})
		return
	}

	if err := h.noteService.DeleteNote(r.Context(), userID, noteID); err != nil {
		h.logger.Info("Note handler: delete failed",
			"note_id", noteID,
			"user_id", userID,
			"error", err.Error())
		h.handleNoteError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Note deleted successfully"})
}

func (h *Note) handleNoteError(w http.ResponseWriter, err error) {
	if errors.Is(err, model.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Note not found"})
		return
	}
	handleError(w, err)
}
