package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/algoroadmap/roadmap-server/internal/logger"
	"github.com/algoroadmap/roadmap-server/internal/model"
)

type Note struct {
	noteStore model.NoteStore
	logger    *logger.Logger
}

func NewNote(noteStore model.NoteStore, logger *logger.Logger) *Note {
	return &Note{
		noteStore: noteStore,
		logger:    logger,
	}
}

// authorizeOwner gates every mutation on a note. Only the owner may touch it.
func authorizeOwner(ownerID, userID uuid.UUID) error {
	if ownerID != userID {
		return model.ErrForbidden
	}
	return nil
}

func (s *Note) ListNotes(ctx context.Context, userID uuid.UUID, filter model.NoteFilter) ([]model.Note, error) {
	s.logger.Debug("Note service: listing notes",
		"user_id", userID,
		"chapter_id", filter.ChapterID)

	notes, err := s.noteStore.GetByOwner(ctx, userID, filter)
	if err != nil {
		s.logger.Error("Note service: failed to list notes",
			"user_id", userID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	return notes, nil
}

func (s *Note) CreateNote(ctx context.Context, params model.CreateNoteParams) (model.Note, error) {
	s.logger.Debug("Note service: creating note",
		"user_id", params.OwnerID,
		"chapter_id", params.ChapterID)

	if strings.TrimSpace(params.ChapterID) == "" {
		return model.Note{}, fmt.Errorf("chapter id is required: %w", model.ErrInvalidInput)
	}
	if strings.TrimSpace(params.Text) == "" {
		return model.Note{}, fmt.Errorf("text is required: %w", model.ErrInvalidInput)
	}

	now := time.Now()
	note, err := s.noteStore.Create(ctx, model.Note{
		ID:        uuid.New(),
		OwnerID:   params.OwnerID,
		ChapterID: params.ChapterID,
		Text:      params.Text,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		s.logger.Error("Note service: failed to create note",
			"user_id", params.OwnerID,
			"error", err.Error())
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	s.logger.Info("Note service: note created",
		"note_id", note.ID,
		"user_id", params.OwnerID)

	return note, nil
}

func (s *Note) UpdateNote(ctx context.Context, userID, noteID uuid.UUID, text string) (model.Note, error) {
	s.logger.Debug("Note service: updating note",
		"note_id", noteID,
		"user_id", userID)

	if strings.TrimSpace(text) == "" {
		return model.Note{}, fmt.Errorf("text is required: %w", model.ErrInvalidInput)
	}

	note, err := s.noteStore.GetByID(ctx, noteID)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to get note: %w", err)
	}

	if err := authorizeOwner(note.OwnerID, userID); err != nil {
		s.logger.Info("Note service: update denied",
			"note_id", noteID,
			"user_id", userID)
		return model.Note{}, err
	}

	updated, err := s.noteStore.UpdateText(ctx, noteID, text)
	if err != nil {
		s.logger.Error("Note service: failed to update note",
			"note_id", noteID,
			"error", err.Error())
		return model.Note{}, fmt.Errorf("failed to update note: %w", err)
	}

	return updated, nil
}

func (s *Note) DeleteNote(ctx context.Context, userID, noteID uuid.UUID) error {
	s.logger.Debug("Note service: deleting note",
		"note_id", noteID,
		"user_id", userID)

	note, err := s.noteStore.GetByID(ctx, noteID)
	if err != nil {
		return fmt.Errorf("failed to get note: %w", err)
	}

	if err := authorizeOwner(note.OwnerID, userID); err != nil {
		s.logger.Info("Note service: delete denied",
			"note_id", noteID,
			"user_id", userID)
		return err
	}

	if err := s.noteStore.Delete(ctx, noteID); err != nil {
		s.logger.Error("Note service: failed to delete note",
			"note_id", noteID,
			"error", err.Error())
		return fmt.Errorf("failed to delete note: %w", err)
	}

	s.logger.Info("Note service: note deleted",
		"note_id", noteID,
		"user_id", userID)

	return nil
}
