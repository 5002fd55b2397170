package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// NoteStore defines persistence operations for notes.
type NoteStore interface {
	Create(ctx context.Context, note Note) (Note, error)
	GetByID(ctx context.Context, id uuid.UUID) (Note, error)
	GetByOwner(ctx context.Context, ownerID uuid.UUID, filter NoteFilter) ([]Note, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) (Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Note represents a personal note attached to a chapter. Ownership is fixed
// at creation and never changes.
type Note struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	ChapterID string
	Text      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteFilter narrows note listings. The zero value matches every note of the
// owner.
type NoteFilter struct {
	ChapterID string
}

// CreateNoteParams contains parameters to create a note.
type CreateNoteParams struct {
	OwnerID   uuid.UUID
	ChapterID string
	Text      string
}
