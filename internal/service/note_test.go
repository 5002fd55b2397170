package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/algoroadmap/roadmap-server/internal/mocks"
	"github.com/algoroadmap/roadmap-server/internal/model"
	"github.com/algoroadmap/roadmap-server/internal/testutil"
)

func TestNote_ListNotes(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	notes := []model.Note{
		{ID: uuid.New(), OwnerID: userID, ChapterID: "3", Text: "newest"},
		{ID: uuid.New(), OwnerID: userID, ChapterID: "3", Text: "older"},
	}

	ns := mocks.NewNoteStore(t)
	ns.On("GetByOwner", mock.Anything, userID, model.NoteFilter{ChapterID: "3"}).Return(notes, nil)

	svc := NewNote(ns, testutil.MakeNoopLogger())

	got, err := svc.ListNotes(context.Background(), userID, model.NoteFilter{ChapterID: "3"})
	require.NoError(t, err)
	assert.Equal(t, notes, got)
}

func TestNote_CreateNote_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	ns := mocks.NewNoteStore(t)
	ns.On("Create", mock.Anything, mock.MatchedBy(func(n model.Note) bool {
		return n.OwnerID == userID && n.ChapterID == "3" && n.Text == "base case first" && n.ID != uuid.Nil
	})).Return(model.Note{ID: uuid.New(), OwnerID: userID, ChapterID: "3", Text: "base case first"}, nil)

	svc := NewNote(ns, testutil.MakeNoopLogger())

	note, err := svc.CreateNote(context.Background(), model.CreateNoteParams{
		OwnerID:   userID,
		ChapterID: "3",
		Text:      "base case first",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, note.OwnerID)
}

func TestNote_CreateNote_AssignsTimestamps(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	ns := mocks.NewNoteStore(t)
	ns.On("Create", mock.Anything, mock.MatchedBy(func(n model.Note) bool {
		return !n.CreatedAt.IsZero() && n.UpdatedAt.Equal(n.CreatedAt)
	})).Return(model.Note{ID: uuid.New(), OwnerID: userID}, nil)

	svc := NewNote(ns, testutil.MakeNoopLogger())

	_, err := svc.CreateNote(context.Background(), model.CreateNoteParams{
		OwnerID:   userID,
		ChapterID: "3",
		Text:      "base case first",
	})
	require.NoError(t, err)
}

func TestNote_CreateNote_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params model.CreateNoteParams
	}{
		{
			name:   "missing chapter id",
			params: model.CreateNoteParams{OwnerID: uuid.New(), Text: "text"},
		},
		{
			name:   "missing text",
			params: model.CreateNoteParams{OwnerID: uuid.New(), ChapterID: "3"},
		},
		{
			name:   "blank text",
			params: model.CreateNoteParams{OwnerID: uuid.New(), ChapterID: "3", Text: "   "},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := NewNote(mocks.NewNoteStore(t), testutil.MakeNoopLogger())

			_, err := svc.CreateNote(context.Background(), tt.params)
			assert.ErrorIs(t, err, model.ErrInvalidInput)
		})
	}
}

func TestNote_UpdateNote_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	noteID := uuid.New()

	ns := mocks.NewNoteStore(t)
	ns.On("GetByID", mock.Anything, noteID).Return(model.Note{ID: noteID, OwnerID: userID, Text: "old"}, nil)
	ns.On("UpdateText", mock.Anything, noteID, "new").Return(model.Note{ID: noteID, OwnerID: userID, Text: "new"}, nil)

	svc := NewNote(ns, testutil.MakeNoopLogger())

	note, err := svc.UpdateNote(context.Background(), userID, noteID, "new")
	require.NoError(t, err)
	assert.Equal(t, "new", note.Text)
}

func TestNote_UpdateNote_Forbidden(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	intruderID := uuid.New()
	noteID := uuid.New()

	ns := mocks.NewNoteStore(t)
	ns.On("GetByID", mock.Anything, noteID).Return(model.Note{ID: noteID, OwnerID: ownerID}, nil)

	svc := NewNote(ns, testutil.MakeNoopLogger())

	_, err := svc.UpdateNote(context.Background(), intruderID, noteID, "mine now")
	assert.ErrorIs(t, err, model.ErrForbidden)
	ns.AssertNotCalled(t, "UpdateText", mock.Anything, mock.Anything, mock.Anything)
}

func TestNote_UpdateNote_NotFound(t *testing.T) {
	t.Parallel()

	noteID := uuid.New()

	ns := mocks.NewNoteStore(t)
	ns.On("GetByID", mock.Anything, noteID).Return(model.Note{}, model.ErrNotFound)

	svc := NewNote(ns, testutil.MakeNoopLogger())

	_, err := svc.UpdateNote(context.Background(), uuid.New(), noteID, "text")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestNote_UpdateNote_EmptyText(t *testing.T) {
	t.Parallel()

	svc := NewNote(mocks.NewNoteStore(t), testutil.MakeNoopLogger())

	_, err := svc.UpdateNote(context.Background(), uuid.New(), uuid.New(), "  ")
	assert.ErrorIs(t, err, model.ErrInvalidInput)
}

func TestNote_DeleteNote_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	noteID := uuid.New()

	ns := mocks.NewNoteStore(t)
	ns.On("GetByID", mock.Anything, noteID).Return(model.Note{ID: noteID, OwnerID: userID}, nil)
	ns.On("Delete", mock.Anything, noteID).Return(nil)

	svc := NewNote(ns, testutil.MakeNoopLogger())

	assert.NoError(t, svc.DeleteNote(context.Background(), userID, noteID))
}

func TestNote_DeleteNote_Forbidden(t *testing.T) {
	t.Parallel()

	ownerID := uuid.New()
	noteID := uuid.New()

	ns := mocks.NewNoteStore(t)
	ns.On("GetByID", mock.Anything, noteID).Return(model.Note{ID: noteID, OwnerID: ownerID}, nil)

	svc := NewNote(ns, testutil.MakeNoopLogger())

	err := svc.DeleteNote(context.Background(), uuid.New(), noteID)
	assert.ErrorIs(t, err, model.ErrForbidden)
	ns.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestNote_DeleteNote_AlreadyDeleted(t *testing.T) {
	t.Parallel()

	noteID := uuid.New()

	ns := mocks.NewNoteStore(t)
	ns.On("GetByID", mock.Anything, noteID).Return(model.Note{}, model.ErrNotFound)

	svc := NewNote(ns, testutil.MakeNoopLogger())

	err := svc.DeleteNote(context.Background(), uuid.New(), noteID)
	assert.ErrorIs(t, err, model.ErrNotFound)
}
