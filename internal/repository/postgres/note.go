package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/algoroadmap/roadmap-server/internal/model"
)

var _ model.NoteStore = (*NoteRepository)(nil)

type NoteRepository struct {
	db *Connection
}

func NewNoteRepository(db *Connection) *NoteRepository {
	return &NoteRepository{
		db: db,
	}
}

func (r *NoteRepository) Create(ctx context.Context, note model.Note) (model.Note, error) {
	query := `INSERT INTO notes (id, owner_id, chapter_id, text, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, owner_id, chapter_id, text, created_at, updated_at`

	var savedNote model.Note
	err := r.db.QueryRow(ctx, query,
		note.ID, note.OwnerID, note.ChapterID, note.Text,
		note.CreatedAt, note.UpdatedAt,
	).Scan(
		&savedNote.ID, &savedNote.OwnerID, &savedNote.ChapterID, &savedNote.Text,
		&savedNote.CreatedAt, &savedNote.UpdatedAt,
	)
	if err != nil {
		return model.Note{}, fmt.Errorf("failed to create note: %w", err)
	}

	return savedNote, nil
}

func (r *NoteRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Note, error) {
	var note model.Note
	query := `SELECT id, owner_id, chapter_id, text, created_at, updated_at
			  FROM notes WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&note.ID, &note.OwnerID, &note.ChapterID, &note.Text,
		&note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to get note by id: %w", err)
	}

	return note, nil
}

// GetByOwner lists the owner's notes newest first. The secondary ordering on
// id keeps listings deterministic for notes created within the same instant.
func (r *NoteRepository) GetByOwner(ctx context.Context, ownerID uuid.UUID, filter model.NoteFilter) ([]model.Note, error) {
	query := `SELECT id, owner_id, chapter_id, text, created_at, updated_at
			  FROM notes WHERE owner_id = $1
			  ORDER BY created_at DESC, id DESC`
	args := []any{ownerID}

	if filter.ChapterID != "" {
		query = `SELECT id, owner_id, chapter_id, text, created_at, updated_at
				 FROM notes WHERE owner_id = $1 AND chapter_id = $2
				 ORDER BY created_at DESC, id DESC`
		args = append(args, filter.ChapterID)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get notes by owner: %w", err)
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var note model.Note
		err := rows.Scan(
			&note.ID, &note.OwnerID, &note.ChapterID, &note.Text,
			&note.CreatedAt, &note.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}

func (r *NoteRepository) UpdateText(ctx context.Context, id uuid.UUID, text string) (model.Note, error) {
	query := `UPDATE notes SET text = $2, updated_at = now() WHERE id = $1
			  RETURNING id, owner_id, chapter_id, text, created_at, updated_at`

	var note model.Note
	err := r.db.QueryRow(ctx, query, id, text).Scan(
		&note.ID, &note.OwnerID, &note.ChapterID, &note.Text,
		&note.CreatedAt, &note.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Note{}, model.ErrNotFound
		}
		return model.Note{}, fmt.Errorf("failed to update note text: %w", err)
	}

	return note, nil
}

func (r *NoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM notes WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
