// This file defines the Note model and repository. Notes carry rich text
// content directly in the row; there is no file or URL indirection.
package repository

import (
	"context"
	"database/sql"
	"time"
)

type Note struct {
	ID        uint64    `json:"id"`
	ClassID   uint64    `json:"class_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type NoteRepo struct {
	db *sql.DB
}

func NewNoteRepo(db *sql.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

func (r *NoteRepo) Create(ctx context.Context, n *Note) error {
	const qInsert = "INSERT INTO notes (class_id, title, content) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, n.ClassID, n.Title, n.Content)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	n.ID = uint64(id)

	const qSelect = "SELECT created_at FROM notes WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, n.ID).Scan(&n.CreatedAt)
}

func (r *NoteRepo) ListByClass(ctx context.Context, classID uint64) ([]*Note, error) {
	const q = `SELECT id, class_id, title, content, created_at
	           FROM notes WHERE class_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Note
	for rows.Next() {
		n := new(Note)
		if err := rows.Scan(&n.ID, &n.ClassID, &n.Title, &n.Content, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a note row. ErrNotFound is returned when no row was
// affected.
func (r *NoteRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
