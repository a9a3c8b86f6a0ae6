// This file defines the Video model and repository. Videos are not stored
// on disk; a video row only records an external URL.
package repository

import (
	"context"
	"database/sql"
	"time"
)

type Video struct {
	ID          uint64    `json:"id"`
	ClassID     uint64    `json:"class_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	VideoURL    string    `json:"video_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type VideoRepo struct {
	db *sql.DB
}

func NewVideoRepo(db *sql.DB) *VideoRepo {
	return &VideoRepo{db: db}
}

func (r *VideoRepo) Create(ctx context.Context, v *Video) error {
	const qInsert = `INSERT INTO videos (class_id, title, description, video_url)
	                 VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, v.ClassID, v.Title, v.Description, v.VideoURL)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	v.ID = uint64(id)

	const qSelect = "SELECT created_at FROM videos WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, v.ID).Scan(&v.CreatedAt)
}

func (r *VideoRepo) ListByClass(ctx context.Context, classID uint64) ([]*Video, error) {
	const q = `SELECT id, class_id, title, description, video_url, created_at
	           FROM videos WHERE class_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Video
	for rows.Next() {
		v := new(Video)
		if err := rows.Scan(&v.ID, &v.ClassID, &v.Title, &v.Description, &v.VideoURL, &v.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a video row. ErrNotFound is returned when no row was
// affected so handlers report deletes of unknown ids consistently.
func (r *VideoRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
