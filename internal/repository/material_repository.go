// This file defines the Material model and repository. A material is an
// uploaded file attached to a class: the row stores the generated on-disk
// name alongside the sanitized original name shown to students.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Material represents a row in the materials table. FilePath is the
// generated storage name inside the upload directory, never a full path.
type Material struct {
	ID               uint64    `json:"id"`
	ClassID          uint64    `json:"class_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	FilePath         string    `json:"file_path"`
	OriginalFilename string    `json:"original_filename"`
	CreatedAt        time.Time `json:"created_at"`
}

type MaterialRepo struct {
	db *sql.DB
}

func NewMaterialRepo(db *sql.DB) *MaterialRepo {
	return &MaterialRepo{db: db}
}

// Create inserts a material record and populates the generated ID and
// creation timestamp on the passed struct.
func (r *MaterialRepo) Create(ctx context.Context, m *Material) error {
	const qInsert = `INSERT INTO materials (class_id, title, description, file_path, original_filename)
	                 VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, m.ClassID, m.Title, m.Description, m.FilePath, m.OriginalFilename)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)

	const qSelect = "SELECT created_at FROM materials WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, m.ID).Scan(&m.CreatedAt)
}

// ListByClass returns all materials of a class ordered by creation time,
// newest first.
func (r *MaterialRepo) ListByClass(ctx context.Context, classID uint64) ([]*Material, error) {
	const q = `SELECT id, class_id, title, description, file_path, original_filename, created_at
	           FROM materials WHERE class_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, classID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Material
	for rows.Next() {
		m := new(Material)
		if err := rows.Scan(&m.ID, &m.ClassID, &m.Title, &m.Description, &m.FilePath, &m.OriginalFilename, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a material row and returns its stored file name so the
// caller can remove the file from disk afterwards. ErrNotFound is returned
// when the id does not exist.
func (r *MaterialRepo) Delete(ctx context.Context, id uint64) (filePath string, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	if err = tx.QueryRowContext(ctx, `SELECT file_path FROM materials WHERE id = ?`, id).Scan(&filePath); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotFound
		}
		return "", err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM materials WHERE id = ?`, id); err != nil {
		return "", err
	}
	return filePath, nil
}
