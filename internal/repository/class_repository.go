// Package repository contains data access logic separated from HTTP handlers.
// This file defines the Class model and repository methods for CRUD and lookup
// operations. A Class is the parent scope that materials, videos and notes
// are nested under; deleting a class removes all dependent content.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to match sentinel values
	"time"         // time holds creation timestamps
)

// Class represents a class entity persisted in the database. Each class
// belongs to a single teacher and may contain materials, videos and notes.
// The ID field is the primary key and is auto-incremented by the DB.
type Class struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TeacherID   uint64    `json:"teacher_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// ClassRepo encapsulates all database queries related to classes.  It
// depends on a sql.DB connection which is injected at startup.
type ClassRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewClassRepo constructs a ClassRepo with the provided DB handle.  This
// function allows dependency injection of the database in tests and at
// startup.  There is no initialization logic beyond assigning the field.
func NewClassRepo(db *sql.DB) *ClassRepo {
	return &ClassRepo{db: db}
}

// Create inserts a new class into the database.  On success the class's
// ID field will be populated with the auto‑generated value.  After the
// insert, a SELECT is executed to populate the CreatedAt field so that
// callers receive a fully populated record.
func (r *ClassRepo) Create(ctx context.Context, cl *Class) error {
	const qInsert = "INSERT INTO classes (name, description, teacher_id) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, qInsert, cl.Name, cl.Description, cl.TeacherID)
	if err != nil {
		return err // propagate DB errors to the caller
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	cl.ID = uint64(id)

	const qSelect = "SELECT created_at FROM classes WHERE id = ?"
	return r.db.QueryRowContext(ctx, qSelect, cl.ID).Scan(&cl.CreatedAt)
}

// List returns all classes ordered by creation time, newest first.
func (r *ClassRepo) List(ctx context.Context) ([]*Class, error) {
	const q = `SELECT id, name, description, teacher_id, created_at
	           FROM classes ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Class
	for rows.Next() {
		cl := new(Class)
		if err := rows.Scan(&cl.ID, &cl.Name, &cl.Description, &cl.TeacherID, &cl.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, cl)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a class and all dependent records (materials, videos and
// notes) in a single transaction. It returns the stored file names of the
// deleted materials so the caller can remove them from disk after the
// transaction commits. If the class does not exist, ErrNotFound is returned.
func (r *ClassRepo) Delete(ctx context.Context, id uint64) (filePaths []string, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	// Verify the class exists before touching children.
	var exists uint64
	if err = tx.QueryRowContext(ctx, `SELECT id FROM classes WHERE id = ?`, id).Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrNotFound
		}
		return nil, err
	}

	// Collect stored file names so the handler can clean up the upload
	// directory once the rows are gone.
	rows, qerr := tx.QueryContext(ctx, `SELECT file_path FROM materials WHERE class_id = ?`, id)
	if qerr != nil {
		err = qerr
		return nil, err
	}
	for rows.Next() {
		var p string
		if err = rows.Scan(&p); err != nil {
			rows.Close()
			return nil, err
		}
		filePaths = append(filePaths, p)
	}
	rows.Close()
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM materials WHERE class_id = ?`, id); err != nil {
		return nil, err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM videos WHERE class_id = ?`, id); err != nil {
		return nil, err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM notes WHERE class_id = ?`, id); err != nil {
		return nil, err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM classes WHERE id = ?`, id); err != nil {
		return nil, err
	}
	return filePaths, nil
}
