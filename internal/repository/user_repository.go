package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/jevliu/learning-platform/internal/utils"
)

// Role values stored in users.role. Fixed at account creation.
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

// User mirrors the 'users' table. The email column stores the login
// handle: a real email address for teachers, a free-text name for
// students. The column name is kept for schema compatibility with the
// original deployment; nothing validates an email format.
type User struct {
	ID           uint64
	Handle       string // users.email
	PasswordHash string
	Role         string // "teacher" | "student"
	CreatedAt    time.Time
}

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create hashes the password and inserts a user, returning its ID.
func (r *UserRepo) Create(ctx context.Context, handle, password, role string, cost int) (uint64, error) {
	handle = strings.TrimSpace(handle)
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, password_hash, role) VALUES (?,?,?)",
		handle, hash, role)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrHandleExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByHandle fetches a user by login handle.
func (r *UserRepo) GetByHandle(ctx context.Context, handle string) (User, error) {
	handle = strings.TrimSpace(handle)
	var u User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,role,created_at FROM users WHERE email=? LIMIT 1",
		handle).Scan(&u.ID, &u.Handle, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (User, error) {
	var u User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password_hash,role,created_at FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Handle, &u.PasswordHash, &u.Role, &u.CreatedAt)
	return u, err
}
