package handler

import (
    "context"      // provides context with cancellation for DB calls
    "database/sql" // SQL database interactions
    "net/http"     // HTTP status codes and primitives
    "strings"      // string manipulation utilities
    "time"         // timeouts for DB calls

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/jevliu/learning-platform/internal/config"     // app configuration
    "github.com/jevliu/learning-platform/internal/repository" // DB repositories
    "github.com/jevliu/learning-platform/internal/utils"      // helper functions (hashing, token issuing)
)

// UserStore is the slice of the user repository the auth endpoints need.
// Declaring it here lets tests substitute an in-memory double for the
// MySQL-backed repository.
type UserStore interface {
	Create(ctx context.Context, handle, password, role string, cost int) (uint64, error)
	GetByHandle(ctx context.Context, handle string) (repository.User, error)
}

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, u UserStore) *AuthHandler {
	if u == nil {
		panic("nil user store passed to NewAuthHandler")
	}
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type registerTeacherReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type registerStudentReq struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}
type loginReq struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type userPart struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
type loginResp struct {
	Token string   `json:"token"`
	User  userPart `json:"user"`
}

// loginFailedMsg is deliberately identical for unknown handles and wrong
// passwords so the response never reveals which one was wrong.
const loginFailedMsg = "account or password incorrect"

// RegisterTeacher: create a teacher account keyed by email.
func (h *AuthHandler) RegisterTeacher(c echo.Context) error {
	var req registerTeacherReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, email, req.Password, repository.RoleTeacher, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrHandleExists {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "teacher account created",
		"userId":  uid,
	})
}

// RegisterStudent: create a student account keyed by display name. The
// "admin" handle is reserved and rejected regardless of letter case.
func (h *AuthHandler) RegisterStudent(c echo.Context) error {
	var req registerStudentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and password are required"})
	}
	if strings.EqualFold(name, "admin") {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "admin registration is not allowed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, name, req.Password, repository.RoleStudent, h.Cfg.BcryptCost)
	if err != nil {
		if err == repository.ErrHandleExists {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "student account created",
		"userId":  uid,
	})
}

// Login: verify handle and password, return a signed token plus the user.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	name := strings.TrimSpace(req.Name)
	if name == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByHandle(ctx, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": loginFailedMsg})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": loginFailedMsg})
	}

	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, u.ID, u.Handle, u.Role, h.Cfg.TokenTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}

	return c.JSON(http.StatusOK, loginResp{
		Token: access.Token,
		User:  userPart{ID: u.ID, Name: u.Handle, Role: u.Role},
	})
}
