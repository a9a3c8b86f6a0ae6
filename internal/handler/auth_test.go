package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jevliu/learning-platform/internal/config"
	"github.com/jevliu/learning-platform/internal/repository"
)

func testCfg() config.Config {
	return config.Config{
		JWTSecret:   "handler-test-secret",
		TokenTTLMin: 60,
		BcryptCost:  bcrypt.MinCost,
	}
}

// postJSON runs an echo handler against a JSON body and returns the recorder.
func postJSON(t *testing.T, h echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestRegisterTeacher(t *testing.T) {
	users := newFakeUsers()
	h := NewAuthHandler(testCfg(), users)

	rec := postJSON(t, h.RegisterTeacher, `{"email":"alice@school.edu","password":"s3cret"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["userId"])

	u, err := users.GetByHandle(t.Context(), "alice@school.edu")
	require.NoError(t, err)
	assert.Equal(t, repository.RoleTeacher, u.Role)
	assert.NotEqual(t, "s3cret", u.PasswordHash)
}

func TestRegisterTeacherValidation(t *testing.T) {
	h := NewAuthHandler(testCfg(), newFakeUsers())

	for name, body := range map[string]string{
		"missing email":    `{"password":"pw"}`,
		"missing password": `{"email":"a@b.c"}`,
		"blank email":      `{"email":"   ","password":"pw"}`,
		"empty body":       `{}`,
	} {
		rec := postJSON(t, h.RegisterTeacher, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
}

func TestRegisterTeacherDuplicateEmail(t *testing.T) {
	h := NewAuthHandler(testCfg(), newFakeUsers())

	rec := postJSON(t, h.RegisterTeacher, `{"email":"alice@school.edu","password":"pw"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.RegisterTeacher, `{"email":"alice@school.edu","password":"other"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email already registered", decodeBody(t, rec)["error"])
}

func TestRegisterStudent(t *testing.T) {
	users := newFakeUsers()
	h := NewAuthHandler(testCfg(), users)

	rec := postJSON(t, h.RegisterStudent, `{"name":"bob","password":"pw"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	u, err := users.GetByHandle(t.Context(), "bob")
	require.NoError(t, err)
	assert.Equal(t, repository.RoleStudent, u.Role)
}

func TestRegisterStudentRejectsAdminHandle(t *testing.T) {
	h := NewAuthHandler(testCfg(), newFakeUsers())

	for _, name := range []string{"admin", "Admin", "ADMIN", "  admin  "} {
		rec := postJSON(t, h.RegisterStudent, `{"name":"`+name+`","password":"pw"}`)
		assert.Equal(t, http.StatusForbidden, rec.Code, name)
	}
}

func TestRegisterStudentDuplicateName(t *testing.T) {
	h := NewAuthHandler(testCfg(), newFakeUsers())

	rec := postJSON(t, h.RegisterStudent, `{"name":"bob","password":"pw"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.RegisterStudent, `{"name":"bob","password":"pw2"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "name already registered", decodeBody(t, rec)["error"])
}

func TestLoginRoundTrip(t *testing.T) {
	cfg := testCfg()
	users := newFakeUsers()
	h := NewAuthHandler(cfg, users)

	rec := postJSON(t, h.RegisterStudent, `{"name":"bob","password":"pw"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = postJSON(t, h.Login, `{"name":"bob","password":"pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp loginResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bob", resp.User.Name)
	assert.Equal(t, repository.RoleStudent, resp.User.Role)
	assert.Equal(t, uint64(1), resp.User.ID)

	// The token must carry the same identity and verify with our secret.
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (any, error) {
		return []byte(cfg.JWTSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, float64(1), claims["sub"])
	assert.Equal(t, "bob", claims["name"])
	assert.Equal(t, repository.RoleStudent, claims["role"])
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	h := NewAuthHandler(testCfg(), newFakeUsers())

	rec := postJSON(t, h.RegisterStudent, `{"name":"bob","password":"pw"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	wrongPass := postJSON(t, h.Login, `{"name":"bob","password":"nope"}`)
	unknownUser := postJSON(t, h.Login, `{"name":"nobody","password":"pw"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	assert.Equal(t, wrongPass.Body.String(), unknownUser.Body.String())
}

func TestLoginValidation(t *testing.T) {
	h := NewAuthHandler(testCfg(), newFakeUsers())

	rec := postJSON(t, h.Login, `{"name":"","password":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginStoreFailure(t *testing.T) {
	users := newFakeUsers()
	users.failWith = errors.New("connection reset")
	h := NewAuthHandler(testCfg(), users)

	rec := postJSON(t, h.Login, `{"name":"bob","password":"pw"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
