package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"

	"github.com/sefraniabdou1937/backend-az/internal/utils"
)

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("json.Marshal: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func postLoginForm(t *testing.T, router *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRegisterSuccess(t *testing.T) {
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT id FROM users WHERE email=$1`)).
		WithArgs("user@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.
		ExpectQuery(regexp.QuoteMeta(`INSERT INTO users (email, hashed_password) VALUES ($1, $2) RETURNING id`)).
		WithArgs("user@example.com", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))

	router := gin.New()
	router.POST("/api/register", Register)

	resp := postJSON(t, router, "/api/register", map[string]string{
		"email":    "User@example.com",
		"password": "Secret123",
	})
	expectHTTP200(t, resp.Code)

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if int(out["id"].(float64)) != 101 {
		t.Fatalf("expected id 101, got %#v", out["id"])
	}
	if out["email"] != "user@example.com" {
		t.Fatalf("expected lowercased email, got %#v", out["email"])
	}
	tasks, ok := out["tasks"].([]any)
	if !ok || len(tasks) != 0 {
		t.Fatalf("expected empty tasks array, got %#v", out["tasks"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT id FROM users WHERE email=$1`)).
		WithArgs("user@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))

	router := gin.New()
	router.POST("/api/register", Register)

	resp := postJSON(t, router, "/api/register", map[string]string{
		"email":    "user@example.com",
		"password": "Secret123",
	})
	mustStatus(t, resp.Code, http.StatusBadRequest)

	if !strings.Contains(resp.Body.String(), "Email existant") {
		t.Fatalf("expected duplicate-email message, got %s", resp.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestLoginSuccessTokenSubjectIsEmail(t *testing.T) {
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	hashed, err := utils.HashPassword("Secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT id, email, hashed_password FROM users WHERE email=$1`)).
		WithArgs("user@example.com").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "email", "hashed_password"}).
				AddRow(101, "user@example.com", hashed),
		)

	router := gin.New()
	router.POST("/api/login", Login)

	resp := postLoginForm(t, router, "User@example.com", "Secret123")
	expectHTTP200(t, resp.Code)

	var out map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("json.Unmarshal: %v", err)
	}
	if out["token_type"] != "bearer" {
		t.Fatalf("expected token_type bearer, got %#v", out["token_type"])
	}

	token, _ := out["access_token"].(string)
	if token == "" {
		t.Fatal("expected non-empty access_token")
	}
	subject, err := utils.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if subject != "user@example.com" {
		t.Fatalf("expected token subject user@example.com, got %q", subject)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	hashed, err := utils.HashPassword("Secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT id, email, hashed_password FROM users WHERE email=$1`)).
		WithArgs("user@example.com").
		WillReturnRows(
			sqlmock.NewRows([]string{"id", "email", "hashed_password"}).
				AddRow(101, "user@example.com", hashed),
		)

	router := gin.New()
	router.POST("/api/login", Login)

	resp := postLoginForm(t, router, "user@example.com", "not-the-password")
	mustStatus(t, resp.Code, http.StatusUnauthorized)

	if !strings.Contains(resp.Body.String(), "Identifiants incorrects") {
		t.Fatalf("expected credentials message, got %s", resp.Body.String())
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT id, email, hashed_password FROM users WHERE email=$1`)).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "hashed_password"}))

	router := gin.New()
	router.POST("/api/login", Login)

	resp := postLoginForm(t, router, "ghost@example.com", "whatever")
	mustStatus(t, resp.Code, http.StatusUnauthorized)
}

func TestChangePasswordWrongOldPassword(t *testing.T) {
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	hashed, err := utils.HashPassword("Secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT hashed_password FROM users WHERE id=$1`)).
		WithArgs(101).
		WillReturnRows(sqlmock.NewRows([]string{"hashed_password"}).AddRow(hashed))

	router := gin.New()
	router.PUT("/api/users/me/password", withTestUserID(101), ChangePassword)

	payload, _ := json.Marshal(map[string]string{
		"old_password": "wrong-password",
		"new_password": "NewSecret456",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/users/me/password", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	mustStatus(t, resp.Code, http.StatusBadRequest)
	if !strings.Contains(resp.Body.String(), "Ancien mot de passe incorrect") {
		t.Fatalf("expected old-password message, got %s", resp.Body.String())
	}
}

func TestChangePasswordSuccess(t *testing.T) {
	_, mock, cleanup := setupMockDB(t)
	defer cleanup()

	hashed, err := utils.HashPassword("Secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT hashed_password FROM users WHERE id=$1`)).
		WithArgs(101).
		WillReturnRows(sqlmock.NewRows([]string{"hashed_password"}).AddRow(hashed))
	mock.
		ExpectExec(regexp.QuoteMeta(`UPDATE users SET hashed_password=$1 WHERE id=$2`)).
		WithArgs(sqlmock.AnyArg(), 101).
		WillReturnResult(sqlmock.NewResult(0, 1))

	router := gin.New()
	router.PUT("/api/users/me/password", withTestUserID(101), ChangePassword)

	payload, _ := json.Marshal(map[string]string{
		"old_password": "Secret123",
		"new_password": "NewSecret456",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/users/me/password", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	expectHTTP200(t, resp.Code)
	if !strings.Contains(resp.Body.String(), "Mot de passe mis à jour") {
		t.Fatalf("expected confirmation message, got %s", resp.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
