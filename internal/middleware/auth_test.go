package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/sefraniabdou1937/backend-az/internal/database"
	"github.com/sefraniabdou1937/backend-az/internal/utils"
)

const testJWTSecret = "aztravel_test_jwt_secret_key_1234567890"

func TestMain(m *testing.M) {
	_ = os.Setenv("JWT_SECRET", testJWTSecret)
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func protectedRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}

	previousDB := database.DB
	database.DB = db
	cleanup := func() {
		database.DB = previousDB
		_ = db.Close()
	}

	router := gin.New()
	router.GET("/api/users/me", AuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":    c.GetInt("user_id"),
			"user_email": c.GetString("user_email"),
		})
	})
	return router, mock, cleanup
}

func doGet(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router, _, cleanup := protectedRouter(t)
	defer cleanup()

	resp := doGet(router, "")
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.Code)
	}
	if got := resp.Header().Get("WWW-Authenticate"); got != "Bearer" {
		t.Fatalf("expected WWW-Authenticate: Bearer, got %q", got)
	}
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	router, _, cleanup := protectedRouter(t)
	defer cleanup()

	for _, header := range []string{"token-without-scheme", "Basic abc", "Bearer"} {
		resp := doGet(router, header)
		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: expected 401, got %d", header, resp.Code)
		}
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	router, mock, cleanup := protectedRouter(t)
	defer cleanup()

	token, err := utils.GenerateToken("user@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT id FROM users WHERE email=$1`)).
		WithArgs("user@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(101))

	resp := doGet(router, "Bearer "+token)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.Code, resp.Body.String())
	}
	body := resp.Body.String()
	if body != `{"user_email":"user@example.com","user_id":101}` {
		t.Fatalf("unexpected context values: %s", body)
	}
}

func TestAuthMiddlewareValidTokenUnknownUser(t *testing.T) {
	router, mock, cleanup := protectedRouter(t)
	defer cleanup()

	token, err := utils.GenerateToken("ghost@example.com")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	mock.
		ExpectQuery(regexp.QuoteMeta(`SELECT id FROM users WHERE email=$1`)).
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	resp := doGet(router, "Bearer "+token)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for removed user, got %d", resp.Code)
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	router, _, cleanup := protectedRouter(t)
	defer cleanup()

	past := time.Now().Add(-time.Hour)
	claims := jwt.RegisteredClaims{
		Subject:   "user@example.com",
		Issuer:    "aztravel-api",
		IssuedAt:  jwt.NewNumericDate(past),
		ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		t.Fatalf("SignedString: %v", err)
	}

	resp := doGet(router, "Bearer "+expired)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for expired token, got %d", resp.Code)
	}
	if got := resp.Header().Get("WWW-Authenticate"); got != "Bearer" {
		t.Fatalf("expected WWW-Authenticate: Bearer, got %q", got)
	}
}
