package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"pocketledger/internal/config"
	"pocketledger/internal/validator"
)

// --- test helpers ---

func init() {
	gin.SetMode(gin.TestMode)
	validator.Register()
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

func assertErrorCode(t *testing.T, result map[string]interface{}, code string) {
	t.Helper()
	errObj, ok := result["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object in response, got: %v", result)
	}
	if errObj["code"] != code {
		t.Errorf("expected error code %q, got %q", code, errObj["code"])
	}
}

// configureAppPassword hashes the password into the loaded config for the
// duration of the test.
func configureAppPassword(t *testing.T, password string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	t.Setenv("APP_PASSWORD_HASH", string(hash))
	if _, err := config.Load(); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
}

func setupAuthRouter(handler *AuthHandler) *gin.Engine {
	r := gin.New()
	r.POST("/auth/login", handler.Login)
	return r
}

func TestLogin(t *testing.T) {
	t.Run("valid_password", func(t *testing.T) {
		configureAppPassword(t, "hunter2")
		r := setupAuthRouter(NewAuthHandler())

		rec := doRequest(r, "POST", "/auth/login", `{"password":"hunter2"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if token, _ := result["token"].(string); token == "" {
			t.Error("expected a session token in the response")
		}
	})

	t.Run("wrong_password", func(t *testing.T) {
		configureAppPassword(t, "hunter2")
		r := setupAuthRouter(NewAuthHandler())

		rec := doRequest(r, "POST", "/auth/login", `{"password":"nope"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
	})

	t.Run("missing_password", func(t *testing.T) {
		configureAppPassword(t, "hunter2")
		r := setupAuthRouter(NewAuthHandler())

		rec := doRequest(r, "POST", "/auth/login", `{}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("no_password_configured", func(t *testing.T) {
		t.Setenv("APP_PASSWORD_HASH", "")
		if _, err := config.Load(); err != nil {
			t.Fatalf("failed to reload config: %v", err)
		}
		r := setupAuthRouter(NewAuthHandler())

		rec := doRequest(r, "POST", "/auth/login", `{"password":"anything"}`)

		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_CREDENTIALS")
	})
}
