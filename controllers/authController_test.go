package controllers

import (
	"net/http"
	"os"
	"testing"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mainagideon/storefront-api/models"
)

func registerBody(email string) map[string]any {
	return map[string]any{
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     email,
		"password":  "password123",
	}
}

func TestRegisterAndLoginRoundTrip(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/register", "", registerBody("jane@example.com"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)
	userData, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response, got %v", body)
	}
	if level := userData["level"].(float64); int(level) != models.LevelCustomer {
		t.Errorf("new account level = %v, want customer", level)
	}
	if _, leaked := userData["password"]; leaked {
		t.Error("password hash leaked in register response")
	}

	rec = doJSON(t, router, http.MethodPost, "/api/login", "", map[string]any{
		"email":    "jane@example.com",
		"password": "password123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	tokenString, ok := decodeBody(t, rec)["token"].(string)
	if !ok || tokenString == "" {
		t.Fatal("expected a token in login response")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("login token failed verification: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if level := claims["level"].(float64); int(level) != models.LevelCustomer {
		t.Errorf("token level claim = %v, want customer", level)
	}
	if claims["email"] != "jane@example.com" {
		t.Errorf("token email claim = %v", claims["email"])
	}
}

func TestRegisterValidation(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing email", map[string]any{"firstName": "A", "lastName": "B", "password": "password123"}},
		{"missing password", map[string]any{"firstName": "A", "lastName": "B", "email": "a@b.com"}},
		{"short password", map[string]any{"firstName": "A", "lastName": "B", "email": "a@b.com", "password": "short"}},
		{"bad email", map[string]any{"firstName": "A", "lastName": "B", "email": "nope", "password": "password123"}},
	}
	for _, tc := range tests {
		rec := doJSON(t, router, http.MethodPost, "/api/register", "", tc.body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, rec.Code)
		}
	}
}

func TestRegisterDuplicateEmailRejected(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	if rec := doJSON(t, router, http.MethodPost, "/api/register", "", registerBody("jane@example.com")); rec.Code != http.StatusCreated {
		t.Fatalf("first registration failed: %d", rec.Code)
	}
	rec := doJSON(t, router, http.MethodPost, "/api/register", "", registerBody("jane@example.com"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate email, got %d", rec.Code)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	createTestUser(t, "jane@example.com", models.LevelCustomer)

	rec := doJSON(t, router, http.MethodPost, "/api/login", "", map[string]any{
		"email":    "jane@example.com",
		"password": "wrong-password",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong password, got %d", rec.Code)
	}

	rec = doJSON(t, router, http.MethodPost, "/api/login", "", map[string]any{
		"email":    "nobody@example.com",
		"password": "password123",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for unknown email, got %d", rec.Code)
	}
}
