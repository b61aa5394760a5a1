package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func authProbe(t *testing.T, middleware gin.HandlerFunc, header string) (*httptest.ResponseRecorder, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var captured string
	r := gin.New()
	r.GET("/probe", middleware, func(c *gin.Context) {
		if id, ok := ActorID(c); ok {
			captured = id.String()
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, captured
}

func TestOptionalAuthMiddleware_ResolvesValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	userID := uuid.New()
	token, err := GenerateToken(userID.String())
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	w, captured := authProbe(t, OptionalAuthMiddleware(), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if captured != userID.String() {
		t.Fatalf("expected actor %s, got %q", userID, captured)
	}
}

func TestOptionalAuthMiddleware_AllowsAnonymous(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w, captured := authProbe(t, OptionalAuthMiddleware(), "")
	if w.Code != http.StatusOK {
		t.Fatalf("anonymous request should pass through, got %d", w.Code)
	}
	if captured != "" {
		t.Fatalf("anonymous request must not resolve an actor, got %q", captured)
	}
}

func TestOptionalAuthMiddleware_IgnoresInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w, captured := authProbe(t, OptionalAuthMiddleware(), "Bearer not-a-token")
	if w.Code != http.StatusOK {
		t.Fatalf("invalid token on an optional route should fall back to anonymous, got %d", w.Code)
	}
	if captured != "" {
		t.Fatalf("invalid token must not resolve an actor, got %q", captured)
	}
}

func TestAuthMiddleware_RejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w, _ := authProbe(t, AuthMiddleware(), "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
