package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"salonbook-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func ownerListingRequest(t *testing.T, ownerID string, token string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/api/salons", utils.OptionalAuthMiddleware(), GetSalons)

	req := httptest.NewRequest(http.MethodGet, "/api/salons?ownerId="+ownerID, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetSalons_OwnerListingResolvesBearerToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	// A valid token for a different user than ownerId must reach the
	// handler's ownership check and get 403, not fail auth with 401.
	actor := uuid.New()
	token, err := utils.GenerateToken(actor.String())
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	w := ownerListingRequest(t, uuid.New().String(), token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for another owner's salons, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGetSalons_OwnerListingWithoutTokenIsUnauthorized(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	w := ownerListingRequest(t, uuid.New().String(), "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", w.Code)
	}
}
