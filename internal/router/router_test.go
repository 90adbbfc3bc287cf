package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"orderapp/internal/attendee"
	"orderapp/internal/auth"
	"orderapp/internal/bot"
	"orderapp/internal/order"
	"orderapp/internal/session"

	"github.com/gin-gonic/gin"
)

func newRouterUnderTest() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := attendee.NewStore()
	roster := attendee.NewInMemoryRosterRepository(nil)
	tally := order.NewService()
	botService := bot.NewService(
		session.NewInMemoryRepository(),
		store,
		roster,
		tally,
		time.Hour,
	)

	return NewRouter(
		bot.NewHandler(botService, tally),
		bot.NewAdminHandler(botService),
		attendee.NewHandler(store, roster),
		auth.NewHandler(auth.NewService()),
	)
}

func TestHealthCheck(t *testing.T) {
	r := newRouterUnderTest()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
}

func TestAttendeeRoutes(t *testing.T) {
	r := newRouterUnderTest()

	req := httptest.NewRequest(http.MethodPost, "/users/u1/attendees",
		strings.NewReader(`{"name":"小明"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/users/u1/attendees", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "小明") {
		t.Errorf("expected 小明 in response, got %s", w.Body.String())
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r := newRouterUnderTest()

	req := httptest.NewRequest(http.MethodGet, "/admin/sessions", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestAdminSessionListing(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-12345")
	r := newRouterUnderTest()

	token, err := auth.GenerateToken("admin", auth.RoleAdmin)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/sessions", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}
