package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/eventportal/access-service/internal/core/domain"
)

func handle(t *testing.T, err error, accept string, log zerolog.Logger) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/events/e1", nil)
	if accept != "" {
		req.Header.Set(echo.HeaderAccept, accept)
	}
	rec := httptest.NewRecorder()
	NewHTTPErrorHandler(log, "/auth/signin")(err, e.NewContext(req, rec))
	return rec
}

func TestErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{domain.ErrNotAuthenticated, http.StatusUnauthorized},
		{domain.Deny(domain.DenyRoleInsufficient).Err(), http.StatusForbidden},
		{domain.Deny(domain.DenyNoEventRole).Err(), http.StatusForbidden},
		{fmt.Errorf("get event: %w", domain.ErrEventNotFound), http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrEventRoleNotFound, http.StatusNotFound},
		{domain.ErrEventRoleExists, http.StatusConflict},
		{domain.ErrEventArchived, http.StatusConflict},
		{domain.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{domain.ErrInvalidRole, http.StatusUnprocessableEntity},
		{echo.NewHTTPError(http.StatusBadRequest, "invalid payload"), http.StatusBadRequest},
	}
	for _, tc := range tests {
		rec := handle(t, tc.err, "", zerolog.Nop())
		if rec.Code != tc.code {
			t.Errorf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
	}
}

func TestErrorHandler_ForbiddenBodyIsFixed(t *testing.T) {
	rec := handle(t, domain.Deny(domain.DenyRoleInsufficient).Err(), "", zerolog.Nop())

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if body["error"] != "unauthorized" {
		t.Fatalf("expected fixed forbidden message, got %q", body["error"])
	}
	if strings.Contains(rec.Body.String(), "jury") || strings.Contains(rec.Body.String(), "insufficient") {
		t.Fatalf("forbidden body must not describe roles: %s", rec.Body.String())
	}
}

func TestErrorHandler_RedirectsPagesToSignIn(t *testing.T) {
	rec := handle(t, domain.ErrNotAuthenticated, "text/html,application/xhtml+xml", zerolog.Nop())
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/auth/signin" {
		t.Fatalf("unexpected redirect location %q", loc)
	}

	// Forbidden pages are not redirected.
	rec = handle(t, domain.Deny(domain.DenyNoEventRole).Err(), "text/html", zerolog.Nop())
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for forbidden page, got %d", rec.Code)
	}
}

func TestErrorHandler_StoreErrorsAreNotLeaked(t *testing.T) {
	var logs bytes.Buffer
	rec := handle(t, fmt.Errorf("authorize: %w", errors.New("connection refused to mongo-0:27017")), "", zerolog.New(&logs))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "mongo") {
		t.Fatalf("internal error leaked to client: %s", rec.Body.String())
	}
	if !strings.Contains(logs.String(), "connection refused") {
		t.Fatalf("expected real cause to be logged, got %q", logs.String())
	}
}
