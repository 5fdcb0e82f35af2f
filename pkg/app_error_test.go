package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_ToHTTPError(t *testing.T) {
	t.Run("client error exposes details", func(t *testing.T) {
		appErr := NewDomainErrorSimple("INVALID_INPUT", "Invalid input", http.StatusBadRequest).
			WithDetails(errors.New("quantity must not be negative"))

		body := appErr.ToHTTPError()
		if body.Code != "INVALID_INPUT" || body.Message != "Invalid input" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if body.Details != "quantity must not be negative" {
			t.Fatalf("expected details, got %q", body.Details)
		}
	})

	t.Run("internal error hides cause", func(t *testing.T) {
		appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", errors.New("dial tcp: refused"), http.StatusInternalServerError)

		body := appErr.ToHTTPError()
		if body.Details != "" {
			t.Fatalf("expected no details, got %q", body.Details)
		}
	})

	t.Run("unwrap", func(t *testing.T) {
		cause := errors.New("db")
		appErr := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(appErr, cause) {
			t.Fatalf("expected wrapped cause")
		}
	})

	t.Run("with details does not mutate shared value", func(t *testing.T) {
		base := NewDomainErrorSimple("NOT_FOUND", "Not found", http.StatusNotFound)
		_ = base.WithDetails(errors.New("x"))
		if base.Err != nil {
			t.Fatalf("expected base error untouched")
		}
	})
}
