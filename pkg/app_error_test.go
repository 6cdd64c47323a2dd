package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		body := e.ToHTTPError()
		if body.Code != "INVALID_REQUEST" || body.Message != "Invalid request" || body.Details != "" {
			t.Fatalf("unexpected body: %+v", body)
		}
		if e.Error() != "INVALID_REQUEST: Invalid request" {
			t.Fatalf("unexpected error string: %q", e.Error())
		}
	})

	t.Run("wrapped", func(t *testing.T) {
		cause := errors.New("db down")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)
		if !errors.Is(e, cause) {
			t.Fatalf("expected wrapped cause")
		}
		if got := e.ToHTTPError().Details; got != "db down" {
			t.Fatalf("expected details, got %q", got)
		}
	})
}
