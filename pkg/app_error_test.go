package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		e := NewDomainErrorSimple("CASE_NOT_FOUND", "Case not found", http.StatusNotFound)
		if e.Error() != "CASE_NOT_FOUND: Case not found" {
			t.Fatalf("unexpected message: %s", e.Error())
		}
		body := e.ToHTTPError()
		if body.Code != "CASE_NOT_FOUND" || body.Status != http.StatusNotFound {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("wraps cause", func(t *testing.T) {
		cause := errors.New("db")
		e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, 0)
		if e.HTTPStatus != http.StatusInternalServerError {
			t.Fatalf("expected default 500, got %d", e.HTTPStatus)
		}
		if !errors.Is(e, cause) {
			t.Fatalf("expected cause to be unwrapped")
		}
	})
}
