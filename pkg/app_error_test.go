package pkg

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNewDomainErrorSimple(t *testing.T) {
	e := NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	if e.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", e.HTTPStatus)
	}
	body := e.ToHTTPError()
	if body.Code != "INVALID_REQUEST" || body.Message != "Invalid request" || body.Status != http.StatusBadRequest {
		t.Fatalf("unexpected body: %+v", body)
	}
	if e.Error() != "INVALID_REQUEST: Invalid request" {
		t.Fatalf("unexpected error string: %q", e.Error())
	}
}

func TestNewDomainError_DefaultsStatusAndUnwraps(t *testing.T) {
	cause := errors.New("redis down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, 0)
	if e.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", e.HTTPStatus)
	}
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
}

func TestAsAppError(t *testing.T) {
	known := NewDomainErrorSimple("MATERIAL_LIST_NOT_FOUND", "Material list not found", http.StatusNotFound)
	if got := AsAppError(fmt.Errorf("wrap: %w", known)); got != known {
		t.Fatalf("expected same app error, got %+v", got)
	}
	if got := AsAppError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500 fallback, got %d", got.HTTPStatus)
	}
}
