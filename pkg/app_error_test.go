package pkg

import (
	"errors"
	"net/http"
	"testing"
)

func TestNewDomainError(t *testing.T) {
	cause := errors.New("db down")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, 0)
	if e.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500 default, got %d", e.HTTPStatus)
	}
	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if e.Error() != "INTERNAL_ERROR: An internal error occurred: db down" {
		t.Fatalf("unexpected message %q", e.Error())
	}
}

func TestAppError_WithDetailsAndHTTPError(t *testing.T) {
	base := NewDomainErrorSimple("INSUFFICIENT_BALANCE", "Insufficient balance", http.StatusConflict)
	withDetails := base.WithDetails(map[string]string{"owner_id": "c1"})

	if base.Details != nil {
		t.Fatalf("base error must not be mutated")
	}
	body := withDetails.ToHTTPError()
	if body.Code != "INSUFFICIENT_BALANCE" || body.Message != "Insufficient balance" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if body.Details.(map[string]string)["owner_id"] != "c1" {
		t.Fatalf("details not propagated: %+v", body)
	}
}
