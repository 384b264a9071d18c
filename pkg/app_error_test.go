package pkg

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestAppError(t *testing.T) {
	cause := errors.New("dynamodb timeout")
	e := NewDomainError("INTERNAL_ERROR", "An internal error occurred", cause, http.StatusInternalServerError)

	if !errors.Is(e, cause) {
		t.Fatalf("expected wrapped cause")
	}
	if !strings.Contains(e.Error(), "dynamodb timeout") {
		t.Fatalf("unexpected error string %q", e.Error())
	}

	b, _ := json.Marshal(e.ToHTTPError())
	if strings.Contains(string(b), "dynamodb") {
		t.Fatalf("cause leaked to client: %s", b)
	}
	if string(b) != `{"error":{"code":"INTERNAL_ERROR","message":"An internal error occurred"}}` {
		t.Fatalf("unexpected body %s", b)
	}
}

func TestNewValidationError(t *testing.T) {
	e := NewValidationError("INVALID_QUOTE_FORM", "Quote form is incomplete", map[string]any{"budget": map[string]string{"maxLeasePrice": "required"}}, http.StatusUnprocessableEntity)
	if e.HTTPStatus != http.StatusUnprocessableEntity || e.Error() != "INVALID_QUOTE_FORM: Quote form is incomplete" {
		t.Fatalf("unexpected error %+v", e)
	}
	if e.ToHTTPError().Error.Details["budget"] == nil {
		t.Fatalf("expected details")
	}
}
