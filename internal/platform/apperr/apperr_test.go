package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestConfigurationErrorKeepsCause(t *testing.T) {
	cause := errors.New("api key missing")
	err := fmt.Errorf("resolve: %w", Configuration("places.Suggest", cause))

	if !Is(err, KindConfiguration) {
		t.Fatalf("kind = %v, want configuration", GetKind(err))
	}
	if !errors.Is(err, cause) {
		t.Fatal("expected wrapped cause to be reachable via errors.Is")
	}

	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("expected *Error in chain")
	}
	if e.HTTPStatus() != http.StatusServiceUnavailable {
		t.Fatalf("status = %d", e.HTTPStatus())
	}
	if got := e.Error(); got != "places.Suggest: configuration error: api key missing" {
		t.Fatalf("message = %q", got)
	}
}

func TestGetKindUnknown(t *testing.T) {
	if GetKind(errors.New("plain")) != KindUnknown {
		t.Fatal("plain errors must be KindUnknown")
	}
	if Validation("bad").HTTPStatus() != http.StatusBadRequest {
		t.Fatal("validation must map to 400")
	}
}
