package providers

import (
	"fmt"
	"testing"
)

func TestStatusErrorString(t *testing.T) {
	err := &StatusError{Provider: "p", Endpoint: EndpointSquad, StatusCode: 503, Body: "down"}
	if got := err.Error(); got != "HTTP 503" {
		t.Fatalf("expected HTTP 503, got %q", got)
	}
}

func TestAsStatusErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("%s: %w", EndpointSearchTeams, &StatusError{StatusCode: 500})

	se, ok := AsStatusError(wrapped)
	if !ok || se == nil {
		t.Fatalf("expected to unwrap status error")
	}
	if se.StatusCode != 500 {
		t.Fatalf("expected status 500, got %d", se.StatusCode)
	}

	if _, ok := AsStatusError(fmt.Errorf("plain")); ok {
		t.Fatalf("expected plain error not to unwrap")
	}
}
