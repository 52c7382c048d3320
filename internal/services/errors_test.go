package services_test

import (
	"errors"
	"strings"
	"testing"

	"slidecast/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrExternalTool, "render", "encode", "ffmpeg exited", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"render", "encode", "ffmpeg exited"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "plan", "", "", nil)
	if !errors.Is(err, services.ErrValidation) {
		t.Fatalf("expected nil marker to default to validation, got %v", err)
	}
	if !strings.Contains(err.Error(), "plan") {
		t.Fatalf("expected component in message, got %q", err.Error())
	}
}

func TestWrapEmptyDetail(t *testing.T) {
	err := services.Wrap(services.ErrConfiguration, "", "", "", nil)
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected placeholder detail, got %q", err.Error())
	}
}
