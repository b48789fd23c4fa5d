package huggingface

import (
	"strings"
	"testing"
)

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{Model: "org/tts", StatusCode: 503, Body: strings.Repeat("x", 300)}
	msg := err.Error()
	if !strings.HasPrefix(msg, "huggingface org/tts: status 503: ") {
		t.Fatalf("unexpected prefix: %q", msg)
	}
	if !strings.HasSuffix(msg, strings.Repeat("x", 256)+"...") {
		t.Fatalf("body not truncated to 256 bytes: %q", msg)
	}
}
