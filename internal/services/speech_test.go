package services

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/yungbote/neuroadapt-backend/internal/platform/apierr"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

func TestSynthesizeReturnsProviderBytes(t *testing.T) {
	audio := []byte{'f', 'L', 'a', 'C', 0x00, 0x01}
	svc := NewSpeechService(logger.NewNop(), &fakeInference{audio: audio}, nil)
	got, err := svc.Synthesize(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if !bytes.Equal(got, audio) {
		t.Fatalf("bytes altered: %v", got)
	}
}

func TestSynthesizeFailureIsInternal(t *testing.T) {
	svc := NewSpeechService(logger.NewNop(), &fakeInference{audioErr: errors.New("dial tcp: connection refused")}, nil)
	_, err := svc.Synthesize(context.Background(), "hello")
	if ae := apierr.From(err); ae.Status != http.StatusInternalServerError {
		t.Fatalf("want 500, got %v", err)
	}
}
