package services

import (
	"context"
	"time"

	"github.com/yungbote/neuroadapt-backend/internal/observability"
	"github.com/yungbote/neuroadapt-backend/internal/platform/apierr"
	"github.com/yungbote/neuroadapt-backend/internal/platform/huggingface"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

// SpeechContentType is the media type of synthesized audio as served to clients.
const SpeechContentType = "audio/flac"

type SpeechService interface {
	// Synthesize returns the provider's audio bytes unmodified.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type speechService struct {
	log       *logger.Logger
	inference huggingface.Client
	metrics   *observability.Metrics
}

func NewSpeechService(log *logger.Logger, inference huggingface.Client, metrics *observability.Metrics) SpeechService {
	return &speechService{
		log:       log.With("service", "SpeechService"),
		inference: inference,
		metrics:   metrics,
	}
}

func (s *speechService) Synthesize(ctx context.Context, text string) ([]byte, error) {
	start := time.Now()
	audio, err := s.inference.SynthesizeSpeech(context.WithoutCancel(ctx), text)
	s.metrics.ObserveInference("text_to_speech", err, time.Since(start))
	if err != nil {
		s.log.Error("Speech synthesis failed", "error", err)
		return nil, apierr.Internal(err)
	}
	return audio, nil
}
