package services

import (
	"context"
	"errors"
	"time"

	"github.com/yungbote/neuroadapt-backend/internal/data/repos"
	types "github.com/yungbote/neuroadapt-backend/internal/domain"
	"github.com/yungbote/neuroadapt-backend/internal/observability"
	"github.com/yungbote/neuroadapt-backend/internal/platform/ctxutil"
	"github.com/yungbote/neuroadapt-backend/internal/platform/dbctx"
	"github.com/yungbote/neuroadapt-backend/internal/platform/huggingface"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type AdaptationResult struct {
	OriginalText string `json:"original_text"`
	AdaptedText  string `json:"adapted_text"`
}

type AdaptationService interface {
	// AdaptContent never fails: any lookup or inference failure returns the
	// text unchanged.
	AdaptContent(ctx context.Context, text string) AdaptationResult
}

// adapter transforms text for one neuroprofile. The returned reason labels a
// fallback when err is non-nil.
type adapter func(ctx context.Context, text string) (adapted string, reason string, err error)

type adaptationService struct {
	log              *logger.Logger
	userProfileRepo  repos.UserProfileRepo
	neuroProfileRepo repos.NeuroProfileRepo
	inference        huggingface.Client
	metrics          *observability.Metrics
	adapters         map[string]adapter
}

func NewAdaptationService(
	log *logger.Logger,
	userProfileRepo repos.UserProfileRepo,
	neuroProfileRepo repos.NeuroProfileRepo,
	inference huggingface.Client,
	metrics *observability.Metrics,
) AdaptationService {
	s := &adaptationService{
		log:              log.With("service", "AdaptationService"),
		userProfileRepo:  userProfileRepo,
		neuroProfileRepo: neuroProfileRepo,
		inference:        inference,
		metrics:          metrics,
	}
	s.adapters = map[string]adapter{
		types.NeuroProfileDyslexia: s.simplify,
	}
	return s
}

func (s *adaptationService) AdaptContent(ctx context.Context, text string) AdaptationResult {
	res := AdaptationResult{OriginalText: text, AdaptedText: text}
	ctx = context.WithoutCancel(ctx)
	dbc := dbctx.Context{Ctx: ctx}
	userID := ctxutil.UserID(ctx)

	up, err := s.userProfileRepo.GetByUserID(dbc, userID)
	if err != nil {
		s.fallback(observability.FallbackProfileLookup, "user_id", userID, "error", err)
		return res
	}
	if up == nil {
		s.log.Debug("No neuroprofile selected", "user_id", userID)
		return res
	}

	np, err := s.neuroProfileRepo.GetByID(dbc, up.NeuroProfileID)
	if err != nil {
		s.fallback(observability.FallbackNeuroProfileLookup, "user_id", userID, "neuroprofile_id", up.NeuroProfileID, "error", err)
		return res
	}
	if np == nil {
		s.log.Debug("Selected neuroprofile does not exist", "user_id", userID, "neuroprofile_id", up.NeuroProfileID)
		return res
	}

	adapt, ok := s.adapters[np.Name]
	if !ok {
		return res
	}
	adapted, reason, err := adapt(ctx, text)
	if err != nil {
		s.fallback(reason, "user_id", userID, "profile", np.Name, "error", err)
		return res
	}
	s.metrics.IncAdaptationApplied(np.Name)
	res.AdaptedText = adapted
	return res
}

func (s *adaptationService) simplify(ctx context.Context, text string) (string, string, error) {
	start := time.Now()
	raw, err := s.inference.Simplify(ctx, text)
	s.metrics.ObserveInference("simplify", err, time.Since(start))
	if err != nil {
		return "", observability.FallbackInference, err
	}
	parsed, err := huggingface.ParseSimplification(raw)
	if err != nil {
		reason := observability.FallbackMalformedResult
		if !errors.Is(err, huggingface.ErrMalformedResult) {
			reason = observability.FallbackInference
		}
		return "", reason, err
	}
	return parsed.GeneratedText, "", nil
}

func (s *adaptationService) fallback(reason string, keysAndValues ...interface{}) {
	s.metrics.IncAdaptationFallback(reason)
	s.log.Warn("Adaptation fell back to original text", append([]interface{}{"stage", reason}, keysAndValues...)...)
}
