package app

import (
	"fmt"

	"github.com/yungbote/neuroadapt-backend/internal/platform/huggingface"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
	"github.com/yungbote/neuroadapt-backend/internal/platform/supabase"
)

type Clients struct {
	Inference huggingface.Client
	Auth      supabase.AuthClient
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	inference, err := huggingface.New(log, huggingface.Options{
		BaseURL:       cfg.HuggingFaceBaseURL,
		APIKey:        cfg.HuggingFaceAPIKey,
		SimplifyModel: cfg.HuggingFaceSimplifyModel,
		TTSModel:      cfg.HuggingFaceTTSModel,
		Timeout:       cfg.HuggingFaceTimeout(),
	})
	if err != nil {
		return Clients{}, fmt.Errorf("init inference client: %w", err)
	}

	auth, err := supabase.NewAuthClient(log, supabase.Options{
		URL:     cfg.SupabaseURL,
		Key:     cfg.SupabaseKey,
		Timeout: cfg.SupabaseTimeout(),
	})
	if err != nil {
		return Clients{}, fmt.Errorf("init auth client: %w", err)
	}

	return Clients{Inference: inference, Auth: auth}, nil
}
