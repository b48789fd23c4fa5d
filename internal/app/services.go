package app

import (
	"github.com/yungbote/neuroadapt-backend/internal/observability"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
	"github.com/yungbote/neuroadapt-backend/internal/services"
)

type Services struct {
	Auth       services.AuthService
	Progress   services.ProgressService
	Profile    services.ProfileService
	Adaptation services.AdaptationService
	Speech     services.SpeechService
}

func wireServices(log *logger.Logger, clients Clients, reposet Repos, metrics *observability.Metrics) Services {
	log.Info("Wiring services...")
	return Services{
		Auth:     services.NewAuthService(log, clients.Auth),
		Progress: services.NewProgressService(log, reposet.Progress),
		Profile:  services.NewProfileService(log, reposet.NeuroProfile, reposet.UserProfile),
		Adaptation: services.NewAdaptationService(
			log,
			reposet.UserProfile,
			reposet.NeuroProfile,
			clients.Inference,
			metrics,
		),
		Speech: services.NewSpeechService(log, clients.Inference, metrics),
	}
}
