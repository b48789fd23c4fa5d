package app

import (
	apphttp "github.com/yungbote/neuroadapt-backend/internal/http"
	httpH "github.com/yungbote/neuroadapt-backend/internal/http/handlers"
	httpMW "github.com/yungbote/neuroadapt-backend/internal/http/middleware"
	"github.com/yungbote/neuroadapt-backend/internal/observability"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

const serviceName = "neuroadapt"

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Root     *httpH.RootHandler
	Health   *httpH.HealthHandler
	Auth     *httpH.AuthHandler
	Progress *httpH.ProgressHandler
	Profile  *httpH.ProfileHandler
	Content  *httpH.ContentHandler
	Speech   *httpH.SpeechHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Root:     httpH.NewRootHandler(),
		Health:   httpH.NewHealthHandler(),
		Auth:     httpH.NewAuthHandler(services.Auth),
		Progress: httpH.NewProgressHandler(services.Progress),
		Profile:  httpH.NewProfileHandler(services.Profile),
		Content:  httpH.NewContentHandler(services.Adaptation),
		Speech:   httpH.NewSpeechHandler(services.Speech),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireServer(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers, middleware Middleware) *apphttp.Server {
	return apphttp.NewServer(log, cfg.Addr(), apphttp.RouterConfig{
		Log:            log,
		Metrics:        metrics,
		AllowOrigins:   cfg.AllowOrigins(),
		TracingEnabled: cfg.OtelEnabled,
		ServiceName:    serviceName,

		AuthMiddleware: middleware.Auth,

		RootHandler:     handlers.Root,
		HealthHandler:   handlers.Health,
		AuthHandler:     handlers.Auth,
		ProgressHandler: handlers.Progress,
		ProfileHandler:  handlers.Profile,
		ContentHandler:  handlers.Content,
		SpeechHandler:   handlers.Speech,
	})
}
