package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/neuroadapt-backend/internal/http/handlers"
	httpMW "github.com/yungbote/neuroadapt-backend/internal/http/middleware"
	"github.com/yungbote/neuroadapt-backend/internal/observability"
	"github.com/yungbote/neuroadapt-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	AllowOrigins   []string
	TracingEnabled bool
	ServiceName    string

	AuthMiddleware *httpMW.AuthMiddleware

	RootHandler     *httpH.RootHandler
	HealthHandler   *httpH.HealthHandler
	AuthHandler     *httpH.AuthHandler
	ProgressHandler *httpH.ProgressHandler
	ProfileHandler  *httpH.ProfileHandler
	ContentHandler  *httpH.ContentHandler
	SpeechHandler   *httpH.SpeechHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.AllowOrigins))

	if cfg.RootHandler != nil {
		r.GET("/", cfg.RootHandler.Welcome)
	}
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Public
		if cfg.AuthHandler != nil {
			api.POST("/auth/register", cfg.AuthHandler.Register)
			api.POST("/auth/login", cfg.AuthHandler.Login)
		}
		if cfg.ProfileHandler != nil {
			api.GET("/neuroprofiles", cfg.ProfileHandler.ListNeuroProfiles)
		}
		if cfg.SpeechHandler != nil {
			api.POST("/text-to-speech", cfg.SpeechHandler.TextToSpeech)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		if cfg.ProgressHandler != nil {
			protected.POST("/progress", cfg.ProgressHandler.Create)
			protected.GET("/analytics/me", cfg.ProgressHandler.ListMine)
		}
		if cfg.ProfileHandler != nil {
			protected.POST("/users/profile", cfg.ProfileHandler.UpdateMine)
		}
		if cfg.ContentHandler != nil {
			protected.POST("/adapt-content", cfg.ContentHandler.Adapt)
		}
	}

	return r
}
