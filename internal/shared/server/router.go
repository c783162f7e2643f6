package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/advice"
	googleauth "resume-builder/internal/auth"
	"resume-builder/internal/formatting"
	"resume-builder/internal/jobs"
	"resume-builder/internal/parse"
	"resume-builder/internal/pdf"
	"resume-builder/internal/resumes"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/middleware"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/templates"
	"resume-builder/internal/uploads"
)

// llmGroup is the rate limit group for routes that call the LLM.
const llmGroup = "LLM"

// RouterDeps holds the handlers mounted by NewRouter. Nil handlers are skipped.
type RouterDeps struct {
	Config            config.Config
	Health            *health.Service
	JobsHandler       *jobs.Handler
	ResumesHandler    *resumes.Handler
	AdviceHandler     *advice.Handler
	FormattingHandler *formatting.Handler
	TemplatesHandler  *templates.Handler
	PDFHandler        *pdf.Handler
	UploadsHandler    *uploads.Handler
	ParseHandler      *parse.Handler
	GoogleAuth        *googleauth.GoogleService
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		middleware.Logging(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.Auth(deps.Config.Env),
	)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		respond.JSON(c, http.StatusOK, deps.Health.Status(c.Request.Context()))
	})
	api.GET("/metrics", metrics.Handler())
	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	registerMeRoutes(api)

	generate := api.Group("")
	generate.Use(middleware.RateLimit(middleware.RateLimitConfig{
		DefaultGroup: llmGroup,
		Rules: map[string]middleware.RateLimitRule{
			llmGroup: {Rate: deps.Config.LLMRateLimitRPS, Burst: deps.Config.LLMRateLimitBurst},
		},
	}))

	if deps.JobsHandler != nil {
		deps.JobsHandler.RegisterRoutes(api)
	}
	if deps.ResumesHandler != nil {
		deps.ResumesHandler.RegisterRoutes(api)
		deps.ResumesHandler.RegisterGenerateRoutes(generate)
	}
	if deps.AdviceHandler != nil {
		deps.AdviceHandler.RegisterRoutes(api)
		deps.AdviceHandler.RegisterGenerateRoutes(generate)
	}
	if deps.FormattingHandler != nil {
		deps.FormattingHandler.RegisterRoutes(api)
		deps.FormattingHandler.RegisterGenerateRoutes(generate)
	}
	if deps.TemplatesHandler != nil {
		deps.TemplatesHandler.RegisterRoutes(api)
	}
	if deps.PDFHandler != nil {
		deps.PDFHandler.RegisterRoutes(api)
	}
	if deps.UploadsHandler != nil {
		deps.UploadsHandler.RegisterRoutes(api)
	}
	if deps.ParseHandler != nil {
		deps.ParseHandler.RegisterRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
