package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/advice"
	googleauth "resume-builder/internal/auth"
	"resume-builder/internal/formatting"
	"resume-builder/internal/jobs"
	"resume-builder/internal/latex"
	"resume-builder/internal/llm"
	"resume-builder/internal/llm/groq"
	"resume-builder/internal/parse"
	"resume-builder/internal/pdf"
	"resume-builder/internal/resumes"
	"resume-builder/internal/services/health"
	"resume-builder/internal/shared/config"
	"resume-builder/internal/shared/server"
	"resume-builder/internal/shared/storage/db"
	"resume-builder/internal/shared/storage/object"
	localstore "resume-builder/internal/shared/storage/object/local"
	s3store "resume-builder/internal/shared/storage/object/s3"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/templates"
	"resume-builder/internal/uploads"
)

// App holds shared dependencies and the router built from them.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	DB       *sql.DB
	Store    object.ObjectStore
	LLM      llm.Client
	Compiler *latex.Compiler

	JobsService       *jobs.Service
	ResumesService    *resumes.Service
	AdviceService     *advice.Service
	FormattingService *formatting.Service
	TemplatesService  *templates.Service
	UploadsService    *uploads.Service
}

// Build prepares dependencies and wires routes.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client, err := buildLLM(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		LLM:    client,
		Compiler: latex.NewCompiler(latex.Options{
			Engine:  cfg.Latex.Engine,
			TempDir: cfg.Latex.TempDir,
			Passes:  cfg.Latex.Passes,
			Timeout: cfg.Latex.Timeout,
		}),
	}

	app.Router = server.NewRouter(buildServices(app))
	return app, nil
}

// Migrate applies the embedded migrations when a database is configured.
func (a *App) Migrate(ctx context.Context) error {
	return db.RunMigrations(ctx, a.DB)
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Info("bootstrap.memory_repos", map[string]any{"reason": "DATABASE_URL empty"})
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	var (
		sqlDB *sql.DB
		err   error
	)
	if db.IsLambdaRuntime() {
		opts := db.OptionsFromEnv(db.DefaultLambdaOptions())
		sqlDB, err = db.GetSingleton(ctx, cfg.DatabaseURL, opts)
	} else {
		opts := db.OptionsFromEnv(db.DefaultServerOptions())
		sqlDB, err = db.Connect(ctx, cfg.DatabaseURL, opts)
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repos", map[string]any{"reason": "database connect failed", "error": err})
			return nil, nil
		}
		return nil, err
	}

	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

// buildLLM returns the Groq client, or the placeholder when the provider is
// disabled. A missing key is fatal outside dev.
func buildLLM(cfg config.Config) (llm.Client, error) {
	if cfg.LLM.Provider == "none" {
		telemetry.Warn("bootstrap.llm_disabled", map[string]any{"provider": cfg.LLM.Provider})
		return llm.PlaceholderClient{}, nil
	}
	if strings.TrimSpace(cfg.LLM.GroqAPIKey) == "" {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.llm_disabled", map[string]any{"reason": "GROQ_API_KEY empty"})
			return llm.PlaceholderClient{}, nil
		}
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}
	return groq.NewClient(cfg.LLM.GroqAPIKey, cfg.LLM.GroqBaseURL, cfg.LLM.Timeout)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

type repos struct {
	jobs      jobs.Repo
	resumes   resumes.Repo
	archive   advice.ArchiveRepo
	formatted formatting.Repo
	settings  templates.SettingsRepo
	uploads   uploads.Repo
}

func buildRepos(sqlDB *sql.DB) repos {
	if sqlDB != nil {
		return repos{
			jobs:      &jobs.PGRepo{DB: sqlDB},
			resumes:   &resumes.PGRepo{DB: sqlDB},
			archive:   &advice.PGArchiveRepo{DB: sqlDB},
			formatted: &formatting.PGRepo{DB: sqlDB},
			settings:  &templates.PGSettingsRepo{DB: sqlDB},
			uploads:   &uploads.PGRepo{DB: sqlDB},
		}
	}
	return repos{
		jobs:      jobs.NewMemoryRepo(),
		resumes:   resumes.NewMemoryRepo(),
		archive:   advice.NewMemoryArchiveRepo(),
		formatted: formatting.NewMemoryRepo(),
		settings:  templates.NewMemorySettingsRepo(),
		uploads:   uploads.NewMemoryRepo(),
	}
}

func buildServices(app *App) server.RouterDeps {
	cfg := app.Config
	r := buildRepos(app.DB)

	app.JobsService = jobs.NewService(r.jobs, jobs.NewExtractor(cfg.JobFetchTimeout))
	app.ResumesService = resumes.NewService(r.resumes, app.JobsService, app.LLM, app.Compiler, cfg.LLM.ResumeModel)
	app.AdviceService = advice.NewService(r.resumes, r.archive, app.LLM, cfg.LLM.AdviceModel)
	app.TemplatesService = templates.NewService(templates.MustLoadCatalog(), r.settings)
	app.FormattingService = formatting.NewService(r.formatted, app.TemplatesService, r.resumes, app.LLM, app.Compiler, formatting.Models{
		Format: cfg.LLM.FormatModel,
		Latex:  cfg.LLM.LatexModel,
	})
	app.UploadsService = uploads.NewService(r.uploads, app.Store)

	var pinger health.Pinger
	if app.DB != nil {
		pinger = app.DB
	}
	provider := cfg.LLM.Provider
	if _, ok := app.LLM.(llm.PlaceholderClient); ok {
		provider = "none"
	}

	return server.RouterDeps{
		Config:            cfg,
		Health:            health.NewService(pinger, provider, app.Compiler.Engine()),
		JobsHandler:       jobs.NewHandler(app.JobsService),
		ResumesHandler:    resumes.NewHandler(app.ResumesService),
		AdviceHandler:     advice.NewHandler(app.AdviceService),
		FormattingHandler: formatting.NewHandler(app.FormattingService),
		TemplatesHandler:  templates.NewHandler(app.TemplatesService),
		PDFHandler:        pdf.NewHandler(app.Compiler),
		UploadsHandler:    uploads.NewHandler(app.UploadsService),
		ParseHandler:      parse.NewHandler(),
		GoogleAuth: googleauth.NewGoogleService(
			cfg.GoogleClientID,
			cfg.GoogleClientSecret,
			cfg.GoogleRedirectURL,
			cfg.UIRedirectURL,
		),
	}
}
