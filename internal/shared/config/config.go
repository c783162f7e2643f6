package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	Port               string
	Env                string
	CORSAllowOrigin    []string
	DatabaseURL        string
	ObjectStoreType    string
	LocalStoreDir      string
	AWSRegion          string
	S3Bucket           string
	S3Prefix           string
	SSEKMSKeyID        string
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string
	UIRedirectURL      string

	LLM   LLMConfig
	Latex LatexConfig

	JobFetchTimeout   time.Duration
	LLMRateLimitRPS   float64
	LLMRateLimitBurst int
}

// LLMConfig selects the completion provider and the model used per feature.
type LLMConfig struct {
	Provider    string
	GroqAPIKey  string
	GroqBaseURL string
	Timeout     time.Duration
	ResumeModel string
	LatexModel  string
	FormatModel string
	AdviceModel string
}

// LatexConfig controls the PDF compiler subprocess and temp-dir hygiene.
type LatexConfig struct {
	Engine        string
	TempDir       string
	Passes        int
	Timeout       time.Duration
	SweepInterval time.Duration
	SweepMaxAge   time.Duration
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	// Best-effort load of local env files for dev convenience.
	for _, path := range []string{".env", "cmd/.env"} {
		_ = godotenv.Load(path)
	}

	env := normalizeEnv(getEnv("ENV", "dev"))
	dbURL := os.Getenv("DATABASE_URL")

	if env == "production" && dbURL == "" {
		log.Printf("DATABASE_URL is required in production")
	}

	return Config{
		Port:               getEnv("PORT", "8080"),
		Env:                env,
		CORSAllowOrigin:    splitAndTrim(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000")),
		DatabaseURL:        dbURL,
		ObjectStoreType:    normalizeStoreType(getEnv("OBJECT_STORE", "local")),
		LocalStoreDir:      getEnv("LOCAL_STORE_DIR", "./data"),
		AWSRegion:          getEnv("AWS_REGION", ""),
		S3Bucket:           getEnv("S3_BUCKET", ""),
		S3Prefix:           getEnv("S3_PREFIX", ""),
		SSEKMSKeyID:        getEnv("SSE_KMS_KEY_ID", ""),
		GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
		GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
		GoogleRedirectURL:  getEnv("GOOGLE_REDIRECT_URL", ""),
		UIRedirectURL:      getEnv("UI_REDIRECT_URL", ""),
		LLM: LLMConfig{
			Provider:    normalizeProvider(getEnv("LLM_PROVIDER", "groq")),
			GroqAPIKey:  getEnv("GROQ_API_KEY", ""),
			GroqBaseURL: getEnv("GROQ_BASE_URL", "https://api.groq.com/openai/v1/"),
			Timeout:     time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 60)) * time.Second,
			ResumeModel: getEnv("RESUME_MODEL", "llama-3.3-70b-versatile"),
			LatexModel:  getEnv("LATEX_MODEL", "llama-3.3-70b-versatile"),
			FormatModel: getEnv("FORMAT_MODEL", "llama-3.1-8b-instant"),
			AdviceModel: getEnv("ADVICE_MODEL", "llama-3.3-70b-versatile"),
		},
		Latex: LatexConfig{
			Engine:        normalizeEngine(getEnv("LATEX_ENGINE", "pdflatex")),
			TempDir:       getEnv("LATEX_TEMP_DIR", os.TempDir()),
			Passes:        getEnvInt("LATEX_PASSES", 2),
			Timeout:       getEnvDuration("LATEX_TIMEOUT", 60*time.Second),
			SweepInterval: getEnvDuration("LATEX_SWEEP_INTERVAL", 10*time.Minute),
			SweepMaxAge:   getEnvDuration("LATEX_SWEEP_MAX_AGE", 30*time.Minute),
		},
		JobFetchTimeout:   getEnvDuration("JOB_FETCH_TIMEOUT", 15*time.Second),
		LLMRateLimitRPS:   getEnvFloat("RATE_LIMIT_LLM_RPS", 0.5),
		LLMRateLimitBurst: getEnvInt("RATE_LIMIT_LLM_BURST", 5),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Printf("invalid %s=%q, using %d", key, raw, def)
		return def
	}
	return v
}

func getEnvFloat(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		log.Printf("invalid %s=%q, using %v", key, raw, def)
		return def
	}
	return v
}

// getEnvDuration accepts Go durations ("90s") or bare seconds ("90").
func getEnvDuration(key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	log.Printf("invalid %s=%q, using %s", key, raw, def)
	return def
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	var out []string
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return "production"
	case "staging":
		return "staging"
	case "local":
		return "local"
	case "development", "dev":
		return "dev"
	default:
		return "dev"
	}
}

func normalizeStoreType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "s3":
		return "s3"
	default:
		return "local"
	}
}

func normalizeProvider(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "none", "off", "disabled":
		return "none"
	default:
		return "groq"
	}
}

func normalizeEngine(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "tectonic":
		return "tectonic"
	default:
		return "pdflatex"
	}
}
