package config

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort           = "8080"
	DefaultAppName        = "medication-tracker"
	DefaultInsightTimeout = 30 * time.Second

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config reúne todo lo que el proceso lee del entorno.
// Modelo y parámetros de muestreo del proveedor de insights NO son configurables.
type Config struct {
	Port    string
	AppName string

	LogLevel  string
	LogFormat string

	// Storage: DB_DSN (postgres) tiene prioridad sobre STORE_PATH (bbolt).
	// Si ninguno viene, in-memory.
	DBDSN     string
	StorePath string

	InsightsProvider string
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	GeminiAPIKey     string
	InsightTimeout   time.Duration

	JWTSecret          string
	CORSAllowedOrigins []string
}

// Load carga un .env opcional y luego lee el entorno.
// Un .env ausente no es error; uno ilegible sí.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	return FromEnv(), nil
}

// FromEnv lee la configuración sin tocar archivos.
func FromEnv() Config {
	cfg := Config{
		Port:             getenv("PORT", DefaultPort),
		AppName:          getenv("APP_NAME", DefaultAppName),
		LogLevel:         os.Getenv("LOG_LEVEL"),
		LogFormat:        os.Getenv("LOG_FORMAT"),
		DBDSN:            strings.TrimSpace(os.Getenv("DB_DSN")),
		StorePath:        strings.TrimSpace(os.Getenv("STORE_PATH")),
		InsightsProvider: strings.ToLower(getenv("INSIGHTS_PROVIDER", ProviderOpenAI)),
		OpenAIAPIKey:     strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIBaseURL:    strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")),
		GeminiAPIKey:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		InsightTimeout:   DefaultInsightTimeout,
		JWTSecret:        strings.TrimSpace(os.Getenv("JWT_SECRET")),
	}

	if v := strings.TrimSpace(os.Getenv("INSIGHTS_TIMEOUT")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.InsightTimeout = d
		}
	}

	if v := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); v != "" {
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
			}
		}
	}

	return cfg
}

func (c Config) Addr() string {
	return ":" + c.Port
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
