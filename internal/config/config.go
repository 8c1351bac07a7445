package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	Providers ProviderConfig
	Media     MediaConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Auth      AuthConfig
}

// ProviderConfig carries the upstream API credentials. An empty key means
// the matching provider is unavailable and dependent calls degrade to
// neutral results instead of failing.
type ProviderConfig struct {
	MockMode         bool
	GeminiAPIKey     string
	GeminiFlashModel string
	GeminiProModel   string
	SerperAPIKey     string
	FactCheckAPIKey  string
	HFToken          string
}

type MediaConfig struct {
	// MaxInlineBytes caps media payloads sent inline to the vision provider.
	MaxInlineBytes int

	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3UseSSL    bool
}

type DatabaseConfig struct {
	// DSN selects the postgres report backend; empty falls back to the
	// file-backed store at FilePath.
	DSN      string
	FilePath string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  int // minutes
}

const defaultMediaCeiling = 11 << 20 // ~11 MB, provider inline-payload limit

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8080", "server port")
	flag.Parse()

	if envPort := os.Getenv("PORT"); envPort != "" {
		if strings.HasPrefix(envPort, ":") {
			*port = envPort
		} else {
			*port = ":" + envPort
		}
	}

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:      *port,
		Env:       env,
		Providers: loadProviderConfig(),
		Media:     loadMediaConfig(env),
		Database: DatabaseConfig{
			DSN:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
			FilePath: firstNonEmpty(strings.TrimSpace(os.Getenv("REPORT_STORE_PATH")), "data/reports.json"),
		},
		Redis: RedisConfig{
			Addr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       envInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			JWTSecret: strings.TrimSpace(os.Getenv("JWT_SECRET")),
			TokenTTL:  envInt("TOKEN_TTL_MINUTES", 60),
		},
	}, nil
}

func loadProviderConfig() ProviderConfig {
	return ProviderConfig{
		MockMode:         envBool("AI_MOCK_MODE", false),
		GeminiAPIKey:     strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiFlashModel: firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_FLASH_MODEL")), "gemini-2.5-flash"),
		GeminiProModel:   firstNonEmpty(strings.TrimSpace(os.Getenv("GEMINI_PRO_MODEL")), "gemini-2.5-pro"),
		SerperAPIKey:     strings.TrimSpace(os.Getenv("SERPER_API_KEY")),
		FactCheckAPIKey:  strings.TrimSpace(os.Getenv("GOOGLE_FACT_CHECK_API_KEY")),
		HFToken:          strings.TrimSpace(os.Getenv("HF_API_TOKEN")),
	}
}

func loadMediaConfig(env string) MediaConfig {
	endpoint := strings.TrimSpace(os.Getenv("MEDIA_S3_ENDPOINT"))
	if endpoint == "" && strings.EqualFold(env, "local") {
		endpoint = strings.TrimSpace(os.Getenv("MEDIA_MINIO_ENDPOINT"))
	}
	return MediaConfig{
		MaxInlineBytes: envInt("MEDIA_MAX_INLINE_BYTES", defaultMediaCeiling),
		S3Endpoint:     endpoint,
		S3Region:       firstNonEmpty(strings.TrimSpace(os.Getenv("MEDIA_S3_REGION")), "us-east-1"),
		S3AccessKey:    firstNonEmpty(strings.TrimSpace(os.Getenv("MEDIA_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		S3SecretKey:    firstNonEmpty(strings.TrimSpace(os.Getenv("MEDIA_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		S3Bucket:       firstNonEmpty(strings.TrimSpace(os.Getenv("MEDIA_S3_BUCKET")), "truthguard-media"),
		S3UseSSL:       envBool("MEDIA_S3_USE_SSL", !strings.EqualFold(env, "local")),
	}
}

// CanUseS3 reports whether the media archive has a complete S3 config.
func (m MediaConfig) CanUseS3() bool {
	return m.S3Endpoint != "" && m.S3AccessKey != "" && m.S3SecretKey != "" && m.S3Bucket != ""
}

func envBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return v
}

func envInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
