package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

const DefaultEnvFile = "./configs/.env"

type Config struct {
	APIAddress string `env:"API_ADDRESS,default=:8080"`
	Debug      bool   `env:"APP_DEBUG,default=false"`
	LogLevel   string `env:"LOG_LEVEL,default=info"`
	LogFile    string `env:"LOG_FILE"`

	Postgres PostgresConfig
	Auth     AuthConfig
	Upstream UpstreamConfig
	Cache    CacheConfig

	AuthRateLimit   float64 `env:"AUTH_RATE_LIMIT,default=5"`
	AuthRateBurst   int     `env:"AUTH_RATE_BURST,default=10"`
	WarmupOnStart   bool    `env:"WARMUP_ON_START,default=false"`
	DefaultTimezone string  `env:"DEFAULT_TIMEZONE,default=Asia/Jakarta"`
}

type PostgresConfig struct {
	Address  string `env:"POSTGRES_DB_ADDRESS,default=localhost:5432"`
	Username string `env:"POSTGRES_USER,default=postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DB       string `env:"POSTGRES_DB,default=niyyah"`
	SSLMode  string `env:"POSTGRES_SSLMODE,default=disable"`
}

func (pg PostgresConfig) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s?sslmode=%s", pg.Username, pg.Password, pg.Address, pg.DB, pg.SSLMode)
}

type AuthConfig struct {
	JWTSecret          string        `env:"JWT_SECRET"`
	TokenTTL           time.Duration `env:"TOKEN_TTL,default=720h"`
	GoogleTokenInfoURL string        `env:"GOOGLE_TOKENINFO_URL,default=https://oauth2.googleapis.com"`
	GoogleClientID     string        `env:"GOOGLE_CLIENT_ID"`
}

// UpstreamConfig covers the four Islamic content providers.
type UpstreamConfig struct {
	QuranBaseURL  string        `env:"QURAN_API_BASE_URL,default=https://api.quran.com/api/v4"`
	SholatBaseURL string        `env:"SHOLAT_API_BASE_URL,default=https://api.myquran.com/v1"`
	DoaBaseURL    string        `env:"DOA_API_BASE_URL,default=https://dua-dhikr.vercel.app"`
	KiblatBaseURL string        `env:"KIBLAT_API_BASE_URL,default=https://kiblat-api.vercel.app"`
	Timeout       time.Duration `env:"ISLAMIC_API_TIMEOUT,default=30s"`
	RetryAttempts int           `env:"ISLAMIC_API_RETRY_ATTEMPTS,default=3"`
	RetryBackoff  time.Duration `env:"ISLAMIC_API_RETRY_BACKOFF,default=1s"`
}

type CacheConfig struct {
	Driver        string        `env:"CACHE_DRIVER,default=memory"`
	MemorySize    int           `env:"CACHE_MEMORY_SIZE,default=4096"`
	RedisAddr     string        `env:"REDIS_ADDR,default=localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB,default=0"`
	QuranTTL      time.Duration `env:"CACHE_DURATION_QURAN,default=720h"`
	SholatTTL     time.Duration `env:"CACHE_DURATION_SHOLAT,default=24h"`
	DoaTTL        time.Duration `env:"CACHE_DURATION_DOA,default=168h"`
	KiblatTTL     time.Duration `env:"CACHE_DURATION_KIBLAT,default=24h"`
	SearchTTL     time.Duration `env:"CACHE_DURATION_SEARCH,default=1h"`
}

// Load reads envFile if it exists and decodes the environment over the defaults.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, errors.New("loading envs error: " + err.Error())
		}
		if err != nil {
			slog.Warn("env file not found, using process environment", slog.String("file", envFile))
		}
	}
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, errors.New("decoding envs error: " + err.Error())
	}
	if cfg.Upstream.RetryAttempts < 1 {
		cfg.Upstream.RetryAttempts = 1
	}
	return &cfg, nil
}
