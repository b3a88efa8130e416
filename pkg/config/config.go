package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "studyspace"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App     AppConfig
	Gateway GatewayConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Uploads UploadsConfig
	Cache   CacheConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Gateway.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"STUDYSPACE_APP_ENV" required:"true"`
	Port         string `envconfig:"STUDYSPACE_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"STUDYSPACE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"STUDYSPACE_LOG_WARN_STACK" default:"false"`

	// CORSOrigins lists the console origins allowed to call the API.
	CORSOrigins []string `envconfig:"STUDYSPACE_CORS_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// GatewayConfig points at the upstream membership data gateway, the system
// of record for members, seats, shifts and branches.
type GatewayConfig struct {
	BaseURL string        `envconfig:"STUDYSPACE_GATEWAY_BASE_URL" required:"true"`
	Token   string        `envconfig:"STUDYSPACE_GATEWAY_TOKEN"`
	Timeout time.Duration `envconfig:"STUDYSPACE_GATEWAY_TIMEOUT" default:"15s"`
}

func (g GatewayConfig) validate() error {
	u, err := url.Parse(g.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid gateway base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("gateway base url must be http(s), got %q", g.BaseURL)
	}
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"STUDYSPACE_REDIS_URL"`
	Address      string        `envconfig:"STUDYSPACE_REDIS_ADDR"`
	Password     string        `envconfig:"STUDYSPACE_REDIS_PASSWORD"`
	DB           int           `envconfig:"STUDYSPACE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"STUDYSPACE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"STUDYSPACE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"STUDYSPACE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"STUDYSPACE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"STUDYSPACE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// Enabled reports whether a redis endpoint is configured at all. The service
// degrades to direct gateway reads when it is not.
func (r RedisConfig) Enabled() bool {
	return r.URL != "" || r.Address != ""
}

type JWTConfig struct {
	Secret            string `envconfig:"STUDYSPACE_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"STUDYSPACE_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"STUDYSPACE_JWT_EXPIRATION_MINUTES" default:"60"`
}

type UploadsConfig struct {
	// MaxBytes caps profile image uploads before they reach the gateway.
	MaxBytes int64 `envconfig:"STUDYSPACE_UPLOAD_MAX_BYTES" default:"204800"`
}

type CacheConfig struct {
	// ReferenceTTL bounds how stale cached branch/shift rosters may get.
	ReferenceTTL time.Duration `envconfig:"STUDYSPACE_CACHE_REFERENCE_TTL" default:"60s"`
}
