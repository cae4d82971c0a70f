package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Database    DatabaseConfig    `yaml:"database"`
	Auth        AuthConfig        `yaml:"auth"`
	Stream      StreamConfig      `yaml:"stream"`
	Email       EmailConfig       `yaml:"email"`
	Storage     StorageConfig     `yaml:"storage"`
	Recruitment RecruitmentConfig `yaml:"recruitment"`
	Log         LogConfig         `yaml:"log"`
	CORS        CORSConfig        `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	RateLimitPerMin int           `yaml:"rate_limit_per_min" env:"SERVER_RATE_LIMIT_PER_MIN" env-default:"300"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds session JWT and identity-provider settings.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer       string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"battleworld"`
	SessionTTL      time.Duration `yaml:"session_ttl"      env:"AUTH_SESSION_TTL"      env-default:"12h"`
	IdentityAPIURL  string        `yaml:"identity_api_url" env:"AUTH_IDENTITY_API_URL" env-default:"https://api.clerk.com/v1"`
	IdentityAPIKey  string        `yaml:"identity_api_key" env:"AUTH_IDENTITY_API_KEY"`
	IdentityTimeout time.Duration `yaml:"identity_timeout" env:"AUTH_IDENTITY_TIMEOUT" env-default:"10s"`
}

// StreamConfig holds chat/video SaaS credentials.
type StreamConfig struct {
	APIKey    string        `yaml:"api_key"    env:"STREAM_API_KEY"`
	APISecret string        `yaml:"api_secret" env:"STREAM_API_SECRET"`
	BaseURL   string        `yaml:"base_url"   env:"STREAM_BASE_URL"   env-default:"https://chat.stream-io-api.com"`
	Timeout   time.Duration `yaml:"timeout"    env:"STREAM_TIMEOUT"    env-default:"10s"`
}

// EmailConfig holds outbound email relay settings.
type EmailConfig struct {
	APIURL      string        `yaml:"api_url"      env:"EMAIL_API_URL"      env-default:"https://api.resend.com"`
	APIKey      string        `yaml:"api_key"      env:"EMAIL_API_KEY"`
	FromAddress string        `yaml:"from_address" env:"EMAIL_FROM_ADDRESS" env-default:"no-reply@battleworld.app"`
	Timeout     time.Duration `yaml:"timeout"      env:"EMAIL_TIMEOUT"      env-default:"10s"`
}

// StorageConfig holds the object-storage boundary settings.
type StorageConfig struct {
	APIURL       string        `yaml:"api_url"        env:"STORAGE_API_URL"`
	APIKey       string        `yaml:"api_key"        env:"STORAGE_API_KEY"`
	UploadURLTTL time.Duration `yaml:"upload_url_ttl" env:"STORAGE_UPLOAD_URL_TTL" env-default:"15m"`
	Timeout      time.Duration `yaml:"timeout"        env:"STORAGE_TIMEOUT"        env-default:"30s"`
}

// RecruitmentConfig holds domain policy knobs.
type RecruitmentConfig struct {
	// AllowDuplicateApplications preserves the historical behavior where a
	// candidate may apply twice to the same job (e.g. re-application after
	// rejection). When false a second application returns an
	// already-exists error.
	AllowDuplicateApplications bool          `yaml:"allow_duplicate_applications" env:"RECRUIT_ALLOW_DUPLICATE_APPLICATIONS" env-default:"true"`
	ReminderWindow             time.Duration `yaml:"reminder_window"              env:"RECRUIT_REMINDER_WINDOW"              env-default:"30m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}
