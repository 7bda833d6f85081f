package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Matching  MatchingConfig  `yaml:"matching"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig holds per-caller request limits for the match endpoint.
// A zero MatchesPerMinute disables limiting.
type RateLimitConfig struct {
	MatchesPerMinute int           `yaml:"matches_per_minute" env:"RATE_LIMIT_MATCHES_PER_MINUTE" env-default:"60"`
	Burst            int           `yaml:"burst"              env:"RATE_LIMIT_BURST"              env-default:"10"`
	IdleTTL          time.Duration `yaml:"idle_ttl"           env:"RATE_LIMIT_IDLE_TTL"           env-default:"10m"`
	CleanupInterval  time.Duration `yaml:"cleanup_interval"   env:"RATE_LIMIT_CLEANUP_INTERVAL"   env-default:"1m"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:3000"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds the settings needed to verify access tokens issued by the
// account service.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"campusshare"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// MatchingConfig holds the roommate matching calibration.
type MatchingConfig struct {
	DefaultLimit      int `yaml:"default_limit"      env:"MATCHING_DEFAULT_LIMIT"      env-default:"50"`
	MaxLimit          int `yaml:"max_limit"          env:"MATCHING_MAX_LIMIT"          env-default:"200"`
	ParallelThreshold int `yaml:"parallel_threshold" env:"MATCHING_PARALLEL_THRESHOLD" env-default:"64"`
	Workers           int `yaml:"workers"            env:"MATCHING_WORKERS"            env-default:"8"`

	ExcellentThreshold float64 `yaml:"excellent_threshold" env:"MATCHING_EXCELLENT_THRESHOLD" env-default:"0.8"`
	GoodThreshold      float64 `yaml:"good_threshold"      env:"MATCHING_GOOD_THRESHOLD"      env-default:"0.6"`

	Weights WeightsConfig `yaml:"weights"`
}

// WeightsConfig holds the default weight of every scored dimension.
type WeightsConfig struct {
	Budget      float64 `yaml:"budget"      env:"MATCHING_WEIGHT_BUDGET"      env-default:"0.25"`
	Room        float64 `yaml:"room"        env:"MATCHING_WEIGHT_ROOM"        env-default:"0.10"`
	Bathroom    float64 `yaml:"bathroom"    env:"MATCHING_WEIGHT_BATHROOM"    env-default:"0.05"`
	Dietary     float64 `yaml:"dietary"     env:"MATCHING_WEIGHT_DIETARY"     env-default:"0.15"`
	Pets        float64 `yaml:"pets"        env:"MATCHING_WEIGHT_PETS"        env-default:"0.10"`
	Cleanliness float64 `yaml:"cleanliness" env:"MATCHING_WEIGHT_CLEANLINESS" env-default:"0.10"`
	Sleep       float64 `yaml:"sleep"       env:"MATCHING_WEIGHT_SLEEP"       env-default:"0.10"`
	Guests      float64 `yaml:"guests"      env:"MATCHING_WEIGHT_GUESTS"      env-default:"0.10"`
	Study       float64 `yaml:"study"       env:"MATCHING_WEIGHT_STUDY"       env-default:"0.05"`
}

// Sum returns the total of all weights.
func (w WeightsConfig) Sum() float64 {
	return w.Budget + w.Room + w.Bathroom + w.Dietary + w.Pets +
		w.Cleanliness + w.Sleep + w.Guests + w.Study
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
