package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	Cache  CacheConfig
	JWT    JWTConfig
	S3     S3Config
	Log    LogConfig
	CORS   CORSConfig
	Rules  RulesConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// IsProduction reports whether the server runs in the production environment.
func (s *ServerConfig) IsProduction() bool {
	return strings.EqualFold(s.Environment, "production")
}

// DBConfig holds PostgreSQL connection settings for the core-banking replica.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// RedisConfig holds the response cache connection settings. An empty URL disables redis
// and leaves the in-process cache in charge.
type RedisConfig struct {
	URL            string        `mapstructure:"url"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
	RetryAttempts  int           `mapstructure:"retry_attempts"`
	RetryInterval  time.Duration `mapstructure:"retry_interval"`
}

// CacheConfig holds response cache behaviour.
type CacheConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	TTL            time.Duration `mapstructure:"ttl"`
	MemoryCapacity int           `mapstructure:"memory_capacity"`
	KeyPrefix      string        `mapstructure:"key_prefix"`
}

// JWTConfig holds the settings used to verify admin access tokens.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	Issuer            string        `mapstructure:"issuer"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
}

// S3Config holds the anomaly report archive settings.
type S3Config struct {
	Region        string        `mapstructure:"region"`
	Bucket        string        `mapstructure:"bucket"`
	Prefix        string        `mapstructure:"prefix"`
	Endpoint      string        `mapstructure:"endpoint"`
	AccessKey     string        `mapstructure:"access_key"`
	SecretKey     string        `mapstructure:"secret_key"`
	PresignExpiry time.Duration `mapstructure:"presign_expiry"`
}

// Enabled reports whether report archiving is configured.
func (s *S3Config) Enabled() bool {
	return s.Bucket != ""
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// RulesConfig controls how the rule table is seeded and whether admin changes persist.
type RulesConfig struct {
	SeedFile string `mapstructure:"seed_file"`
	Persist  bool   `mapstructure:"persist"`
}

// Load reads configuration from environment variables with the DQ_ prefix. A .env file in
// the working directory is loaded first when present; real environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("DQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "dataquality")
	v.SetDefault("db.password", "dataquality_secret")
	v.SetDefault("db.name", "bank_replica")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Redis and cache defaults
	v.SetDefault("redis.url", "")
	v.SetDefault("redis.connect_timeout", "10s")
	v.SetDefault("redis.retry_attempts", 3)
	v.SetDefault("redis.retry_interval", "2s")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", "5m")
	v.SetDefault("cache.memory_capacity", 1000)
	v.SetDefault("cache.key_prefix", "api:")

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.issuer", "dataquality")
	v.SetDefault("jwt.access_expiry", "1h")

	// S3 defaults
	v.SetDefault("s3.region", "eu-west-3")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.prefix", "reports")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", "1h")

	v.SetDefault("log.level", "info")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	v.SetDefault("rules.seed_file", "")
	v.SetDefault("rules.persist", false)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":           "DQ_SERVER_PORT",
		"server.read_timeout":   "DQ_SERVER_READ_TIMEOUT",
		"server.write_timeout":  "DQ_SERVER_WRITE_TIMEOUT",
		"server.environment":    "DQ_SERVER_ENVIRONMENT",
		"db.host":               "DQ_DB_HOST",
		"db.port":               "DQ_DB_PORT",
		"db.user":               "DQ_DB_USER",
		"db.password":           "DQ_DB_PASSWORD",
		"db.name":               "DQ_DB_NAME",
		"db.sslmode":            "DQ_DB_SSLMODE",
		"db.max_open":           "DQ_DB_MAX_OPEN",
		"db.max_idle":           "DQ_DB_MAX_IDLE",
		"redis.url":             "DQ_REDIS_URL",
		"redis.connect_timeout": "DQ_REDIS_CONNECT_TIMEOUT",
		"redis.retry_attempts":  "DQ_REDIS_RETRY_ATTEMPTS",
		"redis.retry_interval":  "DQ_REDIS_RETRY_INTERVAL",
		"cache.enabled":         "DQ_CACHE_ENABLED",
		"cache.ttl":             "DQ_CACHE_TTL",
		"cache.memory_capacity": "DQ_CACHE_MEMORY_CAPACITY",
		"cache.key_prefix":      "DQ_CACHE_KEY_PREFIX",
		"jwt.secret":            "DQ_JWT_SECRET",
		"jwt.issuer":            "DQ_JWT_ISSUER",
		"jwt.access_expiry":     "DQ_JWT_ACCESS_EXPIRY",
		"s3.region":             "DQ_S3_REGION",
		"s3.bucket":             "DQ_S3_BUCKET",
		"s3.prefix":             "DQ_S3_PREFIX",
		"s3.endpoint":           "DQ_S3_ENDPOINT",
		"s3.access_key":         "DQ_S3_ACCESS_KEY",
		"s3.secret_key":         "DQ_S3_SECRET_KEY",
		"s3.presign_expiry":     "DQ_S3_PRESIGN_EXPIRY",
		"log.level":             "DQ_LOG_LEVEL",
		"cors.allowed_origins":  "DQ_CORS_ALLOWED_ORIGINS",
		"rules.seed_file":       "DQ_RULES_SEED_FILE",
		"rules.persist":         "DQ_RULES_PERSIST",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Container platforms set PORT. Use it if DQ_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DQ_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.Redis = RedisConfig{
		URL:            v.GetString("redis.url"),
		ConnectTimeout: v.GetDuration("redis.connect_timeout"),
		RetryAttempts:  v.GetInt("redis.retry_attempts"),
		RetryInterval:  v.GetDuration("redis.retry_interval"),
	}
	cfg.Cache = CacheConfig{
		Enabled:        v.GetBool("cache.enabled"),
		TTL:            v.GetDuration("cache.ttl"),
		MemoryCapacity: v.GetInt("cache.memory_capacity"),
		KeyPrefix:      v.GetString("cache.key_prefix"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		Issuer:            v.GetString("jwt.issuer"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Prefix:        v.GetString("s3.prefix"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetDuration("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level: v.GetString("log.level"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Rules = RulesConfig{
		SeedFile: v.GetString("rules.seed_file"),
		Persist:  v.GetBool("rules.persist"),
	}

	if cfg.Cache.MemoryCapacity <= 0 {
		return nil, fmt.Errorf("cache.memory_capacity must be positive, got %d", cfg.Cache.MemoryCapacity)
	}
	if cfg.Rules.SeedFile != "" {
		if _, err := os.Stat(cfg.Rules.SeedFile); err != nil {
			return nil, fmt.Errorf("rules.seed_file: %w", err)
		}
	}

	return cfg, nil
}
