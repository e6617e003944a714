package config

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string           `json:"env"`
	Http       HttpConfig       `json:"http"`
	Postgres   PostgresConfig   `json:"postgres"`
	Redis      RedisConfig      `json:"redis"`
	MQTT       MQTTConfig       `json:"mqtt"`
	InfluxDB   InfluxDBConfig   `json:"influxdb"`
	APIKey     string           `json:"api_key,omitempty"`
	Webhook    WebhookConfig    `json:"webhook"`
	Dispatch   DispatchConfig   `json:"dispatch"`
	Compliance ComplianceConfig `json:"compliance"`
	RateLimit  RateLimitConfig  `json:"rate_limit"`
}

type HttpConfig struct {
	Port            string        `json:"port"`
	ReadTimeout     time.Duration `json:"read_timeout"`
	WriteTimeout    time.Duration `json:"write_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password,omitempty"`
	SSLMode  string `json:"ssl_mode"`

	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	EnsureSchema    bool
}

type RedisConfig struct {
	Addr        string        `json:"addr"`
	Password    string        `json:"password,omitempty"`
	DB          int           `json:"db"`
	PoolSize    int           `json:"pool_size"`
	DialTimeout time.Duration `json:"dial_timeout"`
	PingTimeout time.Duration `json:"ping_timeout"`
}

// MQTTConfig is optional; an empty Broker disables MQTT notifications.
type MQTTConfig struct {
	Broker      string `json:"broker"`
	ClientID    string `json:"client_id"`
	Username    string `json:"username"`
	Password    string `json:"password,omitempty"`
	TopicPrefix string `json:"topic_prefix"`
	QoS         int    `json:"qos"`
}

func (c MQTTConfig) Enabled() bool { return c.Broker != "" }

// InfluxDBConfig is optional; an empty URL disables dispatch event recording.
type InfluxDBConfig struct {
	URL           string        `json:"url"`
	Token         string        `json:"token,omitempty"`
	Org           string        `json:"org"`
	Bucket        string        `json:"bucket"`
	BatchSize     int           `json:"batch_size"`
	FlushInterval time.Duration `json:"flush_interval"`
}

func (c InfluxDBConfig) Enabled() bool { return c.URL != "" }

type WebhookConfig struct {
	URL          string        `json:"url"`
	Disabled     bool          `json:"disabled"`
	Timeout      time.Duration `json:"timeout"`
	MaxRetries   int           `json:"max_retries"`
	RetryBackoff time.Duration `json:"retry_backoff"`
}

type DispatchConfig struct {
	TeamCacheTTL     time.Duration `json:"team_cache_ttl"`
	CacheRefresh     time.Duration `json:"cache_refresh"`
	NotificationsKey string        `json:"notifications_key"`
}

// RateLimitConfig is a per-IP token bucket. Reads and writes get separate buckets.
type RateLimitConfig struct {
	ReadRPS    float64       `json:"read_rps"`
	ReadBurst  int           `json:"read_burst"`
	WriteRPS   float64       `json:"write_rps"`
	WriteBurst int           `json:"write_burst"`
	TTL        time.Duration `json:"ttl"`
}

type ComplianceConfig struct {
	WindowDays int `json:"window_days"`
}

func Load(ctx context.Context) (*Config, error) {

	stdLogger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		stdLogger.Warn(".env load warning", slog.Any("error", err))
	}

	cfg := &Config{
		Env: getEnv("ENV", "local"),
		Http: HttpConfig{
			Port:            getEnv("HTTP_PORT", ":8080"),
			ReadTimeout:     getEnvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
			WriteTimeout:    getEnvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
			ShutdownTimeout: getEnvDuration("HTTP_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Postgres: PostgresConfig{
			Host:            getEnv("POSTGRES_HOST", "pg-local"),
			Port:            getEnvInt("POSTGRES_PORT", 5432),
			Database:        getEnv("POSTGRES_DB", "fieldops"),
			User:            getEnv("POSTGRES_USER", "postgres"),
			Password:        getEnv("POSTGRES_PASSWORD", "postgres"),
			SSLMode:         getEnv("POSTGRES_SSL_MODE", "disable"),
			MaxConns:        int32(getEnvInt("POSTGRES_MAX_CONNS", 20)),
			MinConns:        int32(getEnvInt("POSTGRES_MIN_CONNS", 1)),
			MaxConnLifetime: getEnvDuration("POSTGRES_MAX_CONN_LIFETIME", time.Hour),
			EnsureSchema:    getEnvBool("POSTGRES_ENSURE_SCHEMA", true),
		},
		Redis: RedisConfig{
			Addr:        getEnv("REDIS_ADDR", "redis-local:6379"),
			Password:    getEnv("REDIS_PASSWORD", ""),
			DB:          getEnvInt("REDIS_DB", 0),
			PoolSize:    getEnvInt("REDIS_POOL_SIZE", 10),
			DialTimeout: getEnvDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			PingTimeout: getEnvDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		},
		MQTT: MQTTConfig{
			Broker:      getEnv("MQTT_BROKER", ""),
			ClientID:    getEnv("MQTT_CLIENT_ID", "fieldops-api"),
			Username:    getEnv("MQTT_USERNAME", ""),
			Password:    getEnv("MQTT_PASSWORD", ""),
			TopicPrefix: strings.TrimSuffix(getEnv("MQTT_TOPIC_PREFIX", "fieldops"), "/"),
			QoS:         getEnvInt("MQTT_QOS", 1),
		},
		InfluxDB: InfluxDBConfig{
			URL:           getEnv("INFLUXDB_URL", ""),
			Token:         getEnv("INFLUXDB_TOKEN", ""),
			Org:           getEnv("INFLUXDB_ORG", "fieldops"),
			Bucket:        getEnv("INFLUXDB_BUCKET", "dispatch"),
			BatchSize:     getEnvInt("INFLUXDB_BATCH_SIZE", 100),
			FlushInterval: getEnvDuration("INFLUXDB_FLUSH_INTERVAL", 10*time.Second),
		},
		APIKey: getEnv("API_KEY", ""),
		Webhook: WebhookConfig{
			URL:          getEnv("WEBHOOK_URL", ""),
			Disabled:     getEnvBool("WEBHOOK_DISABLED", false),
			Timeout:      getEnvDuration("WEBHOOK_TIMEOUT", 5*time.Second),
			MaxRetries:   getEnvInt("WEBHOOK_MAX_RETRIES", 3),
			RetryBackoff: getEnvDuration("WEBHOOK_RETRY_BACKOFF", time.Second),
		},
		Dispatch: DispatchConfig{
			TeamCacheTTL:     getEnvDuration("DISPATCH_TEAM_CACHE_TTL", 5*time.Minute),
			CacheRefresh:     getEnvDuration("DISPATCH_CACHE_REFRESH", time.Minute),
			NotificationsKey: getEnv("DISPATCH_NOTIFICATIONS_KEY", "dispatch:notifications"),
		},
		Compliance: ComplianceConfig{
			WindowDays: getEnvInt("COMPLIANCE_WINDOW_DAYS", 30),
		},
		RateLimit: RateLimitConfig{
			ReadRPS:    getEnvFloat("RATE_LIMIT_READ_RPS", 20),
			ReadBurst:  getEnvInt("RATE_LIMIT_READ_BURST", 40),
			WriteRPS:   getEnvFloat("RATE_LIMIT_WRITE_RPS", 5),
			WriteBurst: getEnvInt("RATE_LIMIT_WRITE_BURST", 10),
			TTL:        getEnvDuration("RATE_LIMIT_TTL", 10*time.Minute),
		},
	}

	if cfg.Webhook.URL == "" {
		cfg.Webhook.Disabled = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	stdLogger.Info("Config loaded successfully",
		slog.String("env", cfg.Env),
		slog.String("http_port", cfg.Http.Port),
		slog.String("postgres_db", cfg.Postgres.Database),
		slog.String("redis_addr", cfg.Redis.Addr),
		slog.Bool("mqtt_enabled", cfg.MQTT.Enabled()),
		slog.Bool("influxdb_enabled", cfg.InfluxDB.Enabled()),
		slog.Bool("webhook_enabled", !cfg.Webhook.Disabled))

	return cfg, nil
}

func (c *Config) Validate() error {

	if c.Http.Port == "" || c.Http.Port[0] != ':' {
		return errors.New("HTTP_PORT must start with ':' like ':8080'")
	}

	if c.Postgres.Host == "" {
		return errors.New("POSTGRES_HOST required")
	}

	if c.Redis.Addr == "" || c.Redis.PingTimeout <= 0 {
		return errors.New("REDIS_ADDR and a positive REDIS_PING_TIMEOUT required")
	}

	if c.APIKey == "" {
		return errors.New("API_KEY required")
	}

	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		return errors.New("MQTT_QOS must be 0, 1 or 2")
	}

	if c.InfluxDB.Enabled() && (c.InfluxDB.Org == "" || c.InfluxDB.Bucket == "") {
		return errors.New("INFLUXDB_ORG and INFLUXDB_BUCKET required when INFLUXDB_URL is set")
	}

	if c.Webhook.MaxRetries < 1 {
		return errors.New("WEBHOOK_MAX_RETRIES must be at least 1")
	}

	if c.Dispatch.CacheRefresh <= 0 || c.Dispatch.TeamCacheTTL <= 0 {
		return errors.New("DISPATCH_CACHE_REFRESH and DISPATCH_TEAM_CACHE_TTL must be positive")
	}

	if c.RateLimit.ReadRPS <= 0 || c.RateLimit.WriteRPS <= 0 || c.RateLimit.ReadBurst < 1 || c.RateLimit.WriteBurst < 1 {
		return errors.New("RATE_LIMIT_* rates and bursts must be positive")
	}

	if c.Compliance.WindowDays < 0 {
		return errors.New("COMPLIANCE_WINDOW_DAYS must not be negative")
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
