package config

import (
	"context"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("API_KEY", "test-key")
	t.Setenv("WEBHOOK_URL", "")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Http.Port != ":8080" {
		t.Fatalf("expected default port, got %q", cfg.Http.Port)
	}
	if !cfg.Webhook.Disabled {
		t.Fatalf("webhook must be disabled without a URL")
	}
	if cfg.MQTT.Enabled() {
		t.Fatalf("mqtt must be disabled without a broker")
	}
	if cfg.InfluxDB.Enabled() {
		t.Fatalf("influxdb must be disabled without a url")
	}
	if cfg.Compliance.WindowDays != 30 {
		t.Fatalf("expected 30 day window, got %d", cfg.Compliance.WindowDays)
	}
	if cfg.Redis.PingTimeout != 5*time.Second || cfg.Redis.PoolSize != 10 {
		t.Fatalf("unexpected redis defaults %+v", cfg.Redis)
	}
	if cfg.Dispatch.TeamCacheTTL != 5*time.Minute {
		t.Fatalf("unexpected cache ttl %v", cfg.Dispatch.TeamCacheTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("API_KEY", "k")
	t.Setenv("HTTP_PORT", ":9090")
	t.Setenv("MQTT_BROKER", "tcp://broker:1883")
	t.Setenv("MQTT_TOPIC_PREFIX", "utility/")
	t.Setenv("WEBHOOK_URL", "http://hooks.local/dispatch")
	t.Setenv("DISPATCH_CACHE_REFRESH", "15s")
	t.Setenv("RATE_LIMIT_READ_RPS", "2.5")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Http.Port != ":9090" || !cfg.MQTT.Enabled() || cfg.MQTT.TopicPrefix != "utility" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Webhook.Disabled {
		t.Fatalf("webhook must be enabled when URL is set")
	}
	if cfg.Dispatch.CacheRefresh != 15*time.Second {
		t.Fatalf("unexpected refresh %v", cfg.Dispatch.CacheRefresh)
	}
	if cfg.RateLimit.ReadRPS != 2.5 || cfg.RateLimit.WriteBurst != 10 {
		t.Fatalf("unexpected rate limit %+v", cfg.RateLimit)
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Http:       HttpConfig{Port: ":8080"},
			Postgres:   PostgresConfig{Host: "db"},
			Redis:      RedisConfig{Addr: "cache:6379", PingTimeout: time.Second},
			APIKey:     "k",
			Webhook:    WebhookConfig{MaxRetries: 3},
			Dispatch:   DispatchConfig{TeamCacheTTL: time.Minute, CacheRefresh: time.Minute},
			Compliance: ComplianceConfig{WindowDays: 30},
			RateLimit:  RateLimitConfig{ReadRPS: 1, ReadBurst: 1, WriteRPS: 1, WriteBurst: 1},
		}
	}

	cases := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{"valid", func(c *Config) {}, true},
		{"port_without_colon", func(c *Config) { c.Http.Port = "8080" }, false},
		{"no_postgres_host", func(c *Config) { c.Postgres.Host = "" }, false},
		{"no_api_key", func(c *Config) { c.APIKey = "" }, false},
		{"no_redis_addr", func(c *Config) { c.Redis.Addr = "" }, false},
		{"zero_redis_ping", func(c *Config) { c.Redis.PingTimeout = 0 }, false},
		{"bad_qos", func(c *Config) { c.MQTT.QoS = 3 }, false},
		{"no_retries", func(c *Config) { c.Webhook.MaxRetries = 0 }, false},
		{"zero_refresh", func(c *Config) { c.Dispatch.CacheRefresh = 0 }, false},
		{"negative_window", func(c *Config) { c.Compliance.WindowDays = -1 }, false},
		{"zero_rate", func(c *Config) { c.RateLimit.WriteRPS = 0 }, false},
		{"influx_without_bucket", func(c *Config) { c.InfluxDB = InfluxDBConfig{URL: "http://influx:8086", Org: "o"} }, false},
		{"influx_complete", func(c *Config) {
			c.InfluxDB = InfluxDBConfig{URL: "http://influx:8086", Org: "o", Bucket: "b"}
		}, true},
	}

	for _, c := range cases {
		cfg := base()
		c.mutate(&cfg)
		err := cfg.Validate()
		if c.ok && err != nil {
			t.Fatalf("%s: unexpected err %v", c.name, err)
		}
		if !c.ok && err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
	}
}
