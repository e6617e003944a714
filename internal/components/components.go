package components

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fieldops/internal/api"
	"fieldops/internal/api/handlers/http/system"
	"fieldops/internal/config"
	"fieldops/internal/influxdb"
	"fieldops/internal/mqtt"
	"fieldops/internal/redis"
	"fieldops/internal/render"
	"fieldops/internal/service"
	"fieldops/internal/storage/postgres"
	"fieldops/internal/workers"
	"fieldops/pkg/logger"
)

type Components struct {
	logger     *slog.Logger
	HttpServer *api.Server
	Postgres   *postgres.Postgres
	Redis      *redis.Redis
	MQTT       *mqtt.Client
	InfluxDB   *influxdb.Client
	Sender     *service.NotificationSender
	Refresher  *workers.TeamCacheRefresher
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	logger.Info("Initializing Postgres")

	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	var (
		mqttClient *mqtt.Client
		publisher  service.Publisher
	)
	if cfg.MQTT.Enabled() {
		logger.Info("Initializing MQTT", slog.String("broker", cfg.MQTT.Broker))
		mqttClient, err = mqtt.Connect(cfg.MQTT)
		if err != nil {
			storage.Close()
			_ = redisClient.Close()
			return nil, fmt.Errorf("failed to init mqtt: %w", err)
		}
		publisher = mqttClient
	}

	var influx *influxdb.Client
	if cfg.InfluxDB.Enabled() {
		logger.Info("Initializing InfluxDB", slog.String("url", cfg.InfluxDB.URL))
		influx, err = influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			storage.Close()
			_ = redisClient.Close()
			_ = mqttClient.Close()
			return nil, fmt.Errorf("failed to init influxdb: %w", err)
		}
		influx.SetOnError(func(err error) {
			logger.Warn("influxdb write failed", slog.Any("error", err))
		})
	}

	teamCache := redis.NewTeamCache(redisClient.Client, cfg.Dispatch.TeamCacheTTL)
	notifications := redis.NewNotificationQueue(redisClient.Client, cfg.Dispatch.NotificationsKey)

	teams := service.NewTeamManager(storage.Teams, teamCache, logger)
	emergencies := service.NewEmergencyManager(storage.Emergencies, teams, notifications, logger)
	employees := service.NewEmployeeManager(storage.Employees, cfg.Compliance.WindowDays, logger)
	stats := service.NewStatsReporter(storage.Stats, employees)

	srv := service.NewService(teams, emergencies, employees, stats)

	checks := map[string]system.Check{
		"postgres": func(ctx context.Context) error { return storage.Pool.Ping(ctx) },
		"redis":    redisClient.Ping,
	}
	if mqttClient != nil {
		checks["mqtt"] = func(context.Context) error {
			if !mqttClient.IsConnected() {
				return mqtt.ErrNotConnected
			}
			return nil
		}
	}

	if influx != nil {
		checks["influxdb"] = influx.HealthCheck
	}

	httpServer := api.NewServer(ctx, cfg, logger, srv, renderer, checks)
	logger.Info("Initialized server")

	sender := service.NewNotificationSender(logger, cfg.Webhook, cfg.MQTT, notifications, publisher)
	if influx != nil {
		sender.WithRecorder(influx)
	}

	return &Components{
		logger:     logger,
		HttpServer: httpServer,
		Postgres:   storage,
		Redis:      redisClient,
		MQTT:       mqttClient,
		InfluxDB:   influx,
		Sender:     sender,
		Refresher:  workers.NewTeamCacheRefresher(teams, cfg.Dispatch.CacheRefresh, logger),
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Component shutdown started")

	var errs []error
	if err := c.InfluxDB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("influxdb: %w", err))
	}
	if err := c.MQTT.Close(); err != nil {
		errs = append(errs, fmt.Errorf("mqtt: %w", err))
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("redis: %w", err))
		}
	}
	c.Postgres.Close()

	if err := errors.Join(errs...); err != nil {
		c.logger.Error("Component shutdown finished with errors", slog.Any("error", err))
		return
	}

	c.logger.Info("All components stopped",
		slog.Duration("latency", time.Since(start)))
}
