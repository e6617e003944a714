package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"fieldops/internal/config"
	"fieldops/internal/domain"
	"fieldops/internal/mqtt"
	"fieldops/pkg/e"
)

const popTimeout = 5 * time.Second

// NotificationSender drains the dispatch queue and fans every notification
// out to the webhook and, when configured, to the team's MQTT topic.
type NotificationSender struct {
	logger    *slog.Logger
	cfg       config.WebhookConfig
	mqttCfg   config.MQTTConfig
	source    NotificationSource
	publisher Publisher
	recorder  EventRecorder
	http      *http.Client
}

// NewNotificationSender accepts a nil publisher when MQTT is disabled.
func NewNotificationSender(logger *slog.Logger, cfg config.WebhookConfig, mqttCfg config.MQTTConfig, source NotificationSource, publisher Publisher) *NotificationSender {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &NotificationSender{
		logger:    logger,
		cfg:       cfg,
		mqttCfg:   mqttCfg,
		source:    source,
		publisher: publisher,
		http:      &http.Client{Timeout: timeout},
	}
}

// WithRecorder adds a sink that records every delivered notification.
func (s *NotificationSender) WithRecorder(r EventRecorder) *NotificationSender {
	s.recorder = r
	return s
}

func (s *NotificationSender) Run(ctx context.Context) {
	s.logger.Info("notification sender started",
		slog.String("url", s.cfg.URL),
		slog.Bool("webhook", !s.cfg.Disabled),
		slog.Bool("mqtt", s.publisher != nil),
		slog.Bool("recorder", s.recorder != nil),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("notification sender stopped", slog.String("reason", ctx.Err().Error()))
			return
		default:
		}

		n, err := s.source.Pop(ctx, popTimeout)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) || ctx.Err() != nil {
				continue
			}
			s.logger.Error("notification pop failed", slog.Any("error", err))
			sleepCtx(ctx, 500*time.Millisecond)
			continue
		}

		s.Deliver(ctx, n)
	}
}

// Deliver sends one notification to every configured sink. Failures are
// logged; the notification is not requeued.
func (s *NotificationSender) Deliver(ctx context.Context, n domain.DispatchNotification) {
	l := s.logger.With(
		slog.String("emergency_id", n.EmergencyID.String()),
		slog.String("team_id", n.TeamID.String()),
	)

	body, err := json.Marshal(n)
	if err != nil {
		l.Error("marshal notification failed", slog.Any("error", err))
		return
	}

	if !s.cfg.Disabled {
		if err := s.sendWithRetry(ctx, body); err != nil {
			l.Error("webhook delivery failed", slog.Any("error", err))
		} else {
			l.Info("webhook delivered")
		}
	}

	if s.publisher != nil {
		topic := mqtt.TeamTopic(s.mqttCfg.TopicPrefix, n.TeamID)
		if err := s.publisher.Publish(topic, body, byte(s.mqttCfg.QoS), false); err != nil {
			l.Error("mqtt publish failed", slog.String("topic", topic), slog.Any("error", err))
		} else {
			l.Info("mqtt published", slog.String("topic", topic))
		}
	}

	if s.recorder != nil {
		s.recorder.RecordDispatch(n)
	}
}

func (s *NotificationSender) sendWithRetry(ctx context.Context, body []byte) error {
	maxRetries := s.cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		lastErr = s.post(ctx, body)
		if lastErr == nil {
			return nil
		}

		s.logger.Warn("webhook failed",
			slog.Int("attempt", attempt),
			slog.String("url", s.cfg.URL),
			slog.String("reason", lastErr.Error()),
		)

		if attempt < maxRetries && !sleepCtx(ctx, time.Duration(attempt)*s.cfg.RetryBackoff) {
			return ctx.Err()
		}
	}
	return fmt.Errorf("after %d attempts: %w", maxRetries, lastErr)
}

func (s *NotificationSender) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	_ = resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}
	return nil
}

// sleepCtx waits for d and reports false if ctx ended first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
