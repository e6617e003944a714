package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"fieldops/internal/config"
	"fieldops/internal/domain"
	"fieldops/internal/service"
	mock_service "fieldops/internal/service/mocks"
	"fieldops/pkg/e"
)

func webhookCfg(url string) config.WebhookConfig {
	return config.WebhookConfig{
		URL:          url,
		Timeout:      time.Second,
		MaxRetries:   3,
		RetryBackoff: time.Millisecond,
	}
}

func notification() domain.DispatchNotification {
	return domain.DispatchNotification{
		EmergencyID: uuid.New(),
		Title:       "Pole down",
		TeamID:      uuid.MustParse("6f1c1f8e-0a53-4c1e-9d4b-2a9e3a8e5b10"),
		TeamName:    "Alpha",
		DistanceKM:  12.3,
	}
}

func TestNotificationSender_Deliver_RetriesUntilSuccess(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("unexpected content type %q", r.Header.Get("Content-Type"))
		}
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		var n domain.DispatchNotification
		if err := json.NewDecoder(r.Body).Decode(&n); err != nil || n.TeamName != "Alpha" {
			t.Errorf("unexpected body %+v, %v", n, err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sender := service.NewNotificationSender(discardLogger(), webhookCfg(srv.URL), config.MQTTConfig{}, nil, nil)
	sender.Deliver(context.Background(), notification())

	if got := calls.Load(); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestNotificationSender_Deliver_GivesUp(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := webhookCfg(srv.URL)
	cfg.MaxRetries = 2
	service.NewNotificationSender(discardLogger(), cfg, config.MQTTConfig{}, nil, nil).
		Deliver(context.Background(), notification())

	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 attempts, got %d", got)
	}
}

func TestNotificationSender_Deliver_PublishesToTeamTopic(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	pub := mock_service.NewMockPublisher(ctrl)

	n := notification()
	pub.EXPECT().
		Publish("ops/teams/6f1c1f8e-0a53-4c1e-9d4b-2a9e3a8e5b10/dispatch", gomock.Any(), byte(1), false).
		DoAndReturn(func(_ string, payload []byte, _ byte, _ bool) error {
			var got domain.DispatchNotification
			if err := json.Unmarshal(payload, &got); err != nil || got.EmergencyID != n.EmergencyID {
				t.Errorf("unexpected payload %s", payload)
			}
			return nil
		})

	cfg := config.WebhookConfig{Disabled: true}
	mqttCfg := config.MQTTConfig{Broker: "tcp://b:1883", TopicPrefix: "ops", QoS: 1}
	service.NewNotificationSender(discardLogger(), cfg, mqttCfg, nil, pub).Deliver(context.Background(), n)
}

func TestNotificationSender_Run_DrainsUntilCanceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var delivered atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		delivered.Add(1)
		w.WriteHeader(http.StatusOK)
		cancel()
	}))
	defer srv.Close()

	ctrl := gomock.NewController(t)
	source := mock_service.NewMockNotificationSource(ctrl)
	gomock.InOrder(
		source.EXPECT().Pop(gomock.Any(), gomock.Any()).Return(domain.DispatchNotification{}, e.ErrQueueEmpty),
		source.EXPECT().Pop(gomock.Any(), gomock.Any()).Return(notification(), nil),
	)
	source.EXPECT().Pop(gomock.Any(), gomock.Any()).Return(domain.DispatchNotification{}, e.ErrQueueEmpty).AnyTimes()

	sender := service.NewNotificationSender(discardLogger(), webhookCfg(srv.URL), config.MQTTConfig{}, source, nil)

	done := make(chan struct{})
	go func() {
		sender.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sender did not stop after cancel")
	}
	if delivered.Load() != 1 {
		t.Fatalf("expected one delivery, got %d", delivered.Load())
	}
}

func TestNotificationSender_Deliver_Records(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	rec := mock_service.NewMockEventRecorder(ctrl)

	n := notification()
	rec.EXPECT().RecordDispatch(n)

	service.NewNotificationSender(discardLogger(), config.WebhookConfig{Disabled: true}, config.MQTTConfig{}, nil, nil).
		WithRecorder(rec).
		Deliver(context.Background(), n)
}
