package service

import (
	"context"
	"time"

	"fieldops/internal/compliance"
	"fieldops/internal/domain"
)

type StatsReporter struct {
	repo   StatsRepository
	alerts AlertLister
}

func NewStatsReporter(repo StatsRepository, alerts AlertLister) *StatsReporter {
	return &StatsReporter{repo: repo, alerts: alerts}
}

func (s *StatsReporter) Dashboard(ctx context.Context, today time.Time) (*domain.DashboardStats, error) {
	stats, err := s.repo.Counts(ctx)
	if err != nil {
		return nil, err
	}

	stats.AlertsBySeverity = map[string]int64{
		string(compliance.SeverityError):   0,
		string(compliance.SeverityWarning): 0,
		string(compliance.SeverityInfo):    0,
	}

	employees, err := s.alerts.AlertsAll(ctx, today, "")
	if err != nil {
		return nil, err
	}
	for _, ea := range employees {
		for _, a := range ea.Alerts {
			stats.AlertsBySeverity[a.Severity]++
		}
	}

	return &stats, nil
}
