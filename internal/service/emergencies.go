package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fieldops/internal/dispatch"
	"fieldops/internal/domain"
	"fieldops/pkg/e"

	"github.com/google/uuid"
)

type EmergencyManager struct {
	repo   EmergencyRepository
	teams  TeamDirectory
	queue  NotificationQueue
	logger *slog.Logger
	now    func() time.Time
}

// NewEmergencyManager accepts a nil queue; team selections are then not announced.
func NewEmergencyManager(repo EmergencyRepository, teams TeamDirectory, queue NotificationQueue, logger *slog.Logger) *EmergencyManager {
	return &EmergencyManager{repo: repo, teams: teams, queue: queue, logger: logger, now: time.Now}
}

func (s *EmergencyManager) Create(ctx context.Context, req domain.CreateEmergencyRequest) (uuid.UUID, error) {
	if err := checkPosition(req.Lat, req.Lng); err != nil {
		return uuid.Nil, err
	}
	em := &domain.Emergency{
		ID:        uuid.New(),
		Title:     strings.TrimSpace(req.Title),
		Lat:       req.Lat,
		Lng:       req.Lng,
		Status:    domain.EmergencyOpen,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, em); err != nil {
		return uuid.Nil, err
	}
	return em.ID, nil
}

func (s *EmergencyManager) List(ctx context.Context, req domain.ListEmergenciesRequest) ([]*domain.Emergency, int64, error) {
	return s.repo.List(ctx, req.Status, req.Page, req.Limit)
}

func (s *EmergencyManager) Get(ctx context.Context, id uuid.UUID) (*domain.Emergency, error) {
	return s.repo.Get(ctx, id)
}

func (s *EmergencyManager) Update(ctx context.Context, id uuid.UUID, req domain.UpdateEmergencyRequest) error {
	em, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Title != nil {
		em.Title = strings.TrimSpace(*req.Title)
	}
	if req.Lat != nil {
		em.Lat = *req.Lat
	}
	if req.Lng != nil {
		em.Lng = *req.Lng
	}
	if err := checkPosition(em.Lat, em.Lng); err != nil {
		return err
	}
	return s.repo.Update(ctx, em)
}

func (s *EmergencyManager) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *EmergencyManager) Close(ctx context.Context, id uuid.UUID) error {
	em, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if em.Status == domain.EmergencyClosed {
		return fmt.Errorf("%w: emergency %s is already closed", e.ErrConflict, id)
	}
	return s.repo.Close(ctx, id)
}

// SelectTeam pins teamID on an open emergency, or clears the pin when teamID
// is nil. A pinned team is announced through the notification queue.
func (s *EmergencyManager) SelectTeam(ctx context.Context, id uuid.UUID, teamID *uuid.UUID) error {
	em, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if em.Status == domain.EmergencyClosed {
		return fmt.Errorf("%w: emergency %s is closed", e.ErrConflict, id)
	}

	var team *domain.Team
	if teamID != nil {
		team, err = s.teams.Get(ctx, *teamID)
		if err != nil {
			if errors.Is(err, e.ErrNotFound) {
				return fmt.Errorf("%w: team %s does not exist", e.ErrInvalidInput, *teamID)
			}
			return err
		}
	}

	if err := s.repo.SelectTeam(ctx, id, teamID); err != nil {
		return err
	}

	if team == nil || s.queue == nil {
		return nil
	}

	n := domain.DispatchNotification{
		EmergencyID: em.ID,
		Title:       em.Title,
		Lat:         em.Lat,
		Lng:         em.Lng,
		TeamID:      team.ID,
		TeamName:    team.Name,
		DistanceKM: dispatch.Distance(
			dispatch.Point{Lat: team.Lat, Lng: team.Lng},
			dispatch.Point{Lat: em.Lat, Lng: em.Lng},
		),
		AssignedAt: s.now().UTC(),
	}
	if err := s.queue.Enqueue(ctx, n); err != nil {
		s.logger.Warn("dispatch notification not queued",
			slog.String("emergency_id", em.ID.String()),
			slog.String("team_id", team.ID.String()),
			slog.Any("error", err),
		)
	}
	return nil
}

// Dispatch ranks every team for every open emergency and suggests one team per
// emergency. Older emergencies get first pick; pinned teams are honored.
func (s *EmergencyManager) Dispatch(ctx context.Context) (*domain.DispatchPlan, error) {
	teams, err := s.teams.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	open, err := s.repo.ListOpen(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]*domain.Team, len(teams))
	dTeams := make([]dispatch.Team, 0, len(teams))
	for _, t := range teams {
		id := t.ID.String()
		byID[id] = t
		dTeams = append(dTeams, dispatch.Team{
			ID:       id,
			Name:     t.Name,
			Position: dispatch.Point{Lat: t.Lat, Lng: t.Lng},
		})
	}

	targets := make([]dispatch.Target, 0, len(open))
	for _, em := range open {
		target := dispatch.Target{
			ID:       em.ID.String(),
			Position: dispatch.Point{Lat: em.Lat, Lng: em.Lng},
		}
		if em.SelectedTeamID != nil {
			target.ForcedTeamID = em.SelectedTeamID.String()
		}
		targets = append(targets, target)
	}

	res, err := dispatch.Plan(dTeams, targets)
	if err != nil {
		return nil, fmt.Errorf("dispatch plan: %w", err)
	}

	entries := make([]domain.DispatchEntry, 0, len(open))
	for i, em := range open {
		target := res.Targets[i]
		entry := domain.DispatchEntry{
			Emergency: *em,
			Forced:    target.Forced(),
			Ranking:   toRankedTeams(target.Ranking, byID),
			Available: toRankedTeams(res.Available(target.ID), byID),
		}

		if teamID, ok := res.Suggested(target.ID); ok {
			if id, err := uuid.Parse(teamID); err == nil {
				entry.SuggestedTeamID = &id
			}
			if t, ok := byID[teamID]; ok {
				entry.SuggestedTeamName = t.Name
			}
			for _, r := range target.Ranking {
				if r.Team.ID == teamID {
					d := r.DistanceKM
					entry.SuggestedDistanceKM = &d
					break
				}
			}
		}

		entries = append(entries, entry)
	}

	return &domain.DispatchPlan{
		Entries:     entries,
		TeamCount:   len(teams),
		GeneratedAt: s.now().UTC(),
	}, nil
}

func toRankedTeams(ranking []dispatch.Ranked, byID map[string]*domain.Team) []domain.RankedTeam {
	out := make([]domain.RankedTeam, 0, len(ranking))
	for _, r := range ranking {
		t, ok := byID[r.Team.ID]
		if !ok {
			continue
		}
		out = append(out, domain.RankedTeam{
			TeamID:     t.ID,
			Name:       t.Name,
			Color:      t.Color,
			DistanceKM: r.DistanceKM,
		})
	}
	return out
}
