package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"fieldops/internal/dispatch"
	"fieldops/internal/domain"
	"fieldops/pkg/e"

	"github.com/google/uuid"
)

const defaultTeamColor = "#1f77b4"

type TeamManager struct {
	repo   TeamRepository
	cache  TeamCache
	logger *slog.Logger
	now    func() time.Time

	// cacheMu orders cache fills against invalidations; generation counts
	// writes so a fill read before a write is never stored after it.
	cacheMu    sync.Mutex
	generation uint64
}

// NewTeamManager accepts a nil cache; Snapshot then always reads the repository.
func NewTeamManager(repo TeamRepository, cache TeamCache, logger *slog.Logger) *TeamManager {
	return &TeamManager{repo: repo, cache: cache, logger: logger, now: time.Now}
}

func checkPosition(lat, lng float64) error {
	if err := (dispatch.Point{Lat: lat, Lng: lng}).Validate(); err != nil {
		return fmt.Errorf("%w: %w", e.ErrInvalidCoordinates, err)
	}
	return nil
}

func conflictOnDuplicate(err error) error {
	if errors.Is(err, e.ErrUniqueViolation) {
		return fmt.Errorf("%w: %w", e.ErrConflict, err)
	}
	return err
}

func (s *TeamManager) Create(ctx context.Context, req domain.CreateTeamRequest) (uuid.UUID, error) {
	if err := checkPosition(req.Lat, req.Lng); err != nil {
		return uuid.Nil, err
	}
	color := req.Color
	if color == "" {
		color = defaultTeamColor
	}
	team := &domain.Team{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Lat:       req.Lat,
		Lng:       req.Lng,
		Color:     color,
		Members:   req.Members,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Create(ctx, team); err != nil {
		return uuid.Nil, conflictOnDuplicate(err)
	}
	s.invalidate(ctx)
	return team.ID, nil
}

func (s *TeamManager) List(ctx context.Context) ([]*domain.Team, error) {
	return s.repo.List(ctx)
}

func (s *TeamManager) Get(ctx context.Context, id uuid.UUID) (*domain.Team, error) {
	return s.repo.Get(ctx, id)
}

func (s *TeamManager) Update(ctx context.Context, id uuid.UUID, req domain.UpdateTeamRequest) error {
	team, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Name != nil {
		team.Name = strings.TrimSpace(*req.Name)
	}
	if req.Lat != nil {
		team.Lat = *req.Lat
	}
	if req.Lng != nil {
		team.Lng = *req.Lng
	}
	if req.Color != nil {
		team.Color = *req.Color
	}
	if req.Members != nil {
		team.Members = *req.Members
	}
	if err := checkPosition(team.Lat, team.Lng); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, team); err != nil {
		return conflictOnDuplicate(err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *TeamManager) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Snapshot returns every team, preferring the cache and refilling it on a miss.
// Cache failures degrade to a repository read. A fill is dropped when a write
// in this process landed while the repository was being read; writes from
// other instances are only seen after their invalidation or the cache TTL.
func (s *TeamManager) Snapshot(ctx context.Context) ([]*domain.Team, error) {
	if s.cache != nil {
		teams, err := s.cache.GetAll(ctx)
		if err != nil {
			s.logger.Warn("team cache read failed", slog.Any("error", err))
		} else if teams != nil {
			return teams, nil
		}
	}

	gen := s.currentGeneration()
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if _, err := s.fill(ctx, gen, teams); err != nil {
			s.logger.Warn("team cache fill failed", slog.Any("error", err))
		}
	}
	return teams, nil
}

// Refresh reloads the cache from the repository and reports how many teams it holds.
func (s *TeamManager) Refresh(ctx context.Context) (int, error) {
	gen := s.currentGeneration()
	teams, err := s.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if s.cache == nil {
		return len(teams), nil
	}
	stored, err := s.fill(ctx, gen, teams)
	if err != nil {
		return 0, fmt.Errorf("refresh team cache: %w", err)
	}
	if !stored {
		s.logger.Debug("team cache refresh skipped, teams changed during read")
	}
	return len(teams), nil
}

func (s *TeamManager) currentGeneration() uint64 {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	return s.generation
}

// fill stores teams unless a write bumped the generation after gen was read.
func (s *TeamManager) fill(ctx context.Context, gen uint64, teams []*domain.Team) (bool, error) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	if s.generation != gen {
		return false, nil
	}
	return true, s.cache.SetAll(ctx, teams)
}

func (s *TeamManager) invalidate(ctx context.Context) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.generation++
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("team cache invalidation failed", slog.Any("error", err))
	}
}
