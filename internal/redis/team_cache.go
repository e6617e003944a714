package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"fieldops/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

const teamsKey = "teams:all"

// TeamCache keeps a JSON snapshot of every team under a single key.
type TeamCache struct {
	client goredis.Cmdable
	key    string
	ttl    time.Duration
}

func NewTeamCache(client goredis.Cmdable, ttl time.Duration) *TeamCache {
	return &TeamCache{
		client: client,
		key:    teamsKey,
		ttl:    ttl,
	}
}

// GetAll returns nil, nil on a cache miss.
func (c *TeamCache) GetAll(ctx context.Context) ([]*domain.Team, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	teams := make([]*domain.Team, 0)
	if err := json.Unmarshal(data, &teams); err != nil {
		return nil, err
	}

	return teams, nil
}

func (c *TeamCache) SetAll(ctx context.Context, teams []*domain.Team) error {
	if teams == nil {
		teams = []*domain.Team{}
	}
	b, err := json.Marshal(teams)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, c.ttl).Err()
}

func (c *TeamCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
