package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"github.com/redis/go-redis/v9"
)

func New(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// MemberTypeCache stores member types as JSON under member_type:<id>.
type MemberTypeCache struct {
	R   redis.Cmdable
	TTL time.Duration
}

func key(id model.MemberTypeID) string { return "member_type:" + string(id) }

// Get returns redis.Nil on a miss.
func (c *MemberTypeCache) Get(ctx context.Context, id model.MemberTypeID) (*model.MemberType, error) {
	b, err := c.R.Get(ctx, key(id)).Bytes()
	if err != nil {
		return nil, err
	}
	var mt model.MemberType
	if err := json.Unmarshal(b, &mt); err != nil {
		return nil, err
	}
	return &mt, nil
}

func (c *MemberTypeCache) Set(ctx context.Context, mt *model.MemberType) error {
	b, err := json.Marshal(mt)
	if err != nil {
		return err
	}
	ttl := c.TTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return c.R.Set(ctx, key(mt.ID), b, ttl).Err()
}
