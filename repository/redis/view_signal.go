package redis

import (
	"context"

	redislib "github.com/redis/go-redis/v9"

	"github.com/taskdesk/backend/repository"
)

const invalidationChannel = "view-invalidation"

type viewSignal struct {
	client  *redislib.Client
	prefix  string
	channel string
}

// NewViewSignal creates a Redis-backed view invalidation signal.
//
// Each invalidation bumps a per-view generation counter and publishes the
// view name. Cache consumers either subscribe to the channel or embed the
// generation in their cache keys and compare on read.
func NewViewSignal(client *redislib.Client) repository.ViewSignal {
	return &viewSignal{
		client:  client,
		prefix:  "view:",
		channel: invalidationChannel,
	}
}

func (s *viewSignal) Invalidate(ctx context.Context, view string) error {
	pipe := s.client.Pipeline()
	pipe.Incr(ctx, s.genKey(view))
	pipe.Publish(ctx, s.channel, view)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *viewSignal) genKey(view string) string {
	return s.prefix + view + ":gen"
}
