package feed

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ChangeFeed is the per-table change-notification channel. Writers publish
// the name of the mutated table; the payload carries no delta, it is only a
// trigger for subscribers to reload everything.
type ChangeFeed struct {
	client  *redis.Client
	channel string
	logger  *zap.Logger
}

// New creates a feed bound to a pub/sub channel.
func New(client *redis.Client, channel string, logger *zap.Logger) *ChangeFeed {
	return &ChangeFeed{client: client, channel: channel, logger: logger}
}

// Notify publishes a change notification for the given table.
func (f *ChangeFeed) Notify(ctx context.Context, table string) error {
	if f == nil || f.client == nil {
		return nil
	}
	return f.client.Publish(ctx, f.channel, table).Err()
}

// Listen subscribes to the feed and invokes onChange for every notification
// until ctx is cancelled. It runs in the calling goroutine.
func (f *ChangeFeed) Listen(ctx context.Context, onChange func(context.Context, string)) {
	if f == nil || f.client == nil {
		return
	}
	sub := f.client.Subscribe(ctx, f.channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			f.logger.Debug("change notification", zap.String("table", msg.Payload))
			onChange(ctx, msg.Payload)
		}
	}
}
