package activity

import (
	"context"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"adminconsole/internal/models"
)

// StreamAdder appends entries to a redis stream.
type StreamAdder interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

// Publisher appends activity messages to the stream. Recording is best
// effort: a redis failure is logged and never fails the admin's request.
type Publisher struct {
	client StreamAdder
	stream string
	log    zerolog.Logger
}

func NewPublisher(client StreamAdder, stream string, log zerolog.Logger) *Publisher {
	return &Publisher{client: client, stream: stream, log: log}
}

func (p *Publisher) Record(ctx context.Context, event models.ActivityEvent) {
	values, err := encodeRecord(event)
	if err != nil {
		p.log.Error().Err(err).Msg("encode activity failed")
		return
	}
	if err := p.add(ctx, values); err != nil {
		p.log.Warn().Err(err).Str("action", event.Action).Str("resource", event.Resource).Msg("publish activity failed")
	}
}

func (p *Publisher) EnqueuePrune(ctx context.Context) error {
	return p.add(ctx, map[string]any{"type": TypePrune})
}

func (p *Publisher) add(ctx context.Context, values map[string]any) error {
	if p.client == nil {
		return nil
	}
	// Detach from request cancellation; the admin action already happened.
	ctx = context.WithoutCancel(ctx)
	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: values,
	}).Err()
}
