package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"adminconsole/internal/models"
)

// Store is the durable side of the activity log.
type Store interface {
	Insert(ctx context.Context, event models.ActivityEvent) error
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Processor handles messages read from the activity stream.
type Processor struct {
	store     Store
	retention time.Duration
	logger    zerolog.Logger
	now       func() time.Time
}

func NewProcessor(store Store, retention time.Duration, logger zerolog.Logger) *Processor {
	return &Processor{
		store:     store,
		retention: retention,
		logger:    logger,
		now:       time.Now,
	}
}

func (p *Processor) Handle(ctx context.Context, msg redis.XMessage) error {
	kind, _ := msg.Values["type"].(string)
	switch kind {
	case TypeRecord:
		return p.handleRecord(ctx, msg)
	case TypePrune:
		return p.handlePrune(ctx)
	default:
		p.logger.Warn().Str("type", kind).Str("message_id", msg.ID).Msg("unknown activity message")
		return nil
	}
}

func (p *Processor) handleRecord(ctx context.Context, msg redis.XMessage) error {
	event, err := decodeRecord(msg.Values)
	if err != nil {
		// Retrying a malformed message cannot help; drop it.
		p.logger.Error().Err(err).Str("message_id", msg.ID).Msg("discarding activity message")
		return nil
	}
	if err := p.store.Insert(ctx, event); err != nil {
		return fmt.Errorf("insert activity %s: %w", event.ID, err)
	}
	return nil
}

func (p *Processor) handlePrune(ctx context.Context) error {
	if p.retention <= 0 {
		return nil
	}
	cutoff := p.now().Add(-p.retention)
	n, err := p.store.DeleteBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("prune activity: %w", err)
	}
	p.logger.Info().Int64("deleted", n).Time("cutoff", cutoff).Msg("activity pruned")
	return nil
}
