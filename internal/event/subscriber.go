package event

import (
	"context"
	"errors"

	"github.com/docker/docker/api/types/events"
	"github.com/rs/zerolog"

	"github.com/auto-dns/docker-event-tap/internal/filter"
)

// Handler consumes one delivered event. A non-nil return marks that one
// event as unusable; it is logged and skipped, never terminating the
// stream.
type Handler func(events.Message) error

// Subscriber owns the single subscription against the daemon event feed.
type Subscriber struct {
	logger   zerolog.Logger
	cli      dockerClient
	criteria *filter.Criteria
}

func NewSubscriber(cli dockerClient, criteria *filter.Criteria, logger zerolog.Logger) *Subscriber {
	return &Subscriber{
		logger:   logger,
		cli:      cli,
		criteria: criteria,
	}
}

// Stream opens the subscription and delivers events to handle, one at a
// time and in arrival order, until ctx is cancelled or the daemon closes
// the feed. Cancellation returns nil; an involuntary closure returns a
// StreamClosedError. There is no reconnect: a closed feed ends the
// session.
func (s *Subscriber) Stream(ctx context.Context, handle Handler) error {
	options := events.ListOptions{
		Filters: s.criteria.Args(),
		Since:   s.criteria.Since,
		Until:   s.criteria.Until,
	}
	eventCh, errCh := s.cli.Events(ctx, options)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Event stream cancelled")
			return nil
		case err, ok := <-errCh:
			if !ok {
				err = nil
			}
			// The client mirrors a cancelled context onto its error
			// channel; that is still a clean stop.
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				s.logger.Info().Msg("Event stream cancelled")
				return nil
			}
			// The caller reports the closure; keep this at debug so a
			// closed feed produces a single stderr diagnostic.
			s.logger.Debug().Err(err).Msg("Docker events stream ended")
			return NewStreamClosedError(err)
		case msg, ok := <-eventCh:
			if !ok {
				s.logger.Debug().Msg("Docker events channel closed")
				return NewStreamClosedError(nil)
			}
			if err := handle(msg); err != nil {
				s.logger.Warn().Err(err).Str("id", msg.Actor.ID).Msg("Skipping event that could not be rendered")
			}
		}
	}
}
