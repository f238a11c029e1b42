// Package poller periodically fetches data from the Jumbo API and publishes
// it to subscribers. Two pollers run in the monitor: a coarse one for orders
// and a finer one for delivery slots.
package poller

import (
	"context"
	"log/slog"
	"time"

	"github.com/jumbohome/jumbo-monitor/pkg/pubsub"
)

// Poller fetches an update on every tick (or on Refresh) and publishes it to
// all subscribers. A failed fetch is logged and skipped; it never stops the
// poller.
type Poller[T any] struct {
	*pubsub.Publisher[T]
	update   func(context.Context) (T, error)
	interval time.Duration
	logger   *slog.Logger
	refresh  chan struct{}
}

// New returns a Poller calling update every interval.
func New[T any](update func(context.Context) (T, error), interval time.Duration, logger *slog.Logger) *Poller[T] {
	return &Poller[T]{
		Publisher: pubsub.New[T](logger.With(slog.String("component", "registry"))),
		update:    update,
		interval:  interval,
		logger:    logger,
		refresh:   make(chan struct{}),
	}
}

// Run polls until ctx is canceled.
func (p *Poller[T]) Run(ctx context.Context) error {
	p.logger.Debug("started", slog.Duration("interval", p.interval))
	defer p.logger.Debug("stopped")

	timer := time.NewTicker(p.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		case <-p.refresh:
		}

		if err := p.poll(ctx); err != nil {
			p.logger.Error("poll failed", slog.Any("err", err))
		}
	}
}

// Refresh triggers an immediate poll.
func (p *Poller[T]) Refresh() {
	p.refresh <- struct{}{}
}

func (p *Poller[T]) poll(ctx context.Context) error {
	start := time.Now()
	update, err := p.update(ctx)
	if err == nil {
		p.Publisher.Publish(update)
		p.logger.Debug("poll completed", slog.Duration("duration", time.Since(start)))
	}
	return err
}
