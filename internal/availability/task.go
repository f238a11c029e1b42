package availability

import (
	"context"
	"log/slog"

	"github.com/jumbohome/jumbo-monitor/internal/poller"
)

// SlotPoller is the poller interface the task subscribes to.
type SlotPoller interface {
	Subscribe() <-chan poller.SlotUpdate
	Unsubscribe(<-chan poller.SlotUpdate)
}

// Task rebuilds the weekday tokens on every slot poll and publishes them to
// the registry.
type Task struct {
	SlotPoller
	builder  Builder
	registry *Registry
	logger   *slog.Logger
}

// New returns a Task publishing tokens built by builder to registry.
func New(p SlotPoller, builder Builder, registry *Registry, logger *slog.Logger) *Task {
	return &Task{
		SlotPoller: p,
		builder:    builder,
		registry:   registry,
		logger:     logger,
	}
}

// Run processes slot updates until ctx is canceled.
func (t *Task) Run(ctx context.Context) error {
	t.logger.Debug("started")
	defer t.logger.Debug("stopped")

	ch := t.SlotPoller.Subscribe()
	defer t.SlotPoller.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			t.registry.Replace(t.builder.Build(update.Days))
			t.logger.Debug("tokens rebuilt", slog.Int("days", len(update.Days)))
		}
	}
}
