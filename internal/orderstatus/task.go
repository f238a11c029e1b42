package orderstatus

import (
	"context"
	"log/slog"

	"github.com/jumbohome/jumbo-monitor/internal/poller"
)

// OrderPoller is the poller interface the task subscribes to.
type OrderPoller interface {
	Subscribe() <-chan poller.OrderUpdate
	Unsubscribe(<-chan poller.OrderUpdate)
}

// Task feeds every order poll through the change detector and notifies on
// each changed order.
type Task struct {
	OrderPoller
	detector *Detector
	notifier Notifier
	logger   *slog.Logger
}

// New returns a Task reporting changed orders to notifier.
func New(p OrderPoller, notifier Notifier, logger *slog.Logger) *Task {
	return &Task{
		OrderPoller: p,
		detector:    NewDetector(logger),
		notifier:    notifier,
		logger:      logger,
	}
}

// Run processes order updates until ctx is canceled.
func (t *Task) Run(ctx context.Context) error {
	t.logger.Debug("started")
	defer t.logger.Debug("stopped")

	ch := t.OrderPoller.Subscribe()
	defer t.OrderPoller.Unsubscribe(ch)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			changed := t.detector.Changed(update.Orders)
			t.logger.Debug("processed order update",
				slog.Int("orders", len(update.Orders)),
				slog.Int("changed", len(changed)),
			)
			for _, u := range changed {
				t.notifier.Notify(u)
			}
		}
	}
}
