// Package health serves the latest poll results on a /health endpoint.
package health

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/jumbohome/jumbo-monitor/internal/poller"
)

// OrderPoller publishes order updates.
type OrderPoller interface {
	Subscribe() <-chan poller.OrderUpdate
	Unsubscribe(<-chan poller.OrderUpdate)
	Refresh()
}

// SlotPoller publishes slot updates.
type SlotPoller interface {
	Subscribe() <-chan poller.SlotUpdate
	Unsubscribe(<-chan poller.SlotUpdate)
	Refresh()
}

// Health reports 503 until both pollers have delivered an update, then
// serves the latest updates as JSON.
type Health struct {
	orderPoller OrderPoller
	slotPoller  SlotPoller
	logger      *slog.Logger

	lock   sync.RWMutex
	orders *poller.OrderUpdate
	slots  *poller.SlotUpdate
}

// New returns a Health task following both pollers.
func New(orderPoller OrderPoller, slotPoller SlotPoller, logger *slog.Logger) *Health {
	return &Health{
		orderPoller: orderPoller,
		slotPoller:  slotPoller,
		logger:      logger,
	}
}

// Run consumes updates until ctx is canceled.
func (h *Health) Run(ctx context.Context) error {
	h.logger.Debug("started")
	defer h.logger.Debug("stopped")

	orderCh := h.orderPoller.Subscribe()
	defer h.orderPoller.Unsubscribe(orderCh)
	slotCh := h.slotPoller.Subscribe()
	defer h.slotPoller.Unsubscribe(slotCh)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-orderCh:
			h.lock.Lock()
			h.orders = &update
			h.lock.Unlock()
		case update := <-slotCh:
			h.lock.Lock()
			h.slots = &update
			h.lock.Unlock()
		}
	}
}

func (h *Health) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	h.lock.RLock()
	defer h.lock.RUnlock()
	if h.orders == nil || h.slots == nil {
		http.Error(w, "no update yet", http.StatusServiceUnavailable)
		if h.orders == nil {
			h.orderPoller.Refresh()
		}
		if h.slots == nil {
			h.slotPoller.Refresh()
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(struct {
		Orders *poller.OrderUpdate
		Slots  *poller.SlotUpdate
	}{Orders: h.orders, Slots: h.slots}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
