package poller

import (
	"context"
	"log/slog"
	"time"

	"github.com/jumbohome/jumbo-monitor/internal/jumbo"
)

// OrderUpdate is the result of one order poll.
type OrderUpdate struct {
	Orders    []jumbo.Order
	Timestamp time.Time
}

// SlotUpdate is the result of one delivery-slot poll.
type SlotUpdate struct {
	Store     jumbo.Store
	Days      []jumbo.SlotDay
	Timestamp time.Time
}

// OrderGetter is the part of the Jumbo client the order poller needs.
type OrderGetter interface {
	GetOrders(context.Context) ([]jumbo.Order, error)
}

// SlotGetter is the part of the Jumbo client the slot poller needs.
type SlotGetter interface {
	SyncStore(context.Context) (jumbo.Store, error)
	GetDeliverySlots(context.Context) ([]jumbo.SlotDay, error)
}

// StoreSaver persists the synced store.
type StoreSaver interface {
	SaveStore(jumbo.Store) error
}

// Orders returns the update function for the order poller.
func Orders(client OrderGetter) func(context.Context) (OrderUpdate, error) {
	return func(ctx context.Context) (OrderUpdate, error) {
		orders, err := client.GetOrders(ctx)
		if err != nil {
			return OrderUpdate{}, err
		}
		return OrderUpdate{Orders: orders, Timestamp: time.Now()}, nil
	}
}

// Slots returns the update function for the slot poller. The store is
// re-synced from the remote profile before every slot listing and persisted
// through saver. A failed save does not fail the poll.
func Slots(client SlotGetter, saver StoreSaver, logger *slog.Logger) func(context.Context) (SlotUpdate, error) {
	return func(ctx context.Context) (SlotUpdate, error) {
		store, err := client.SyncStore(ctx)
		if err != nil {
			return SlotUpdate{}, err
		}
		if err = saver.SaveStore(store); err != nil {
			logger.Warn("failed to persist store", slog.Any("err", err))
		}

		days, err := client.GetDeliverySlots(ctx)
		if err != nil {
			return SlotUpdate{}, err
		}
		return SlotUpdate{Store: store, Days: days, Timestamp: time.Now()}, nil
	}
}
