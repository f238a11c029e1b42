// Package orderstatus watches the user's Jumbo orders and reports the ones
// that changed since the previous poll, so downstream notifiers fire once
// per change instead of once per poll.
package orderstatus

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/clambin/go-common/cache"
	"github.com/clambin/go-common/set"
	"github.com/jumbohome/jumbo-monitor/internal/jumbo"
	"github.com/jumbohome/jumbo-monitor/internal/weekday"
)

var activeStatuses = set.New("OPEN", "PROCESSING", "READY_TO_DELIVER", "READY_TO_PICK_UP")

// IsActive reports whether an order with the given status is still tracked.
func IsActive(status string) bool {
	return activeStatuses.Contains(status)
}

// An Update is one changed order, with the Dutch message to send downstream.
type Update struct {
	Order   jumbo.Order
	Message string
}

// Detector fingerprints active orders and reports the ones that are new or
// whose fingerprint changed since the last call. Fingerprints are kept for
// the lifetime of the process; entries are never evicted.
type Detector struct {
	fingerprints *cache.Cache[string, uint64]
	logger       *slog.Logger
}

// NewDetector returns a Detector with an empty fingerprint cache.
func NewDetector(logger *slog.Logger) *Detector {
	return &Detector{
		fingerprints: cache.New[string, uint64](0, 0),
		logger:       logger,
	}
}

// Changed takes the full order list and returns the active orders that are
// new or changed, in remote order. The cache entry of every active order is
// refreshed, including unchanged ones.
func (d *Detector) Changed(orders []jumbo.Order) []Update {
	var updates []Update
	for _, order := range orders {
		if !IsActive(order.Status) {
			continue
		}
		window := order.Window()
		if window == nil {
			d.logger.Warn("order has no delivery or pickup window", slog.String("id", order.ID), slog.String("type", order.Type))
			continue
		}

		current := fingerprint(order, *window)
		previous, seen := d.fingerprints.Get(order.ID)
		d.fingerprints.Add(order.ID, current)
		if seen && previous == current {
			continue
		}

		updates = append(updates, Update{Order: order, Message: d.message(order.ID, *window)})
	}
	return updates
}

// Size returns the number of orders the detector has seen.
func (d *Detector) Size() int {
	return d.fingerprints.Len()
}

func fingerprint(order jumbo.Order, window jumbo.OrderWindow) uint64 {
	digest := xxhash.New()
	for _, field := range []string{
		order.ID, order.Status, order.Type,
		window.Date, window.StartDateTime, window.EndDateTime, window.Time,
	} {
		_, _ = digest.WriteString(field)
		_, _ = digest.Write([]byte{0})
	}
	return digest.Sum64()
}

// message formats the order's window as "vrijdag 17 mei tussen 17:00 - 19:00".
func (d *Detector) message(id string, window jumbo.OrderWindow) string {
	date, err := time.Parse("2006-01-02", window.Date)
	if err != nil {
		d.logger.Warn("order has an unparsable date", slog.String("id", id), slog.String("date", window.Date))
		return "tussen " + window.Time
	}
	return weekday.DutchDay(date.Weekday()) + " " +
		strconv.Itoa(date.Day()) + " " +
		weekday.DutchMonth(date.Month()) +
		" tussen " + window.Time
}
