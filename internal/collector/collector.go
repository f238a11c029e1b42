// Package collector exposes the latest poll results as Prometheus metrics.
package collector

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jumbohome/jumbo-monitor/internal/jumbo"
	"github.com/jumbohome/jumbo-monitor/internal/orderstatus"
	"github.com/jumbohome/jumbo-monitor/internal/poller"
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ordersActive = prometheus.NewDesc(
		prometheus.BuildFQName("jumbo", "orders", "active"),
		"Number of active (tracked) orders",
		nil,
		nil,
	)
	slotsAvailable = prometheus.NewDesc(
		prometheus.BuildFQName("jumbo", "slots", "available"),
		"Number of available delivery slots per day",
		[]string{"day"},
		nil,
	)
	lastPoll = prometheus.NewDesc(
		prometheus.BuildFQName("jumbo", "monitor", "last_poll_timestamp_seconds"),
		"Timestamp of the last successful poll",
		[]string{"poller"},
		nil,
	)
)

// OrderPoller publishes order updates.
type OrderPoller interface {
	Subscribe() <-chan poller.OrderUpdate
	Unsubscribe(<-chan poller.OrderUpdate)
}

// SlotPoller publishes slot updates.
type SlotPoller interface {
	Subscribe() <-chan poller.SlotUpdate
	Unsubscribe(<-chan poller.SlotUpdate)
}

// Collector tracks the latest order & slot updates and yields them as
// metrics on every scrape.
type Collector struct {
	OrderPoller OrderPoller
	SlotPoller  SlotPoller
	Logger      *slog.Logger

	lock   sync.RWMutex
	orders *poller.OrderUpdate
	slots  *poller.SlotUpdate
}

var _ prometheus.Collector = &Collector{}

// Run consumes poller updates until ctx is canceled.
func (c *Collector) Run(ctx context.Context) error {
	c.Logger.Debug("started")
	defer c.Logger.Debug("stopped")

	orderCh := c.OrderPoller.Subscribe()
	defer c.OrderPoller.Unsubscribe(orderCh)
	slotCh := c.SlotPoller.Subscribe()
	defer c.SlotPoller.Unsubscribe(slotCh)

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-orderCh:
			c.lock.Lock()
			c.orders = &update
			c.lock.Unlock()
		case update := <-slotCh:
			c.lock.Lock()
			c.slots = &update
			c.lock.Unlock()
		}
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- ordersActive
	ch <- slotsAvailable
	ch <- lastPoll
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.lock.RLock()
	defer c.lock.RUnlock()

	if c.orders != nil {
		ch <- prometheus.MustNewConstMetric(ordersActive, prometheus.GaugeValue, float64(countActive(c.orders.Orders)))
		ch <- prometheus.MustNewConstMetric(lastPoll, prometheus.GaugeValue, float64(c.orders.Timestamp.Unix()), "orders")
	}
	if c.slots != nil {
		for _, day := range c.slots.Days {
			ch <- prometheus.MustNewConstMetric(slotsAvailable, prometheus.GaugeValue, float64(countAvailable(day)), day.Day)
		}
		ch <- prometheus.MustNewConstMetric(lastPoll, prometheus.GaugeValue, float64(c.slots.Timestamp.Unix()), "slots")
	}
}

func countActive(orders []jumbo.Order) int {
	var active int
	for _, order := range orders {
		if orderstatus.IsActive(order.Status) {
			active++
		}
	}
	return active
}

func countAvailable(day jumbo.SlotDay) int {
	var available int
	for _, slot := range day.TimeSlots {
		if slot.Available {
			available++
		}
	}
	return available
}
