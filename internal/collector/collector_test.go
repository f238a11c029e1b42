package collector

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jumbohome/jumbo-monitor/internal/jumbo"
	"github.com/jumbohome/jumbo-monitor/internal/poller"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollector(t *testing.T) {
	c := Collector{Logger: slog.Default()}

	timestamp := time.Date(2024, time.May, 15, 12, 0, 0, 0, time.UTC)
	c.orders = &poller.OrderUpdate{
		Orders: []jumbo.Order{
			{ID: "100001", Status: "OPEN"},
			{ID: "100002", Status: "READY_TO_DELIVER"},
			{ID: "100003", Status: "COMPLETED"},
		},
		Timestamp: timestamp,
	}
	c.slots = &poller.SlotUpdate{
		Days: []jumbo.SlotDay{
			{
				Day: "2024-05-16",
				TimeSlots: []jumbo.TimeSlot{
					{Available: true},
					{Available: true},
					{Available: false},
				},
			},
			{Day: "2024-05-17"},
		},
		Timestamp: timestamp,
	}

	assert.NoError(t, testutil.CollectAndCompare(&c, strings.NewReader(`
# HELP jumbo_monitor_last_poll_timestamp_seconds Timestamp of the last successful poll
# TYPE jumbo_monitor_last_poll_timestamp_seconds gauge
jumbo_monitor_last_poll_timestamp_seconds{poller="orders"} 1.7157744e+09
jumbo_monitor_last_poll_timestamp_seconds{poller="slots"} 1.7157744e+09

# HELP jumbo_orders_active Number of active (tracked) orders
# TYPE jumbo_orders_active gauge
jumbo_orders_active 2

# HELP jumbo_slots_available Number of available delivery slots per day
# TYPE jumbo_slots_available gauge
jumbo_slots_available{day="2024-05-16"} 2
jumbo_slots_available{day="2024-05-17"} 0
`)))
}

func TestCollector_NoUpdates(t *testing.T) {
	c := Collector{Logger: slog.Default()}
	assert.Zero(t, testutil.CollectAndCount(&c))
}
