// Package availability turns the raw delivery-slot listing into one
// human-readable token per weekday, each describing the available slots on
// that weekday's next occurrence.
package availability

import (
	"log/slog"
	"strings"
	"time"

	"github.com/jumbohome/jumbo-monitor/internal/jumbo"
	"github.com/jumbohome/jumbo-monitor/internal/weekday"
)

// A Token is one weekday's availability, ready for downstream registration.
type Token struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Value string `json:"value"`
}

// Builder formats slot listings into weekday tokens.
type Builder struct {
	// Fallback is the token value for weekdays without any available slot.
	Fallback string
	// Now is the clock; defaults to time.Now.
	Now    func() time.Time
	Logger *slog.Logger
}

// Build returns exactly one token per weekday, keyed by the (English)
// weekday name. A listing day matches a weekday when it falls on that
// weekday's next occurrence; within a day, unavailable slots are dropped and
// the remaining ones are formatted as "HH:MM tot HH:MM".
func (b Builder) Build(days []jumbo.SlotDay) map[string]Token {
	now := time.Now()
	if b.Now != nil {
		now = b.Now()
	}

	tokens := make(map[string]Token, len(weekday.Names))
	for _, name := range weekday.Names {
		next, _ := weekday.NextOccurrence(name, now, true)
		value := b.slotsOn(days, next)
		if value == "" {
			value = b.Fallback
		}
		tokens[name] = Token{
			ID:    "delivery_next_" + name,
			Title: "Bezorgtijden komende " + weekday.DutchDay(next.Weekday()),
			Value: value,
		}
	}
	return tokens
}

func (b Builder) slotsOn(days []jumbo.SlotDay, date time.Time) string {
	wanted := date.Format("2006-01-02")

	var formatted []string
	for _, day := range days {
		parsed, err := day.Date()
		if err != nil {
			b.Logger.Warn("slot listing has an unparsable day", slog.String("day", day.Day))
			continue
		}
		if parsed.Format("2006-01-02") != wanted {
			continue
		}
		for _, slot := range day.TimeSlots {
			if !slot.Available {
				continue
			}
			formatted = append(formatted, slot.StartDateTime.Format("15:04")+" tot "+slot.EndDateTime.Format("15:04"))
		}
	}
	return strings.Join(formatted, " , ")
}
