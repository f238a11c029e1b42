// Package weekday projects weekday names onto future dates and localizes
// day and month names to Dutch.
package weekday

import (
	"fmt"
	"strings"
	"time"
)

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Names lists the seven weekday names in calendar order, starting on Monday.
var Names = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// NextOccurrence returns the first date after now whose weekday matches name.
// It never returns now's date: if today already matches, the result is a full
// week ahead. With resetTime set, the result is truncated to midnight in
// now's location.
func NextOccurrence(name string, now time.Time, resetTime bool) (time.Time, error) {
	day, ok := weekdays[strings.ToLower(name)]
	if !ok {
		return time.Time{}, fmt.Errorf("%q: %w", name, ErrInvalidWeekday)
	}

	delta := (int(day) - int(now.Weekday()) + 7) % 7
	if delta == 0 {
		delta = 7
	}
	next := now.AddDate(0, 0, delta)

	if resetTime {
		next = time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, next.Location())
	}
	return next, nil
}

// DutchDay returns the Dutch name for d.
func DutchDay(d time.Weekday) string {
	switch d {
	case time.Sunday:
		return "zondag"
	case time.Monday:
		return "maandag"
	case time.Tuesday:
		return "dinsdag"
	case time.Wednesday:
		return "woensdag"
	case time.Thursday:
		return "donderdag"
	case time.Friday:
		return "vrijdag"
	case time.Saturday:
		return "zaterdag"
	}
	return ""
}

// DutchMonth returns the Dutch name for m.
func DutchMonth(m time.Month) string {
	switch m {
	case time.January:
		return "januari"
	case time.February:
		return "februari"
	case time.March:
		return "maart"
	case time.April:
		return "april"
	case time.May:
		return "mei"
	case time.June:
		return "juni"
	case time.July:
		return "juli"
	case time.August:
		return "augustus"
	case time.September:
		return "september"
	case time.October:
		return "oktober"
	case time.November:
		return "november"
	case time.December:
		return "december"
	}
	return ""
}
