package weekday

import "errors"

// ErrInvalidWeekday indicates the provided name is not one of the seven weekdays.
var ErrInvalidWeekday = errors.New("not a valid weekday")
