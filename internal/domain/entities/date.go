package entities

import (
	"fmt"
	"time"
)

// DateLayout is the date-only wire format (no time, no zone).
const DateLayout = "2006-01-02"

func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(DateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidInput, v)
	}
	return t, nil
}
