package market

import (
	"fmt"
	"time"
)

// Session describes regular trading hours. The dashboard's status badge
// combines IsOpen with the store's manual system toggle.
type Session struct {
	open     int // minutes from midnight
	close    int
	location *time.Location
}

// NewSession parses "15:04"-style open/close times in the named timezone.
func NewSession(open, close, timezone string) (*Session, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", timezone, err)
	}

	openMin, err := parseClock(open)
	if err != nil {
		return nil, fmt.Errorf("parsing session open: %w", err)
	}
	closeMin, err := parseClock(close)
	if err != nil {
		return nil, fmt.Errorf("parsing session close: %w", err)
	}
	if closeMin <= openMin {
		return nil, fmt.Errorf("session close %s must be after open %s", close, open)
	}

	return &Session{open: openMin, close: closeMin, location: loc}, nil
}

// IsOpen reports whether t falls inside regular hours on a weekday.
func (s *Session) IsOpen(t time.Time) bool {
	local := t.In(s.location)

	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}

	minutes := local.Hour()*60 + local.Minute()
	return minutes >= s.open && minutes < s.close
}

func parseClock(v string) (int, error) {
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}
