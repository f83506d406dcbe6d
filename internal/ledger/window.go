package ledger

import (
	"errors"
	"time"
)

type WindowKind string

const (
	WindowToday    WindowKind = "TODAY"
	WindowMonth    WindowKind = "MONTH"
	WindowSpecific WindowKind = "SPECIFIC"
	WindowRange    WindowKind = "RANGE"
)

var ErrInvalidWindow = errors.New("invalid time window")

const dateLayout = "2006-01-02"

// Window selects ledger entries by time. Specific compares calendar-date
// strings, not instants; Range is inclusive on both ends.
type Window struct {
	Kind  WindowKind
	Date  time.Time
	Start time.Time
	End   time.Time
}

func Today() Window { return Window{Kind: WindowToday} }

func ThisMonth() Window { return Window{Kind: WindowMonth} }

func On(date time.Time) Window { return Window{Kind: WindowSpecific, Date: date} }

func Between(start, end time.Time) Window {
	return Window{Kind: WindowRange, Start: start, End: end}
}

// ParseWindow builds a Window from query-string parts. date/start/end use the
// 2006-01-02 layout.
func ParseWindow(kind, date, start, end string) (Window, error) {
	switch WindowKind(kind) {
	case WindowToday:
		return Today(), nil
	case WindowMonth, "":
		return ThisMonth(), nil
	case WindowSpecific:
		d, err := time.Parse(dateLayout, date)
		if err != nil {
			return Window{}, ErrInvalidWindow
		}
		return On(d), nil
	case WindowRange:
		s, err := time.Parse(dateLayout, start)
		if err != nil {
			return Window{}, ErrInvalidWindow
		}
		e, err := time.Parse(dateLayout, end)
		if err != nil {
			return Window{}, ErrInvalidWindow
		}
		return Between(s, e), nil
	default:
		return Window{}, ErrInvalidWindow
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Contains reports whether t falls inside the window relative to now.
func (w Window) Contains(t, now time.Time) bool {
	switch w.Kind {
	case WindowToday:
		return sameDay(t, now)
	case WindowMonth:
		return t.Month() == now.Month() && t.Year() == now.Year()
	case WindowSpecific:
		return t.Format(dateLayout) == w.Date.Format(dateLayout)
	case WindowRange:
		return !t.Before(w.Start) && !t.After(w.End)
	default:
		return true
	}
}
