package clock

import "time"

// Clock supplies the current time. The calendar opens at Now's month and
// marks Now's day as today.
type Clock interface {
	Now() time.Time
}

type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant.
type Fixed struct {
	At time.Time
}

func (f *Fixed) Now() time.Time {
	return f.At
}

func (f *Fixed) Set(now time.Time) {
	f.At = now
}
