package clock

import "time"

// Clock abstracts wall-clock access so services can be tested with a
// fixed time.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (c *SystemClock) Now() time.Time {
	return time.Now()
}
