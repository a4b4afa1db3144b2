package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock returns local wall time. Streaks compare calendar days in the
// writer's own timezone, so local time is the correct frame here.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
