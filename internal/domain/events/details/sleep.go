package details

import "time"

type Sleep struct {
	StartTime time.Time
	EndTime   time.Time

	DurationSeconds int
}
