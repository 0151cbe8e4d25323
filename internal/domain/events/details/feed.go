package details

import "time"

// Feed es el detalle de una toma. Side se guarda tal cual llega
// (ver FeedSide.Known).
type Feed struct {
	StartTime time.Time
	EndTime   time.Time

	DurationSeconds int

	Side FeedSide
}
