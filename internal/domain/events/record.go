package events

import (
	"time"

	"babylog/internal/domain/events/details"
)

// Record es la forma plana que usan los adapters de storage.
// Los campos que no aplican a la variante quedan en cero.
type Record struct {
	ID         string
	Kind       string
	RecordedAt time.Time
	Note       string

	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds int

	FeedSide   string
	DiaperType string
	ImageRef   string
}

func ToRecord(e CareEvent) Record {
	r := Record{
		ID:         e.ID,
		Kind:       string(e.Kind),
		RecordedAt: e.RecordedAt,
		Note:       e.Note,
	}
	switch {
	case e.Feed != nil:
		r.StartTime = e.Feed.StartTime
		r.EndTime = e.Feed.EndTime
		r.DurationSeconds = e.Feed.DurationSeconds
		r.FeedSide = string(e.Feed.Side)
	case e.Sleep != nil:
		r.StartTime = e.Sleep.StartTime
		r.EndTime = e.Sleep.EndTime
		r.DurationSeconds = e.Sleep.DurationSeconds
	case e.Diaper != nil:
		r.DiaperType = string(e.Diaper.Type)
		r.ImageRef = e.Diaper.ImageRef
	}
	return r
}

// FromRecord es tolerante: nunca falla. Un kind o clasificación desconocidos
// se conservan y Classify los reporta después.
func FromRecord(r Record) CareEvent {
	e := CareEvent{
		ID:         r.ID,
		Kind:       ParseKind(r.Kind),
		RecordedAt: r.RecordedAt,
		Note:       r.Note,
	}
	switch e.Kind {
	case KindFeed:
		e.Feed = &details.Feed{
			StartTime:       r.StartTime,
			EndTime:         r.EndTime,
			DurationSeconds: r.DurationSeconds,
			Side:            details.ParseFeedSide(r.FeedSide),
		}
	case KindSleep:
		e.Sleep = &details.Sleep{
			StartTime:       r.StartTime,
			EndTime:         r.EndTime,
			DurationSeconds: r.DurationSeconds,
		}
	case KindDiaper:
		e.Diaper = &details.Diaper{
			Type:     details.ParseDiaperType(r.DiaperType),
			ImageRef: r.ImageRef,
		}
	}
	return e
}
