package events

import (
	"strings"
	"time"

	"babylog/internal/domain/events/details"
)

type FeedInput struct {
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds int
	Side            details.FeedSide
	Note            string
}

type SleepInput struct {
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds int
	Note            string
}

type DiaperInput struct {
	Type     details.DiaperType
	ImageRef string
	Note     string
}

// NewFeed arma una toma sin ID. Solo valida presencia: timestamps,
// end >= start, duración no negativa y un lado informado.
func NewFeed(in FeedInput) (CareEvent, error) {
	start, end, dur, err := resolveSpan(in.StartTime, in.EndTime, in.DurationSeconds)
	if err != nil {
		return CareEvent{}, err
	}
	if strings.TrimSpace(string(in.Side)) == "" {
		return CareEvent{}, ErrInvalidInput
	}
	return CareEvent{
		Kind: KindFeed,
		Note: strings.TrimSpace(in.Note),
		Feed: &details.Feed{
			StartTime:       start,
			EndTime:         end,
			DurationSeconds: dur,
			Side:            in.Side,
		},
	}, nil
}

func NewSleep(in SleepInput) (CareEvent, error) {
	start, end, dur, err := resolveSpan(in.StartTime, in.EndTime, in.DurationSeconds)
	if err != nil {
		return CareEvent{}, err
	}
	return CareEvent{
		Kind: KindSleep,
		Note: strings.TrimSpace(in.Note),
		Sleep: &details.Sleep{
			StartTime:       start,
			EndTime:         end,
			DurationSeconds: dur,
		},
	}, nil
}

func NewDiaper(in DiaperInput) (CareEvent, error) {
	if strings.TrimSpace(string(in.Type)) == "" {
		return CareEvent{}, ErrInvalidInput
	}
	return CareEvent{
		Kind: KindDiaper,
		Note: strings.TrimSpace(in.Note),
		Diaper: &details.Diaper{
			Type:     in.Type,
			ImageRef: strings.TrimSpace(in.ImageRef),
		},
	}, nil
}

// resolveSpan completa el fin desde start+duración (como hace el cronómetro
// de tomas) o la duración desde fin-start cuando falta.
func resolveSpan(start, end time.Time, dur int) (time.Time, time.Time, int, error) {
	if start.IsZero() || dur < 0 {
		return time.Time{}, time.Time{}, 0, ErrInvalidInput
	}
	if end.IsZero() {
		if dur == 0 {
			return time.Time{}, time.Time{}, 0, ErrInvalidInput
		}
		end = start.Add(time.Duration(dur) * time.Second)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, 0, ErrInvalidInput
	}
	if dur == 0 {
		dur = int(end.Sub(start) / time.Second)
	}
	return start, end, dur, nil
}
