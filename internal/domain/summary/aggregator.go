package summary

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"babylog/internal/domain/clock"
	"babylog/internal/domain/events"
	"babylog/internal/domain/events/details"
)

// ErrNoData: se pidió un promedio sobre un conjunto vacío.
var ErrNoData = errors.New("no data")

// Summary son los totales de un día calendario.
type Summary struct {
	Day time.Time

	SleepDurationSeconds     int
	LeftFeedDurationSeconds  int
	RightFeedDurationSeconds int

	WetCount      int
	WetDirtyCount int

	// En Daily cuentan todo el snapshot: Processed + Unclassified == len(entrada).
	// En ByDay cuentan solo los eventos registrados ese día.
	Processed    int
	Unclassified int
}

// Daily suma los eventos cuyo RecordedAt cae en el día de day según loc.
// Las tomas con biberón no suman en ningún lado. Los eventos sin
// clasificar se cuentan en Unclassified y no entran en ningún bucket.
func Daily(evts []events.CareEvent, day time.Time, loc *time.Location) Summary {
	start, _ := clock.DayBounds(day, loc)
	s := Summary{Day: start}

	for _, e := range evts {
		if err := e.Classify(); err != nil {
			s.Unclassified++
			continue
		}
		s.Processed++

		if clock.SameDay(e.RecordedAt, start, loc) {
			s.add(e)
		}
	}
	return s
}

// ByDay agrupa por día calendario (en loc) todos los días con eventos, del
// más antiguo al más reciente. Los sin clasificar suman Unclassified en el
// día en que se registraron y no entran en ningún bucket.
func ByDay(evts []events.CareEvent, loc *time.Location) []Summary {
	byKey := map[string]*Summary{}
	for _, e := range evts {
		start, _ := clock.DayBounds(e.RecordedAt, loc)
		key := start.Format("2006-01-02")
		s, ok := byKey[key]
		if !ok {
			s = &Summary{Day: start}
			byKey[key] = s
		}

		if e.Classify() != nil {
			s.Unclassified++
			continue
		}
		s.Processed++
		s.add(e)
	}

	out := make([]Summary, 0, len(byKey))
	for _, s := range byKey {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Day.Before(out[j].Day)
	})
	return out
}

// add asume e ya clasificado.
func (s *Summary) add(e events.CareEvent) {
	switch e.Kind {
	case events.KindFeed:
		switch e.Feed.Side {
		case details.FeedSideBreastLeft:
			s.LeftFeedDurationSeconds += e.Feed.DurationSeconds
		case details.FeedSideBreastRight:
			s.RightFeedDurationSeconds += e.Feed.DurationSeconds
		case details.FeedSideBottle:
			// sin bucket
		}
	case events.KindSleep:
		s.SleepDurationSeconds += e.Sleep.DurationSeconds
	case events.KindDiaper:
		switch e.Diaper.Type {
		case details.DiaperTypeWet:
			s.WetCount++
		case details.DiaperTypeWetDirty:
			s.WetDirtyCount++
		}
	}
}

// ShareText es el resumen en texto plano para compartir.
func (s Summary) ShareText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total Left Side Feeding Duration: %s\n", clock.FormatDuration(s.LeftFeedDurationSeconds))
	fmt.Fprintf(&b, "Total Right Side Feeding Duration: %s\n", clock.FormatDuration(s.RightFeedDurationSeconds))
	fmt.Fprintf(&b, "Total Sleep Duration: %s\n", clock.FormatDuration(s.SleepDurationSeconds))
	fmt.Fprintf(&b, "Total Wet Nappy Times: %d times\n", s.WetCount)
	fmt.Fprintf(&b, "Total Wet Dirty Nappy Times: %d times", s.WetDirtyCount)
	return b.String()
}

// Averages son promedios sobre todos los sueños (sin filtrar por día).
// Start/Wake son segundos desde medianoche en la zona de referencia.
type Averages struct {
	Count int

	StartSeconds    float64
	WakeSeconds     float64
	DurationSeconds float64
}

// Rolling promedia hora de dormir, hora de despertar y duración.
// El promedio de horas es ingenuo (suma de segundos desde medianoche / n):
// no es circular y se degrada con horarios que cruzan medianoche.
func Rolling(evts []events.CareEvent, loc *time.Location) (Averages, error) {
	var (
		n                      int
		sumStart, sumWake, dur float64
	)
	for _, e := range evts {
		if e.Kind != events.KindSleep || e.Sleep == nil {
			continue
		}
		n++
		sumStart += float64(clock.Of(e.Sleep.StartTime, loc))
		sumWake += float64(clock.Of(e.Sleep.EndTime, loc))
		dur += float64(e.Sleep.DurationSeconds)
	}
	if n == 0 {
		return Averages{}, ErrNoData
	}

	return Averages{
		Count:           n,
		StartSeconds:    sumStart / float64(n),
		WakeSeconds:     sumWake / float64(n),
		DurationSeconds: dur / float64(n),
	}, nil
}

func (a Averages) Start() clock.TimeOfDay { return clock.FromSeconds(int(a.StartSeconds)) }
func (a Averages) Wake() clock.TimeOfDay  { return clock.FromSeconds(int(a.WakeSeconds)) }
