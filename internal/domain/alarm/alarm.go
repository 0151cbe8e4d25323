package alarm

import (
	"errors"

	"babylog/internal/domain/clock"
	"babylog/internal/domain/summary"
)

// ErrNoWakeTime: no hay hora elegida ni promedio para calcularla.
var ErrNoWakeTime = errors.New("no wake time available")

type Source string

const (
	SourceOverride Source = "override"
	SourceAverage  Source = "average"
)

type Decision struct {
	WakeTime clock.TimeOfDay
	Source   Source
}

// Resolve elige la hora de la alarma diaria: la elegida por el usuario manda;
// si no hay, se usa el promedio de despertar. avg nil = sin datos.
func Resolve(avg *summary.Averages, override *clock.TimeOfDay) (Decision, error) {
	if override != nil {
		return Decision{WakeTime: *override, Source: SourceOverride}, nil
	}
	if avg != nil && avg.Count > 0 {
		return Decision{WakeTime: avg.Wake(), Source: SourceAverage}, nil
	}
	return Decision{}, ErrNoWakeTime
}
