package history

import (
	"errors"
	"slices"
	"strings"

	"babylog/internal/domain/events"
)

type Order string

const (
	Chronological        Order = "chronological"
	ReverseChronological Order = "reverse"
)

var ErrInvalidFilter = errors.New("invalid history filter")

// FilterAndSort arma la lista para mostrar. kind nil = todos los tipos
// conocidos; los eventos con kind desconocido nunca se listan.
// Orden estable por RecordedAt: los empates conservan el orden de entrada
// en ambas direcciones. No modifica evts.
func FilterAndSort(evts []events.CareEvent, kind *events.Kind, order Order) []events.CareEvent {
	out := make([]events.CareEvent, 0, len(evts))
	for _, e := range evts {
		if !e.Kind.Known() {
			continue
		}
		if kind != nil && e.Kind != *kind {
			continue
		}
		out = append(out, e)
	}

	slices.SortStableFunc(out, func(a, b events.CareEvent) int {
		c := a.RecordedAt.Compare(b.RecordedAt)
		if order == ReverseChronological {
			return -c
		}
		return c
	})
	return out
}

// ParseOrder: vacío => cronológico.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "chronological", "asc":
		return Chronological, nil
	case "reverse", "reverse_chronological", "desc":
		return ReverseChronological, nil
	default:
		return "", ErrInvalidFilter
	}
}

// ParseKindFilter: vacío o "all" => nil (sin filtro).
func ParseKindFilter(s string) (*events.Kind, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "all") {
		return nil, nil
	}
	k := events.ParseKind(s)
	if !k.Known() {
		return nil, ErrInvalidFilter
	}
	return &k, nil
}
