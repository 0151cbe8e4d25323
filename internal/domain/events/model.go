package events

import (
	"time"

	"babylog/internal/domain/events/details"
)

// CareEvent es una unión etiquetada: según Kind, exactamente uno de
// Feed/Sleep/Diaper viene seteado. Los datos leídos del store pueden traer
// un Kind desconocido y ningún payload; Classify lo reporta.
type CareEvent struct {
	ID   string // vacío hasta que se persiste
	Kind Kind

	RecordedAt time.Time
	Note       string

	Feed   *details.Feed
	Sleep  *details.Sleep
	Diaper *details.Diaper
}

// Header son los campos comunes a todas las variantes.
type Header struct {
	ID         string
	Kind       Kind
	RecordedAt time.Time
	Note       string
}

func (e CareEvent) Header() Header {
	return Header{
		ID:         e.ID,
		Kind:       e.Kind,
		RecordedAt: e.RecordedAt,
		Note:       e.Note,
	}
}

func (e CareEvent) Title() string { return e.Kind.Title() }

// Classify devuelve nil si el evento entra en algún bucket, o un
// *UnclassifiedError (errors.Is(err, ErrUnclassified)) si no.
func (e CareEvent) Classify() error {
	switch e.Kind {
	case KindFeed:
		if e.Feed == nil {
			return &UnclassifiedError{ID: e.ID, Field: "feed details"}
		}
		if !e.Feed.Side.Known() {
			return &UnclassifiedError{ID: e.ID, Field: "feed_side", Value: string(e.Feed.Side)}
		}
	case KindSleep:
		if e.Sleep == nil {
			return &UnclassifiedError{ID: e.ID, Field: "sleep details"}
		}
	case KindDiaper:
		if e.Diaper == nil {
			return &UnclassifiedError{ID: e.ID, Field: "diaper details"}
		}
		if !e.Diaper.Type.Known() {
			return &UnclassifiedError{ID: e.ID, Field: "diaper_type", Value: string(e.Diaper.Type)}
		}
	default:
		return &UnclassifiedError{ID: e.ID, Field: "kind", Value: string(e.Kind)}
	}
	return nil
}

// Clone copia el payload para que el llamador pueda modificarlo sin tocar el original.
func (e CareEvent) Clone() CareEvent {
	if e.Feed != nil {
		f := *e.Feed
		e.Feed = &f
	}
	if e.Sleep != nil {
		s := *e.Sleep
		e.Sleep = &s
	}
	if e.Diaper != nil {
		d := *e.Diaper
		e.Diaper = &d
	}
	return e
}
