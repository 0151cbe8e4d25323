package events

import (
	"context"

	"babylog/internal/domain/events/details"
)

// Repository es el store remoto de eventos. List devuelve el snapshot
// completo en el orden del store (arbitrario pero estable por fetch).
type Repository interface {
	List(ctx context.Context) ([]CareEvent, error)
	GetByID(ctx context.Context, id string) (CareEvent, error)
	Create(ctx context.Context, e CareEvent) error
	Update(ctx context.Context, id string, p Patch) error
	Delete(ctx context.Context, id string) error
}

// Patch es una actualización parcial: nil = no tocar.
type Patch struct {
	Note       *string
	FeedSide   *details.FeedSide
	DiaperType *details.DiaperType
	ImageRef   *string
}

func (p Patch) Empty() bool {
	return p.Note == nil && p.FeedSide == nil && p.DiaperType == nil && p.ImageRef == nil
}

// Apply devuelve una copia de e con el patch aplicado. Los campos que no
// corresponden a la variante se ignoran (el Service ya los rechaza).
func (p Patch) Apply(e CareEvent) CareEvent {
	e = e.Clone()
	if p.Note != nil {
		e.Note = *p.Note
	}
	if p.FeedSide != nil && e.Feed != nil {
		e.Feed.Side = *p.FeedSide
	}
	if p.DiaperType != nil && e.Diaper != nil {
		e.Diaper.Type = *p.DiaperType
	}
	if p.ImageRef != nil && e.Diaper != nil {
		e.Diaper.ImageRef = *p.ImageRef
	}
	return e
}
