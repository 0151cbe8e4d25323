package history

import (
	"context"

	"babylog/internal/domain/events"
)

type EventLister interface {
	List(ctx context.Context) ([]events.CareEvent, error)
}

type Service struct {
	events EventLister
}

func NewService(ev EventLister) *Service {
	return &Service{events: ev}
}

// Query trae un snapshot fresco y lo filtra/ordena.
func (s *Service) Query(ctx context.Context, kind *events.Kind, order Order) ([]events.CareEvent, error) {
	evts, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterAndSort(evts, kind, order), nil
}
