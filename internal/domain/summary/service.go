package summary

import (
	"context"
	"time"

	"babylog/internal/domain/clock"
	"babylog/internal/domain/events"
)

// EventLister es lo único que el resumen necesita del store.
type EventLister interface {
	List(ctx context.Context) ([]events.CareEvent, error)
}

// Service toma un snapshot y delega en las funciones puras.
type Service struct {
	events EventLister
	now    func() time.Time
}

func NewService(ev EventLister) *Service {
	return &Service{events: ev, now: time.Now}
}

// Today devuelve la fecha actual en loc.
func (s *Service) Today(loc *time.Location) time.Time {
	start, _ := clock.DayBounds(s.now(), loc)
	return start
}

func (s *Service) Daily(ctx context.Context, day time.Time, loc *time.Location) (Summary, error) {
	evts, err := s.events.List(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Daily(evts, day, loc), nil
}

func (s *Service) Days(ctx context.Context, loc *time.Location) ([]Summary, error) {
	evts, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	return ByDay(evts, loc), nil
}

// Averages devuelve ErrNoData si no hay sueños.
func (s *Service) Averages(ctx context.Context, loc *time.Location) (Averages, error) {
	evts, err := s.events.List(ctx)
	if err != nil {
		return Averages{}, err
	}
	return Rolling(evts, loc)
}
