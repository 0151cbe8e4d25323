package memory

import (
	"context"
	"errors"
	"slices"
	"sync"

	"babylog/internal/domain/events"
)

// eventRepo guarda los eventos en orden de inserción, así List es estable.
type eventRepo struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]events.CareEvent
}

func NewEventRepo() events.Repository {
	return &eventRepo{
		byID: make(map[string]events.CareEvent),
	}
}

// Seed carga eventos tal cual (sin validar), como si vinieran del store.
// Útil para tests y para cargar datos con kinds desconocidos.
func (r *eventRepo) Seed(evts ...events.CareEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range evts {
		if _, exists := r.byID[e.ID]; !exists {
			r.order = append(r.order, e.ID)
		}
		r.byID[e.ID] = e.Clone()
	}
}

func (r *eventRepo) List(ctx context.Context) ([]events.CareEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]events.CareEvent, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (events.CareEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.byID[id]
	if !ok {
		return events.CareEvent{}, events.ErrNotFound
	}
	return e.Clone(), nil
}

func (r *eventRepo) Create(ctx context.Context, e events.CareEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		return errors.New("event id required")
	}
	if _, exists := r.byID[e.ID]; exists {
		return errors.New("event already exists")
	}

	r.order = append(r.order, e.ID)
	r.byID[e.ID] = e.Clone()
	return nil
}

func (r *eventRepo) Update(ctx context.Context, id string, p events.Patch) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.byID[id]
	if !ok {
		return events.ErrNotFound
	}
	r.byID[id] = p.Apply(e)
	return nil
}

func (r *eventRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return events.ErrNotFound
	}
	delete(r.byID, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}
