package notify

import (
	"context"
	"sync"

	"babylog/internal/domain/clock"
)

// Recorder es un Scheduler en memoria: guarda lo armado y no entrega nada.
// Se usa en dev y en tests.
type Recorder struct {
	mu    sync.Mutex
	armed map[string]clock.TimeOfDay
}

func NewRecorder() *Recorder {
	return &Recorder{armed: make(map[string]clock.TimeOfDay)}
}

func (r *Recorder) Arm(ctx context.Context, id string, at clock.TimeOfDay) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.armed[id] = at
	return nil
}

func (r *Recorder) Cancel(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.armed, id)
	return nil
}

// Armed devuelve la hora armada para id, si hay.
func (r *Recorder) Armed(id string) (clock.TimeOfDay, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	at, ok := r.armed[id]
	return at, ok
}
