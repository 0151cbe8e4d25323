package notify

import (
	"context"

	"babylog/internal/domain/clock"
)

// Scheduler programa una notificación diaria a una hora de reloj de pared.
// Arm reemplaza cualquier programación previa con el mismo id.
type Scheduler interface {
	Arm(ctx context.Context, id string, at clock.TimeOfDay) error
	Cancel(ctx context.Context, id string) error
}
