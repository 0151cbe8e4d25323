package alarm

import (
	"context"
	"errors"
	"time"

	"babylog/internal/domain/clock"
	"babylog/internal/domain/events"
	"babylog/internal/domain/summary"
	"babylog/internal/platform/logger"
	"babylog/internal/ports/kv"
	"babylog/internal/ports/notify"
)

// Claves en la configuración local.
const (
	KeyWakeTimeOverride = "wake_time_override"
	KeyAlarmState       = "alarm_state"

	// NotificationID identifica la notificación diaria de despertar.
	NotificationID = "wake-up-alarm"

	stateOn  = "on"
	stateOff = "off"
)

// EventLister evita depender del servicio completo de eventos.
type EventLister interface {
	List(ctx context.Context) ([]events.CareEvent, error)
}

type Service struct {
	events    EventLister
	settings  kv.Store
	scheduler notify.Scheduler
	log       logger.Logger
}

func NewService(ev EventLister, settings kv.Store, scheduler notify.Scheduler, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	return &Service{
		events:    ev,
		settings:  settings,
		scheduler: scheduler,
		log:       log,
	}
}

// Status es lo que muestra la pantalla de alarma.
type Status struct {
	Averages *summary.Averages // nil = sin sueños registrados
	Override *clock.TimeOfDay
	Decision *Decision // nil = no hay hora posible
	Enabled  bool
}

func (s *Service) Status(ctx context.Context, loc *time.Location) (Status, error) {
	evts, err := s.events.List(ctx)
	if err != nil {
		return Status{}, err
	}

	var st Status
	avg, err := summary.Rolling(evts, loc)
	switch {
	case err == nil:
		st.Averages = &avg
	case errors.Is(err, summary.ErrNoData):
		// la UI muestra valores neutros
	default:
		return Status{}, err
	}

	st.Override, err = s.override(ctx)
	if err != nil {
		return Status{}, err
	}

	if d, err := Resolve(st.Averages, st.Override); err == nil {
		st.Decision = &d
	}

	st.Enabled, err = s.enabled(ctx)
	if err != nil {
		return Status{}, err
	}
	return st, nil
}

// SetWakeTime guarda la hora elegida; si la alarma está activa la re-arma.
func (s *Service) SetWakeTime(ctx context.Context, at clock.TimeOfDay, loc *time.Location) (Status, error) {
	if err := s.settings.Set(ctx, KeyWakeTimeOverride, at.String()); err != nil {
		return Status{}, err
	}
	return s.rearm(ctx, loc)
}

// ClearWakeTime vuelve a usar el promedio.
func (s *Service) ClearWakeTime(ctx context.Context, loc *time.Location) (Status, error) {
	if err := s.settings.Delete(ctx, KeyWakeTimeOverride); err != nil {
		return Status{}, err
	}
	return s.rearm(ctx, loc)
}

// SetEnabled prende o apaga la alarma. Prender sin hora posible devuelve
// ErrNoWakeTime y no cambia el estado guardado.
func (s *Service) SetEnabled(ctx context.Context, on bool, loc *time.Location) (Status, error) {
	if !on {
		if err := s.scheduler.Cancel(ctx, NotificationID); err != nil {
			return Status{}, err
		}
		if err := s.settings.Set(ctx, KeyAlarmState, stateOff); err != nil {
			return Status{}, err
		}
		s.log.Info("wake-up alarm cancelled", nil)
		return s.Status(ctx, loc)
	}

	st, err := s.Status(ctx, loc)
	if err != nil {
		return Status{}, err
	}
	if st.Decision == nil {
		return Status{}, ErrNoWakeTime
	}
	if err := s.scheduler.Arm(ctx, NotificationID, st.Decision.WakeTime); err != nil {
		return Status{}, err
	}
	if err := s.settings.Set(ctx, KeyAlarmState, stateOn); err != nil {
		return Status{}, err
	}
	s.log.Info("wake-up alarm armed", map[string]any{
		"at":     st.Decision.WakeTime.String(),
		"source": string(st.Decision.Source),
	})

	st.Enabled = true
	return st, nil
}

func (s *Service) rearm(ctx context.Context, loc *time.Location) (Status, error) {
	st, err := s.Status(ctx, loc)
	if err != nil {
		return Status{}, err
	}
	if !st.Enabled {
		return st, nil
	}

	if st.Decision == nil {
		// Sin hora posible: no dejamos una alarma vieja armada.
		if err := s.scheduler.Cancel(ctx, NotificationID); err != nil {
			return Status{}, err
		}
		s.log.Warn("wake-up alarm cancelled: no wake time available", nil)
		return st, nil
	}

	if err := s.scheduler.Arm(ctx, NotificationID, st.Decision.WakeTime); err != nil {
		return Status{}, err
	}
	s.log.Info("wake-up alarm re-armed", map[string]any{
		"at":     st.Decision.WakeTime.String(),
		"source": string(st.Decision.Source),
	})
	return st, nil
}

func (s *Service) override(ctx context.Context) (*clock.TimeOfDay, error) {
	v, ok, err := s.settings.Get(ctx, KeyWakeTimeOverride)
	if err != nil || !ok {
		return nil, err
	}
	t, err := clock.ParseTimeOfDay(v)
	if err != nil {
		// Valor corrupto: se ignora y se usa el promedio.
		s.log.Warn("ignoring invalid wake time override", map[string]any{"value": v})
		return nil, nil
	}
	return &t, nil
}

func (s *Service) enabled(ctx context.Context) (bool, error) {
	v, ok, err := s.settings.Get(ctx, KeyAlarmState)
	if err != nil || !ok {
		return false, err
	}
	return v == stateOn, nil
}
