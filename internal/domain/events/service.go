package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"babylog/internal/domain/events/details"
	"babylog/internal/ports/images"

	"github.com/google/uuid"
)

var ErrImagesUnavailable = errors.New("image store not configured")

type Service struct {
	repo   Repository
	images images.Store
	now    func() time.Time
}

// NewService crea el servicio. imgs puede ser nil (sin fotos).
func NewService(repo Repository, imgs images.Store) *Service {
	return &Service{
		repo:   repo,
		images: imgs,
		now:    time.Now,
	}
}

// List trae el snapshot completo; cada pantalla pide el suyo.
func (s *Service) List(ctx context.Context) ([]CareEvent, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (CareEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return CareEvent{}, ErrInvalidInput
	}
	return s.repo.GetByID(ctx, id)
}

// Create persiste un evento nuevo (sin ID) armado con NewFeed/NewSleep/NewDiaper.
// Asigna ID y, si falta, RecordedAt.
func (s *Service) Create(ctx context.Context, e CareEvent) (CareEvent, error) {
	if e.ID != "" {
		return CareEvent{}, ErrInvalidInput
	}
	if err := e.Classify(); err != nil {
		return CareEvent{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	e.ID = uuid.NewString()
	if e.RecordedAt.IsZero() {
		e.RecordedAt = s.now()
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return CareEvent{}, err
	}
	return e, nil
}

type UpdateInput struct {
	Note       *string
	FeedSide   *string
	DiaperType *string
}

// Update edita nota y clasificación. ID y RecordedAt no cambian nunca.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (CareEvent, error) {
	current, err := s.GetByID(ctx, id)
	if err != nil {
		return CareEvent{}, err
	}

	var p Patch
	if in.Note != nil {
		note := strings.TrimSpace(*in.Note)
		p.Note = &note
	}
	if in.FeedSide != nil {
		side := details.ParseFeedSide(*in.FeedSide)
		if current.Kind != KindFeed || !side.Known() {
			return CareEvent{}, ErrInvalidInput
		}
		p.FeedSide = &side
	}
	if in.DiaperType != nil {
		typ := details.ParseDiaperType(*in.DiaperType)
		if current.Kind != KindDiaper || !typ.Known() {
			return CareEvent{}, ErrInvalidInput
		}
		p.DiaperType = &typ
	}

	if p.Empty() {
		return current, nil
	}
	if err := s.repo.Update(ctx, current.ID, p); err != nil {
		return CareEvent{}, err
	}
	return s.repo.GetByID(ctx, current.ID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidInput
	}
	return s.repo.Delete(ctx, id)
}

// AttachImage sube la foto de un cambio de pañal y guarda la referencia.
func (s *Service) AttachImage(ctx context.Context, id string, data []byte, contentType string) (CareEvent, error) {
	if s.images == nil {
		return CareEvent{}, ErrImagesUnavailable
	}
	if len(data) == 0 {
		return CareEvent{}, ErrInvalidInput
	}

	current, err := s.GetByID(ctx, id)
	if err != nil {
		return CareEvent{}, err
	}
	if current.Kind != KindDiaper {
		return CareEvent{}, ErrInvalidInput
	}

	ref, err := s.images.Upload(ctx, data, contentType)
	if err != nil {
		return CareEvent{}, fmt.Errorf("upload image: %w", err)
	}

	if err := s.repo.Update(ctx, current.ID, Patch{ImageRef: &ref}); err != nil {
		// La foto quedó subida sin evento que la apunte: se borra.
		if derr := s.images.Delete(ctx, ref); derr != nil {
			return CareEvent{}, fmt.Errorf("save image ref (orphaned image %s: %v): %w", ref, derr, err)
		}
		return CareEvent{}, err
	}

	// Reemplazo: la foto anterior ya no tiene quién la apunte. Best effort,
	// el evento ya quedó actualizado.
	if current.Diaper != nil && current.Diaper.ImageRef != "" && current.Diaper.ImageRef != ref {
		_ = s.images.Delete(ctx, current.Diaper.ImageRef)
	}
	return s.repo.GetByID(ctx, current.ID)
}

// OpenImage resuelve la foto de un evento. images.ErrNotFound si no tiene.
func (s *Service) OpenImage(ctx context.Context, id string) (images.Image, error) {
	if s.images == nil {
		return images.Image{}, ErrImagesUnavailable
	}
	e, err := s.GetByID(ctx, id)
	if err != nil {
		return images.Image{}, err
	}
	if e.Diaper == nil || e.Diaper.ImageRef == "" {
		return images.Image{}, images.ErrNotFound
	}
	return s.images.Open(ctx, e.Diaper.ImageRef)
}
