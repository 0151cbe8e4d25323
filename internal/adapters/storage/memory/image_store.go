package memory

import (
	"context"
	"sync"

	"babylog/internal/ports/images"

	"github.com/google/uuid"
)

type imageStore struct {
	mu    sync.RWMutex
	byRef map[string]images.Image
}

func NewImageStore() images.Store {
	return &imageStore{byRef: make(map[string]images.Image)}
}

func (s *imageStore) Upload(ctx context.Context, data []byte, contentType string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ref := uuid.NewString()
	s.byRef[ref] = images.Image{
		Data:        append([]byte(nil), data...),
		ContentType: contentType,
	}
	return ref, nil
}

func (s *imageStore) Open(ctx context.Context, ref string) (images.Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	img, ok := s.byRef[ref]
	if !ok {
		return images.Image{}, images.ErrNotFound
	}
	img.Data = append([]byte(nil), img.Data...)
	return img, nil
}

func (s *imageStore) Delete(ctx context.Context, ref string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byRef[ref]; !ok {
		return images.ErrNotFound
	}
	delete(s.byRef, ref)
	return nil
}
