package images

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("image not found")

// Store guarda fotos y devuelve una referencia opaca.
// El core solo guarda y reenvía esa referencia.
// Open y Delete devuelven ErrNotFound si la referencia no existe.
type Store interface {
	Upload(ctx context.Context, data []byte, contentType string) (string, error)
	Open(ctx context.Context, ref string) (Image, error)
	Delete(ctx context.Context, ref string) error
}

type Image struct {
	Data        []byte
	ContentType string
}
