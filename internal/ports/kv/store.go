package kv

import "context"

// Store es la configuración local persistida (clave/valor).
// Get devuelve ok=false si la clave no existe.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
