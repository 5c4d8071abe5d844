package usecase

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is what every usecase returns when the addressed row
	// does not exist; handlers map it to a 404.
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")
)

// Cache is the slice of the Redis client the usecases need for the
// public read endpoints. A nil Cache disables caching.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
