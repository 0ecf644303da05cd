package interfaces

import (
	"context"
	"time"
)

// ILookupCache stores encoded lookup answers (units, availability) by key.
type ILookupCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
