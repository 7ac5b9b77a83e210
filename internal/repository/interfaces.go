package repository

import "context"

// StateRepo stores the engine's durable state as raw string values keyed by
// name. Encoding and decoding of each value is the caller's business.
type StateRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	All(ctx context.Context) (map[string]string, error)
}
