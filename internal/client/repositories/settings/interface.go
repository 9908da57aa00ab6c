package settings

import (
	"context"
	"time"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) ([]Slot, error)
}

// Slot is one stored row.
type Slot struct {
	Key       string
	Value     []byte
	UpdatedAt time.Time
}
