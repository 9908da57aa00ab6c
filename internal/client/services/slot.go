package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/gophdash/internal/client/repositories/settings"
	"github.com/dmitrijs2005/gophdash/internal/logging"
)

// Slot is a single persisted value of type T stored under a fixed key.
//
// Reads never fail: a missing, unreadable or invalid stored value yields the
// default, and the problem is only logged. Writes replace the whole value
// immediately.
type Slot[T any] struct {
	repo     settings.Repository
	key      string
	def      T
	validate func(T) error
	log      logging.Logger
}

// NewSlot binds key in repo. validate may be nil.
func NewSlot[T any](repo settings.Repository, key string, def T, validate func(T) error, log logging.Logger) *Slot[T] {
	return &Slot[T]{
		repo:     repo,
		key:      key,
		def:      def,
		validate: validate,
		log:      log.With("slot", key),
	}
}

func (s *Slot[T]) Key() string {
	return s.key
}

func (s *Slot[T]) Default() T {
	return s.def
}

func (s *Slot[T]) Load(ctx context.Context) T {
	data, err := s.repo.Get(ctx, s.key)
	if err != nil {
		s.log.Warn(ctx, "cannot read stored value, using default", "error", err)
		return s.def
	}
	if data == nil {
		return s.def
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		s.log.Warn(ctx, "stored value is corrupt, using default", "error", err)
		return s.def
	}
	if s.validate != nil {
		if err := s.validate(v); err != nil {
			s.log.Warn(ctx, "stored value is invalid, using default", "error", err)
			return s.def
		}
	}
	return v
}

func (s *Slot[T]) Store(ctx context.Context, v T) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.key, err)
	}
	if err := s.repo.Set(ctx, s.key, data); err != nil {
		return err
	}
	return nil
}

// Reset removes the stored value and returns the default.
func (s *Slot[T]) Reset(ctx context.Context) (T, error) {
	if err := s.repo.Delete(ctx, s.key); err != nil {
		return s.def, err
	}
	return s.def, nil
}
