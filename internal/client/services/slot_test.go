package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/dmitrijs2005/gophdash/internal/client/models"
	"github.com/dmitrijs2005/gophdash/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlot_MissingValueReturnsDefault(t *testing.T) {
	repo, _ := setupRepo(t)
	slot := NewFiltersSlot(repo, logging.Discard())

	assert.Equal(t, models.DefaultTableFilters(), slot.Load(context.Background()))
}

func TestSlot_StoreThenLoad(t *testing.T) {
	repo, _ := setupRepo(t)
	slot := NewFiltersSlot(repo, logging.Discard())
	ctx := context.Background()

	want := models.TableFilters{Search: "quia", Page: 3, PageSize: 50, Sort: models.SortedBy(models.SortFieldEmail, models.SortDesc)}
	require.NoError(t, slot.Store(ctx, want))

	again := NewFiltersSlot(repo, logging.Discard())
	assert.Equal(t, want, again.Load(ctx))
}

func TestSlot_StoredShape(t *testing.T) {
	repo, _ := setupRepo(t)
	slot := NewFiltersSlot(repo, logging.Discard())
	ctx := context.Background()

	require.NoError(t, slot.Store(ctx, models.DefaultTableFilters()))

	raw, err := repo.Get(ctx, FiltersKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"search":"","page":1,"pageSize":10,"sort":{"field":null,"direction":null}}`, string(raw))
}

func TestSlot_CorruptOrInvalidValueFallsBackSilently(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: `{not json`},
		{name: "wrong type", raw: `"dashboard"`},
		{name: "half sort", raw: `{"search":"","page":1,"pageSize":10,"sort":{"field":"name","direction":null}}`},
		{name: "unknown sort field", raw: `{"search":"","page":1,"pageSize":10,"sort":{"field":"body","direction":"asc"}}`},
		{name: "zero page", raw: `{"search":"","page":0,"pageSize":10}`},
		{name: "negative page size", raw: `{"search":"","page":1,"pageSize":-1}`},
		{name: "missing page size", raw: `{"search":"x","page":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _ := setupRepo(t)
			ctx := context.Background()
			require.NoError(t, repo.Set(ctx, FiltersKey, []byte(tt.raw)))

			var logs bytes.Buffer
			slot := NewFiltersSlot(repo, logging.New(&logs, "debug"))

			assert.NotPanics(t, func() {
				assert.Equal(t, models.DefaultTableFilters(), slot.Load(ctx))
			})
			assert.Contains(t, logs.String(), "level=WARN")
			assert.Contains(t, logs.String(), "slot="+FiltersKey)
		})
	}
}

func TestSlot_ReadErrorFallsBackToDefault(t *testing.T) {
	slot := NewFiltersSlot(failingRepo{err: errRepo}, logging.Discard())
	assert.Equal(t, models.DefaultTableFilters(), slot.Load(context.Background()))
}

func TestSlot_StoreError(t *testing.T) {
	slot := NewFiltersSlot(failingRepo{err: errRepo}, logging.Discard())
	err := slot.Store(context.Background(), models.DefaultTableFilters())
	assert.ErrorIs(t, err, errRepo)
}

func TestSlot_Reset(t *testing.T) {
	repo, _ := setupRepo(t)
	slot := NewFiltersSlot(repo, logging.Discard())
	ctx := context.Background()

	require.NoError(t, slot.Store(ctx, models.DefaultTableFilters().WithSearch("x")))

	def, err := slot.Reset(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTableFilters(), def)

	raw, err := repo.Get(ctx, FiltersKey)
	require.NoError(t, err)
	assert.Nil(t, raw)
}

func TestSlot_GenericWithoutValidator(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()
	slot := NewSlot(repo, "last-view", "dashboard", nil, logging.Discard())

	assert.Equal(t, "last-view", slot.Key())
	assert.Equal(t, "dashboard", slot.Load(ctx))
	require.NoError(t, slot.Store(ctx, "profile"))
	assert.Equal(t, "profile", slot.Load(ctx))
}
