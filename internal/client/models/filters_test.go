package models

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func onPage(page int) TableFilters {
	f := DefaultTableFilters()
	f.Page = page
	return f
}

func TestDefaultTableFilters(t *testing.T) {
	f := DefaultTableFilters()
	assert.Equal(t, "", f.Search)
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, 10, f.PageSize)
	assert.False(t, f.Sort.IsSorted())
	assert.NoError(t, f.Validate())
}

func TestTableFilters_Validate(t *testing.T) {
	f := DefaultTableFilters()
	f.Page = 0
	assert.ErrorIs(t, f.Validate(), ErrInvalidFilters)

	f = DefaultTableFilters()
	f.PageSize = -5
	assert.ErrorIs(t, f.Validate(), ErrInvalidFilters)
}

func TestTableFilters_UpdatePolicy(t *testing.T) {
	search := "hi"
	size := 50
	page := 7
	sort := SortedBy(SortFieldName, SortAsc)

	tests := []struct {
		name   string
		update FilterUpdate
		want   TableFilters
	}{
		{
			name:   "search resets page",
			update: FilterUpdate{Search: &search},
			want:   TableFilters{Search: "hi", Page: 1, PageSize: 10},
		},
		{
			name:   "page size resets page",
			update: FilterUpdate{PageSize: &size},
			want:   TableFilters{Page: 1, PageSize: 50},
		},
		{
			name:   "sort keeps page",
			update: FilterUpdate{Sort: &sort},
			want:   TableFilters{Page: 3, PageSize: 10, Sort: sort},
		},
		{
			name:   "page alone",
			update: FilterUpdate{Page: &page},
			want:   TableFilters{Page: 7, PageSize: 10},
		},
		{
			name:   "search wins over explicit page in the same update",
			update: FilterUpdate{Search: &search, Page: &page},
			want:   TableFilters{Search: "hi", Page: 1, PageSize: 10},
		},
		{
			name:   "empty update",
			update: FilterUpdate{},
			want:   TableFilters{Page: 3, PageSize: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := onPage(3).Apply(tt.update)
			assert.Empty(t, cmp.Diff(tt.want, got, cmp.AllowUnexported(SortConfig{})))
		})
	}
}

func TestTableFilters_SameValueStillResetsPage(t *testing.T) {
	f := onPage(3)
	assert.Equal(t, 1, f.WithPageSize(f.PageSize).Page)
	assert.Equal(t, 1, onPage(3).WithSearch("").Page)
}

func TestTableFilters_WithHelpers(t *testing.T) {
	f := onPage(3)
	assert.Equal(t, 3, f.WithSort(SortedBy(SortFieldEmail, SortDesc)).Page)
	assert.Equal(t, 9, f.WithPage(9).Page)
	assert.Equal(t, 3, f.Page, "receiver must not change")
}

func TestTableFilters_JSONShape(t *testing.T) {
	f := TableFilters{Search: "x", Page: 2, PageSize: 50, Sort: SortedBy(SortFieldPostID, SortDesc)}

	b, err := json.Marshal(f)
	require.NoError(t, err)
	assert.JSONEq(t, `{"search":"x","page":2,"pageSize":50,"sort":{"field":"postId","direction":"desc"}}`, string(b))

	var back TableFilters
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, f, back)
}

func TestIsPageSizeOption(t *testing.T) {
	for _, n := range []int{10, 50, 100} {
		assert.True(t, IsPageSizeOption(n))
	}
	for _, n := range []int{0, 20, 1000} {
		assert.False(t, IsPageSizeOption(n))
	}
}
