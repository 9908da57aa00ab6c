package models

import (
	"errors"
	"fmt"
)

var ErrInvalidFilters = errors.New("invalid filters")

// PageSizeOptions are the page sizes offered by the page-size selector.
var PageSizeOptions = []int{10, 50, 100}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// TableFilters is the persisted search/sort/page configuration of the
// comments table. Page is 1-based.
type TableFilters struct {
	Search   string     `json:"search"`
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
	Sort     SortConfig `json:"sort"`
}

func DefaultTableFilters() TableFilters {
	return TableFilters{
		Search:   "",
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
		Sort:     Unsorted(),
	}
}

func (f TableFilters) Validate() error {
	if f.Page < 1 {
		return fmt.Errorf("%w: page %d", ErrInvalidFilters, f.Page)
	}
	if f.PageSize < 1 {
		return fmt.Errorf("%w: page size %d", ErrInvalidFilters, f.PageSize)
	}
	return nil
}

// FilterUpdate is a partial TableFilters; nil fields are left untouched.
type FilterUpdate struct {
	Search   *string
	Page     *int
	PageSize *int
	Sort     *SortConfig
}

// Apply merges u into f. Whenever u carries Search or PageSize the page goes
// back to 1, even if the value itself did not change.
func (f TableFilters) Apply(u FilterUpdate) TableFilters {
	if u.Search != nil {
		f.Search = *u.Search
	}
	if u.PageSize != nil {
		f.PageSize = *u.PageSize
	}
	if u.Sort != nil {
		f.Sort = *u.Sort
	}
	if u.Page != nil {
		f.Page = *u.Page
	}
	if u.Search != nil || u.PageSize != nil {
		f.Page = 1
	}
	return f
}

func (f TableFilters) WithSearch(search string) TableFilters {
	return f.Apply(FilterUpdate{Search: &search})
}

func (f TableFilters) WithPageSize(size int) TableFilters {
	return f.Apply(FilterUpdate{PageSize: &size})
}

func (f TableFilters) WithPage(page int) TableFilters {
	return f.Apply(FilterUpdate{Page: &page})
}

func (f TableFilters) WithSort(sort SortConfig) TableFilters {
	return f.Apply(FilterUpdate{Sort: &sort})
}

// IsPageSizeOption reports whether size is one of PageSizeOptions.
func IsPageSizeOption(size int) bool {
	for _, o := range PageSizeOptions {
		if o == size {
			return true
		}
	}
	return false
}
