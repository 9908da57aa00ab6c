// Package pipeline turns the full comment collection and the current table
// filters into one visible page: filter, then sort, then paginate.
//
// Every function here is pure. Inputs are never modified and results are
// fresh slices, so callers can recompute on each render.
package pipeline

import (
	"slices"
	"strings"

	"github.com/dmitrijs2005/gophdash/internal/client/models"
)

// Result is one rendered page of the pipeline.
type Result struct {
	Items      []models.Comment
	Total      int // comments matching the search
	TotalPages int
	Page       int
	PageSize   int
}

// Apply runs filter, sort and paginate for filters over comments.
func Apply(comments []models.Comment, filters models.TableFilters) Result {
	matched := Sort(Filter(comments, filters.Search), filters.Sort)
	return Result{
		Items:      Paginate(matched, filters.Page, filters.PageSize),
		Total:      len(matched),
		TotalPages: TotalPages(len(matched), filters.PageSize),
		Page:       filters.Page,
		PageSize:   filters.PageSize,
	}
}

// Range returns the 1-based positions of the first and last visible items
// within the matching set, or (0, 0) for an empty page.
func (r Result) Range() (from, to int) {
	if len(r.Items) == 0 {
		return 0, 0
	}
	from = (r.Page-1)*r.PageSize + 1
	return from, from + len(r.Items) - 1
}

// Filter keeps comments whose name, email or body contains search,
// ignoring case. An empty search keeps everything.
func Filter(comments []models.Comment, search string) []models.Comment {
	if search == "" {
		return slices.Clone(comments)
	}

	needle := strings.ToLower(search)
	result := make([]models.Comment, 0, len(comments))
	for _, c := range comments {
		if strings.Contains(strings.ToLower(c.Name), needle) ||
			strings.Contains(strings.ToLower(c.Email), needle) ||
			strings.Contains(strings.ToLower(c.Body), needle) {
			result = append(result, c)
		}
	}
	return result
}

// Sort returns a stably sorted copy. Descending order flips only strict
// comparisons, so comments with equal keys keep their input order either way.
func Sort(comments []models.Comment, sort models.SortConfig) []models.Comment {
	result := slices.Clone(comments)

	field, direction, ok := sort.Get()
	if !ok {
		return result
	}

	cmp := compareBy(field)
	slices.SortStableFunc(result, func(a, b models.Comment) int {
		c := cmp(a, b)
		if direction == models.SortDesc {
			return -c
		}
		return c
	})
	return result
}

func compareBy(field models.SortField) func(a, b models.Comment) int {
	switch field {
	case models.SortFieldPostID:
		return func(a, b models.Comment) int {
			return compare(a.PostID, b.PostID)
		}
	case models.SortFieldName:
		return func(a, b models.Comment) int {
			return compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	case models.SortFieldEmail:
		return func(a, b models.Comment) int {
			return compare(strings.ToLower(a.Email), strings.ToLower(b.Email))
		}
	}
	return func(a, b models.Comment) int { return 0 }
}

func compare[T int | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// CycleSort is the column-header click transition:
// another field (or none) → field ascending → field descending → unsorted.
func CycleSort(current models.SortConfig, field models.SortField) models.SortConfig {
	active, direction, ok := current.Get()
	if !ok || active != field {
		return models.SortedBy(field, models.SortAsc)
	}
	if direction == models.SortAsc {
		return models.SortedBy(field, models.SortDesc)
	}
	return models.Unsorted()
}

// Paginate returns the page-th window of pageSize items. Pages past the end
// are empty rather than clamped.
func Paginate(items []models.Comment, page, pageSize int) []models.Comment {
	if page < 1 || pageSize < 1 {
		return []models.Comment{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []models.Comment{}
	}
	end := min(start+pageSize, len(items))
	return slices.Clone(items[start:end])
}

// TotalPages is ceil(count / pageSize); 0 when there is nothing to show.
func TotalPages(count, pageSize int) int {
	if count <= 0 || pageSize < 1 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}
