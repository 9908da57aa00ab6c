package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidSort = errors.New("invalid sort")

// SortField names a sortable comment column.
type SortField string

const (
	SortFieldPostID SortField = "postId"
	SortFieldName   SortField = "name"
	SortFieldEmail  SortField = "email"
)

// SortFields lists the sortable columns in display order.
var SortFields = []SortField{SortFieldPostID, SortFieldName, SortFieldEmail}

func (f SortField) Valid() bool {
	switch f {
	case SortFieldPostID, SortFieldName, SortFieldEmail:
		return true
	}
	return false
}

// ParseSortField maps user input to a SortField, ignoring case.
func ParseSortField(s string) (SortField, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "postid", "post":
		return SortFieldPostID, nil
	case "name":
		return SortFieldName, nil
	case "email":
		return SortFieldEmail, nil
	}
	return "", fmt.Errorf("%w: unknown field %q", ErrInvalidSort, s)
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

func (d SortDirection) Valid() bool {
	return d == SortAsc || d == SortDesc
}

// SortConfig is either unsorted or sorted by exactly one field in one
// direction. The zero value is unsorted.
type SortConfig struct {
	field     SortField
	direction SortDirection
}

func Unsorted() SortConfig {
	return SortConfig{}
}

// SortedBy panics on an unknown field or direction; use ParseSortField
// for untrusted input.
func SortedBy(field SortField, direction SortDirection) SortConfig {
	if !field.Valid() || !direction.Valid() {
		panic(fmt.Sprintf("models: invalid sort %q %q", field, direction))
	}
	return SortConfig{field: field, direction: direction}
}

// Get reports the active field and direction; ok is false when unsorted.
func (s SortConfig) Get() (field SortField, direction SortDirection, ok bool) {
	if s.field == "" {
		return "", "", false
	}
	return s.field, s.direction, true
}

func (s SortConfig) IsSorted() bool {
	return s.field != ""
}

func (s SortConfig) String() string {
	if !s.IsSorted() {
		return "none"
	}
	return string(s.field) + " " + string(s.direction)
}

// sortJSON keeps the stored shape {"field": ..., "direction": ...} with
// nulls for the unsorted state.
type sortJSON struct {
	Field     *SortField     `json:"field"`
	Direction *SortDirection `json:"direction"`
}

func (s SortConfig) MarshalJSON() ([]byte, error) {
	var v sortJSON
	if s.IsSorted() {
		f, d := s.field, s.direction
		v.Field, v.Direction = &f, &d
	}
	return json.Marshal(v)
}

func (s *SortConfig) UnmarshalJSON(b []byte) error {
	var v sortJSON
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch {
	case v.Field == nil && v.Direction == nil:
		*s = Unsorted()
		return nil
	case v.Field == nil || v.Direction == nil:
		return fmt.Errorf("%w: field and direction must be set together", ErrInvalidSort)
	case !v.Field.Valid():
		return fmt.Errorf("%w: unknown field %q", ErrInvalidSort, *v.Field)
	case !v.Direction.Valid():
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidSort, *v.Direction)
	}

	*s = SortConfig{field: *v.Field, direction: *v.Direction}
	return nil
}
