package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Wildcard is the wire spelling of a selector that matches every value.
const Wildcard = "all"

var (
	// ErrInvalidFilterValue is returned when a filter value is neither the wildcard
	// nor a member of the field's enumeration.
	ErrInvalidFilterValue = errors.New("invalid filter value")
	// ErrUnknownField is returned for a filter or form field name that does not exist.
	ErrUnknownField = errors.New("unknown field")
)

// Selector is either Any or exactly one enumeration value.
type Selector[T ~string] struct {
	value T
	set   bool
}

// Any matches every value.
func Any[T ~string]() Selector[T] { return Selector[T]{} }

// Only matches v and nothing else.
func Only[T ~string](v T) Selector[T] { return Selector[T]{value: v, set: true} }

// Matches reports whether v passes the selector.
func (s Selector[T]) Matches(v T) bool {
	return !s.set || s.value == v
}

// Value returns the selected value; ok is false for Any.
func (s Selector[T]) Value() (v T, ok bool) {
	return s.value, s.set
}

// IsAny reports whether the selector is the wildcard.
func (s Selector[T]) IsAny() bool { return !s.set }

func (s Selector[T]) String() string {
	if !s.set {
		return Wildcard
	}
	return string(s.value)
}

// FilterField names one of the four FilterCriteria fields.
type FilterField string

const (
	FilterDivision FilterField = "division"
	FilterCategory FilterField = "category"
	FilterStatus   FilterField = "status"
	FilterSearch   FilterField = "search"
)

// FilterFields lists the criteria fields in display order.
func FilterFields() []FilterField {
	return []FilterField{FilterSearch, FilterDivision, FilterCategory, FilterStatus}
}

// ParseFilterField resolves a field name.
func ParseFilterField(raw string) (FilterField, error) {
	f := FilterField(strings.ToLower(strings.TrimSpace(raw)))
	switch f {
	case FilterDivision, FilterCategory, FilterStatus, FilterSearch:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, raw)
}

// FilterCriteria holds the active inclusion constraints of the dashboard.
// The zero value matches everything.
type FilterCriteria struct {
	Division Selector[Division]
	Category Selector[Category]
	Status   Selector[Status]
	Search   string
}

// DefaultCriteria returns wildcard selectors and an empty search.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{}
}

// With returns a copy of c with field replaced by raw. The wildcard "all" (any case)
// or an empty string resets an enumeration field. c is left unchanged on error.
func (c FilterCriteria) With(field FilterField, raw string) (FilterCriteria, error) {
	switch field {
	case FilterSearch:
		c.Search = raw
	case FilterDivision:
		sel, err := parseSelector(raw, ParseDivision)
		if err != nil {
			return c, err
		}
		c.Division = sel
	case FilterCategory:
		sel, err := parseSelector(raw, ParseCategory)
		if err != nil {
			return c, err
		}
		c.Category = sel
	case FilterStatus:
		sel, err := parseSelector(raw, ParseStatus)
		if err != nil {
			return c, err
		}
		c.Status = sel
	default:
		return c, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return c, nil
}

// Get returns the wire value of field.
func (c FilterCriteria) Get(field FilterField) string {
	switch field {
	case FilterDivision:
		return c.Division.String()
	case FilterCategory:
		return c.Category.String()
	case FilterStatus:
		return c.Status.String()
	case FilterSearch:
		return c.Search
	}
	return ""
}

type criteriaJSON struct {
	Division string `json:"division"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Search   string `json:"search"`
}

func (c FilterCriteria) MarshalJSON() ([]byte, error) {
	return json.Marshal(criteriaJSON{
		Division: c.Division.String(),
		Category: c.Category.String(),
		Status:   c.Status.String(),
		Search:   c.Search,
	})
}

func (c *FilterCriteria) UnmarshalJSON(b []byte) error {
	var raw criteriaJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := DefaultCriteria()
	var err error
	for _, f := range []struct {
		field FilterField
		value string
	}{
		{FilterDivision, raw.Division},
		{FilterCategory, raw.Category},
		{FilterStatus, raw.Status},
		{FilterSearch, raw.Search},
	} {
		if out, err = out.With(f.field, f.value); err != nil {
			return err
		}
	}
	*c = out
	return nil
}

func parseSelector[T ~string](raw string, parse func(string) (T, error)) (Selector[T], error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.EqualFold(trimmed, Wildcard) {
		return Any[T](), nil
	}
	v, err := parse(trimmed)
	if err != nil {
		return Selector[T]{}, fmt.Errorf("%w: %v", ErrInvalidFilterValue, err)
	}
	return Only(v), nil
}
