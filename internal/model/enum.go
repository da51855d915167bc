package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEnum is returned when a string is not a member of an enumeration.
var ErrInvalidEnum = errors.New("invalid enumeration value")

// Division is the organisational unit owning a document.
type Division string

const (
	DivisionHR         Division = "Human Resources"
	DivisionFinance    Division = "Finance"
	DivisionIT         Division = "Information Technology"
	DivisionMarketing  Division = "Marketing"
	DivisionOperations Division = "Operations"
)

// Category classifies what kind of document a record describes.
type Category string

const (
	CategoryPolicy   Category = "Policy"
	CategoryReport   Category = "Report"
	CategoryContract Category = "Contract"
	CategoryInvoice  Category = "Invoice"
	CategoryManual   Category = "Manual"
)

// Status is the review state of a document.
type Status string

const (
	StatusDraft    Status = "Draft"
	StatusInReview Status = "In Review"
	StatusApproved Status = "Approved"
	StatusArchived Status = "Archived"
)

// Divisions lists every Division in display order.
func Divisions() []Division {
	return []Division{DivisionHR, DivisionFinance, DivisionIT, DivisionMarketing, DivisionOperations}
}

// Categories lists every Category in display order.
func Categories() []Category {
	return []Category{CategoryPolicy, CategoryReport, CategoryContract, CategoryInvoice, CategoryManual}
}

// Statuses lists every Status in display order.
func Statuses() []Status {
	return []Status{StatusDraft, StatusInReview, StatusApproved, StatusArchived}
}

func (d Division) String() string { return string(d) }
func (c Category) String() string { return string(c) }
func (s Status) String() string   { return string(s) }

// Valid reports whether d is a known division.
func (d Division) Valid() bool { return contains(Divisions(), d) }

// Valid reports whether c is a known category.
func (c Category) Valid() bool { return contains(Categories(), c) }

// Valid reports whether s is a known status.
func (s Status) Valid() bool { return contains(Statuses(), s) }

// ParseDivision matches raw against the division names, ignoring case.
func ParseDivision(raw string) (Division, error) {
	return parseEnum(raw, "division", Divisions())
}

// ParseCategory matches raw against the category names, ignoring case.
func ParseCategory(raw string) (Category, error) {
	return parseEnum(raw, "category", Categories())
}

// ParseStatus matches raw against the status names, ignoring case.
func ParseStatus(raw string) (Status, error) {
	return parseEnum(raw, "status", Statuses())
}

// UnmarshalText lets JSON and YAML decoders accept any casing of a division name.
func (d *Division) UnmarshalText(b []byte) error {
	v, err := ParseDivision(string(b))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// UnmarshalText accepts any casing of a category name.
func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// UnmarshalText accepts any casing of a status name.
func (s *Status) UnmarshalText(b []byte) error {
	v, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func parseEnum[T ~string](raw, kind string, values []T) (T, error) {
	raw = strings.TrimSpace(raw)
	for _, v := range values {
		if strings.EqualFold(raw, string(v)) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrInvalidEnum, kind, raw)
}

func contains[T comparable](values []T, v T) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
