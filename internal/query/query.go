// Package query derives the filtered view and summary counts of a document list.
// Nothing here mutates its inputs and nothing is cached; callers recompute on read.
package query

import (
	"strings"

	"docdash/internal/model"
)

// Stats are the dashboard summary counts.
// Archived has its own counter; consumers decide whether to show it.
type Stats struct {
	Total    int `json:"total"`
	Draft    int `json:"draft"`
	InReview int `json:"in_review"`
	Approved int `json:"approved"`
	Archived int `json:"archived"`
}

// Count returns the counter for s.
func (st Stats) Count(s model.Status) int {
	switch s {
	case model.StatusDraft:
		return st.Draft
	case model.StatusInReview:
		return st.InReview
	case model.StatusApproved:
		return st.Approved
	case model.StatusArchived:
		return st.Archived
	}
	return 0
}

// Match reports whether doc passes every constraint in c.
func Match(doc model.Document, c model.FilterCriteria) bool {
	return match(doc, c, strings.ToLower(c.Search))
}

// Filter returns the documents matching c in their original order.
// The result is a new slice; docs is not modified.
func Filter(docs []model.Document, c model.FilterCriteria) []model.Document {
	needle := strings.ToLower(c.Search)
	out := make([]model.Document, 0, len(docs))
	for _, d := range docs {
		if match(d, c, needle) {
			out = append(out, d)
		}
	}
	return out
}

// Aggregate counts docs in a single pass.
func Aggregate(docs []model.Document) Stats {
	st := Stats{Total: len(docs)}
	for _, d := range docs {
		switch d.Status {
		case model.StatusDraft:
			st.Draft++
		case model.StatusInReview:
			st.InReview++
		case model.StatusApproved:
			st.Approved++
		case model.StatusArchived:
			st.Archived++
		}
	}
	return st
}

func match(d model.Document, c model.FilterCriteria, needle string) bool {
	return c.Division.Matches(d.Division) &&
		c.Category.Matches(d.Category) &&
		c.Status.Matches(d.Status) &&
		matchSearch(d, needle)
}

// needle must already be lower-cased.
func matchSearch(d model.Document, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(d.Name), needle) ||
		strings.Contains(strings.ToLower(d.Number), needle)
}
