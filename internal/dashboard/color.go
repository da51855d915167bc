package dashboard

import "docdash/internal/model"

// StatusColor is the badge colour of a status, as a 256-colour terminal index
// paired with the CSS-ish name used by the JSON API.
type StatusColor struct {
	Name     string
	Terminal string
}

var statusColors = map[model.Status]StatusColor{
	model.StatusApproved: {Name: "green", Terminal: "42"},
	model.StatusInReview: {Name: "yellow", Terminal: "220"},
	model.StatusDraft:    {Name: "blue", Terminal: "39"},
	model.StatusArchived: {Name: "gray", Terminal: "245"},
}

// ColorOf returns the badge colour of s; unknown statuses are gray.
func ColorOf(s model.Status) StatusColor {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return statusColors[model.StatusArchived]
}
