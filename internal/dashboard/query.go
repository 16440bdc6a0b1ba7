// Package dashboard derives the admin dashboard's statistics and filtered,
// sorted views from an in-memory RSVP snapshot. Everything here is pure:
// callers fetch the records once and recompute views on every input change.
package dashboard

import (
	"sort"
	"strings"

	"github.com/elsmrh/sami-yaya/internal/models"
)

// Stats aggregates the record collection. Adult, child and dietary counts
// only consider attending records.
type Stats struct {
	Total         int `json:"total"`
	Attending     int `json:"attending"`
	NotAttending  int `json:"notAttending"`
	TotalAdults   int `json:"totalAdults"`
	TotalChildren int `json:"totalChildren"`
	TotalPeople   int `json:"totalPeople"`
	WithDietary   int `json:"withDietary"`
}

// Compute derives statistics from the full record collection.
func Compute(records []models.Rsvp) Stats {
	var stats Stats
	stats.Total = len(records)

	for _, record := range records {
		if !record.Attending() {
			stats.NotAttending++
			continue
		}
		stats.Attending++
		stats.TotalAdults += record.Guests
		stats.TotalChildren += record.Children
		if record.DietaryRestrictions != "" {
			stats.WithDietary++
		}
	}

	stats.TotalPeople = stats.TotalAdults + stats.TotalChildren
	return stats
}

// SortField selects the sort key.
type SortField string

const (
	SortByCreatedAt SortField = "createdAt"
	SortByName      SortField = "name"
)

// SortDirection orders results ascending or descending.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// AttendanceAll disables attendance filtering.
const AttendanceAll = "all"

// Query holds the dashboard's view inputs: free-text search, attendance
// filter and sort state. The zero value is not useful; use NewQuery.
type Query struct {
	Search     string
	Attendance string
	SortField  SortField
	SortDir    SortDirection
}

// NewQuery returns the dashboard's initial view: everything visible, newest
// responses first.
func NewQuery() Query {
	return Query{
		Attendance: AttendanceAll,
		SortField:  SortByCreatedAt,
		SortDir:    Descending,
	}
}

// Toggle switches the sort key. Selecting the active field flips the
// direction; selecting a new field resets to descending.
func (q *Query) Toggle(field SortField) {
	if q.SortField == field {
		if q.SortDir == Ascending {
			q.SortDir = Descending
		} else {
			q.SortDir = Ascending
		}
		return
	}
	q.SortField = field
	q.SortDir = Descending
}

// Apply filters and sorts a copy of the records; the input slice is never
// mutated. Both filters compose: a record must match the attendance filter
// and contain the search term in its name or email, case-insensitively.
// The sort is stable, so equal keys keep their original relative order.
func (q Query) Apply(records []models.Rsvp) []models.Rsvp {
	filtered := make([]models.Rsvp, 0, len(records))
	term := strings.ToLower(strings.TrimSpace(q.Search))

	for _, record := range records {
		if q.Attendance != "" && q.Attendance != AttendanceAll && record.Attendance != q.Attendance {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(record.Name), term) &&
			!strings.Contains(strings.ToLower(record.Email), term) {
			continue
		}
		filtered = append(filtered, record)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		var less bool
		switch q.SortField {
		case SortByName:
			less = strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		default:
			less = filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		}
		if q.SortDir == Descending {
			return !less && !equalKey(q.SortField, filtered[i], filtered[j])
		}
		return less
	})

	return filtered
}

func equalKey(field SortField, a, b models.Rsvp) bool {
	if field == SortByName {
		return strings.EqualFold(a.Name, b.Name)
	}
	return a.CreatedAt.Equal(b.CreatedAt)
}
