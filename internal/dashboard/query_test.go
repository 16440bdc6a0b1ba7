package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/elsmrh/sami-yaya/internal/models"
)

func sampleRecords() []models.Rsvp {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []models.Rsvp{
		{ID: "1", Name: "Zoé", Email: "zoe@x.com", Attendance: "yes", Guests: 2, Children: 1, DietaryRestrictions: "vegan", CreatedAt: base},
		{ID: "2", Name: "Adam", Email: "adam@x.com", Attendance: "no", CreatedAt: base.Add(time.Hour)},
		{ID: "3", Name: "marie", Email: "marie@x.com", Attendance: "yes", Guests: 1, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func TestComputeStatsMixedInput(t *testing.T) {
	stats := Compute(sampleRecords())

	require.Equal(t, Stats{
		Total:         3,
		Attending:     2,
		NotAttending:  1,
		TotalAdults:   3,
		TotalChildren: 1,
		TotalPeople:   4,
		WithDietary:   1,
	}, stats)
}

func TestComputeStatsEmpty(t *testing.T) {
	require.Equal(t, Stats{}, Compute(nil))
}

func TestSearchMatchesNameAndEmailCaseInsensitively(t *testing.T) {
	records := []models.Rsvp{
		{ID: "1", Name: "Jean Dupont", Email: "jd@home.fr", Attendance: "yes"},
		{ID: "2", Name: "Luc", Email: "jean.d@x.com", Attendance: "no"},
		{ID: "3", Name: "Paul", Email: "paul@x.com", Attendance: "yes"},
	}

	q := NewQuery()
	q.Search = "jean"
	matched := q.Apply(records)
	require.Len(t, matched, 2)

	// Composing the attendance filter drops the declining match.
	q.Attendance = "yes"
	matched = q.Apply(records)
	require.Len(t, matched, 1)
	require.Equal(t, "Jean Dupont", matched[0].Name)
}

func TestSortByNameCaseInsensitive(t *testing.T) {
	q := NewQuery()
	q.SortField = SortByName
	q.SortDir = Ascending

	sorted := q.Apply(sampleRecords())
	require.Equal(t, []string{"Adam", "marie", "Zoé"}, names(sorted))
}

func TestToggleFlipsDirectionWithoutChangingSet(t *testing.T) {
	q := NewQuery()
	q.Toggle(SortByName) // new field: descending
	require.Equal(t, SortByName, q.SortField)
	require.Equal(t, Descending, q.SortDir)

	descending := q.Apply(sampleRecords())
	require.Equal(t, []string{"Zoé", "marie", "Adam"}, names(descending))

	q.Toggle(SortByName) // same field: flip to ascending
	require.Equal(t, Ascending, q.SortDir)

	ascending := q.Apply(sampleRecords())
	require.Equal(t, []string{"Adam", "marie", "Zoé"}, names(ascending))
	require.ElementsMatch(t, descending, ascending)
}

func TestSortByCreatedAtDefaultNewestFirst(t *testing.T) {
	q := NewQuery()
	sorted := q.Apply(sampleRecords())
	require.Equal(t, []string{"marie", "Adam", "Zoé"}, names(sorted))
}

func TestSortIsStableForEqualKeys(t *testing.T) {
	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []models.Rsvp{
		{ID: "a", Name: "Anna", CreatedAt: when, Attendance: "yes"},
		{ID: "b", Name: "anna", CreatedAt: when, Attendance: "yes"},
		{ID: "c", Name: "ANNA", CreatedAt: when, Attendance: "yes"},
	}

	for _, field := range []SortField{SortByName, SortByCreatedAt} {
		for _, dir := range []SortDirection{Ascending, Descending} {
			q := Query{Attendance: AttendanceAll, SortField: field, SortDir: dir}
			sorted := q.Apply(records)
			require.Equal(t, []string{"a", "b", "c"}, ids(sorted), "field=%s dir=%s", field, dir)
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	records := sampleRecords()
	q := NewQuery()
	q.SortField = SortByName
	q.Apply(records)

	require.Equal(t, []string{"Zoé", "Adam", "marie"}, names(records))
}

func names(records []models.Rsvp) []string {
	out := make([]string, len(records))
	for i, record := range records {
		out[i] = record.Name
	}
	return out
}

func ids(records []models.Rsvp) []string {
	out := make([]string, len(records))
	for i, record := range records {
		out[i] = record.ID
	}
	return out
}
