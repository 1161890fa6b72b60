// Package filter implements the client-side item pipeline stage that turns a
// fetched item list into a display-ready one: keyword, office, and date-range
// filtering plus date ordering. Apply is a pure function so the pipeline can
// be re-run on every filter change without touching the fetched data.
package filter

import (
	"sort"
	"strings"
	"time"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
)

type Sort string

const (
	SortNewest Sort = "newest"
	SortOldest Sort = "oldest"
)

// State is the ephemeral filter selection. It is never persisted.
//
// Offices holds office display strings. Selections made by stable office id
// should be resolved to current display names with OfficeNames before
// building a State, so office renames do not silently break saved filters.
type State struct {
	Keyword  string
	Sort     Sort
	Offices  []string
	DateFrom *time.Time
	DateTo   *time.Time

	// Status re-filters locally. Leave empty when the fetch was already
	// scoped by status server-side.
	Status models.ItemStatus
}

// OfficeNames resolves stable office ids to their current display names.
// Unknown ids are skipped.
func OfficeNames(offices []models.Office, ids []int64) []string {
	byID := make(map[int64]string, len(offices))
	for _, o := range offices {
		byID[o.ID] = o.Name
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := byID[id]; ok {
			names = append(names, name)
		}
	}
	return names
}

// Apply filters and sorts items according to st. The input slice is never
// mutated; the result is a fresh slice. Same inputs produce the same output
// membership and ordering. Ties on date keep the fetch order (stable sort).
func Apply(items []models.Item, st State) []models.Item {
	officeSet := make(map[string]struct{}, len(st.Offices))
	for _, name := range st.Offices {
		officeSet[name] = struct{}{}
	}
	keyword := strings.ToLower(st.Keyword)

	out := make([]models.Item, 0, len(items))
	for _, item := range items {
		if st.Status != "" && item.Status != st.Status {
			continue
		}
		// Keyword matches the display title only, not the description.
		if keyword != "" && !strings.Contains(strings.ToLower(item.Name), keyword) {
			continue
		}
		if len(officeSet) > 0 {
			if _, ok := officeSet[item.GivenLocation.Display()]; !ok {
				continue
			}
		}
		if !matchesDate(item, st.DateFrom, st.DateTo) {
			continue
		}
		out = append(out, item)
	}

	if st.Sort == SortNewest || st.Sort == SortOldest {
		sortByDate(out, st.Sort)
	}
	return out
}

// matchesDate applies an inclusive calendar-date range test. An absent bound
// imposes no constraint on that side. Items whose date cannot be parsed are
// excluded only when a range is active.
func matchesDate(item models.Item, from, to *time.Time) bool {
	if from == nil && to == nil {
		return true
	}
	d, err := item.CreatedAt()
	if err != nil {
		return false
	}
	if from != nil && d.Before(day(*from)) {
		return false
	}
	if to != nil && d.After(day(*to)) {
		return false
	}
	return true
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sortByDate(items []models.Item, order Sort) {
	sort.SliceStable(items, func(i, j int) bool {
		di, erri := items[i].CreatedAt()
		dj, errj := items[j].CreatedAt()
		if erri != nil {
			di = time.Time{}
		}
		if errj != nil {
			dj = time.Time{}
		}
		if order == SortNewest {
			return di.After(dj)
		}
		return di.Before(dj)
	})
}
