// Package models defines the client-side view of the LostLink resources.
// The backend is authoritative; these types mirror its JSON contracts.
package models

import (
	"encoding/json"
	"time"
)

// ItemStatus is the finite state of a found item:
// SUBMITTED -> LISTED -> {CLAIMED, ARCHIVED}.
type ItemStatus string

const (
	ItemStatusSubmitted ItemStatus = "SUBMITTED"
	ItemStatusListed    ItemStatus = "LISTED"
	ItemStatusClaimed   ItemStatus = "CLAIMED"
	ItemStatusArchived  ItemStatus = "ARCHIVED"
)

// statusTransitions lists the transitions the admin UI may perform.
// CLAIMED and ARCHIVED are terminal.
var statusTransitions = map[ItemStatus][]ItemStatus{
	ItemStatusSubmitted: {ItemStatusListed},
	ItemStatusListed:    {ItemStatusClaimed, ItemStatusArchived},
}

// Valid reports whether s is one of the known statuses.
func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusSubmitted, ItemStatusListed, ItemStatusClaimed, ItemStatusArchived:
		return true
	}
	return false
}

// CanTransitionTo reports whether the admin may move an item from s to next.
func (s ItemStatus) CanTransitionTo(next ItemStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Deletable reports whether an item in status s may be deleted by an admin.
// Only freshly submitted items can be removed.
func (s ItemStatus) Deletable() bool {
	return s == ItemStatusSubmitted
}

// OfficeInfo is the expanded form of an item's given location: the office
// holding the item, as returned by full item fetches.
type OfficeInfo struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	WorkHours string `json:"workHours"`
}

// GivenLocation is a union: the backend returns either a bare office name
// string or an expanded OfficeInfo object depending on the fetch mode.
type GivenLocation struct {
	Name   string
	Office *OfficeInfo
}

func (g *GivenLocation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		g.Name = s
		g.Office = nil
		return nil
	}
	var info OfficeInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return err
	}
	g.Name = info.Name
	g.Office = &info
	return nil
}

func (g GivenLocation) MarshalJSON() ([]byte, error) {
	if g.Office != nil {
		return json.Marshal(g.Office)
	}
	return json.Marshal(g.Name)
}

// Display returns the office string shown to users and matched by the
// office filter. Office identity is by display string, not by id; renaming
// an office invalidates saved filter selections (known limitation).
func (g GivenLocation) Display() string {
	if g.Office != nil {
		return g.Office.Name
	}
	return g.Name
}

// Item is a found-object record.
type Item struct {
	ID             int64         `json:"id"`
	Name           string        `json:"itemName"`
	Description    string        `json:"itemDescription"`
	FoundLocation  string        `json:"foundLocation"`
	GivenLocation  GivenLocation `json:"givenLocation"`
	Image          string        `json:"image"`
	Status         ItemStatus    `json:"itemStatus"`
	CreatedDate    string        `json:"createdDate"`
	Category       string        `json:"category"`
	SubmitterEmail string        `json:"submitterEmail"`
}

// CreatedAt parses the item's creation date as a calendar date.
func (i Item) CreatedAt() (time.Time, error) {
	return ParseDate(i.CreatedDate)
}

// dateLayouts are tried in order when parsing backend dates.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ParseDate parses a backend date string and truncates it to the calendar
// day in UTC, so range comparisons are inclusive of whole days.
func ParseDate(s string) (time.Time, error) {
	var firstErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// CreateItemRequest is the payload for creating an item from the admin side.
type CreateItemRequest struct {
	Name           string `json:"itemName"`
	Description    string `json:"itemDescription"`
	FoundLocation  string `json:"foundLocation"`
	SubmitterEmail string `json:"submitterEmail"`
	Image          string `json:"image"`
	GivenLocation  string `json:"givenLocation"`
	Category       string `json:"category"`
}

// UpdateItemStatusRequest moves an item to a new status. Description is an
// optional note (e.g. who claimed the item).
type UpdateItemStatusRequest struct {
	Status      ItemStatus `json:"status"`
	Description string     `json:"description,omitempty"`
}
