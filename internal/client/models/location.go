package models

import (
	"fmt"
	"regexp"
)

// Location is a QR-code-addressable reporting point, distinct from Office.
//
// The backend packs the details and work hours into the description field as
// "<details> (<start> - <end>)". The packed string is treated purely as a
// serialization detail: client code works with the structured WorkHours
// record and converts at the API boundary.
type Location struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedDate string `json:"createdDate"`
	UpdatedDate string `json:"updatedDate"`
	CreatedBy   string `json:"createdBy"`
	UpdatedBy   string `json:"updatedBy"`
}

// WorkHours is the structured form of a location description.
type WorkHours struct {
	Details string
	Start   string
	End     string
}

var descriptionRe = regexp.MustCompile(`^(.*) \((.*) - (.*)\)$`)

// ParseWorkHours splits a packed description back into its parts. When the
// description does not match the convention, the whole string becomes the
// details and the hour fields stay empty rather than being guessed.
func ParseWorkHours(description string) WorkHours {
	m := descriptionRe.FindStringSubmatch(description)
	if m == nil {
		return WorkHours{Details: description}
	}
	return WorkHours{Details: m[1], Start: m[2], End: m[3]}
}

// Pack serializes the record into the backend's description convention.
// A record without hours round-trips as bare details.
func (w WorkHours) Pack() string {
	if w.Start == "" && w.End == "" {
		return w.Details
	}
	return fmt.Sprintf("%s (%s - %s)", w.Details, w.Start, w.End)
}

// Hours reports the location's work hours parsed from its description.
func (l Location) Hours() WorkHours {
	return ParseWorkHours(l.Description)
}

type CreateLocationRequest struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateLocationRequest is a partial update; nil fields are left untouched.
type UpdateLocationRequest struct {
	Slug        *string `json:"slug,omitempty"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
