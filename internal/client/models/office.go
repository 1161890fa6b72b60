package models

// Office is a physical drop-off/pickup point for found items. Items reference
// offices through the givenLocation display string, not by id.
type Office struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	WorkHours   string `json:"workHours"`
	Contact     string `json:"contact"`
	CreatedDate string `json:"createdDate"`
	UpdatedDate string `json:"updatedDate"`
	CreatedBy   string `json:"createdBy"`
	UpdatedBy   string `json:"updatedBy"`
}

type CreateOfficeRequest struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	WorkHours string `json:"workHours"`
	Contact   string `json:"contact"`
}

// UpdateOfficeRequest is a partial update; nil fields are left untouched.
type UpdateOfficeRequest struct {
	Name      *string `json:"name,omitempty"`
	Location  *string `json:"location,omitempty"`
	WorkHours *string `json:"workHours,omitempty"`
	Contact   *string `json:"contact,omitempty"`
}
