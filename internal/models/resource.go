package models

import "time"

// Resource is an employee record owned by the backend.
type Resource struct {
	ResourceID  uint64 `json:"resourceId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	EmailID     string `json:"emailId"`
	PhoneNumber string `json:"phoneNumber"`
	Address1    string `json:"address1"`
	Address2    string `json:"address2"`
	City        string `json:"city"`
	State       string `json:"state"`
	Country     string `json:"country"`
	ZipCode     string `json:"zipCode"`
	Role        Role   `json:"role"`
	Active      bool   `json:"active"`

	CreatedBy   string     `json:"createdBy,omitempty"`
	CreatedDate *time.Time `json:"createdDate,omitempty"`
	UpdatedBy   string     `json:"updatedBy,omitempty"`
	UpdatedDate *time.Time `json:"updatedDate,omitempty"`
}

// FullName joins first and last name for display.
func (r Resource) FullName() string {
	if r.FirstName == "" {
		return r.LastName
	}
	if r.LastName == "" {
		return r.FirstName
	}
	return r.FirstName + " " + r.LastName
}
