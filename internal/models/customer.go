package models

import "time"

// Customer is a client company record owned by the backend.
type Customer struct {
	CustomerID   uint64 `json:"customerId"`
	CustomerName string `json:"customerName"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	Address1     string `json:"address1"`
	Address2     string `json:"address2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Country      string `json:"country"`
	ZipCode      string `json:"zipCode"`
	Active       bool   `json:"active"`

	CreatedBy   string     `json:"createdBy,omitempty"`
	CreatedDate *time.Time `json:"createdDate,omitempty"`
	UpdatedBy   string     `json:"updatedBy,omitempty"`
	UpdatedDate *time.Time `json:"updatedDate,omitempty"`
}
