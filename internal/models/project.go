package models

// Project belongs to a customer; the customer reference is owned by the
// backend and only echoed here.
type Project struct {
	ProjectID          uint64    `json:"projectId"`
	ProjectName        string    `json:"projectName"`
	ProjectDescription string    `json:"projectDescription"`
	Active             bool      `json:"active"`
	Customer           *Customer `json:"customer,omitempty"`
}
