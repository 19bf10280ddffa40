package models

import "time"

// Assignment places a resource on a project for a date range.
// The backend assumes FromDate <= ToDate; the console form rejects the
// obviously inverted case before submitting.
type Assignment struct {
	ID          uint64 `json:"id"`
	ResourceID  uint64 `json:"resourceId"`
	ProjectID   uint64 `json:"projectId"`
	FromDate    string `json:"fromDate"`
	ToDate      string `json:"toDate"`
	ProjectName string `json:"projectName,omitempty"`

	CreatedBy   string     `json:"createdBy,omitempty"`
	CreatedDate *time.Time `json:"createdDate,omitempty"`
	UpdatedBy   string     `json:"updatedBy,omitempty"`
	UpdatedDate *time.Time `json:"updatedDate,omitempty"`
}
