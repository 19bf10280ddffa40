package models

// DateLayout is the calendar-date format used across the timesheet API
// (week boundaries and per-day entries carry no time component).
const DateLayout = "2006-01-02"

// Timesheet statuses as the backend reports them.
const (
	TimesheetStatusNew       = "New"
	TimesheetStatusSubmitted = "Submitted"
	TimesheetStatusApproved  = "Approved"
)

// Timesheet is one resource's week of work, grouped into lines per
// (project, task). Identity is pinned to a single Monday..Sunday span;
// the backend enforces at most one timesheet per (resource, week).
type Timesheet struct {
	TimesheetID   uint64          `json:"timesheetId"`
	ResourceID    uint64          `json:"resourceId"`
	ResourceName  string          `json:"resourceName,omitempty"`
	WeekStartDate string          `json:"weekStartDate"`
	WeekEndDate   string          `json:"weekEndDate"`
	StatusID      int             `json:"statusId"`
	StatusName    string          `json:"statusName,omitempty"`
	TotalHours    float64         `json:"totalHours,omitempty"`
	Lines         []TimesheetLine `json:"lines"`
}

// TimesheetLine is one (project, task) pairing with per-day entries.
type TimesheetLine struct {
	ProjectID uint64          `json:"projectId"`
	TaskID    uint64          `json:"taskId"`
	Status    string          `json:"status,omitempty"`
	Hours     []TimesheetHour `json:"hours"`
}

// TimesheetHour is a single day's entry within a line. Billable and
// non-billable hours are tracked independently.
type TimesheetHour struct {
	WeekDate    string  `json:"weekDate"`
	Billable    float64 `json:"workingHoursBillable"`
	NonBillable float64 `json:"workingHoursNotBillable"`
	Notes       string  `json:"notes"`
}
