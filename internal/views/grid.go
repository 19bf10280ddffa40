package views

import (
	"time"

	"github.com/prismworks/timesheet-console/internal/timesheet"
)

// dateLabelLayout matches the column headers of the original grid.
const dateLabelLayout = "Jan-02-2006"

// DayHeader is one grid column.
type DayHeader struct {
	Key       string
	DateLabel string
	DowLabel  string
}

// GridCell is one rendered cell.
type GridCell struct {
	DayKey      string
	Display     string
	Billable    float64
	NonBillable float64
	Description string
}

// GridRow is one rendered row.
type GridRow struct {
	Index        int
	ProjectID    uint64
	TaskID       uint64
	Projects     []Option
	Tasks        []Option
	Cells        []GridCell
	TotalDisplay string
}

// GridView is everything the grid template needs.
type GridView struct {
	WeekSelected bool
	WeekStart    string
	WeekEnd      string
	Days         []DayHeader
	Rows         []GridRow
	GrandTotal   string
	ReadOnly     bool
	WeekLocked   bool
	Blocked      bool
	TimesheetID  uint64
	StatusName   string
	CanSave      bool
}

// NewGridView renders an editor snapshot.
func NewGridView(s timesheet.Snapshot) GridView {
	v := GridView{
		WeekSelected: s.WeekSelected,
		ReadOnly:     s.ReadOnly,
		WeekLocked:   s.WeekLocked,
		Blocked:      s.Blocked,
		TimesheetID:  s.TimesheetID,
		StatusName:   s.StatusName,
		GrandTotal:   s.GrandTotal.Display(),
		CanSave:      !s.ReadOnly && !s.Blocked,
	}
	if !s.WeekSelected {
		return v
	}

	v.WeekStart = s.Week.StartDate()
	v.WeekEnd = s.Week.EndDate()

	days := s.Week.Days()
	v.Days = make([]DayHeader, 0, len(days))
	for _, d := range days {
		v.Days = append(v.Days, dayHeader(d))
	}

	v.Rows = make([]GridRow, 0, len(s.Rows))
	for i, row := range s.Rows {
		gr := GridRow{
			Index:        i,
			ProjectID:    row.ProjectID,
			TaskID:       row.TaskID,
			Projects:     AssignedProjectOptions(s.Projects, row.ProjectID),
			Tasks:        TaskOptions(row.Tasks, row.TaskID),
			TotalDisplay: row.Total.Display(),
		}
		for _, d := range days {
			key := timesheet.DayKey(d)
			cell := row.Cells[key]
			gr.Cells = append(gr.Cells, GridCell{
				DayKey:      key,
				Display:     cell.Display(),
				Billable:    cell.Billable,
				NonBillable: cell.NonBillable,
				Description: cell.Description,
			})
		}
		v.Rows = append(v.Rows, gr)
	}
	return v
}

func dayHeader(d time.Time) DayHeader {
	return DayHeader{
		Key:       timesheet.DayKey(d),
		DateLabel: d.Format(dateLabelLayout),
		DowLabel:  d.Format("Mon"),
	}
}
