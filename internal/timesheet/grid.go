package timesheet

import (
	"errors"
	"strconv"

	"github.com/prismworks/timesheet-console/internal/models"
)

var (
	// ErrCellDetailsRequired rejects a cell edit missing billable hours or
	// a description.
	ErrCellDetailsRequired = errors.New("billable hours and description are required")

	// ErrNothingToSave rejects a save whose payload would contain no lines.
	ErrNothingToSave = errors.New("nothing to save")

	// ErrRowOutOfRange flags a row index the grid does not have.
	ErrRowOutOfRange = errors.New("row index out of range")

	// ErrDayOutsideWeek flags a cell edit addressed outside the selected week.
	ErrDayOutsideWeek = errors.New("day is outside the selected week")
)

// Cell is one (row, day) entry. Billable and non-billable hours are tracked
// independently.
type Cell struct {
	Billable    float64
	NonBillable float64
	Description string
}

// Empty reports whether the cell contributes nothing: no positive hours and
// no description. Empty cells display as "0 | 0" and are excluded from the
// submission payload.
func (c Cell) Empty() bool {
	return c.Billable <= 0 && c.NonBillable <= 0 && c.Description == ""
}

// Display renders the cell the way the grid shows it.
func (c Cell) Display() string {
	return formatHours(c.Billable) + " | " + formatHours(c.NonBillable)
}

// ValidateCellEdit enforces the cell modal's rule: billable hours and
// description must both be provided before the edit can be saved.
func ValidateCellEdit(c Cell) error {
	if c.Billable <= 0 || c.Description == "" {
		return ErrCellDetailsRequired
	}
	return nil
}

// Totals is a billable/non-billable hour pair.
type Totals struct {
	Billable    float64
	NonBillable float64
}

// Combined is billable plus non-billable.
func (t Totals) Combined() float64 {
	return t.Billable + t.NonBillable
}

// Display renders totals in the grid's "b | nb" form.
func (t Totals) Display() string {
	return formatHours(t.Billable) + " | " + formatHours(t.NonBillable)
}

// Row is one grid row: a project selection, a task scoped to it, and a cell
// per populated day keyed by calendar-date string.
type Row struct {
	ProjectID uint64
	TaskID    uint64
	Cells     map[string]Cell

	// taskOptions is the task dropdown for the selected project, installed
	// by the editor's latest-wins load.
	taskOptions []models.Task
	taskAttempt uint64
}

func newRow() *Row {
	return &Row{Cells: make(map[string]Cell)}
}

// TaskOptions is the task dropdown currently loaded for this row.
func (r *Row) TaskOptions() []models.Task {
	return r.taskOptions
}

// Cell returns the entry for a day, zero-valued when unset.
func (r *Row) Cell(dayKey string) Cell {
	return r.Cells[dayKey]
}

// Total sums this row's populated cells, recomputed on every call.
func (r *Row) Total() Totals {
	var t Totals
	for _, c := range r.Cells {
		t.Billable += c.Billable
		t.NonBillable += c.NonBillable
	}
	return t
}

// Empty reports whether every cell of the row is empty.
func (r *Row) Empty() bool {
	for _, c := range r.Cells {
		if !c.Empty() {
			return false
		}
	}
	return true
}

// Grid is the in-memory week matrix. Rows keep insertion order; that order
// is the display order and the submission order.
type Grid struct {
	Week Week
	Rows []*Row
}

// NewGrid returns an empty grid with no week selected.
func NewGrid() *Grid {
	return &Grid{}
}

// AddRow appends an empty row and returns it.
func (g *Grid) AddRow() *Row {
	r := newRow()
	g.Rows = append(g.Rows, r)
	return r
}

// Row returns the row at index.
func (g *Grid) Row(i int) (*Row, error) {
	if i < 0 || i >= len(g.Rows) {
		return nil, ErrRowOutOfRange
	}
	return g.Rows[i], nil
}

// GrandTotal sums all row totals. The sum is associative, so this equals
// summing every populated cell directly.
func (g *Grid) GrandTotal() Totals {
	var t Totals
	for _, r := range g.Rows {
		rt := r.Total()
		t.Billable += rt.Billable
		t.NonBillable += rt.NonBillable
	}
	return t
}

// BuildSubmission serializes the grid into the backend's nested payload.
// Rows missing a project or task selection are skipped, as are rows whose
// every cell is empty; within a surviving row, only populated day entries
// are emitted, in day order. A payload with zero lines is rejected locally
// with ErrNothingToSave so no network call is made for it.
func (g *Grid) BuildSubmission(resourceID uint64) (*models.Timesheet, error) {
	days := g.Week.Days()

	var lines []models.TimesheetLine
	for _, row := range g.Rows {
		if row.ProjectID == 0 || row.TaskID == 0 {
			continue
		}
		if row.Empty() {
			continue
		}

		var hours []models.TimesheetHour
		for _, day := range days {
			key := DayKey(day)
			cell, ok := row.Cells[key]
			if !ok || cell.Empty() {
				continue
			}
			hours = append(hours, models.TimesheetHour{
				WeekDate:    key,
				Billable:    cell.Billable,
				NonBillable: cell.NonBillable,
				Notes:       cell.Description,
			})
		}
		if len(hours) == 0 {
			continue
		}

		lines = append(lines, models.TimesheetLine{
			ProjectID: row.ProjectID,
			TaskID:    row.TaskID,
			Status:    models.TimesheetStatusNew,
			Hours:     hours,
		})
	}

	if len(lines) == 0 {
		return nil, ErrNothingToSave
	}

	return &models.Timesheet{
		ResourceID:    resourceID,
		WeekStartDate: g.Week.StartDate(),
		WeekEndDate:   g.Week.EndDate(),
		StatusID:      1,
		Lines:         lines,
	}, nil
}

// FromTimesheet reconstructs a grid from a stored timesheet: the week comes
// from its stored dates and each line becomes one row with its hours mapped
// back to day cells.
func FromTimesheet(ts models.Timesheet) (*Grid, error) {
	week, err := ParseWeek(ts.WeekStartDate, ts.WeekEndDate)
	if err != nil {
		return nil, err
	}

	g := &Grid{Week: week}
	for _, line := range ts.Lines {
		row := g.AddRow()
		row.ProjectID = line.ProjectID
		row.TaskID = line.TaskID
		for _, h := range line.Hours {
			row.Cells[h.WeekDate] = Cell{
				Billable:    h.Billable,
				NonBillable: h.NonBillable,
				Description: h.Notes,
			}
		}
	}
	return g, nil
}

// formatHours renders an hour value without a trailing ".0" for whole
// numbers, matching the grid's "4 | 0" cell text.
func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
