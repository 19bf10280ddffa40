package timesheet

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/prismworks/timesheet-console/internal/backend"
	"github.com/prismworks/timesheet-console/internal/models"
)

var (
	// ErrReadOnly rejects mutations on a view-only editor.
	ErrReadOnly = errors.New("timesheet is read-only")

	// ErrWeekLocked rejects week re-selection once a timesheet is loaded or
	// saved; its week is immutable post-creation.
	ErrWeekLocked = errors.New("week cannot be changed for this timesheet")

	// ErrNoWeekSelected rejects grid edits before a week has been picked.
	ErrNoWeekSelected = errors.New("no week selected")

	// ErrTimesheetExists blocks save for a week the backend already has a
	// timesheet for.
	ErrTimesheetExists = errors.New("a timesheet already exists for this week")

	// ErrSaveInFlight rejects a save while an earlier one is still awaiting
	// the backend.
	ErrSaveInFlight = errors.New("a save is already in progress")
)

// EditorAPI is the backend surface the grid editor needs. backend.API
// satisfies it.
type EditorAPI interface {
	backend.TaskAPI
	ListAssignmentsByResource(ctx context.Context, token string, resourceID uint64) ([]models.Assignment, error)
	GetTimesheet(ctx context.Context, token string, id uint64) (*models.Timesheet, error)
	TimesheetExists(ctx context.Context, token string, resourceID uint64, weekStart, weekEnd string) (bool, error)
	SubmitTimesheet(ctx context.Context, token string, ts models.Timesheet) error
}

// Editor is one user's in-progress weekly grid. It lives in the draft store
// for the duration of the editing session and is never persisted; the
// backend only sees the final submission. All methods are safe for the
// overlapping requests a browser can produce.
type Editor struct {
	mu sync.Mutex

	api        EditorAPI
	token      string
	resourceID uint64

	grid  *Grid
	tasks *TaskCache

	// projects is the dropdown of projects the resource is assigned to.
	projects []models.Assignment

	readOnly    bool
	weekLocked  bool
	blocked     bool
	saving      bool
	weekAttempt uint64
	timesheetID uint64
	statusName  string
}

// NewEditor creates an empty editor for the resource.
func NewEditor(api EditorAPI, token string, resourceID uint64) *Editor {
	return &Editor{
		api:        api,
		token:      token,
		resourceID: resourceID,
		grid:       NewGrid(),
		tasks:      NewTaskCache(api, token),
	}
}

// LoadProjects fetches the resource's assigned projects for the row
// dropdowns.
func (e *Editor) LoadProjects(ctx context.Context) error {
	assignments, err := e.api.ListAssignmentsByResource(ctx, e.token, e.resourceID)
	if err != nil {
		return fmt.Errorf("load assigned projects: %w", err)
	}
	e.mu.Lock()
	e.projects = assignments
	e.mu.Unlock()
	return nil
}

// SelectWeek picks the week containing date and runs the duplicate-week
// existence guard. When the backend already has a timesheet for the week,
// the week is still shown but the editor is blocked from saving and
// ErrTimesheetExists is returned for the caller to surface. Entered rows
// survive a week change. Fails with ErrWeekLocked once a timesheet has been
// loaded or saved.
//
// The existence check runs outside the lock, so a slow response for an
// earlier pick can arrive after a later one; an attempt counter ensures
// only the latest pick's result is installed and a stale response is
// discarded.
func (e *Editor) SelectWeek(ctx context.Context, date time.Time) error {
	e.mu.Lock()
	if e.weekLocked {
		e.mu.Unlock()
		return ErrWeekLocked
	}
	e.weekAttempt++
	attempt := e.weekAttempt
	e.mu.Unlock()

	week := WeekOf(date)
	exists, err := e.api.TimesheetExists(ctx, e.token, e.resourceID, week.StartDate(), week.EndDate())

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.weekAttempt != attempt {
		// A later pick superseded this check.
		return nil
	}
	if e.weekLocked {
		return ErrWeekLocked
	}
	if err != nil {
		return fmt.Errorf("check existing timesheet: %w", err)
	}
	e.grid.Week = week
	e.blocked = exists
	if exists {
		return ErrTimesheetExists
	}
	return nil
}

// AddRow appends an empty row and returns its index.
func (e *Editor) AddRow() (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.readOnly {
		return 0, ErrReadOnly
	}
	if e.grid.Week.IsZero() {
		return 0, ErrNoWeekSelected
	}
	e.grid.AddRow()
	return len(e.grid.Rows) - 1, nil
}

// SelectProject sets a row's project, clears its task selection, and loads
// the project's tasks through the per-project cache. The fetch happens
// outside the lock, so a slow response for an earlier selection can arrive
// after a later one; each row carries an attempt counter and only the
// latest attempt's result is installed, a stale response is discarded.
func (e *Editor) SelectProject(ctx context.Context, rowIndex int, projectID uint64) ([]models.Task, error) {
	e.mu.Lock()
	if e.readOnly {
		e.mu.Unlock()
		return nil, ErrReadOnly
	}
	row, err := e.grid.Row(rowIndex)
	if err != nil {
		e.mu.Unlock()
		return nil, err
	}
	row.ProjectID = projectID
	row.TaskID = 0
	row.taskOptions = nil
	row.taskAttempt++
	attempt := row.taskAttempt
	e.mu.Unlock()

	tasks, fetchErr := e.tasks.Get(ctx, projectID)

	e.mu.Lock()
	defer e.mu.Unlock()
	if row.taskAttempt != attempt {
		// A later selection superseded this fetch.
		return row.taskOptions, nil
	}
	if fetchErr != nil {
		return nil, fmt.Errorf("load tasks for project %d: %w", projectID, fetchErr)
	}
	row.taskOptions = tasks
	return tasks, nil
}

// SelectTask sets a row's task.
func (e *Editor) SelectTask(rowIndex int, taskID uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.readOnly {
		return ErrReadOnly
	}
	row, err := e.grid.Row(rowIndex)
	if err != nil {
		return err
	}
	row.TaskID = taskID
	return nil
}

// CellAt returns a cell's current values for pre-filling the edit modal,
// zero-valued when the cell is unset.
func (e *Editor) CellAt(rowIndex int, dayKey string) (Cell, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	row, err := e.grid.Row(rowIndex)
	if err != nil {
		return Cell{}, err
	}
	return row.Cell(dayKey), nil
}

// EditCell replaces a cell after validating the modal's rules. Cancel is
// simply not calling this.
func (e *Editor) EditCell(rowIndex int, dayKey string, cell Cell) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.readOnly {
		return ErrReadOnly
	}
	if e.grid.Week.IsZero() {
		return ErrNoWeekSelected
	}
	if !e.grid.Week.Contains(dayKey) {
		return ErrDayOutsideWeek
	}
	row, err := e.grid.Row(rowIndex)
	if err != nil {
		return err
	}
	if err := ValidateCellEdit(cell); err != nil {
		return err
	}
	row.Cells[dayKey] = cell
	return nil
}

// Save builds the submission payload and sends it. Entered data is left
// intact whatever happens, so a failed save can be retried as-is. A
// successful save locks the week: the timesheet now exists on the backend.
// Only one save may be in flight at a time; an overlapping call fails with
// ErrSaveInFlight instead of posting a duplicate.
func (e *Editor) Save(ctx context.Context) error {
	e.mu.Lock()
	if e.readOnly {
		e.mu.Unlock()
		return ErrReadOnly
	}
	if e.saving {
		e.mu.Unlock()
		return ErrSaveInFlight
	}
	if e.grid.Week.IsZero() {
		e.mu.Unlock()
		return ErrNoWeekSelected
	}
	if e.blocked {
		e.mu.Unlock()
		return ErrTimesheetExists
	}
	payload, err := e.grid.BuildSubmission(e.resourceID)
	if err != nil {
		e.mu.Unlock()
		return err
	}
	e.saving = true
	e.mu.Unlock()

	err = e.api.SubmitTimesheet(ctx, e.token, *payload)

	e.mu.Lock()
	e.saving = false
	if err == nil {
		e.weekLocked = true
	}
	e.mu.Unlock()
	return err
}

// Load opens an existing timesheet by ID, reconstructs the grid from its
// lines, pre-warms the task cache for every referenced project, and locks
// the week. In read-only mode every mutation is disabled.
func (e *Editor) Load(ctx context.Context, timesheetID uint64, readOnly bool) error {
	ts, err := e.api.GetTimesheet(ctx, e.token, timesheetID)
	if err != nil {
		return fmt.Errorf("load timesheet %d: %w", timesheetID, err)
	}

	grid, err := FromTimesheet(*ts)
	if err != nil {
		return err
	}

	projectIDs := make([]uint64, 0, len(grid.Rows))
	for _, row := range grid.Rows {
		projectIDs = append(projectIDs, row.ProjectID)
	}
	if err := e.tasks.Prewarm(ctx, projectIDs); err != nil {
		return fmt.Errorf("prewarm task lists: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, row := range grid.Rows {
		if tasks, ok := e.tasks.Peek(row.ProjectID); ok {
			row.taskOptions = tasks
		}
	}
	e.grid = grid
	e.timesheetID = ts.TimesheetID
	e.statusName = ts.StatusName
	e.readOnly = readOnly
	e.weekLocked = true
	e.blocked = false
	return nil
}

// RowSnapshot is a point-in-time copy of one row for rendering.
type RowSnapshot struct {
	ProjectID uint64
	TaskID    uint64
	Tasks     []models.Task
	Cells     map[string]Cell
	Total     Totals
}

// Snapshot is a point-in-time copy of the editor for rendering; templates
// never touch live editor state.
type Snapshot struct {
	WeekSelected bool
	Week         Week
	Rows         []RowSnapshot
	GrandTotal   Totals
	Projects     []models.Assignment
	ReadOnly     bool
	WeekLocked   bool
	Blocked      bool
	TimesheetID  uint64
	StatusName   string
}

// Snapshot copies the current editor state.
func (e *Editor) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	rows := make([]RowSnapshot, 0, len(e.grid.Rows))
	for _, row := range e.grid.Rows {
		cells := make(map[string]Cell, len(row.Cells))
		for k, v := range row.Cells {
			cells[k] = v
		}
		rows = append(rows, RowSnapshot{
			ProjectID: row.ProjectID,
			TaskID:    row.TaskID,
			Tasks:     row.taskOptions,
			Cells:     cells,
			Total:     row.Total(),
		})
	}

	return Snapshot{
		WeekSelected: !e.grid.Week.IsZero(),
		Week:         e.grid.Week,
		Rows:         rows,
		GrandTotal:   e.grid.GrandTotal(),
		Projects:     e.projects,
		ReadOnly:     e.readOnly,
		WeekLocked:   e.weekLocked,
		Blocked:      e.blocked,
		TimesheetID:  e.timesheetID,
		StatusName:   e.statusName,
	}
}
