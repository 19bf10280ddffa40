package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prismworks/timesheet-console/internal/models"
	"github.com/prismworks/timesheet-console/internal/session"
	"github.com/prismworks/timesheet-console/internal/timesheet"
	"github.com/prismworks/timesheet-console/internal/views"
	"github.com/prismworks/timesheet-console/internal/webapi"
)

// Grid operations: the XHR endpoints the editor page posts against. Each
// one mutates the session's draft and returns JSON; the page re-renders
// from the next full view or from the returned fragment data.

// currentEditor resolves the session's draft. A missing draft means the
// page outlived its editor (restart, logout elsewhere); the client restarts
// from the timesheet screen.
func (h *TimesheetHandler) currentEditor(c *gin.Context) (*timesheet.Editor, bool) {
	s := session.Get(c)
	if s.DraftID == "" {
		webapi.NotFound(c, "No timesheet draft in progress")
		return nil, false
	}
	editor, ok := h.drafts.Get(s.DraftID)
	if !ok {
		webapi.NotFound(c, "No timesheet draft in progress")
		return nil, false
	}
	return editor, true
}

// SelectWeek picks the week containing the posted date and reports the
// existence-guard outcome.
func (h *TimesheetHandler) SelectWeek(c *gin.Context) {
	editor, ok := h.currentEditor(c)
	if !ok {
		return
	}

	type WeekRequest struct {
		Date string `json:"date" binding:"required"`
	}
	var req WeekRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		webapi.BadRequest(c, "A date is required")
		return
	}
	date, err := time.Parse(models.DateLayout, req.Date)
	if err != nil {
		webapi.BadRequest(c, "Invalid date")
		return
	}

	err = editor.SelectWeek(c.Request.Context(), date)
	switch {
	case errors.Is(err, timesheet.ErrTimesheetExists):
		snap := editor.Snapshot()
		c.JSON(http.StatusConflict, gin.H{
			"exists":        true,
			"message":       "A timesheet already exists for this week",
			"weekStartDate": snap.Week.StartDate(),
			"weekEndDate":   snap.Week.EndDate(),
		})
		return
	case errors.Is(err, timesheet.ErrWeekLocked):
		webapi.Conflict(c, "The week cannot be changed for this timesheet")
		return
	case err != nil:
		h.log.Errorw("week selection failed", "error", err)
		webapi.UpstreamError(c, failureMessage(err, "Could not check for an existing timesheet"))
		return
	}

	snap := editor.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"exists":        false,
		"weekStartDate": snap.Week.StartDate(),
		"weekEndDate":   snap.Week.EndDate(),
	})
}

// AddRow appends a row to the grid.
func (h *TimesheetHandler) AddRow(c *gin.Context) {
	editor, ok := h.currentEditor(c)
	if !ok {
		return
	}

	index, err := editor.AddRow()
	if err != nil {
		h.respondGridError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"row": index})
}

// SelectProject sets a row's project and returns the task options for it.
// The editor guarantees a stale task fetch never overwrites the result of a
// later selection.
func (h *TimesheetHandler) SelectProject(c *gin.Context) {
	editor, ok := h.currentEditor(c)
	if !ok {
		return
	}

	type ProjectRequest struct {
		Row       *int   `json:"row" binding:"required"`
		ProjectID uint64 `json:"projectId" binding:"required"`
	}
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		webapi.BadRequest(c, "Row and project are required")
		return
	}

	tasks, err := editor.SelectProject(c.Request.Context(), *req.Row, req.ProjectID)
	if err != nil {
		h.respondGridError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": views.TaskOptions(tasks, 0)})
}

// SelectTask sets a row's task.
func (h *TimesheetHandler) SelectTask(c *gin.Context) {
	editor, ok := h.currentEditor(c)
	if !ok {
		return
	}

	type TaskRequest struct {
		Row    *int   `json:"row" binding:"required"`
		TaskID uint64 `json:"taskId" binding:"required"`
	}
	var req TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		webapi.BadRequest(c, "Row and task are required")
		return
	}

	if err := editor.SelectTask(*req.Row, req.TaskID); err != nil {
		h.respondGridError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetCell returns a cell's current values for pre-filling the edit modal.
func (h *TimesheetHandler) GetCell(c *gin.Context) {
	editor, ok := h.currentEditor(c)
	if !ok {
		return
	}

	type CellQuery struct {
		Row int    `form:"row"`
		Day string `form:"day" binding:"required"`
	}
	var q CellQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		webapi.BadRequest(c, "Row and day are required")
		return
	}

	cell, err := editor.CellAt(q.Row, q.Day)
	if err != nil {
		h.respondGridError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"billableHours":    cell.Billable,
		"nonBillableHours": cell.NonBillable,
		"description":      cell.Description,
	})
}

// EditCell saves the modal's values into a cell and returns the refreshed
// totals.
func (h *TimesheetHandler) EditCell(c *gin.Context) {
	editor, ok := h.currentEditor(c)
	if !ok {
		return
	}

	type CellRequest struct {
		Row              *int    `json:"row" binding:"required"`
		Day              string  `json:"day" binding:"required"`
		BillableHours    float64 `json:"billableHours"`
		NonBillableHours float64 `json:"nonBillableHours"`
		Description      string  `json:"description"`
	}
	var req CellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		webapi.BadRequest(c, "Row and day are required")
		return
	}

	cell := timesheet.Cell{
		Billable:    req.BillableHours,
		NonBillable: req.NonBillableHours,
		Description: req.Description,
	}
	if err := editor.EditCell(*req.Row, req.Day, cell); err != nil {
		h.respondGridError(c, err)
		return
	}

	snap := editor.Snapshot()
	rowTotal := ""
	if *req.Row >= 0 && *req.Row < len(snap.Rows) {
		rowTotal = snap.Rows[*req.Row].Total.Display()
	}
	c.JSON(http.StatusOK, gin.H{
		"cell":       cell.Display(),
		"rowTotal":   rowTotal,
		"grandTotal": snap.GrandTotal.Display(),
	})
}

// Save submits the grid to the backend.
func (h *TimesheetHandler) Save(c *gin.Context) {
	editor, ok := h.currentEditor(c)
	if !ok {
		return
	}

	if err := editor.Save(c.Request.Context()); err != nil {
		h.respondGridError(c, err)
		return
	}

	session.Flash(c, session.NoticeSuccess, "Timesheet saved successfully")
	c.JSON(http.StatusOK, gin.H{"redirect": "/dashboard/timesheet"})
}

// respondGridError maps editor failures onto the XHR error vocabulary.
// Backend failures surface the server's message verbatim when present.
func (h *TimesheetHandler) respondGridError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, timesheet.ErrCellDetailsRequired):
		webapi.BadRequest(c, "Billable Hours and Description are required")
	case errors.Is(err, timesheet.ErrNothingToSave):
		webapi.BadRequest(c, "Nothing to save")
	case errors.Is(err, timesheet.ErrNoWeekSelected):
		webapi.BadRequest(c, "Select a week first")
	case errors.Is(err, timesheet.ErrDayOutsideWeek):
		webapi.BadRequest(c, "That day is not in the selected week")
	case errors.Is(err, timesheet.ErrRowOutOfRange):
		webapi.BadRequest(c, "Unknown row")
	case errors.Is(err, timesheet.ErrTimesheetExists):
		webapi.Conflict(c, "A timesheet already exists for this week")
	case errors.Is(err, timesheet.ErrSaveInFlight):
		webapi.Conflict(c, "A save is already in progress")
	case errors.Is(err, timesheet.ErrReadOnly), errors.Is(err, timesheet.ErrWeekLocked):
		webapi.RespondWithError(c, http.StatusForbidden, webapi.ErrCodeForbidden, "This timesheet cannot be modified")
	default:
		h.log.Errorw("grid operation failed", "error", err)
		webapi.UpstreamError(c, failureMessage(err, ""))
	}
}
