package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prismworks/timesheet-console/internal/backend"
	"github.com/prismworks/timesheet-console/internal/models"
	"github.com/prismworks/timesheet-console/internal/session"
	"github.com/prismworks/timesheet-console/internal/timesheet"
	"github.com/prismworks/timesheet-console/internal/views"
)

// TimesheetHandler serves the timesheet list and the weekly grid editor.
// The in-progress grid lives in the draft store; the browser only posts
// events (week picked, cell edited, save) against it.
type TimesheetHandler struct {
	api    backend.API
	drafts *timesheet.Store
	log    *zap.SugaredLogger
}

// NewTimesheetHandler creates a new TimesheetHandler.
func NewTimesheetHandler(api backend.API, drafts *timesheet.Store, log *zap.SugaredLogger) *TimesheetHandler {
	return &TimesheetHandler{api: api, drafts: drafts, log: log}
}

// List shows the signed-in resource's timesheets. Rows still in "New" offer
// Edit; everything else is view-only.
func (h *TimesheetHandler) List(c *gin.Context) {
	s := session.Get(c)
	sheets, err := h.api.ListTimesheetsByResource(c.Request.Context(), s.Token, s.ResourceID)
	if err != nil {
		h.log.Errorw("list timesheets failed", "resource_id", s.ResourceID, "error", err)
		session.Flash(c, session.NoticeError, "Could not load timesheets")
		sheets = nil
	}

	type timesheetRow struct {
		models.Timesheet
		Editable bool
	}
	rows := make([]timesheetRow, 0, len(sheets))
	for _, ts := range sheets {
		rows = append(rows, timesheetRow{
			Timesheet: ts,
			Editable:  ts.StatusName == models.TimesheetStatusNew,
		})
	}

	renderPage(c, http.StatusOK, "timesheet_list.tmpl", gin.H{
		"Title":      "Manage Timesheet",
		"Timesheets": rows,
	})
}

// New opens a fresh grid editor draft, replacing any previous one.
func (h *TimesheetHandler) New(c *gin.Context) {
	s := session.Get(c)

	editor := timesheet.NewEditor(h.api, s.Token, s.ResourceID)
	if err := editor.LoadProjects(c.Request.Context()); err != nil {
		h.log.Errorw("load projects failed", "resource_id", s.ResourceID, "error", err)
		session.Flash(c, session.NoticeError, "Could not load your projects")
	}

	h.installDraft(c, s, editor)
	h.renderGrid(c, editor)
}

// Open loads an existing timesheet into the editor. mode=view disables all
// mutation; anything else opens in edit mode. The week is locked either
// way.
func (h *TimesheetHandler) Open(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		session.Flash(c, session.NoticeError, "Invalid timesheet ID")
		c.Redirect(http.StatusFound, "/dashboard/timesheet")
		return
	}

	s := session.Get(c)
	readOnly := c.Query("mode") == "view"

	editor := timesheet.NewEditor(h.api, s.Token, s.ResourceID)
	if err := editor.LoadProjects(c.Request.Context()); err != nil {
		h.log.Errorw("load projects failed", "resource_id", s.ResourceID, "error", err)
		session.Flash(c, session.NoticeError, "Could not load your projects")
	}
	if err := editor.Load(c.Request.Context(), id, readOnly); err != nil {
		h.log.Errorw("load timesheet failed", "id", id, "error", err)
		session.Flash(c, session.NoticeError, failureMessage(err, "Could not load the timesheet"))
		c.Redirect(http.StatusFound, "/dashboard/timesheet")
		return
	}

	h.installDraft(c, s, editor)
	h.renderGrid(c, editor)
}

func (h *TimesheetHandler) installDraft(c *gin.Context, s session.Session, editor *timesheet.Editor) {
	if s.DraftID != "" {
		h.drafts.Delete(s.DraftID)
	}
	draftID := h.drafts.Put(editor)
	if err := session.SetDraftID(c, draftID); err != nil {
		h.log.Errorw("failed to store draft id", "error", err)
	}
}

func (h *TimesheetHandler) renderGrid(c *gin.Context, editor *timesheet.Editor) {
	view := views.NewGridView(editor.Snapshot())
	renderPage(c, http.StatusOK, "timesheet_grid.tmpl", gin.H{
		"Title": "Timesheet",
		"Grid":  view,
	})
}
