package timesheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/prismworks/timesheet-console/internal/models"
)

func TestCellEmpty(t *testing.T) {
	require.True(t, Cell{}.Empty())
	require.False(t, Cell{Billable: 1}.Empty())
	require.False(t, Cell{NonBillable: 0.5}.Empty())
	require.False(t, Cell{Description: "standup"}.Empty())
}

func TestCellDisplay(t *testing.T) {
	require.Equal(t, "0 | 0", Cell{}.Display())
	require.Equal(t, "4 | 0", Cell{Billable: 4}.Display())
	require.Equal(t, "2.5 | 1", Cell{Billable: 2.5, NonBillable: 1}.Display())
}

func TestValidateCellEdit(t *testing.T) {
	require.NoError(t, ValidateCellEdit(Cell{Billable: 4, Description: "design"}))

	err := ValidateCellEdit(Cell{Billable: 0, Description: "design"})
	require.ErrorIs(t, err, ErrCellDetailsRequired)

	err = ValidateCellEdit(Cell{Billable: 4})
	require.ErrorIs(t, err, ErrCellDetailsRequired)

	// Non-billable hours alone never satisfy the rule.
	err = ValidateCellEdit(Cell{NonBillable: 8, Description: "training"})
	require.ErrorIs(t, err, ErrCellDetailsRequired)
}

func TestGridTotalsMatchCellSum(t *testing.T) {
	g := NewGrid()
	g.Week = WeekOf(time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC))

	r1 := g.AddRow()
	r1.Cells["2024-06-03"] = Cell{Billable: 4, Description: "a"}
	r1.Cells["2024-06-04"] = Cell{Billable: 2, NonBillable: 1, Description: "b"}

	r2 := g.AddRow()
	r2.Cells["2024-06-05"] = Cell{Billable: 3.5, NonBillable: 0.5, Description: "c"}

	require.Equal(t, Totals{Billable: 6, NonBillable: 1}, r1.Total())
	require.Equal(t, Totals{Billable: 3.5, NonBillable: 0.5}, r2.Total())

	grand := g.GrandTotal()
	require.Equal(t, Totals{Billable: 9.5, NonBillable: 1.5}, grand)
	require.Equal(t, 11.0, grand.Combined())
	require.Equal(t, "9.5 | 1.5", grand.Display())
}

func TestBuildSubmission(t *testing.T) {
	g := NewGrid()
	g.Week = WeekOf(time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC))

	row := g.AddRow()
	row.ProjectID = 1
	row.TaskID = 2
	// Tuesday of the week.
	row.Cells["2024-06-04"] = Cell{Billable: 4, Description: "design"}

	ts, err := g.BuildSubmission(77)
	require.NoError(t, err)
	require.Equal(t, uint64(77), ts.ResourceID)
	require.Equal(t, "2024-06-03", ts.WeekStartDate)
	require.Equal(t, "2024-06-09", ts.WeekEndDate)
	require.Equal(t, 1, ts.StatusID)

	require.Len(t, ts.Lines, 1)
	line := ts.Lines[0]
	require.Equal(t, uint64(1), line.ProjectID)
	require.Equal(t, uint64(2), line.TaskID)
	require.Equal(t, models.TimesheetStatusNew, line.Status)

	require.Len(t, line.Hours, 1)
	require.Equal(t, models.TimesheetHour{
		WeekDate: "2024-06-04",
		Billable: 4,
		Notes:    "design",
	}, line.Hours[0])

	require.Equal(t, "4 | 0", g.GrandTotal().Display())
}

func TestBuildSubmission_SkipsIncompleteRows(t *testing.T) {
	g := NewGrid()
	g.Week = WeekOf(time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC))

	// No task selected.
	noTask := g.AddRow()
	noTask.ProjectID = 1
	noTask.Cells["2024-06-03"] = Cell{Billable: 8, Description: "x"}

	// No project selected.
	noProject := g.AddRow()
	noProject.TaskID = 2
	noProject.Cells["2024-06-03"] = Cell{Billable: 8, Description: "x"}

	// Complete selection but nothing entered.
	empty := g.AddRow()
	empty.ProjectID = 1
	empty.TaskID = 2

	// The one row that survives.
	kept := g.AddRow()
	kept.ProjectID = 3
	kept.TaskID = 4
	kept.Cells["2024-06-05"] = Cell{Billable: 6, Description: "review"}

	ts, err := g.BuildSubmission(1)
	require.NoError(t, err)
	require.Len(t, ts.Lines, 1)
	require.Equal(t, uint64(3), ts.Lines[0].ProjectID)
}

func TestBuildSubmission_HoursInDayOrder(t *testing.T) {
	g := NewGrid()
	g.Week = WeekOf(time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC))

	row := g.AddRow()
	row.ProjectID = 1
	row.TaskID = 2
	row.Cells["2024-06-07"] = Cell{Billable: 1, Description: "fri"}
	row.Cells["2024-06-03"] = Cell{Billable: 1, Description: "mon"}
	row.Cells["2024-06-05"] = Cell{Billable: 1, Description: "wed"}

	ts, err := g.BuildSubmission(1)
	require.NoError(t, err)
	require.Len(t, ts.Lines[0].Hours, 3)
	require.Equal(t, "2024-06-03", ts.Lines[0].Hours[0].WeekDate)
	require.Equal(t, "2024-06-05", ts.Lines[0].Hours[1].WeekDate)
	require.Equal(t, "2024-06-07", ts.Lines[0].Hours[2].WeekDate)
}

func TestBuildSubmission_NothingToSave(t *testing.T) {
	g := NewGrid()
	g.Week = WeekOf(time.Date(2024, time.June, 3, 0, 0, 0, 0, time.UTC))

	_, err := g.BuildSubmission(1)
	require.ErrorIs(t, err, ErrNothingToSave)

	// Rows with selections but no entries still produce nothing.
	row := g.AddRow()
	row.ProjectID = 1
	row.TaskID = 2
	_, err = g.BuildSubmission(1)
	require.ErrorIs(t, err, ErrNothingToSave)
}

func TestFromTimesheet(t *testing.T) {
	ts := models.Timesheet{
		TimesheetID:   9,
		ResourceID:    77,
		WeekStartDate: "2024-06-03",
		WeekEndDate:   "2024-06-09",
		StatusName:    models.TimesheetStatusNew,
		Lines: []models.TimesheetLine{
			{
				ProjectID: 1,
				TaskID:    2,
				Hours: []models.TimesheetHour{
					{WeekDate: "2024-06-04", Billable: 4, Notes: "design"},
				},
			},
		},
	}

	g, err := FromTimesheet(ts)
	require.NoError(t, err)
	require.Equal(t, "2024-06-03", g.Week.StartDate())
	require.Len(t, g.Rows, 1)
	require.Equal(t, uint64(1), g.Rows[0].ProjectID)
	require.Equal(t, Cell{Billable: 4, Description: "design"}, g.Rows[0].Cell("2024-06-04"))

	// Rebuilding the submission reproduces the same lines.
	out, err := g.BuildSubmission(ts.ResourceID)
	require.NoError(t, err)
	require.Equal(t, ts.Lines[0].Hours, out.Lines[0].Hours)
}

func TestGridRowLookup(t *testing.T) {
	g := NewGrid()
	g.AddRow()

	_, err := g.Row(-1)
	require.ErrorIs(t, err, ErrRowOutOfRange)
	_, err = g.Row(1)
	require.ErrorIs(t, err, ErrRowOutOfRange)

	row, err := g.Row(0)
	require.NoError(t, err)
	require.NotNil(t, row)
}
