package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/prismworks/timesheet-console/internal/models"
)

func (c *Client) ListTimesheetsByResource(ctx context.Context, token string, resourceID uint64) ([]models.Timesheet, error) {
	var out []models.Timesheet
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/timesheets/by-resource/%d", resourceID), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTimesheet(ctx context.Context, token string, id uint64) (*models.Timesheet, error) {
	var out models.Timesheet
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/timesheets/%d", id), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TimesheetExists runs the duplicate-week pre-check. The response body is a
// bare JSON boolean.
func (c *Client) TimesheetExists(ctx context.Context, token string, resourceID uint64, weekStart, weekEnd string) (bool, error) {
	query := url.Values{
		"resourceId":    {strconv.FormatUint(resourceID, 10)},
		"weekStartDate": {weekStart},
		"weekEndDate":   {weekEnd},
	}
	var exists bool
	if err := c.do(ctx, http.MethodGet, "/timesheets/exists", token, query, nil, &exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (c *Client) SubmitTimesheet(ctx context.Context, token string, ts models.Timesheet) error {
	return c.do(ctx, http.MethodPost, "/timesheets", token, nil, ts, nil)
}
