package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prismworks/timesheet-console/internal/models"
)

func (c *Client) ListAssignments(ctx context.Context, token string) ([]models.Assignment, error) {
	var out []models.Assignment
	if err := c.do(ctx, http.MethodGet, "/assign-resource/all", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListAssignmentsByResource(ctx context.Context, token string, resourceID uint64) ([]models.Assignment, error) {
	var out []models.Assignment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/assign-resource/resource/%d", resourceID), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListAssignmentsByProject(ctx context.Context, token string, projectID uint64) ([]models.Assignment, error) {
	var out []models.Assignment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/assign-resource/project/%d", projectID), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetAssignment(ctx context.Context, token string, id uint64) (*models.Assignment, error) {
	var out models.Assignment
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/assign-resource/%d", id), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateAssignment(ctx context.Context, token string, a models.Assignment) error {
	return c.do(ctx, http.MethodPost, "/assign-resource/add", token, nil, a, nil)
}

func (c *Client) UpdateAssignment(ctx context.Context, token string, id uint64, a models.Assignment) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/assign-resource/update/%d", id), token, nil, a, nil)
}
