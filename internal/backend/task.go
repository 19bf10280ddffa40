package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prismworks/timesheet-console/internal/models"
)

func (c *Client) ListTasksByProject(ctx context.Context, token string, projectID uint64) ([]models.Task, error) {
	var out []models.Task
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/by-project/%d", projectID), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTask(ctx context.Context, token string, id uint64) (*models.Task, error) {
	var out models.Task
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/tasks/%d", id), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTask(ctx context.Context, token string, t models.Task) error {
	return c.do(ctx, http.MethodPost, "/tasks/create", token, nil, t, nil)
}

func (c *Client) UpdateTask(ctx context.Context, token string, id uint64, t models.Task) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/tasks/update/%d", id), token, nil, t, nil)
}
