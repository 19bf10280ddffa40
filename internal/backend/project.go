package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/prismworks/timesheet-console/internal/models"
)

func (c *Client) ListProjects(ctx context.Context, token string) ([]models.Project, error) {
	var out []models.Project
	if err := c.do(ctx, http.MethodGet, "/project/all", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListProjectsByCustomer(ctx context.Context, token string, customerID uint64) ([]models.Project, error) {
	var out []models.Project
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/project/customer/%d", customerID), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProject(ctx context.Context, token string, id uint64) (*models.Project, error) {
	var out models.Project
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/project/%d", id), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProject(ctx context.Context, token string, customerID uint64, p models.Project) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/project/add/%d", customerID), token, nil, p, nil)
}

// UpdateProject modifies a project; customer reassignment rides along as a
// query parameter per the backend's contract.
func (c *Client) UpdateProject(ctx context.Context, token string, id, customerID uint64, p models.Project) error {
	query := url.Values{"customerId": {strconv.FormatUint(customerID, 10)}}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/project/modify/%d", id), token, query, p, nil)
}
