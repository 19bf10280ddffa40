package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prismworks/timesheet-console/internal/models"
)

func (c *Client) ListResources(ctx context.Context, token string) ([]models.Resource, error) {
	var out []models.Resource
	if err := c.do(ctx, http.MethodGet, "/resource/all", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetResource(ctx context.Context, token string, id uint64) (*models.Resource, error) {
	var out models.Resource
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/resource/%d", id), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateResource(ctx context.Context, token string, r models.Resource) error {
	return c.do(ctx, http.MethodPost, "/resource/add", token, nil, r, nil)
}

func (c *Client) UpdateResource(ctx context.Context, token string, id uint64, r models.Resource) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/resource/update/%d", id), token, nil, r, nil)
}
