package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prismworks/timesheet-console/internal/models"
)

func (c *Client) ListCustomers(ctx context.Context, token string) ([]models.Customer, error) {
	var out []models.Customer
	if err := c.do(ctx, http.MethodGet, "/customer/all", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListActiveCustomers(ctx context.Context, token string) ([]models.Customer, error) {
	var out []models.Customer
	if err := c.do(ctx, http.MethodGet, "/customer/active", token, nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCustomer(ctx context.Context, token string, id uint64) (*models.Customer, error) {
	var out models.Customer
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/customer/%d", id), token, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCustomer(ctx context.Context, token string, cu models.Customer) error {
	return c.do(ctx, http.MethodPost, "/customer/add", token, nil, cu, nil)
}

func (c *Client) UpdateCustomer(ctx context.Context, token string, id uint64, cu models.Customer) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/customer/update/%d", id), token, nil, cu, nil)
}
