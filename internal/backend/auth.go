package backend

import (
	"context"
	"net/http"

	"github.com/prismworks/timesheet-console/internal/models"
)

// Login exchanges credentials for a token. No bearer header on this call.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
