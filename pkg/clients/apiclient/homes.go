package apiclient

import (
	"context"
	"net/http"

	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

// ListHomes retrieves sponsorship homes matching the params
func (c *Client) ListHomes(ctx context.Context, params ListParams) (Result[model.SponsorshipHome], error) {
	body, err := c.do(ctx, http.MethodGet, "/api/homes", params.Values(), nil)
	if err != nil {
		return Result[model.SponsorshipHome]{}, err
	}
	return decodeList[model.SponsorshipHome](body)
}

// GetHome retrieves a single home by ID
func (c *Client) GetHome(ctx context.Context, id string) (*model.SponsorshipHome, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/homes", idQuery(id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[model.SponsorshipHome](body)
}

// CreateHome registers a new sponsorship home
func (c *Client) CreateHome(ctx context.Context, home *model.SponsorshipHome) (*model.SponsorshipHome, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/homes", nil, home)
	if err != nil {
		return nil, err
	}
	return decodeOne[model.SponsorshipHome](body)
}

// UpdateHome replaces a sponsorship home record
func (c *Client) UpdateHome(ctx context.Context, id string, home *model.SponsorshipHome) (*model.SponsorshipHome, error) {
	body, err := c.do(ctx, http.MethodPut, "/api/homes", idQuery(id), home)
	if err != nil {
		return nil, err
	}
	return decodeOne[model.SponsorshipHome](body)
}

// PatchHome sends a partial update (activity toggles, visit dates)
func (c *Client) PatchHome(ctx context.Context, id string, fields map[string]any) error {
	_, err := c.do(ctx, http.MethodPut, "/api/homes", idQuery(id), fields)
	return err
}
