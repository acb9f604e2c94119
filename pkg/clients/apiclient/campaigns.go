package apiclient

import (
	"context"
	"net/http"

	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

// ListCampaigns retrieves fundraising campaigns matching the params
func (c *Client) ListCampaigns(ctx context.Context, params ListParams) (Result[model.Campaign], error) {
	body, err := c.do(ctx, http.MethodGet, "/api/campaigns", params.Values(), nil)
	if err != nil {
		return Result[model.Campaign]{}, err
	}
	return decodeList[model.Campaign](body)
}

// GetCampaign retrieves a single campaign by ID
func (c *Client) GetCampaign(ctx context.Context, id string) (*model.Campaign, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/campaigns", idQuery(id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[model.Campaign](body)
}

// CreateCampaign creates a new campaign
func (c *Client) CreateCampaign(ctx context.Context, campaign *model.Campaign) (*model.Campaign, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/campaigns", nil, campaign)
	if err != nil {
		return nil, err
	}
	return decodeOne[model.Campaign](body)
}

// UpdateCampaign replaces a campaign
func (c *Client) UpdateCampaign(ctx context.Context, id string, campaign *model.Campaign) (*model.Campaign, error) {
	body, err := c.do(ctx, http.MethodPut, "/api/campaigns", idQuery(id), campaign)
	if err != nil {
		return nil, err
	}
	return decodeOne[model.Campaign](body)
}

// PatchCampaign sends a partial campaign update (e.g. toggling is_featured)
func (c *Client) PatchCampaign(ctx context.Context, id string, fields map[string]any) error {
	_, err := c.do(ctx, http.MethodPut, "/api/campaigns", idQuery(id), fields)
	return err
}

// DeleteCampaign deletes a campaign by ID
func (c *Client) DeleteCampaign(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/campaigns", idQuery(id), nil)
	return err
}
