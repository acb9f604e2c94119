package apiclient

import (
	"context"
	"net/http"

	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

// ListPartnerships retrieves partnership applications matching the params
func (c *Client) ListPartnerships(ctx context.Context, params ListParams) (Result[model.PartnershipApplication], error) {
	body, err := c.do(ctx, http.MethodGet, "/api/partnerships", params.Values(), nil)
	if err != nil {
		return Result[model.PartnershipApplication]{}, err
	}
	return decodeList[model.PartnershipApplication](body)
}

// GetPartnership retrieves a single application by ID
func (c *Client) GetPartnership(ctx context.Context, id string) (*model.PartnershipApplication, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/partnerships", idQuery(id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[model.PartnershipApplication](body)
}

// PatchPartnership sends a partial update, used by triage actions
func (c *Client) PatchPartnership(ctx context.Context, id string, fields map[string]any) error {
	_, err := c.do(ctx, http.MethodPut, "/api/partnerships", idQuery(id), fields)
	return err
}
