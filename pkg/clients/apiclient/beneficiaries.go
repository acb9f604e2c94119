package apiclient

import (
	"context"
	"net/http"

	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

// ListBeneficiaries retrieves a bounded page of beneficiaries for the
// public sponsorship pages
func (c *Client) ListBeneficiaries(ctx context.Context, params ListParams) (Result[model.Beneficiary], error) {
	body, err := c.do(ctx, http.MethodGet, "/api/beneficiaries", params.Values(), nil)
	if err != nil {
		return Result[model.Beneficiary]{}, err
	}
	return decodeList[model.Beneficiary](body)
}

// GetBeneficiary retrieves a single beneficiary by ID
func (c *Client) GetBeneficiary(ctx context.Context, id string) (*model.Beneficiary, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/beneficiaries", idQuery(id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[model.Beneficiary](body)
}
