package apiclient

import (
	"context"
	"net/http"

	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

// ListContent retrieves a page of content records matching the params
func (c *Client) ListContent(ctx context.Context, params ListParams) (Result[model.ContentRecord], error) {
	body, err := c.do(ctx, http.MethodGet, "/api/content", params.Values(), nil)
	if err != nil {
		return Result[model.ContentRecord]{}, err
	}
	return decodeList[model.ContentRecord](body)
}

// GetContent retrieves a single content record by ID
func (c *Client) GetContent(ctx context.Context, id string) (*model.ContentRecord, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/content", idQuery(id), nil)
	if err != nil {
		return nil, err
	}
	return decodeOne[model.ContentRecord](body)
}

// CreateContent creates a new content record and returns the stored copy
func (c *Client) CreateContent(ctx context.Context, rec *model.ContentRecord) (*model.ContentRecord, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/content", nil, rec)
	if err != nil {
		return nil, err
	}
	return decodeOne[model.ContentRecord](body)
}

// UpdateContent replaces a content record
func (c *Client) UpdateContent(ctx context.Context, id string, rec *model.ContentRecord) (*model.ContentRecord, error) {
	body, err := c.do(ctx, http.MethodPut, "/api/content", idQuery(id), rec)
	if err != nil {
		return nil, err
	}
	return decodeOne[model.ContentRecord](body)
}

// PatchContent sends a partial update, used by bulk status changes
func (c *Client) PatchContent(ctx context.Context, id string, fields map[string]any) error {
	_, err := c.do(ctx, http.MethodPut, "/api/content", idQuery(id), fields)
	return err
}

// DeleteContent deletes a content record by ID
func (c *Client) DeleteContent(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/content", idQuery(id), nil)
	return err
}

// ListOutreaches retrieves outreach records from the newer bare-array
// endpoint. The result shape is identical to a type=outreach content list.
func (c *Client) ListOutreaches(ctx context.Context, params ListParams) (Result[model.ContentRecord], error) {
	body, err := c.do(ctx, http.MethodGet, "/api/outreaches", params.Values(), nil)
	if err != nil {
		return Result[model.ContentRecord]{}, err
	}
	return decodeList[model.ContentRecord](body)
}

// ListStories retrieves story records from the newer bare-array endpoint
func (c *Client) ListStories(ctx context.Context, params ListParams) (Result[model.ContentRecord], error) {
	body, err := c.do(ctx, http.MethodGet, "/api/stories", params.Values(), nil)
	if err != nil {
		return Result[model.ContentRecord]{}, err
	}
	return decodeList[model.ContentRecord](body)
}
