package apiclient

import (
	"context"
	"net/http"

	"github.com/adaobialike/ikeji-outreach/pkg/core/model"
)

// ListTestimonials retrieves testimonials matching the params
func (c *Client) ListTestimonials(ctx context.Context, params ListParams) (Result[model.Testimonial], error) {
	body, err := c.do(ctx, http.MethodGet, "/api/testimonials", params.Values(), nil)
	if err != nil {
		return Result[model.Testimonial]{}, err
	}
	return decodeList[model.Testimonial](body)
}

// CreateTestimonial creates a new testimonial (public submission form)
func (c *Client) CreateTestimonial(ctx context.Context, t *model.Testimonial) (*model.Testimonial, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/testimonials", nil, t)
	if err != nil {
		return nil, err
	}
	return decodeOne[model.Testimonial](body)
}

// PatchTestimonial sends a partial update, used by moderation actions
func (c *Client) PatchTestimonial(ctx context.Context, id string, fields map[string]any) error {
	_, err := c.do(ctx, http.MethodPut, "/api/testimonials", idQuery(id), fields)
	return err
}

// DeleteTestimonial deletes a testimonial by ID
func (c *Client) DeleteTestimonial(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/testimonials", idQuery(id), nil)
	return err
}
