package apiclient

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

// sharePayload is the body of the campaign-share tracking ping
type sharePayload struct {
	CampaignID string `json:"campaign_id"`
	Platform   string `json:"platform"`
	UTMSource  string `json:"utm_source"`
	UTMMedium  string `json:"utm_medium"`
}

// utmDefaults derives attribution defaults from the share platform
func utmDefaults(platform string) (source, medium string) {
	switch platform {
	case "facebook", "twitter", "whatsapp", "instagram", "linkedin":
		return platform, "social"
	case "email":
		return "email", "email"
	case "copy-link":
		return "direct", "referral"
	default:
		return platform, "referral"
	}
}

// TrackCampaignShare fires a best-effort share-tracking ping. It must never
// block the sharing flow or surface an error to the caller: every failure,
// network or envelope, is logged at Warn and swallowed.
func (c *Client) TrackCampaignShare(ctx context.Context, campaignID, platform, utmSource, utmMedium string) {
	defSource, defMedium := utmDefaults(platform)
	if utmSource == "" {
		utmSource = defSource
	}
	if utmMedium == "" {
		utmMedium = defMedium
	}

	payload := sharePayload{
		CampaignID: campaignID,
		Platform:   platform,
		UTMSource:  utmSource,
		UTMMedium:  utmMedium,
	}

	if _, err := c.do(ctx, http.MethodPost, "/api/campaign-share", nil, payload); err != nil {
		if c.logger != nil {
			c.logger.Warn("campaign share tracking failed",
				zap.String("campaign_id", campaignID),
				zap.String("platform", platform),
				zap.Error(err))
		}
	}
}
