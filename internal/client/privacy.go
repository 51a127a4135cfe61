package client

import (
	"context"
	"net/http"
)

// GetPrivacyPolicy fetches the published privacy policy. This is the one
// content read that is public: no Authorization header is sent even when a
// token is cached. Envelope: {"data": {...}}.
func (c *Client) GetPrivacyPolicy(ctx context.Context) (*PrivacyPolicy, error) {
	res, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "super-admin/utility/privacy",
		public: true,
	})
	if err != nil {
		return nil, err
	}

	var policy PrivacyPolicy
	if err := unwrapData(res, &policy); err != nil {
		return nil, err
	}
	return &policy, nil
}
