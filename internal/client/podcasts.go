package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ListPodcasts returns all podcasts. Envelope: {"message": [...]} - this
// endpoint is the outlier that carries its payload in the message field.
func (c *Client) ListPodcasts(ctx context.Context) ([]Podcast, error) {
	res, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "getallpodcast",
	})
	if err != nil {
		return nil, err
	}

	var podcasts []Podcast
	if err := unwrapMessage(res, &podcasts); err != nil {
		return nil, err
	}
	return podcasts, nil
}

// GetPodcast returns a single podcast by id. The backend has returned both
// {"data": {...}} and {"message": {...}} for this endpoint across
// revisions, so either is accepted.
func (c *Client) GetPodcast(ctx context.Context, podcastID string) (*Podcast, error) {
	res, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("podcast/%s", podcastID),
	})
	if err != nil {
		return nil, err
	}

	var podcast Podcast
	if err := unwrapDataOrMessage(res, &podcast); err != nil {
		return nil, err
	}
	return &podcast, nil
}

// CreatePodcast creates a podcast. Media URLs are externally hosted - the
// upload widget supplies them; no transcoding happens here or backend-side.
func (c *Client) CreatePodcast(ctx context.Context, podcast Podcast) (string, error) {
	payload, err := json.Marshal(podcast)
	if err != nil {
		return "", newInternalError(err)
	}

	res, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "createpodcast",
		body:   bytes.NewReader(payload),
	})
	if err != nil {
		return "", err
	}

	return unwrapAck(res)
}

// UpdatePodcast applies a partial update (PATCH, unlike the PUT used for
// blogs and breaking news).
func (c *Client) UpdatePodcast(ctx context.Context, podcastID string, podcast Podcast) (string, error) {
	payload, err := json.Marshal(podcast)
	if err != nil {
		return "", newInternalError(err)
	}

	res, err := c.do(ctx, request{
		method: http.MethodPatch,
		path:   fmt.Sprintf("updatepodcast/%s", podcastID),
		body:   bytes.NewReader(payload),
	})
	if err != nil {
		return "", err
	}

	return unwrapAck(res)
}

// DeletePodcast removes a podcast.
func (c *Client) DeletePodcast(ctx context.Context, podcastID string) (string, error) {
	res, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("deletepodcast/%s", podcastID),
	})
	if err != nil {
		return "", err
	}

	return unwrapAck(res)
}
