package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ListBreakingNews returns all ticker entries. Envelope: {"data": [...]}.
func (c *Client) ListBreakingNews(ctx context.Context) ([]BreakingNewsItem, error) {
	res, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "getbreakingnews",
	})
	if err != nil {
		return nil, err
	}

	var items []BreakingNewsItem
	if err := unwrapData(res, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateBreakingNews adds a ticker entry.
func (c *Client) CreateBreakingNews(ctx context.Context, text string) (string, error) {
	payload, err := json.Marshal(BreakingNewsItem{Text: text})
	if err != nil {
		return "", newInternalError(err)
	}

	res, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "createbreakingnews",
		body:   bytes.NewReader(payload),
	})
	if err != nil {
		return "", err
	}

	return unwrapAck(res)
}

// UpdateBreakingNews fully replaces a ticker entry. Concurrent updates to
// the same id are not coordinated: last write wins.
func (c *Client) UpdateBreakingNews(ctx context.Context, newsID string, item BreakingNewsItem) (string, error) {
	payload, err := json.Marshal(item)
	if err != nil {
		return "", newInternalError(err)
	}

	res, err := c.do(ctx, request{
		method: http.MethodPut,
		path:   fmt.Sprintf("updatedbreakingnews/%s", newsID),
		body:   bytes.NewReader(payload),
	})
	if err != nil {
		return "", err
	}

	return unwrapAck(res)
}

// DeleteBreakingNews removes a ticker entry.
func (c *Client) DeleteBreakingNews(ctx context.Context, newsID string) (string, error) {
	res, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("deletebreakingnews/%s", newsID),
	})
	if err != nil {
		return "", err
	}

	return unwrapAck(res)
}
