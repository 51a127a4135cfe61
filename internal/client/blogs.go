package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ListBlogs returns all blog posts. Envelope: {"data": [...]}.
func (c *Client) ListBlogs(ctx context.Context) ([]Blog, error) {
	res, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "blogs",
	})
	if err != nil {
		return nil, err
	}

	var blogs []Blog
	if err := unwrapData(res, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// GetBlog returns a single blog post by id. Envelope: {"data": {...}}.
func (c *Client) GetBlog(ctx context.Context, blogID string) (*Blog, error) {
	res, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   fmt.Sprintf("blogs/%s", blogID),
	})
	if err != nil {
		return nil, err
	}

	var blog Blog
	if err := unwrapData(res, &blog); err != nil {
		return nil, err
	}
	return &blog, nil
}

// CreateBlog creates a blog post and returns the backend acknowledgment.
// Content is opaque HTML and is passed through unmodified. Callers should
// re-fetch the list afterwards - the client holds no local state.
func (c *Client) CreateBlog(ctx context.Context, blog Blog) (string, error) {
	payload, err := json.Marshal(blog)
	if err != nil {
		return "", newInternalError(err)
	}

	res, err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "createblogs",
		body:   bytes.NewReader(payload),
	})
	if err != nil {
		return "", err
	}

	return unwrapAck(res)
}

// UpdateBlog replaces a blog post.
func (c *Client) UpdateBlog(ctx context.Context, blogID string, blog Blog) (string, error) {
	payload, err := json.Marshal(blog)
	if err != nil {
		return "", newInternalError(err)
	}

	res, err := c.do(ctx, request{
		method: http.MethodPut,
		path:   fmt.Sprintf("update/blogs/%s", blogID),
		body:   bytes.NewReader(payload),
	})
	if err != nil {
		return "", err
	}

	return unwrapAck(res)
}

// DeleteBlog removes a blog post.
func (c *Client) DeleteBlog(ctx context.Context, blogID string) (string, error) {
	res, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("blogs/%s", blogID),
	})
	if err != nil {
		return "", err
	}

	return unwrapAck(res)
}
