package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// NewsUpload is the multipart payload for news creation. News is the one
// resource created by file upload rather than JSON: the image (and optional
// video) are sent inline instead of as externally hosted URLs.
type NewsUpload struct {
	Title         string
	Content       string
	Category      string
	PublishedDate string
	IsFeatured    bool

	ImageName string
	Image     io.Reader

	// optional
	VideoName string
	Video     io.Reader
}

// CreateNews publishes a news article via multipart form submission.
// Fields: title, content, category, publishedDate, isFeatured, image,
// optional video. The JSON content-type default is replaced by the
// multipart boundary header.
func (c *Client) CreateNews(ctx context.Context, upload NewsUpload) (string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":         upload.Title,
		"content":       upload.Content,
		"category":      upload.Category,
		"publishedDate": upload.PublishedDate,
		"isFeatured":    fmt.Sprintf("%t", upload.IsFeatured),
	}
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return "", newInternalError(err)
		}
	}

	if upload.Image != nil {
		part, err := form.CreateFormFile("image", upload.ImageName)
		if err != nil {
			return "", newInternalError(err)
		}
		if _, err := io.Copy(part, upload.Image); err != nil {
			return "", newInternalError(err)
		}
	}

	if upload.Video != nil {
		part, err := form.CreateFormFile("video", upload.VideoName)
		if err != nil {
			return "", newInternalError(err)
		}
		if _, err := io.Copy(part, upload.Video); err != nil {
			return "", newInternalError(err)
		}
	}

	if err := form.Close(); err != nil {
		return "", newInternalError(err)
	}

	res, err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "api/news/createNews",
		body:        &buf,
		contentType: form.FormDataContentType(),
	})
	if err != nil {
		return "", err
	}

	return unwrapAck(res)
}

// ListNews returns all news articles. Envelope: {"data": [...]}.
func (c *Client) ListNews(ctx context.Context) ([]News, error) {
	res, err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "api/news/News",
	})
	if err != nil {
		return nil, err
	}

	var items []News
	if err := unwrapData(res, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateNews replaces the JSON-updatable fields of a news article. File
// replacement is not supported on update - publish a new article instead.
func (c *Client) UpdateNews(ctx context.Context, newsID string, news News) (string, error) {
	payload, err := json.Marshal(news)
	if err != nil {
		return "", newInternalError(err)
	}

	res, err := c.do(ctx, request{
		method: http.MethodPut,
		path:   fmt.Sprintf("api/news/updateNews/%s", newsID),
		body:   bytes.NewReader(payload),
	})
	if err != nil {
		return "", err
	}

	return unwrapAck(res)
}

// DeleteNews removes a news article.
func (c *Client) DeleteNews(ctx context.Context, newsID string) (string, error) {
	res, err := c.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("api/news/deleteNews/%s", newsID),
	})
	if err != nil {
		return "", err
	}

	return unwrapAck(res)
}
