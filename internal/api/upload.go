package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// Upload posts a file as multipart form data and returns the full image
// URL: the backend replies with a path relative to its own origin
// (e.g. "uploads/tee.jpg"), which is resolved against the base URL.
func (c *Client) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var reply struct {
		ImageURL string `json:"image_url"`
	}
	if err := c.send(req, &reply); err != nil {
		return "", err
	}
	return c.ResolveImageURL(reply.ImageURL), nil
}

// ResolveImageURL turns a backend-relative image path into an absolute URL.
// Already-absolute URLs pass through unchanged.
func (c *Client) ResolveImageURL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}
