package apiclient

import (
	"context"
	"io"
	"mime/multipart"
	"net/http"
)

// Projects fetches the published project list.
func (c *Client) Projects(ctx context.Context) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, "/api/v1/projects", nil)
}

// SaveProjects replaces the project list. previous optionally carries the
// prior state so the backend can clean up orphaned assets; message becomes
// the change description.
func (c *Client) SaveProjects(ctx context.Context, projects []map[string]any, message string, previous any) (map[string]any, error) {
	body := map[string]any{"projects": projects}
	if message != "" {
		body["message"] = message
	}
	if previous != nil {
		body["previous"] = previous
	}
	return c.do(ctx, http.MethodPost, "/api/v1/projects/save", body)
}

// UploadProjectImage uploads binary image content as multipart form data.
// The transport supplies the multipart content type and boundary.
func (c *Client) UploadProjectImage(ctx context.Context, fileName string, content io.Reader) (map[string]any, error) {
	return c.doMultipart(ctx, "/api/v1/projects/upload-image", func(w *multipart.Writer) error {
		part, err := w.CreateFormFile("file", fileName)
		if err != nil {
			return err
		}
		_, err = io.Copy(part, content)
		return err
	})
}
