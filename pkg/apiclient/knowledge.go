package apiclient

import (
	"context"
	"net/http"
	"net/url"
)

// Knowledge fetches all knowledge-base categories with their content.
func (c *Client) Knowledge(ctx context.Context) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, "/api/v1/knowledge", nil)
}

// KnowledgeCategories fetches the list of valid category names.
func (c *Client) KnowledgeCategories(ctx context.Context) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, "/api/v1/knowledge/categories", nil)
}

// KnowledgeCategory fetches the content of one category.
func (c *Client) KnowledgeCategory(ctx context.Context, category string) (map[string]any, error) {
	return c.do(ctx, http.MethodGet, "/api/v1/knowledge/"+url.PathEscape(category), nil)
}

// SaveKnowledgeCategory stores new content for one category.
func (c *Client) SaveKnowledgeCategory(ctx context.Context, category, content string) (map[string]any, error) {
	return c.do(ctx, http.MethodPost, "/api/v1/knowledge/"+url.PathEscape(category)+"/save", map[string]string{
		"content": content,
	})
}
