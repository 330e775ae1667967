package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// ListPagesOptions contains options for listing pages.
type ListPagesOptions struct {
	Limit  int
	Cursor string
	Title  string // Filter by title (contains)
}

// ListPages returns a list of pages.
func (c *Client) ListPages(ctx context.Context, opts *ListPagesOptions) (*ListResponse[Page], error) {
	params := url.Values{}
	params.Set("limit", "25") // Default limit

	if opts != nil {
		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.Cursor != "" {
			params.Set("cursor", opts.Cursor)
		}
		if opts.Title != "" {
			params.Set("title", opts.Title)
		}
	}

	body, err := c.Get(ctx, "/api/v1/pages?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var result ListResponse[Page]
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse pages response: %w", err)
	}

	return &result, nil
}

// GetPage returns a single page by ID.
func (c *Client) GetPage(ctx context.Context, pageID string) (*Page, error) {
	body, err := c.Get(ctx, "/api/v1/pages/"+url.PathEscape(pageID))
	if err != nil {
		return nil, err
	}

	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to parse page response: %w", err)
	}

	return &page, nil
}

// CreatePage creates a new page.
func (c *Client) CreatePage(ctx context.Context, req *CreatePageRequest) (*Page, error) {
	body, err := c.Post(ctx, "/api/v1/pages", req)
	if err != nil {
		return nil, err
	}

	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to parse create page response: %w", err)
	}

	return &page, nil
}

// UpdatePage updates an existing page.
func (c *Client) UpdatePage(ctx context.Context, pageID string, req *UpdatePageRequest) (*Page, error) {
	body, err := c.Put(ctx, "/api/v1/pages/"+url.PathEscape(pageID), req)
	if err != nil {
		return nil, err
	}

	var page Page
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to parse update page response: %w", err)
	}

	return &page, nil
}

// DeletePage deletes a page.
func (c *Client) DeletePage(ctx context.Context, pageID string) error {
	_, err := c.Delete(ctx, "/api/v1/pages/"+url.PathEscape(pageID))
	return err
}
