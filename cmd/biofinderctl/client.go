package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"biofinder/internal/domain"
)

// client is a thin HTTP wrapper over the biofinder API.
type client struct {
	base string
	http *http.Client
}

func newClient(base string) *client {
	return &client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

type searchResponse struct {
	Query string              `json:"query"`
	Hits  []*domain.SearchHit `json:"hits"`
	Count int                 `json:"count"`
}

type toolListResponse struct {
	Tools []string `json:"tools"`
	Count int      `json:"count"`
	Total int      `json:"total"`
}

type apiError struct {
	Error string `json:"error"`
}

func (c *client) FindTool(ctx context.Context, name string) (*domain.ToolResult, error) {
	var res domain.ToolResult
	err := c.get(ctx, "/api/tools/"+url.PathEscape(name), nil, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) Versions(ctx context.Context, name string) (*domain.VersionListing, error) {
	var listing domain.VersionListing
	err := c.get(ctx, "/api/tools/"+url.PathEscape(name)+"/versions", nil, &listing)
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (c *client) Search(ctx context.Context, query string, limit int) (*searchResponse, error) {
	q := url.Values{"q": {query}}
	if limit != 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var res searchResponse
	if err := c.get(ctx, "/api/search", q, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) ListTools(ctx context.Context, limit int) (*toolListResponse, error) {
	var q url.Values
	if limit != 0 {
		q = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	var res toolListResponse
	if err := c.get(ctx, "/api/tools", q, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *client) Reload(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/api/reload", nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("reload failed: %s (%s)", resp.Status, strings.TrimSpace(string(body)))
	}
	return nil
}

func (c *client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		var apiErr apiError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("not found: %s", path)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("server returned %s for %s", resp.Status, path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
