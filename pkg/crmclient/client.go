package crmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Lead mirrors the API's lead record.
type Lead struct {
	ID        int64     `json:"id"`
	LeadID    string    `json:"leadId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Status    string    `json:"status"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Owner     string    `json:"owner"`
	Team      *string   `json:"team"`
	Notes     *string   `json:"notes"`
}

// ListResult is the paginated list payload.
type ListResult struct {
	Leads      []Lead `json:"leads"`
	Total      int64  `json:"total"`
	TotalPages int    `json:"totalPages"`
}

// Stats is the dashboard aggregate payload.
type Stats struct {
	TotalLeads    int64            `json:"totalLeads"`
	LeadsByStatus map[string]int64 `json:"leadsByStatus"`
	LeadsBySource map[string]int64 `json:"leadsBySource"`
	RecentLeads   []Lead           `json:"recentLeads"`
}

// CreateLeadParams carries the caller-supplied fields for a new lead.
type CreateLeadParams struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Status string `json:"status"`
	Source string `json:"source"`
	Owner  string `json:"owner"`
	Team   string `json:"team,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// UpdateLeadParams is a partial update; nil fields are left untouched.
type UpdateLeadParams struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Status *string `json:"status,omitempty"`
	Source *string `json:"source,omitempty"`
	Owner  *string `json:"owner,omitempty"`
	Team   *string `json:"team,omitempty"`
	Notes  *string `json:"notes,omitempty"`
}

// BulkResult reports how many records a bulk operation touched.
type BulkResult struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// APIError is a non-2xx response decoded from the {"message": ...} envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("crm: %d %s", e.StatusCode, e.Message)
}

// Client is a typed HTTP client for the lead API.
type Client struct {
	baseURL    string
	httpClient *http.Client

	// UserName, when set, is sent as X-User-Name so the server resolves the
	// "Me" owner filter against it.
	UserName string
}

// New creates a client for the given base URL, e.g. "http://localhost:8080".
// A nil httpClient falls back to http.DefaultClient.
func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// ListLeads fetches the page described by the query state.
func (c *Client) ListLeads(ctx context.Context, state *QueryState) (*ListResult, error) {
	var out ListResult
	path := "/api/leads?" + state.Values().Encode()
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLead fetches one lead by id.
func (c *Client) GetLead(ctx context.Context, id int64) (*Lead, error) {
	var out Lead
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/leads/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLead creates a lead; the server assigns leadId and timestamps.
func (c *Client) CreateLead(ctx context.Context, params CreateLeadParams) (*Lead, error) {
	var out Lead
	if err := c.do(ctx, http.MethodPost, "/api/leads", params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLead applies a partial update to one lead.
func (c *Client) UpdateLead(ctx context.Context, id int64, params UpdateLeadParams) (*Lead, error) {
	var out Lead
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/leads/%d", id), params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteLead hard-deletes one lead.
func (c *Client) DeleteLead(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/leads/%d", id), nil, nil)
}

// BulkDelete removes the given ids, returning the count actually deleted.
func (c *Client) BulkDelete(ctx context.Context, ids []int64) (*BulkResult, error) {
	var out BulkResult
	body := map[string]interface{}{"ids": ids}
	if err := c.do(ctx, http.MethodPost, "/api/leads/bulk-delete", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// BulkUpdate applies the same field set to every id, returning the count
// actually updated.
func (c *Client) BulkUpdate(ctx context.Context, ids []int64, updates UpdateLeadParams) (*BulkResult, error) {
	var out BulkResult
	body := map[string]interface{}{"ids": ids, "updates": updates}
	if err := c.do(ctx, http.MethodPost, "/api/leads/bulk-update", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetStats fetches the dashboard aggregates.
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var out Stats
	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.UserName != "" {
		req.Header.Set("X-User-Name", c.UserName)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
			apiErr.Message = envelope.Message
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
