package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/easyearn/admin-console/models"
)

// ErrInvalidResponse is returned when the admin API answers with an unexpected body.
var ErrInvalidResponse = errors.New("invalid response format from server")

// AdminClient is a client for interacting with the external admin API.
type AdminClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

type HTTPError struct {
	Message string
	Status  int
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("admin api returned status %d", e.Status)
}

// apiError is the error body the admin API sends with non-2xx responses.
type apiError struct {
	Error string `json:"error"`
}

// NewAdminClient creates a new instance of AdminClient.
func NewAdminClient(baseURL, token string, timeout time.Duration) *AdminClient {
	return &AdminClient{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// ListParticipations retrieves every participation record.
func (c *AdminClient) ListParticipations(ctx context.Context) ([]models.Participation, error) {
	respBody, err := c.makeRequest(ctx, http.MethodGet, "/api/admin/participations", nil, nil)
	if err != nil {
		return nil, err
	}

	var body models.ParticipationsResponse
	if err := json.Unmarshal(respBody, &body); err != nil {
		return nil, fmt.Errorf("failed to decode participations: %w", err)
	}

	if body.Participations == nil {
		return []models.Participation{}, nil
	}
	return body.Participations, nil
}

// ApproveParticipation marks a participation as approved.
func (c *AdminClient) ApproveParticipation(ctx context.Context, id string) error {
	_, err := c.makeRequest(ctx, http.MethodPost, "/api/admin/participations/"+url.PathEscape(id)+"/approve", nil, nil)
	return err
}

// RejectParticipation marks a participation as denied.
func (c *AdminClient) RejectParticipation(ctx context.Context, id string) error {
	_, err := c.makeRequest(ctx, http.MethodPost, "/api/admin/participations/"+url.PathEscape(id)+"/reject", nil, nil)
	return err
}

// ListUsers retrieves one page of registered users.
func (c *AdminClient) ListUsers(ctx context.Context, page, limit int) (*models.UsersResponse, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("limit", strconv.Itoa(limit))

	respBody, err := c.makeRequest(ctx, http.MethodGet, "/api/admin/users", query, nil)
	if err != nil {
		return nil, err
	}

	var body models.UsersResponse
	if err := json.Unmarshal(respBody, &body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if body.Users == nil {
		return nil, ErrInvalidResponse
	}

	return &body, nil
}

// SendNotification broadcasts a notification to all users.
func (c *AdminClient) SendNotification(ctx context.Context, n models.Notification) error {
	_, err := c.makeRequest(ctx, http.MethodPost, "/api/admin/notifications", nil, n)
	return err
}

// Helper function for making HTTP requests to the admin API.
func (c *AdminClient) makeRequest(ctx context.Context, method, path string, query url.Values, payload any) ([]byte, error) {
	endpoint := c.BaseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Token))
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr apiError
		_ = json.Unmarshal(respBody, &apiErr)
		return respBody, &HTTPError{Message: apiErr.Error, Status: resp.StatusCode}
	}

	return respBody, nil
}
