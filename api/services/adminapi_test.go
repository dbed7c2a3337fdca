package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/easyearn/admin-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListParticipations(t *testing.T) {
	mockResponse := `{"participations": [
		{"_id": "p1", "user": {"email": "ada@example.com"}, "prizeTitle": "Gift card", "receiptUrl": "/r/1.jpg", "createdAt": "2024-03-05T14:30:00Z", "submittedButton": null},
		{"_id": "p2", "prizeTitle": "Voucher", "receiptUrl": "https://cdn/2.jpg", "createdAt": "2024-03-06T09:00:00Z", "submittedButton": false}
	]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/admin/participations", r.URL.Path)
		assert.Equal(t, "Bearer api-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(mockResponse))
	}))
	defer server.Close()

	client := NewAdminClient(server.URL, "api-token", time.Second)
	participations, err := client.ListParticipations(context.Background())
	require.NoError(t, err)
	require.Len(t, participations, 2)
	assert.Equal(t, "p1", participations[0].ID)
	assert.Nil(t, participations[0].SubmittedButton)
	require.NotNil(t, participations[1].SubmittedButton)
	assert.False(t, *participations[1].SubmittedButton)
	assert.Nil(t, participations[1].User)
}

func TestListParticipations_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewAdminClient(server.URL, "", time.Second)
	participations, err := client.ListParticipations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, participations)
}

func TestApproveAndRejectParticipation(t *testing.T) {
	var paths []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Empty(t, r.Header.Get("Authorization"))
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewAdminClient(server.URL, "", time.Second)
	require.NoError(t, client.ApproveParticipation(context.Background(), "p1"))
	require.NoError(t, client.RejectParticipation(context.Background(), "p2"))

	assert.Equal(t, []string{
		"/api/admin/participations/p1/approve",
		"/api/admin/participations/p2/reject",
	}, paths)
}

func TestListUsers(t *testing.T) {
	mockResponse := `{"users": [{"_id": "u1", "email": "ada@example.com", "username": "ada", "createdAt": "2024-01-01T00:00:00Z", "verified": true}],
		"pagination": {"currentPage": 2, "totalPages": 4, "totalUsers": 160, "limit": 50, "hasNextPage": true, "hasPrevPage": true}}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/users", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(mockResponse))
	}))
	defer server.Close()

	client := NewAdminClient(server.URL, "", time.Second)
	resp, err := client.ListUsers(context.Background(), 2, 50)
	require.NoError(t, err)
	require.Len(t, resp.Users, 1)
	assert.True(t, resp.Users[0].Verified)
	require.NotNil(t, resp.Pagination)
	assert.Equal(t, 160, resp.Pagination.TotalUsers)
	assert.True(t, resp.Pagination.HasPrevPage)
}

func TestListUsers_MissingUsersField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer server.Close()

	client := NewAdminClient(server.URL, "", time.Second)
	_, err := client.ListUsers(context.Background(), 1, 50)
	assert.True(t, errors.Is(err, ErrInvalidResponse))
}

func TestSendNotification(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/admin/notifications", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"title": "Maintenance", "message": "Back at 10"}`, string(body))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	client := NewAdminClient(server.URL, "", time.Second)
	err := client.SendNotification(context.Background(), models.Notification{Title: "Maintenance", Message: "Back at 10"})
	assert.NoError(t, err)
}

func TestMakeRequest_ErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": "Admin access required"}`))
	}))
	defer server.Close()

	client := NewAdminClient(server.URL, "", time.Second)
	_, err := client.ListUsers(context.Background(), 1, 50)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusForbidden, httpErr.Status)
	assert.Equal(t, "Admin access required", httpErr.Message)
}

func TestMakeRequest_IgnoresMessageField(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message": "E11000 duplicate key error collection: users"}`))
	}))
	defer server.Close()

	client := NewAdminClient(server.URL, "", time.Second)
	_, err := client.ListUsers(context.Background(), 1, 50)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "", httpErr.Message)
	assert.Equal(t, "Failed to fetch users. Please check your connection.", UsersErrorMessage(err))
}

func TestMakeRequest_ErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewAdminClient(server.URL, "", time.Second)
	err := client.ApproveParticipation(context.Background(), "p1")

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "", httpErr.Message)
	assert.Equal(t, "admin api returned status 500", httpErr.Error())
}
