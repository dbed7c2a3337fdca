package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/easyearn/admin-console/internal/appconfig"
	"github.com/easyearn/admin-console/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(api *MockAdminAPI) *Service {
	return &Service{
		Config: &appconfig.Config{
			AdminAPI: appconfig.AdminAPIConfig{URL: "http://api.test"},
			UI:       appconfig.UIConfig{PageSize: 50},
		},
		API: api,
	}
}

func TestParticipationRequests(t *testing.T) {
	approved := true
	mockAPI := new(MockAdminAPI)
	mockAPI.On("ListParticipations", mock.Anything).Return([]models.Participation{
		{ID: "p1", User: &models.ParticipationUser{Email: "ann@example.com"}, PrizeTitle: "Gift card", ReceiptURL: "/uploads/r1.png"},
		{ID: "p2", SubmittedButton: &approved},
	}, nil)

	svc := newTestService(mockAPI)
	requests, err := svc.ParticipationRequests(context.Background())

	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "http://api.test/uploads/r1.png", requests[0].DocumentPreview)
	assert.Equal(t, models.StatusPending, requests[0].Status)
	assert.Equal(t, "Unknown", requests[1].UserEmail)
	assert.Equal(t, models.StatusApproved, requests[1].Status)
}

func TestParticipationRequests_Error(t *testing.T) {
	mockAPI := new(MockAdminAPI)
	mockAPI.On("ListParticipations", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := newTestService(mockAPI).ParticipationRequests(context.Background())
	assert.Error(t, err)
}

func TestApproveRequest_PublishesAuditEvent(t *testing.T) {
	mockAPI := new(MockAdminAPI)
	mockAPI.On("ApproveParticipation", mock.Anything, "p1").Return(nil)

	mockEvents := new(MockEventPublisher)
	mockEvents.On("Publish", mock.Anything, mock.MatchedBy(func(e models.AuditEvent) bool {
		return e.Action == models.AuditParticipationApproved && e.Subject == "p1"
	})).Return(nil)

	svc := newTestService(mockAPI)
	svc.Events = mockEvents

	toast, err := svc.ApproveRequest(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Request Approved", toast.Title)
	assert.Equal(t, "The user submission has been approved successfully.", toast.Description)
	assert.False(t, toast.IsDestructive())

	mockAPI.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
}

func TestApproveRequest_PublishFailureIsIgnored(t *testing.T) {
	mockAPI := new(MockAdminAPI)
	mockAPI.On("ApproveParticipation", mock.Anything, "p1").Return(nil)

	mockEvents := new(MockEventPublisher)
	mockEvents.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

	svc := newTestService(mockAPI)
	svc.Events = mockEvents

	toast, err := svc.ApproveRequest(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, ToastApproved, toast)
}

func TestApproveRequest_PublishIsBounded(t *testing.T) {
	mockAPI := new(MockAdminAPI)
	mockAPI.On("ApproveParticipation", mock.Anything, "p1").Return(nil)

	var deadline time.Time
	var hasDeadline bool
	mockEvents := new(MockEventPublisher)
	mockEvents.On("Publish", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			deadline, hasDeadline = args.Get(0).(context.Context).Deadline()
		}).
		Return(nil)

	svc := newTestService(mockAPI)
	svc.Events = mockEvents

	start := time.Now()
	_, err := svc.ApproveRequest(context.Background(), "p1")
	require.NoError(t, err)
	require.True(t, hasDeadline)
	assert.WithinDuration(t, start.Add(publishTimeout), deadline, time.Second)
}

func TestApproveRequest_Error(t *testing.T) {
	mockAPI := new(MockAdminAPI)
	mockAPI.On("ApproveParticipation", mock.Anything, "p1").Return(&HTTPError{Status: http.StatusNotFound})

	mockEvents := new(MockEventPublisher)
	svc := newTestService(mockAPI)
	svc.Events = mockEvents

	toast, err := svc.ApproveRequest(context.Background(), "p1")
	assert.Error(t, err)
	assert.Equal(t, "Error", toast.Title)
	assert.Equal(t, "Failed to approve request.", toast.Description)
	assert.True(t, toast.IsDestructive())
	mockEvents.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestDenyRequest(t *testing.T) {
	mockAPI := new(MockAdminAPI)
	mockAPI.On("RejectParticipation", mock.Anything, "p2").Return(nil).Once()
	mockAPI.On("RejectParticipation", mock.Anything, "p3").Return(errors.New("timeout")).Once()

	svc := newTestService(mockAPI)

	toast, err := svc.DenyRequest(context.Background(), "p2")
	require.NoError(t, err)
	assert.Equal(t, "Request Denied", toast.Title)
	assert.Equal(t, "The user submission has been denied.", toast.Description)
	assert.True(t, toast.IsDestructive())

	toast, err = svc.DenyRequest(context.Background(), "p3")
	assert.Error(t, err)
	assert.Equal(t, "Failed to deny request.", toast.Description)
}

func TestUsersPage_UsesPagination(t *testing.T) {
	mockAPI := new(MockAdminAPI)
	mockAPI.On("ListUsers", mock.Anything, 3, 50).Return(&models.UsersResponse{
		Users: []models.User{{ID: "u1", Email: "a@example.com"}},
		Pagination: &models.Pagination{
			CurrentPage: 3, TotalPages: 7, TotalUsers: 301, Limit: 50, HasNextPage: true, HasPrevPage: true,
		},
	}, nil)

	page, err := newTestService(mockAPI).UsersPage(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, page.Users, 1)
	assert.Equal(t, 7, page.Pagination.TotalPages)
	assert.Equal(t, 301, page.Pagination.TotalUsers)
}

func TestUsersPage_FallbackPagination(t *testing.T) {
	mockAPI := new(MockAdminAPI)
	mockAPI.On("ListUsers", mock.Anything, 2, 50).Return(&models.UsersResponse{
		Users: []models.User{{ID: "u1"}, {ID: "u2"}},
	}, nil)

	page, err := newTestService(mockAPI).UsersPage(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, models.Pagination{CurrentPage: 2, TotalPages: 1, TotalUsers: 2, Limit: 50}, page.Pagination)
}

func TestUsersErrorMessage(t *testing.T) {
	assert.Equal(t, "Database unavailable", UsersErrorMessage(&HTTPError{Message: "Database unavailable", Status: 500}))
	assert.Equal(t, "Invalid response format from server", UsersErrorMessage(ErrInvalidResponse))
	assert.Equal(t, "Failed to fetch users. Please check your connection.", UsersErrorMessage(&HTTPError{Status: 503}))
	assert.Equal(t, "Failed to fetch users. Please check your connection.", UsersErrorMessage(errors.New("dial tcp")))
}

func TestValidateNotification(t *testing.T) {
	tests := []struct {
		name string
		n    models.Notification
		ok   bool
	}{
		{"both set", models.Notification{Title: "Hi", Message: "There"}, true},
		{"empty title", models.Notification{Message: "There"}, false},
		{"empty message", models.Notification{Title: "Hi"}, false},
		{"blank title", models.Notification{Title: "   ", Message: "There"}, false},
		{"blank message", models.Notification{Title: "Hi", Message: "\n\t"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateNotification(tt.n)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrValidation)
			}
		})
	}
}

func TestSendNotification_ValidationSkipsAPI(t *testing.T) {
	mockAPI := new(MockAdminAPI)

	toast, err := newTestService(mockAPI).SendNotification(context.Background(), models.Notification{Title: " ", Message: "body"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "Validation Error", toast.Title)
	assert.Equal(t, "Please fill in both title and message fields.", toast.Description)
	mockAPI.AssertNotCalled(t, "SendNotification", mock.Anything, mock.Anything)
}

func TestSendNotification_Success(t *testing.T) {
	n := models.Notification{Title: "Maintenance", Message: "Back at 10"}

	mockAPI := new(MockAdminAPI)
	mockAPI.On("SendNotification", mock.Anything, n).Return(nil)
	mockEvents := new(MockEventPublisher)
	mockEvents.On("Publish", mock.Anything, mock.MatchedBy(func(e models.AuditEvent) bool {
		return e.Action == models.AuditNotificationSent && e.Subject == "Maintenance"
	})).Return(nil)
	mockMailer := new(MockMailer)
	mockMailer.On("MirrorNotification", mock.Anything, n).Return(errors.New("ses throttled"))

	svc := newTestService(mockAPI)
	svc.Events = mockEvents
	svc.Mailer = mockMailer

	toast, err := svc.SendNotification(context.Background(), n)
	require.NoError(t, err)
	assert.Equal(t, "Notification Sent!", toast.Title)
	assert.Equal(t, `Notification "Maintenance" has been sent to all users successfully.`, toast.Description)

	mockAPI.AssertExpectations(t)
	mockEvents.AssertExpectations(t)
	mockMailer.AssertExpectations(t)
}

func TestSendNotification_Failure(t *testing.T) {
	n := models.Notification{Title: "Hi", Message: "There"}
	mockAPI := new(MockAdminAPI)
	mockAPI.On("SendNotification", mock.Anything, n).Return(&HTTPError{Status: http.StatusInternalServerError})

	toast, err := newTestService(mockAPI).SendNotification(context.Background(), n)
	assert.Error(t, err)
	assert.Equal(t, "Error", toast.Title)
	assert.Equal(t, "Failed to send notification. Please try again.", toast.Description)
}

func TestRecentActivity(t *testing.T) {
	svc := newTestService(new(MockAdminAPI))
	assert.Nil(t, svc.RecentActivity(context.Background()))

	reader := new(MockAuditReader)
	reader.On("RecentAuditEvents", mock.Anything, 10).Return([]models.AuditEvent{
		models.NewAuditEvent(models.AuditNotificationSent, "Hi", "There"),
	}, nil).Once()
	reader.On("RecentAuditEvents", mock.Anything, 10).Return(nil, errors.New("db closed")).Once()
	svc.Audit = reader

	assert.Len(t, svc.RecentActivity(context.Background()), 1)
	assert.Nil(t, svc.RecentActivity(context.Background()))
}

func TestUpstreamStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, UpstreamStatus(ErrValidation))
	assert.Equal(t, http.StatusNotFound, UpstreamStatus(&HTTPError{Status: http.StatusNotFound}))
	assert.Equal(t, http.StatusBadGateway, UpstreamStatus(&HTTPError{Status: http.StatusInternalServerError}))
	assert.Equal(t, http.StatusBadGateway, UpstreamStatus(errors.New("dial tcp")))
}

func TestPageSizeDefault(t *testing.T) {
	svc := &Service{}
	assert.Equal(t, models.DefaultPageLimit, svc.PageSize())
	assert.Equal(t, "", svc.APIBaseURL())
}
