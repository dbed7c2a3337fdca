package services

import (
	"context"

	"github.com/easyearn/admin-console/models"
	"github.com/stretchr/testify/mock"
)

type MockAdminAPI struct {
	mock.Mock
}

type MockEventPublisher struct {
	mock.Mock
}

type MockAuditReader struct {
	mock.Mock
}

type MockMailer struct {
	mock.Mock
}

func (m *MockAdminAPI) ListParticipations(ctx context.Context) ([]models.Participation, error) {
	args := m.Called(ctx)
	participations, _ := args.Get(0).([]models.Participation)
	return participations, args.Error(1)
}

func (m *MockAdminAPI) ApproveParticipation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminAPI) RejectParticipation(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminAPI) ListUsers(ctx context.Context, page, limit int) (*models.UsersResponse, error) {
	args := m.Called(ctx, page, limit)
	resp, _ := args.Get(0).(*models.UsersResponse)
	return resp, args.Error(1)
}

func (m *MockAdminAPI) SendNotification(ctx context.Context, n models.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockEventPublisher) Publish(ctx context.Context, event models.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() {
	m.Called()
}

func (m *MockAuditReader) RecentAuditEvents(ctx context.Context, limit int) ([]models.AuditEvent, error) {
	args := m.Called(ctx, limit)
	events, _ := args.Get(0).([]models.AuditEvent)
	return events, args.Error(1)
}

func (m *MockMailer) MirrorNotification(ctx context.Context, n models.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
