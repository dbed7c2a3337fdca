package services

import (
	"context"

	"github.com/easyearn/admin-console/internal/appconfig"
	"github.com/easyearn/admin-console/internal/events"
	"github.com/easyearn/admin-console/models"
)

// AdminAPI is the subset of the admin API the console drives.
type AdminAPI interface {
	ListParticipations(ctx context.Context) ([]models.Participation, error)
	ApproveParticipation(ctx context.Context, id string) error
	RejectParticipation(ctx context.Context, id string) error
	ListUsers(ctx context.Context, page, limit int) (*models.UsersResponse, error)
	SendNotification(ctx context.Context, n models.Notification) error
}

// AuditReader lists recorded console actions, newest first.
type AuditReader interface {
	RecentAuditEvents(ctx context.Context, limit int) ([]models.AuditEvent, error)
}

// Mailer sends operators a copy of each broadcast.
type Mailer interface {
	MirrorNotification(ctx context.Context, n models.Notification) error
}

// Service contains all shared dependencies for handlers. Events, Audit and
// Mailer are optional.
type Service struct {
	Config *appconfig.Config
	API    AdminAPI
	Events events.Notifier
	Audit  AuditReader
	Mailer Mailer
}

// APIBaseURL returns the admin API base URL used to resolve relative receipts.
func (svc *Service) APIBaseURL() string {
	if svc.Config == nil {
		return ""
	}
	return svc.Config.AdminAPI.URL
}

// PageSize returns the number of users shown per page.
func (svc *Service) PageSize() int {
	if svc.Config == nil || svc.Config.UI.PageSize < 1 {
		return models.DefaultPageLimit
	}
	return svc.Config.UI.PageSize
}
