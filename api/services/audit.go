package services

import (
	"context"
	"time"

	"github.com/easyearn/admin-console/models"
	"github.com/rs/zerolog"
)

const (
	recentActivityLimit = 10
	publishTimeout      = 3 * time.Second
)

// record publishes an audit event. Publishing failures never fail the action
// that produced the event.
func (svc *Service) record(ctx context.Context, action, subject, detail string) {
	if svc.Events == nil {
		return
	}

	logger := zerolog.Ctx(ctx)
	event := models.NewAuditEvent(action, subject, detail)

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := svc.Events.Publish(pubCtx, event); err != nil {
		logger.Warn().Err(err).Str("action", action).Str("subject", subject).Msg("Failed to publish audit event")
		return
	}
	logger.Debug().Str("event_id", event.ID.String()).Str("action", action).Msg("Published audit event")
}

// RecentActivity returns the latest recorded actions, or nil when no audit
// store is configured or it cannot be read.
func (svc *Service) RecentActivity(ctx context.Context) []models.AuditEvent {
	if svc.Audit == nil {
		return nil
	}

	activity, err := svc.Audit.RecentAuditEvents(ctx, recentActivityLimit)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("Failed to read recent activity")
		return nil
	}
	return activity
}
