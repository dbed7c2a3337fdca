package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/easyearn/admin-console/models"
	"github.com/rs/zerolog"
)

// ErrValidation is returned when a notification is missing its title or message.
var ErrValidation = errors.New("title and message are required")

var (
	ToastValidation = models.Toast{
		Title:       "Validation Error",
		Description: "Please fill in both title and message fields.",
		Variant:     models.ToastDestructive,
	}
	ToastSendFailed = ErrorToast("Failed to send notification. Please try again.")
)

// SentToast is the confirmation shown after a broadcast.
func SentToast(title string) models.Toast {
	return models.Toast{
		Title:       "Notification Sent!",
		Description: fmt.Sprintf("Notification \"%s\" has been sent to all users successfully.", title),
	}
}

// ValidateNotification rejects blank titles or messages.
func ValidateNotification(n models.Notification) error {
	if strings.TrimSpace(n.Title) == "" || strings.TrimSpace(n.Message) == "" {
		return ErrValidation
	}
	return nil
}

// SendNotification validates and broadcasts a notification. The admin API is
// not called when validation fails.
func (svc *Service) SendNotification(ctx context.Context, n models.Notification) (models.Toast, error) {
	logger := zerolog.Ctx(ctx)

	if err := ValidateNotification(n); err != nil {
		logger.Debug().Msg("Notification rejected: missing title or message")
		return ToastValidation, err
	}

	if err := svc.API.SendNotification(ctx, n); err != nil {
		logger.Error().Err(err).Str("title", n.Title).Msg("Failed to send notification")
		return ToastSendFailed, err
	}

	logger.Info().Str("title", n.Title).Msg("Notification broadcast")
	svc.record(ctx, models.AuditNotificationSent, n.Title, n.Message)

	if svc.Mailer != nil {
		if err := svc.Mailer.MirrorNotification(ctx, n); err != nil {
			logger.Warn().Err(err).Msg("Failed to mirror notification by email")
		}
	}

	return SentToast(n.Title), nil
}
