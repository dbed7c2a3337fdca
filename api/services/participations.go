package services

import (
	"context"

	"github.com/easyearn/admin-console/models"
	"github.com/rs/zerolog"
)

var (
	ToastApproved = models.Toast{
		Title:       "Request Approved",
		Description: "The user submission has been approved successfully.",
	}
	ToastDenied = models.Toast{
		Title:       "Request Denied",
		Description: "The user submission has been denied.",
		Variant:     models.ToastDestructive,
	}
	ToastFetchRequestsFailed = ErrorToast("Failed to fetch participation requests.")
	ToastApproveFailed       = ErrorToast("Failed to approve request.")
	ToastDenyFailed          = ErrorToast("Failed to deny request.")
)

// ErrorToast builds the destructive toast used for failed operations.
func ErrorToast(description string) models.Toast {
	return models.Toast{Title: "Error", Description: description, Variant: models.ToastDestructive}
}

// ParticipationRequests lists every participation as a review item.
func (svc *Service) ParticipationRequests(ctx context.Context) ([]models.ParticipationRequest, error) {
	logger := zerolog.Ctx(ctx)

	participations, err := svc.API.ListParticipations(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch participation requests")
		return nil, err
	}

	requests := make([]models.ParticipationRequest, 0, len(participations))
	for _, p := range participations {
		requests = append(requests, models.NewParticipationRequest(p, svc.APIBaseURL()))
	}

	logger.Debug().Int("request_count", len(requests)).Msg("Fetched participation requests")
	return requests, nil
}

// ApproveRequest approves a participation and returns the toast to show.
func (svc *Service) ApproveRequest(ctx context.Context, id string) (models.Toast, error) {
	logger := zerolog.Ctx(ctx).With().Str("participation_id", id).Logger()

	if err := svc.API.ApproveParticipation(ctx, id); err != nil {
		logger.Error().Err(err).Msg("Failed to approve participation")
		return ToastApproveFailed, err
	}

	logger.Info().Msg("Participation approved")
	svc.record(ctx, models.AuditParticipationApproved, id, "")
	return ToastApproved, nil
}

// DenyRequest rejects a participation and returns the toast to show.
func (svc *Service) DenyRequest(ctx context.Context, id string) (models.Toast, error) {
	logger := zerolog.Ctx(ctx).With().Str("participation_id", id).Logger()

	if err := svc.API.RejectParticipation(ctx, id); err != nil {
		logger.Error().Err(err).Msg("Failed to reject participation")
		return ToastDenyFailed, err
	}

	logger.Info().Msg("Participation rejected")
	svc.record(ctx, models.AuditParticipationRejected, id, "")
	return ToastDenied, nil
}
