package services

import (
	"context"
	"errors"

	"github.com/easyearn/admin-console/models"
	"github.com/rs/zerolog"
)

const (
	msgInvalidResponse = "Invalid response format from server"
	msgUsersFailed     = "Failed to fetch users. Please check your connection."
)

// UsersPage fetches one page of users. A missing pagination descriptor is
// replaced by a single-page fallback.
func (svc *Service) UsersPage(ctx context.Context, page int) (*models.UsersPage, error) {
	logger := zerolog.Ctx(ctx).With().Int("page", page).Logger()

	resp, err := svc.API.ListUsers(ctx, page, svc.PageSize())
	if err != nil {
		logger.Error().Err(err).Msg("Failed to fetch users")
		return nil, err
	}

	result := &models.UsersPage{Users: resp.Users}
	if resp.Pagination != nil {
		result.Pagination = *resp.Pagination
	} else {
		logger.Debug().Msg("Admin API omitted pagination, using fallback")
		result.Pagination = models.FallbackPagination(page, len(resp.Users))
	}

	logger.Debug().Int("user_count", len(result.Users)).Msg("Fetched users")
	return result, nil
}

// UsersErrorMessage is the text shown in the users error panel.
func UsersErrorMessage(err error) string {
	var httpErr *HTTPError
	switch {
	case errors.As(err, &httpErr) && httpErr.Message != "":
		return httpErr.Message
	case errors.Is(err, ErrInvalidResponse):
		return msgInvalidResponse
	default:
		return msgUsersFailed
	}
}
