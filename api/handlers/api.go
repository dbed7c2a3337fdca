package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/easyearn/admin-console/api/services"
	"github.com/easyearn/admin-console/internal/pagination"
	"github.com/easyearn/admin-console/models"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// ParticipationActionResponse is returned after an approve or reject call.
type ParticipationActionResponse struct {
	Toast    models.Toast                  `json:"toast"`
	Requests []models.ParticipationRequest `json:"requests"`
}

// UsersListResponse is one page of users with the page links to display.
type UsersListResponse struct {
	Users      []models.User     `json:"users"`
	Pagination models.Pagination `json:"pagination"`
	Pages      []pagination.Item `json:"pages"`
}

// @Summary List participation requests
// @Description List every participation with its review status.
// @Tags participations
// @Produce json
// @Success 200 {object} models.Response{data=[]models.ParticipationRequest}
// @Failure 502 {object} models.Response
// @Router /participations [get]
func ListParticipationsAPI(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requests, err := svc.ParticipationRequests(r.Context())
		if err != nil {
			services.WriteError(w, services.UpstreamStatus(err), "fetch_failed", services.ToastFetchRequestsFailed.Description)
			return
		}
		services.WriteData(w, http.StatusOK, requests)
	}
}

// @Summary Approve a participation request
// @Description Approve a participation and return the refreshed request list.
// @Tags participations
// @Produce json
// @Param participation-id path string true "Participation ID"
// @Success 200 {object} models.Response{data=ParticipationActionResponse}
// @Failure 404 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /participations/{participation-id}/approve [post]
func ApproveParticipationAPI(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		decide(w, r, svc, "approve_failed", svc.ApproveRequest)
	}
}

// @Summary Reject a participation request
// @Description Deny a participation and return the refreshed request list.
// @Tags participations
// @Produce json
// @Param participation-id path string true "Participation ID"
// @Success 200 {object} models.Response{data=ParticipationActionResponse}
// @Failure 404 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /participations/{participation-id}/reject [post]
func RejectParticipationAPI(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		decide(w, r, svc, "reject_failed", svc.DenyRequest)
	}
}

func decide(w http.ResponseWriter, r *http.Request, svc *services.Service, code string,
	action func(ctx context.Context, id string) (models.Toast, error)) {

	ctx := r.Context()
	id := mux.Vars(r)["participation-id"]

	toast, err := action(ctx, id)
	if err != nil {
		services.WriteError(w, services.UpstreamStatus(err), code, toast.Description)
		return
	}

	resp := ParticipationActionResponse{Toast: toast}
	requests, err := svc.ParticipationRequests(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("participation_id", id).Msg("Refresh after decision failed")
	} else {
		resp.Requests = requests
	}

	services.WriteData(w, http.StatusOK, resp)
}

// @Summary List users
// @Description List one page of registered users.
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Success 200 {object} models.Response{data=UsersListResponse}
// @Failure 502 {object} models.Response
// @Router /users [get]
func ListUsersAPI(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := pagination.ClampPage(r.URL.Query().Get("page"))

		usersPage, err := svc.UsersPage(r.Context(), page)
		if err != nil {
			services.WriteError(w, services.UpstreamStatus(err), "users_unavailable", services.UsersErrorMessage(err))
			return
		}

		services.WriteData(w, http.StatusOK, UsersListResponse{
			Users:      usersPage.Users,
			Pagination: usersPage.Pagination,
			Pages:      pagination.Window(usersPage.Pagination.CurrentPage, usersPage.Pagination.TotalPages),
		})
	}
}

// @Summary Broadcast a notification
// @Description Send a notification to every registered user.
// @Tags notifications
// @Accept json
// @Produce json
// @Param notification body models.Notification true "Notification"
// @Success 200 {object} models.Response{data=models.Toast}
// @Failure 400 {object} models.Response
// @Failure 502 {object} models.Response
// @Router /notifications [post]
func SendNotificationAPI(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context())

		var n models.Notification
		if err := json.NewDecoder(r.Body).Decode(&n); err != nil {
			logger.Debug().Err(err).Msg("Invalid notification body")
			services.WriteError(w, http.StatusBadRequest, "invalid_body", "Request body must be a JSON notification.")
			return
		}

		toast, err := svc.SendNotification(r.Context(), n)
		if err != nil {
			services.WriteError(w, services.UpstreamStatus(err), "send_failed", toast.Description)
			return
		}
		services.WriteData(w, http.StatusOK, toast)
	}
}

// Healthz reports that the console is serving.
func Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		services.WriteResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
