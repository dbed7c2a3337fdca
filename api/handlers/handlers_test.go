package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/easyearn/admin-console/api/middleware"
	"github.com/easyearn/admin-console/api/services"
	"github.com/easyearn/admin-console/internal/appconfig"
	"github.com/easyearn/admin-console/internal/flash"
	"github.com/easyearn/admin-console/models"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(api *services.MockAdminAPI) *services.Service {
	return &services.Service{
		Config: &appconfig.Config{
			AdminAPI: appconfig.AdminAPIConfig{URL: "http://api.test"},
			UI:       appconfig.UIConfig{BrandName: "EasyEarn Admin", PageSize: 50},
		},
		API: api,
	}
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// flashFrom replays the response cookies to read the stored toast.
func flashFrom(t *testing.T, w *httptest.ResponseRecorder) models.Toast {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	toast, ok := flash.ReadAndClear(httptest.NewRecorder(), req)
	require.True(t, ok, "expected a toast cookie")
	return toast
}

func pendingParticipation(id, email string) models.Participation {
	return models.Participation{ID: id, User: &models.ParticipationUser{Email: email}, PrizeTitle: "Gift card", ReceiptURL: "/r/" + id + ".png"}
}

func TestIndex_RedirectsToDashboard(t *testing.T) {
	w := httptest.NewRecorder()
	Index().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
}

func TestRenderSection_Unknown(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/reports", nil), map[string]string{"section": "reports"})
	w := httptest.NewRecorder()

	RenderSection(newTestService(new(services.MockAdminAPI))).ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRenderSection_Dashboard(t *testing.T) {
	mockAPI := new(services.MockAdminAPI)
	mockAPI.On("ListParticipations", mock.Anything).Return([]models.Participation{
		pendingParticipation("p1", "ann@example.com"),
	}, nil)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/dashboard", nil), map[string]string{"section": "dashboard"})
	w := httptest.NewRecorder()
	RenderSection(newTestService(mockAPI)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "ann@example.com")
	assert.Contains(t, body, `src="http://api.test/r/p1.png"`)
	assert.Contains(t, body, "Send Notification to All Users")
	assert.NotContains(t, body, "Recent Activity")
}

func TestRenderSection_DashboardFetchFailure(t *testing.T) {
	mockAPI := new(services.MockAdminAPI)
	mockAPI.On("ListParticipations", mock.Anything).Return(nil, errors.New("connection refused"))

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/dashboard", nil), map[string]string{"section": "dashboard"})
	w := httptest.NewRecorder()
	RenderSection(newTestService(mockAPI)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `role="alert">Failed to fetch participation requests.</div>`)
	assert.Contains(t, w.Body.String(), `<strong>Error</strong>`)
	assert.NotContains(t, w.Body.String(), "No pending requests at the moment")
}

func TestRenderSection_FetchFailureAfterApproveShowsBoth(t *testing.T) {
	mockAPI := new(services.MockAdminAPI)
	mockAPI.On("ApproveParticipation", mock.Anything, "p1").Return(nil)
	mockAPI.On("ListParticipations", mock.Anything).Return(nil, errors.New("connection refused"))
	svc := newTestService(mockAPI)

	post := mux.SetURLVars(formRequest("/participations/p1/approve", url.Values{"section": {"dashboard"}}),
		map[string]string{"participation-id": "p1"})
	postRR := httptest.NewRecorder()
	ApproveRequest(svc).ServeHTTP(postRR, post)
	require.Equal(t, http.StatusSeeOther, postRR.Code)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, postRR.Header().Get("Location"), nil), map[string]string{"section": "dashboard"})
	for _, c := range postRR.Result().Cookies() {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	RenderSection(svc).ServeHTTP(w, req)

	body := w.Body.String()
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, body, "The user submission has been approved successfully.")
	assert.Contains(t, body, `role="alert">Failed to fetch participation requests.</div>`)
	mockAPI.AssertExpectations(t)
}

func TestRenderSection_DashboardConsumesToast(t *testing.T) {
	mockAPI := new(services.MockAdminAPI)
	mockAPI.On("ListParticipations", mock.Anything).Return([]models.Participation{}, nil)

	flashRR := httptest.NewRecorder()
	flash.Write(flashRR, services.ToastApproved)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/dashboard", nil), map[string]string{"section": "dashboard"})
	req.AddCookie(flashRR.Result().Cookies()[0])
	w := httptest.NewRecorder()
	RenderSection(newTestService(mockAPI)).ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), "The user submission has been approved successfully.")
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, flash.CookieName, cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestRenderSection_DashboardActivity(t *testing.T) {
	mockAPI := new(services.MockAdminAPI)
	mockAPI.On("ListParticipations", mock.Anything).Return([]models.Participation{}, nil)
	reader := new(services.MockAuditReader)
	reader.On("RecentAuditEvents", mock.Anything, 10).Return([]models.AuditEvent{
		models.NewAuditEvent(models.AuditNotificationSent, "Maintenance", "Back at 10"),
	}, nil)

	svc := newTestService(mockAPI)
	svc.Audit = reader

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/dashboard", nil), map[string]string{"section": "dashboard"})
	w := httptest.NewRecorder()
	RenderSection(svc).ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), "Broadcast notification")
	assert.Contains(t, w.Body.String(), "Maintenance")
}

func TestRenderSection_UsersInvalidPageFallsBackToFirst(t *testing.T) {
	mockAPI := new(services.MockAdminAPI)
	mockAPI.On("ListUsers", mock.Anything, 1, 50).Return(&models.UsersResponse{
		Users: []models.User{{Email: "a@example.com", Username: "alice"}},
	}, nil)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/users?page=abc", nil), map[string]string{"section": "users"})
	w := httptest.NewRecorder()
	RenderSection(newTestService(mockAPI)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
	assert.Contains(t, w.Body.String(), "Page 1 of 1")
	mockAPI.AssertExpectations(t)
}

func TestRenderSection_UsersPreferenceFormsKeepPage(t *testing.T) {
	mockAPI := new(services.MockAdminAPI)
	mockAPI.On("ListUsers", mock.Anything, 4, 50).Return(&models.UsersResponse{
		Users:      []models.User{{Email: "a@example.com", Username: "alice"}},
		Pagination: &models.Pagination{CurrentPage: 4, TotalPages: 6, TotalUsers: 300, Limit: 50, HasNextPage: true, HasPrevPage: true},
	}, nil)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/users?page=4", nil), map[string]string{"section": "users"})
	w := httptest.NewRecorder()
	RenderSection(newTestService(mockAPI)).ServeHTTP(w, req)

	body := w.Body.String()
	assert.Contains(t, body, `action="/preferences/theme"`)
	assert.Contains(t, body, `action="/preferences/sidebar"`)
	assert.Equal(t, 2, strings.Count(body, `name="page" value="4"`))
}

func TestRenderSection_UsersErrorPanel(t *testing.T) {
	mockAPI := new(services.MockAdminAPI)
	mockAPI.On("ListUsers", mock.Anything, 3, 50).Return(nil, &services.HTTPError{Message: "Database unavailable", Status: 500})

	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/users?page=3", nil), map[string]string{"section": "users"})
	w := httptest.NewRecorder()
	RenderSection(newTestService(mockAPI)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Database unavailable")
	assert.Contains(t, w.Body.String(), `href="/users?page=3">Retry</a>`)
}

func TestRenderSection_AppliesPreferences(t *testing.T) {
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/settings", nil), map[string]string{"section": "settings"})
	req.AddCookie(&http.Cookie{Name: middleware.ThemeCookie, Value: middleware.ThemeDark})
	w := httptest.NewRecorder()

	middleware.WithPreferences(RenderSection(newTestService(new(services.MockAdminAPI)))).ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), `class="dark"`)
	assert.Contains(t, w.Body.String(), "Settings panel coming soon...")
}

func TestApproveRequest_RedirectsWithToast(t *testing.T) {
	mockAPI := new(services.MockAdminAPI)
	mockAPI.On("ApproveParticipation", mock.Anything, "p1").Return(nil)

	req := mux.SetURLVars(formRequest("/participations/p1/approve", url.Values{"section": {"dashboard"}}),
		map[string]string{"participation-id": "p1"})
	w := httptest.NewRecorder()
	ApproveRequest(newTestService(mockAPI)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	assert.Equal(t, services.ToastApproved, flashFrom(t, w))
	mockAPI.AssertExpectations(t)
}

func TestDenyRequest_FailureToast(t *testing.T) {
	mockAPI := new(services.MockAdminAPI)
	mockAPI.On("RejectParticipation", mock.Anything, "p1").Return(errors.New("timeout"))

	req := mux.SetURLVars(formRequest("/participations/p1/reject", url.Values{"section": {"bogus"}}),
		map[string]string{"participation-id": "p1"})
	w := httptest.NewRecorder()
	DenyRequest(newTestService(mockAPI)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	toast := flashFrom(t, w)
	assert.Equal(t, "Failed to deny request.", toast.Description)
	assert.True(t, toast.IsDestructive())
}

func TestSendNotification_ValidationRerendersForm(t *testing.T) {
	mockAPI := new(services.MockAdminAPI)

	req := formRequest("/notifications", url.Values{"section": {"notifications"}, "title": {"Kept title"}, "message": {"  "}})
	w := httptest.NewRecorder()
	SendNotification(newTestService(mockAPI)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please fill in both title and message fields.")
	assert.Contains(t, w.Body.String(), `value="Kept title"`)
	mockAPI.AssertNotCalled(t, "SendNotification", mock.Anything, mock.Anything)
}

func TestSendNotification_UpstreamFailureKeepsValues(t *testing.T) {
	n := models.Notification{Title: "Hi", Message: "There"}
	mockAPI := new(services.MockAdminAPI)
	mockAPI.On("SendNotification", mock.Anything, n).Return(&services.HTTPError{Status: http.StatusInternalServerError})
	mockAPI.On("ListParticipations", mock.Anything).Return([]models.Participation{}, nil)

	req := formRequest("/notifications", url.Values{"section": {"dashboard"}, "title": {"Hi"}, "message": {"There"}})
	w := httptest.NewRecorder()
	SendNotification(newTestService(mockAPI)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to send notification. Please try again.")
	assert.Contains(t, w.Body.String(), `value="Hi"`)
	assert.Contains(t, w.Body.String(), "There</textarea>")
	assert.Contains(t, w.Body.String(), "Pending Requests")
}

func TestSendNotification_SuccessRedirects(t *testing.T) {
	n := models.Notification{Title: "Hi", Message: "There"}
	mockAPI := new(services.MockAdminAPI)
	mockAPI.On("SendNotification", mock.Anything, n).Return(nil)

	req := formRequest("/notifications", url.Values{"section": {"notifications"}, "title": {"Hi"}, "message": {"There"}})
	w := httptest.NewRecorder()
	SendNotification(newTestService(mockAPI)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/notifications", w.Header().Get("Location"))
	assert.Equal(t, "Notification Sent!", flashFrom(t, w).Title)
}

func TestSetTheme(t *testing.T) {
	req := formRequest("/preferences/theme", url.Values{"theme": {"dark"}, "section": {"users"}, "page": {"4"}})
	w := httptest.NewRecorder()
	SetTheme().ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/users?page=4", w.Header().Get("Location"))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.ThemeCookie, cookies[0].Name)
	assert.Equal(t, middleware.ThemeDark, cookies[0].Value)
}

func TestSetSidebar(t *testing.T) {
	req := formRequest("/preferences/sidebar", url.Values{"sidebar": {"collapsed"}, "section": {"settings"}})
	w := httptest.NewRecorder()
	SetSidebar().ServeHTTP(w, req)

	assert.Equal(t, "/settings", w.Header().Get("Location"))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SidebarCollapsed, cookies[0].Value)
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder, data interface{}) models.Response {
	t.Helper()
	var resp struct {
		models.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	if data != nil {
		require.NoError(t, json.Unmarshal(resp.Data, data))
	}
	return resp.Response
}

func TestApproveParticipationAPI_RefetchesList(t *testing.T) {
	approved := true
	mockAPI := new(services.MockAdminAPI)
	mockAPI.On("ApproveParticipation", mock.Anything, "p1").Return(nil)
	mockAPI.On("ListParticipations", mock.Anything).Return([]models.Participation{
		{ID: "p1", SubmittedButton: &approved},
	}, nil)

	req := mux.SetURLVars(httptest.NewRequest(http.MethodPost, "/api/v1/participations/p1/approve", nil),
		map[string]string{"participation-id": "p1"})
	w := httptest.NewRecorder()
	ApproveParticipationAPI(newTestService(mockAPI)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var data ParticipationActionResponse
	resp := decodeResponse(t, w, &data)
	assert.Equal(t, 1, resp.Success)
	assert.Equal(t, "Request Approved", data.Toast.Title)
	require.Len(t, data.Requests, 1)
	assert.Equal(t, models.StatusApproved, data.Requests[0].Status)
	mockAPI.AssertExpectations(t)
}

func TestRejectParticipationAPI_NotFound(t *testing.T) {
	mockAPI := new(services.MockAdminAPI)
	mockAPI.On("RejectParticipation", mock.Anything, "missing").Return(&services.HTTPError{Message: "Participation not found", Status: http.StatusNotFound})

	req := mux.SetURLVars(httptest.NewRequest(http.MethodPost, "/api/v1/participations/missing/reject", nil),
		map[string]string{"participation-id": "missing"})
	w := httptest.NewRecorder()
	RejectParticipationAPI(newTestService(mockAPI)).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w, nil)
	assert.Equal(t, 0, resp.Success)
	assert.Equal(t, "reject_failed", resp.ErrorCode)
	assert.Equal(t, "Failed to deny request.", resp.ErrorDetails)
	mockAPI.AssertNotCalled(t, "ListParticipations", mock.Anything)
}

func TestListParticipationsAPI_Error(t *testing.T) {
	mockAPI := new(services.MockAdminAPI)
	mockAPI.On("ListParticipations", mock.Anything).Return(nil, errors.New("connection refused"))

	w := httptest.NewRecorder()
	ListParticipationsAPI(newTestService(mockAPI)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/participations", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "fetch_failed", decodeResponse(t, w, nil).ErrorCode)
}

func TestListUsersAPI_IncludesPageWindow(t *testing.T) {
	mockAPI := new(services.MockAdminAPI)
	mockAPI.On("ListUsers", mock.Anything, 5, 50).Return(&models.UsersResponse{
		Users:      []models.User{{Email: "a@example.com"}},
		Pagination: &models.Pagination{CurrentPage: 5, TotalPages: 10, TotalUsers: 500, Limit: 50, HasNextPage: true, HasPrevPage: true},
	}, nil)

	w := httptest.NewRecorder()
	ListUsersAPI(newTestService(mockAPI)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/users?page=5", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var data UsersListResponse
	decodeResponse(t, w, &data)
	assert.Len(t, data.Users, 1)
	// 1 … 4 5 6 … 10
	require.Len(t, data.Pages, 7)
	assert.True(t, data.Pages[1].Ellipsis)
	assert.True(t, data.Pages[3].Active)
	assert.Equal(t, 10, data.Pages[6].Page)
}

func TestListUsersAPI_InvalidResponse(t *testing.T) {
	mockAPI := new(services.MockAdminAPI)
	mockAPI.On("ListUsers", mock.Anything, 1, 50).Return(nil, services.ErrInvalidResponse)

	w := httptest.NewRecorder()
	ListUsersAPI(newTestService(mockAPI)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/users", nil))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "Invalid response format from server", decodeResponse(t, w, nil).ErrorDetails)
}

func TestSendNotificationAPI(t *testing.T) {
	mockAPI := new(services.MockAdminAPI)
	mockAPI.On("SendNotification", mock.Anything, models.Notification{Title: "Hi", Message: "There"}).Return(nil)
	svc := newTestService(mockAPI)

	w := httptest.NewRecorder()
	SendNotificationAPI(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/notifications",
		strings.NewReader(`{"title":"Hi","message":"There"}`)))
	assert.Equal(t, http.StatusOK, w.Code)
	var toast models.Toast
	decodeResponse(t, w, &toast)
	assert.Equal(t, "Notification Sent!", toast.Title)

	w = httptest.NewRecorder()
	SendNotificationAPI(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/notifications",
		strings.NewReader(`{"title":"","message":"There"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	SendNotificationAPI(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/notifications",
		strings.NewReader(`not json`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_body", decodeResponse(t, w, nil).ErrorCode)

	mockAPI.AssertNumberOfCalls(t, "SendNotification", 1)
}

func TestHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	Healthz().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
