package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/a-h/templ"
	"github.com/easyearn/admin-console/api/middleware"
	"github.com/easyearn/admin-console/api/services"
	"github.com/easyearn/admin-console/internal/flash"
	"github.com/easyearn/admin-console/internal/pagination"
	"github.com/easyearn/admin-console/models"
	"github.com/easyearn/admin-console/web/templates"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Index sends the operator to the dashboard.
func Index() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/"+templates.SectionDashboard, http.StatusFound)
	}
}

// RenderSection renders one sidebar section, fetching its data from the admin API.
func RenderSection(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		section := mux.Vars(r)["section"]
		if !templates.IsSection(section) {
			http.NotFound(w, r)
			return
		}

		data := newPageData(svc, w, r, section)
		loadSection(svc, r, &data)
		renderPage(w, r, http.StatusOK, data)
	}
}

// newPageData builds the page chrome and consumes any pending toast.
func newPageData(svc *services.Service, w http.ResponseWriter, r *http.Request, section string) templates.PageData {
	prefs := middleware.PreferencesFromContext(r.Context())

	data := templates.PageData{
		BrandName:        "EasyEarn Admin",
		Section:          section,
		Dark:             prefs.Dark(),
		SidebarCollapsed: prefs.SidebarCollapsed,
	}
	if svc.Config != nil && svc.Config.UI.BrandName != "" {
		data.BrandName = svc.Config.UI.BrandName
	}

	if toast, ok := flash.ReadAndClear(w, r); ok {
		data.Toast = &toast
	}
	return data
}

// loadSection fetches the data shown by the selected section.
func loadSection(svc *services.Service, r *http.Request, data *templates.PageData) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx).With().Str("section", data.Section).Logger()

	switch data.Section {
	case templates.SectionDashboard:
		requests, err := svc.ParticipationRequests(ctx)
		if err != nil {
			// A pending flash toast keeps the toast slot; the panel still shows the failure.
			data.RequestsError = true
			if data.Toast == nil {
				toast := services.ToastFetchRequestsFailed
				data.Toast = &toast
			}
		}
		data.Requests = requests

		if svc.Audit != nil {
			data.ShowActivity = true
			data.Activity = svc.RecentActivity(ctx)
		}

	case templates.SectionUsers:
		page := pagination.ClampPage(r.URL.Query().Get("page"))
		data.Page = page
		data.Users.Requested = page

		usersPage, err := svc.UsersPage(ctx, page)
		if err != nil {
			data.Users.Error = services.UsersErrorMessage(err)
			return
		}
		data.Users.Page = usersPage
	}

	logger.Debug().Msg("Section loaded")
}

func renderPage(w http.ResponseWriter, r *http.Request, status int, data templates.PageData) {
	w.Header().Set("Cache-Control", "no-store")
	templ.Handler(templates.Page(data), templ.WithStatus(status)).ServeHTTP(w, r)
}

// redirectBack finishes a form post by sending the operator to the page the
// form was submitted from.
func redirectBack(w http.ResponseWriter, r *http.Request, toast *models.Toast) {
	if toast != nil {
		flash.Write(w, *toast)
	}
	http.Redirect(w, r, returnPath(r), http.StatusSeeOther)
}

// returnPath rebuilds the section path from the posted form fields.
func returnPath(r *http.Request) string {
	section := r.PostFormValue("section")
	if !templates.IsSection(section) {
		section = templates.SectionDashboard
	}

	path := "/" + section
	if section == templates.SectionUsers {
		if page := pagination.ClampPage(r.PostFormValue("page")); page > 1 {
			path += "?" + url.Values{"page": {strconv.Itoa(page)}}.Encode()
		}
	}
	return path
}
