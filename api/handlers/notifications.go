package handlers

import (
	"net/http"

	"github.com/easyearn/admin-console/api/services"
	"github.com/easyearn/admin-console/models"
	"github.com/easyearn/admin-console/web/templates"
)

// SendNotification broadcasts the submitted notification. On failure the
// form is shown again with the entered values.
func SendNotification(svc *services.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		n := models.Notification{
			Title:   r.PostFormValue("title"),
			Message: r.PostFormValue("message"),
		}

		toast, err := svc.SendNotification(r.Context(), n)
		if err == nil {
			redirectBack(w, r, &toast)
			return
		}

		section := r.PostFormValue("section")
		if section != templates.SectionDashboard {
			section = templates.SectionNotifications
		}

		data := newPageData(svc, w, r, section)
		loadSection(svc, r, &data)
		data.Notification = n
		data.Toast = &toast
		renderPage(w, r, services.UpstreamStatus(err), data)
	}
}
