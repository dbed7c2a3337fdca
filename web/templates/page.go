// Package templates holds the console's templ components. The *_templ.go files
// are generated from the .templ sources with `templ generate`.
package templates

import "github.com/easyearn/admin-console/models"

const (
	SectionDashboard     = "dashboard"
	SectionUsers         = "users"
	SectionNotifications = "notifications"
	SectionSettings      = "settings"
)

// Section is an entry of the sidebar navigation.
type Section struct {
	ID    string
	Label string
	Icon  string
}

var Sections = []Section{
	{ID: SectionDashboard, Label: "Dashboard", Icon: "▦"},
	{ID: SectionUsers, Label: "Users", Icon: "☺"},
	{ID: SectionNotifications, Label: "Notifications", Icon: "🔔"},
	{ID: SectionSettings, Label: "Settings", Icon: "⚙"},
}

// IsSection reports whether id names a sidebar section.
func IsSection(id string) bool {
	for _, s := range Sections {
		if s.ID == id {
			return true
		}
	}
	return false
}

// UsersView is the state of the users panel.
type UsersView struct {
	Page  *models.UsersPage
	Error string
	// Requested is the page that was asked for, used by the retry link.
	Requested int
}

// PageData is everything a full console page needs.
type PageData struct {
	BrandName        string
	Section          string
	Page             int
	Dark             bool
	SidebarCollapsed bool
	Toast            *models.Toast

	Requests      []models.ParticipationRequest
	RequestsError bool
	Notification  models.Notification
	Users         UsersView
	Activity      []models.AuditEvent
	ShowActivity  bool
}
