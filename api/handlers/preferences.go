package handlers

import (
	"net/http"

	"github.com/easyearn/admin-console/api/middleware"
)

const preferenceMaxAge = 365 * 24 * 60 * 60

// SetTheme stores the light/dark preference.
func SetTheme() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		theme := middleware.ThemeLight
		if r.PostFormValue("theme") == middleware.ThemeDark {
			theme = middleware.ThemeDark
		}
		setPreference(w, middleware.ThemeCookie, theme)
		redirectBack(w, r, nil)
	}
}

// SetSidebar stores whether the sidebar is collapsed.
func SetSidebar() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := middleware.SidebarExpanded
		if r.PostFormValue("sidebar") == middleware.SidebarCollapsed {
			state = middleware.SidebarCollapsed
		}
		setPreference(w, middleware.SidebarCookie, state)
		redirectBack(w, r, nil)
	}
}

func setPreference(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   preferenceMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
