package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type contextKey string

const PreferencesKey contextKey = "preferences"

const (
	RequestIDHeader = "X-Request-ID"

	ThemeCookie   = "easyearn-theme"
	SidebarCookie = "easyearn-sidebar"

	ThemeLight = "light"
	ThemeDark  = "dark"

	SidebarCollapsed = "collapsed"
	SidebarExpanded  = "expanded"
)

// Preferences are the operator's display choices, persisted in cookies.
type Preferences struct {
	Theme            string
	SidebarCollapsed bool
}

// Dark reports whether the dark theme is selected.
func (p Preferences) Dark() bool {
	return p.Theme == ThemeDark
}

// WithLogger adds a logger to the context and logs request information.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			logger := log.With().
				Str("host", r.Host).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Str("remote_addr", r.RemoteAddr).
				Str("request_id", requestID).
				Time("timestamp", time.Now()).
				Logger()

			// Add the logger to the context
			ctx := logger.WithContext(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}

// WithPreferences reads the theme and sidebar cookies into the context.
func WithPreferences(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), PreferencesKey, ReadPreferences(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}

// ReadPreferences parses the preference cookies, falling back to the light
// theme and an expanded sidebar.
func ReadPreferences(r *http.Request) Preferences {
	prefs := Preferences{Theme: ThemeLight}

	if c, err := r.Cookie(ThemeCookie); err == nil && c.Value == ThemeDark {
		prefs.Theme = ThemeDark
	}
	if c, err := r.Cookie(SidebarCookie); err == nil && c.Value == SidebarCollapsed {
		prefs.SidebarCollapsed = true
	}

	return prefs
}

// PreferencesFromContext returns the preferences stored by WithPreferences.
func PreferencesFromContext(ctx context.Context) Preferences {
	if prefs, ok := ctx.Value(PreferencesKey).(Preferences); ok {
		return prefs
	}
	return Preferences{Theme: ThemeLight}
}
