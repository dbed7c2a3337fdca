// Package flash carries one toast across a redirect-after-post.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/easyearn/admin-console/models"
)

// CookieName is the cookie holding the pending toast.
const CookieName = "easyearn-toast"

// Write stores a toast for the next page render.
func Write(w http.ResponseWriter, toast models.Toast) {
	toast, ok := normalize(toast)
	if !ok {
		return
	}
	payload, err := json.Marshal(toast)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(payload),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ReadAndClear returns the pending toast, if any, and expires the cookie.
func ReadAndClear(w http.ResponseWriter, r *http.Request) (models.Toast, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return models.Toast{}, false
	}
	Clear(w)
	return decode(cookie.Value)
}

// Clear expires the toast cookie.
func Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func decode(raw string) (models.Toast, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return models.Toast{}, false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return models.Toast{}, false
	}
	var toast models.Toast
	if err := json.Unmarshal(decoded, &toast); err != nil {
		return models.Toast{}, false
	}
	return normalize(toast)
}

func normalize(toast models.Toast) (models.Toast, bool) {
	toast.Title = strings.TrimSpace(toast.Title)
	if toast.Title == "" {
		return models.Toast{}, false
	}
	if toast.Variant != models.ToastDestructive {
		toast.Variant = ""
	}
	return toast, true
}
