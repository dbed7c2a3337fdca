package templates

import (
	"strconv"
	"time"

	"github.com/easyearn/admin-console/internal/pagination"
	"github.com/easyearn/admin-console/models"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	submittedFormat = "Jan 2, 2006, 03:04 PM"
	createdFormat   = "1/2/2006, 3:04:05 PM"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders n with thousands separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// FormatSubmitted formats a submission timestamp.
func FormatSubmitted(t time.Time) string {
	if t.IsZero() {
		return "Invalid Date"
	}
	return t.Format(submittedFormat)
}

// FormatCreated formats a user's RFC 3339 creation date, returning the raw
// value when it cannot be parsed.
func FormatCreated(raw string) string {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return raw
	}
	return t.Format(createdFormat)
}

func usersPageURL(page int) string {
	return "/" + SectionUsers + "?page=" + strconv.Itoa(page)
}

func retryPage(requested int) int {
	if requested < 1 {
		return 1
	}
	return requested
}

func usersRange(p models.Pagination) string {
	from, to := pagination.Range(p.CurrentPage, p.Limit, p.TotalUsers)
	return "Showing " + FormatCount(from) + " to " + FormatCount(to) + " of " + FormatCount(p.TotalUsers) + " users"
}

func sidebarClass(collapsed bool) string {
	if collapsed {
		return "sidebar collapsed"
	}
	return "sidebar"
}

func navClass(active bool) string {
	if active {
		return "btn btn-primary btn-block"
	}
	return "btn btn-ghost btn-block"
}

func pageClass(active bool) string {
	if active {
		return "page active"
	}
	return "page"
}

func badgeClass(variant string) string {
	return "badge badge-" + variant
}

func toastClass(toast models.Toast) string {
	if toast.IsDestructive() {
		return "toast toast-destructive"
	}
	return "toast"
}

var activityLabels = map[string]string{
	models.AuditParticipationApproved: "Approved participation",
	models.AuditParticipationRejected: "Denied participation",
	models.AuditNotificationSent:      "Broadcast notification",
}

func activityLabel(action string) string {
	if label, ok := activityLabels[action]; ok {
		return label
	}
	return action
}
