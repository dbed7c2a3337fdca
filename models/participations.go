package models

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Status is the review state of a participation request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

// StatusFromFlag maps the backend's nullable submittedButton flag to a Status.
func StatusFromFlag(flag *bool) Status {
	switch {
	case flag == nil:
		return StatusPending
	case *flag:
		return StatusApproved
	default:
		return StatusDenied
	}
}

// Label returns the text shown in the status badge.
func (s Status) Label() string {
	return string(s)
}

// BadgeVariant returns the badge style used for the status.
func (s Status) BadgeVariant() string {
	switch s {
	case StatusApproved:
		return "default"
	case StatusDenied:
		return "destructive"
	default:
		return "secondary"
	}
}

// ParticipationUser is the submitter embedded in a participation record.
type ParticipationUser struct {
	Email        string `json:"email"`
	ProfileImage string `json:"profileImage"`
}

// Participation is a participation record as returned by the admin API.
type Participation struct {
	ID              string             `json:"_id"`
	User            *ParticipationUser `json:"user"`
	PrizeTitle      string             `json:"prizeTitle"`
	ReceiptURL      string             `json:"receiptUrl"`
	CreatedAt       string             `json:"createdAt"`
	SubmittedButton *bool              `json:"submittedButton"`
}

// ParticipationsResponse is the body of GET /api/admin/participations.
type ParticipationsResponse struct {
	Participations []Participation `json:"participations"`
}

// ParticipationRequest is the view of a participation shown to reviewers.
type ParticipationRequest struct {
	ID              string    `json:"id"`
	UserEmail       string    `json:"userEmail"`
	UserAvatar      string    `json:"userAvatar"`
	DocumentTitle   string    `json:"documentTitle"`
	DocumentPreview string    `json:"documentPreview"`
	SubmittedAt     time.Time `json:"submittedAt"`
	Status          Status    `json:"status"`
}

// NewParticipationRequest projects an API record into a review item. Relative
// receipt URLs are served by the admin API and get its base URL prepended.
func NewParticipationRequest(p Participation, apiBaseURL string) ParticipationRequest {
	req := ParticipationRequest{
		ID:            p.ID,
		UserEmail:     "Unknown",
		DocumentTitle: p.PrizeTitle,
		Status:        StatusFromFlag(p.SubmittedButton),
	}

	if p.User != nil {
		if p.User.Email != "" {
			req.UserEmail = p.User.Email
		}
		req.UserAvatar = p.User.ProfileImage
	}

	req.DocumentPreview = p.ReceiptURL
	if strings.HasPrefix(p.ReceiptURL, "/") {
		req.DocumentPreview = strings.TrimSuffix(apiBaseURL, "/") + p.ReceiptURL
	}

	if ts, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
		req.SubmittedAt = ts
	}

	return req
}

// Initials is the avatar fallback: the first two characters of the email, upper-cased.
func (p ParticipationRequest) Initials() string {
	email := p.UserEmail
	if utf8.RuneCountInString(email) > 2 {
		email = string([]rune(email)[:2])
	}
	return strings.ToUpper(email)
}

// IsPending reports whether the request still awaits a decision.
func (p ParticipationRequest) IsPending() bool {
	return p.Status == StatusPending
}
