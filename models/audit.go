package models

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions recorded for admin decisions.
const (
	AuditParticipationApproved = "participation.approved"
	AuditParticipationRejected = "participation.rejected"
	AuditNotificationSent      = "notification.sent"
)

// AuditEvent records an action taken from the console.
type AuditEvent struct {
	ID        uuid.UUID `json:"id"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewAuditEvent stamps a new event with an ID and the current UTC time.
func NewAuditEvent(action, subject, detail string) AuditEvent {
	return AuditEvent{
		ID:        uuid.New(),
		Action:    action,
		Subject:   subject,
		Detail:    detail,
		CreatedAt: time.Now().UTC(),
	}
}
