package db

import (
	"context"
	"fmt"

	"github.com/easyearn/admin-console/models"
)

// InsertAuditEvent stores an event. Redelivered events are ignored.
func (a *AuditDB) InsertAuditEvent(ctx context.Context, event models.AuditEvent) error {
	query := `INSERT INTO audit_events (id, action, subject, detail, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING`

	if _, err := a.DB.ExecContext(ctx, query,
		event.ID, event.Action, event.Subject, event.Detail, event.CreatedAt); err != nil {
		return fmt.Errorf("error inserting audit event: %w", err)
	}
	return nil
}

// RecentAuditEvents returns up to limit events, newest first.
func (a *AuditDB) RecentAuditEvents(ctx context.Context, limit int) ([]models.AuditEvent, error) {
	query := `SELECT id, action, subject, detail, created_at FROM audit_events
		ORDER BY created_at DESC LIMIT $1`

	rows, err := a.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("error retrieving audit events: %w", err)
	}
	defer rows.Close()

	events := []models.AuditEvent{}
	for rows.Next() {
		var e models.AuditEvent
		if err := rows.Scan(&e.ID, &e.Action, &e.Subject, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning audit event: %w", err)
		}
		e.CreatedAt = e.CreatedAt.UTC()
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit events: %w", err)
	}
	return events, nil
}
