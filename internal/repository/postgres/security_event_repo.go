package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"roo-petroleum-web/pkg/security"
)

// SecurityEventRepo persists security events next to the inquiry archive
type SecurityEventRepo struct {
	db DBTX
}

func NewSecurityEventRepo(db DBTX) *SecurityEventRepo {
	return &SecurityEventRepo{db: db}
}

// Persist inserts one event. It matches the signature SecurityLogger.SetPersistFunc expects.
func (r *SecurityEventRepo) Persist(ctx context.Context, event security.SecurityEvent) error {
	query := `
		INSERT INTO site_security_events (
			event_type, level, ip_address, user_agent,
			request_id, path, subject_type, subject_value, details, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	details := []byte("null")
	if len(event.Details) > 0 {
		b, err := json.Marshal(event.Details)
		if err != nil {
			return fmt.Errorf("failed to encode event details: %w", err)
		}
		details = b
	}

	// inet column rejects ''
	var ip interface{}
	if event.IP != "" {
		ip = event.IP
	}

	_, err := r.db.Exec(ctx, query,
		string(event.Event),
		event.Level,
		ip,
		event.UserAgent,
		event.RequestID,
		event.Path,
		event.SubjectType,
		event.SubjectValue,
		details,
		event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("failed to persist security event: %w", err)
	}
	return nil
}
