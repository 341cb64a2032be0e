package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	"roo-petroleum-web/internal/domain"
	"roo-petroleum-web/pkg/apperror"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

// DBTX is the part of *pgxpool.Pool the repositories use
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

type inquiryRepo struct {
	db DBTX
}

func NewInquiryRepository(db DBTX) domain.InquiryRepository {
	return &inquiryRepo{db: db}
}

func (r *inquiryRepo) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	query := `INSERT INTO contact_inquiries (
			id, request_id, name, email, phone, company,
			subject, message, service_type, tags, created_at
		) VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), NULLIF($7, ''), $8, NULLIF($9, ''), $10, $11)`

	_, err := r.db.Exec(ctx, query,
		inquiry.ID, inquiry.RequestID, inquiry.Name, inquiry.Email, inquiry.Phone, inquiry.Company,
		inquiry.Subject, inquiry.Message, inquiry.ServiceType, pq.Array(inquiry.Tags), inquiry.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			// ids are per submission: a retried attempt whose first insert landed
			return nil
		}
		return apperror.Internal(fmt.Errorf("insert contact inquiry: %w", err))
	}
	return nil
}

func (r *inquiryRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
