package postgres

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"roo-petroleum-web/internal/domain"
	"roo-petroleum-web/pkg/apperror"
	"roo-petroleum-web/pkg/security"
)

type MockDB struct {
	mock.Mock
}

func (m *MockDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	ret := m.Called(ctx, sql, args)
	return pgconn.NewCommandTag("INSERT 0 1"), ret.Error(0)
}

func (m *MockDB) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func sampleInquiry() *domain.Inquiry {
	return &domain.Inquiry{
		ID:        "0b9d1c3e-8f0a-4f7e-9a2c-3d5e6f7a8b9c",
		RequestID: "req-1",
		Name:      "Jane Doe",
		Email:     "jane@co.com",
		Phone:     "0400000000",
		Message:   "Please send a quote for bulk diesel.",
		Tags:      []string{"business"},
		CreatedAt: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
	}
}

func TestInquiryRepoCreate(t *testing.T) {
	t.Run("Should pass optional fields for NULLIF and tags as a text array", func(t *testing.T) {
		db := new(MockDB)
		var args []any
		db.On("Exec", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
			Run(func(a mock.Arguments) { args = a.Get(2).([]any) }).
			Return(nil)

		inq := sampleInquiry()
		require.NoError(t, NewInquiryRepository(db).Create(context.Background(), inq))

		require.Len(t, args, 11)
		assert.Equal(t, inq.ID, args[0])
		assert.Equal(t, "req-1", args[1])
		assert.Equal(t, "", args[5], "company is sent empty so NULLIF stores NULL")
		assert.Equal(t, "", args[6])
		assert.Equal(t, "", args[8])
		assert.Equal(t, pq.Array([]string{"business"}), args[9])
		assert.Equal(t, inq.CreatedAt, args[10])
		db.AssertExpectations(t)
	})

	t.Run("Should treat a duplicate id as already stored", func(t *testing.T) {
		db := new(MockDB)
		db.On("Exec", mock.Anything, mock.Anything, mock.Anything).
			Return(&pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "contact_inquiries_pkey"})

		assert.NoError(t, NewInquiryRepository(db).Create(context.Background(), sampleInquiry()))
	})

	t.Run("Should wrap other database errors as internal", func(t *testing.T) {
		db := new(MockDB)
		cause := &pgconn.PgError{Code: "23502", Message: "null value in column \"name\""}
		db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(cause)

		err := NewInquiryRepository(db).Create(context.Background(), sampleInquiry())

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, http.StatusInternalServerError, appErr.Code)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("Should ping through the pool", func(t *testing.T) {
		db := new(MockDB)
		db.On("Ping", mock.Anything).Return(errors.New("down"))

		assert.EqualError(t, NewInquiryRepository(db).Ping(context.Background()), "down")
	})
}

func TestSecurityEventRepoPersist(t *testing.T) {
	t.Run("Should store a null ip and details when absent", func(t *testing.T) {
		db := new(MockDB)
		var args []any
		db.On("Exec", mock.Anything, mock.Anything, mock.Anything).
			Run(func(a mock.Arguments) { args = a.Get(2).([]any) }).
			Return(nil)

		err := NewSecurityEventRepo(db).Persist(context.Background(), security.SecurityEvent{
			Event: security.EventSignInAttempt,
			Level: "info",
			Path:  "/signin",
		})
		require.NoError(t, err)

		require.Len(t, args, 10)
		assert.Equal(t, "signin_attempt", args[0])
		assert.Nil(t, args[2])
		assert.Equal(t, []byte("null"), args[8])
	})

	t.Run("Should encode details as JSON", func(t *testing.T) {
		db := new(MockDB)
		var args []any
		db.On("Exec", mock.Anything, mock.Anything, mock.Anything).
			Run(func(a mock.Arguments) { args = a.Get(2).([]any) }).
			Return(nil)

		err := NewSecurityEventRepo(db).Persist(context.Background(), security.SecurityEvent{
			Event:   security.EventCSRFViolation,
			IP:      "203.0.113.9",
			Details: map[string]interface{}{"reason": "token mismatch"},
		})
		require.NoError(t, err)

		assert.Equal(t, "203.0.113.9", args[2])
		assert.JSONEq(t, `{"reason":"token mismatch"}`, string(args[8].([]byte)))
	})

	t.Run("Should wrap insert failures", func(t *testing.T) {
		db := new(MockDB)
		db.On("Exec", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("relation does not exist"))

		err := NewSecurityEventRepo(db).Persist(context.Background(), security.SecurityEvent{Event: security.EventOriginRejected})
		assert.ErrorContains(t, err, "failed to persist security event")
	})
}
