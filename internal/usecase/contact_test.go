package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"roo-petroleum-web/internal/domain"
	"roo-petroleum-web/internal/usecase"
	"roo-petroleum-web/pkg/validation"
)

func TestContactUsecase(t *testing.T) {
	ctx := context.Background()
	serviceTypes := []string{"Fuel Supply & Distribution", "Other"}

	t.Run("Should deliver a valid submission and clear the draft", func(t *testing.T) {
		var delivered domain.ContactFormData
		uc := usecase.NewContactUsecase(domain.SubmissionHandlerFunc(func(ctx context.Context, data domain.ContactFormData) error {
			delivered = data
			return nil
		}), validation.New(), serviceTypes, nil)

		res := uc.Submit(ctx, validDraft(), domain.StatusIdle)

		assert.Equal(t, domain.StatusSuccess, res.Status)
		assert.True(t, res.Draft.IsEmpty())
		assert.Empty(t, res.Errors)
		assert.Equal(t, validDraft(), delivered)
	})

	t.Run("Should keep the draft and prior status on invalid input", func(t *testing.T) {
		uc := usecase.NewContactUsecase(okHandler(), validation.New(), serviceTypes, nil)
		posted := domain.ContactFormData{Name: "", Email: "bad-email", Phone: "123", Message: "short"}

		res := uc.Submit(ctx, posted, domain.StatusSuccess)

		assert.Equal(t, domain.StatusSuccess, res.Status)
		assert.Equal(t, posted, res.Draft)
		assert.Equal(t, []string{"email", "message", "name"}, res.Errors.Names())
	})

	t.Run("Should report the error status when delivery fails", func(t *testing.T) {
		uc := usecase.NewContactUsecase(domain.SubmissionHandlerFunc(func(ctx context.Context, data domain.ContactFormData) error {
			return errors.New("smtp down")
		}), validation.New(), serviceTypes, nil)

		res := uc.Submit(ctx, validDraft(), domain.StatusIdle)

		assert.Equal(t, domain.StatusError, res.Status)
		assert.Equal(t, validDraft(), res.Draft)
		assert.Empty(t, res.Errors)
	})

	t.Run("Should expose the service types", func(t *testing.T) {
		uc := usecase.NewContactUsecase(okHandler(), validation.New(), serviceTypes, nil)
		assert.Equal(t, serviceTypes, uc.ServiceTypes())
	})
}

func TestHealthUsecase(t *testing.T) {
	t.Run("Should be ok with no dependencies", func(t *testing.T) {
		report, healthy := usecase.NewHealthUsecase(nil).Check(context.Background())
		assert.True(t, healthy)
		assert.Equal(t, map[string]string{"status": "ok"}, report)
	})

	t.Run("Should report each failing dependency", func(t *testing.T) {
		repo := new(MockInquiryRepo)
		repo.On("Ping", mock.Anything).Return(errors.New("no route to host"))

		report, healthy := usecase.NewHealthUsecase(map[string]usecase.HealthCheck{
			"database": repo.Ping,
			"redis":    func(ctx context.Context) error { return nil },
		}).Check(context.Background())

		assert.False(t, healthy)
		assert.Equal(t, map[string]string{"status": "degraded", "database": "unavailable", "redis": "ok"}, report)
		repo.AssertExpectations(t)
	})
}
