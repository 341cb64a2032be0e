package usecase_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"roo-petroleum-web/internal/domain"
	"roo-petroleum-web/internal/usecase"
	"roo-petroleum-web/pkg/email"
	"roo-petroleum-web/pkg/validation"
)

// Mock Repositories
type MockInquiryRepo struct {
	mock.Mock
}

func (m *MockInquiryRepo) Create(ctx context.Context, inquiry *domain.Inquiry) error {
	return m.Called(ctx, inquiry).Error(0)
}

func (m *MockInquiryRepo) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendContactEmail(ctx context.Context, data email.ContactEmailData) error {
	return m.Called(ctx, data).Error(0)
}

func (m *MockMailer) IsConfigured() bool {
	return m.Called().Bool(0)
}

// countingHandler fails the first failures calls
func countingHandler(calls *int32, failures int32, err error) domain.SubmissionHandler {
	return domain.SubmissionHandlerFunc(func(ctx context.Context, data domain.ContactFormData) error {
		n := atomic.AddInt32(calls, 1)
		if n <= failures {
			return err
		}
		return nil
	})
}

func TestRetryHandler(t *testing.T) {
	ctx := context.Background()
	data := validDraft()

	t.Run("Should retry once after a transient failure", func(t *testing.T) {
		var calls int32
		h := usecase.NewRetryHandler("test", countingHandler(&calls, 1, errors.New("flaky")), time.Second, time.Millisecond, nil)

		assert.NoError(t, h.Submit(ctx, data))
		assert.Equal(t, int32(2), calls)
	})

	t.Run("Should give up after the single retry", func(t *testing.T) {
		var calls int32
		h := usecase.NewRetryHandler("test", countingHandler(&calls, 5, errors.New("down")), time.Second, time.Millisecond, nil)

		err := h.Submit(ctx, data)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "down")
		assert.Equal(t, int32(2), calls)
	})

	t.Run("Should not retry permanent failures", func(t *testing.T) {
		var calls int32
		cause := errors.New("misconfigured")
		h := usecase.NewRetryHandler("test", countingHandler(&calls, 5, usecase.Permanent(cause)), time.Second, time.Millisecond, nil)

		err := h.Submit(ctx, data)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, int32(1), calls)
	})

	t.Run("Should bound each attempt with the timeout", func(t *testing.T) {
		var calls int32
		slow := domain.SubmissionHandlerFunc(func(ctx context.Context, data domain.ContactFormData) error {
			atomic.AddInt32(&calls, 1)
			<-ctx.Done()
			return ctx.Err()
		})
		h := usecase.NewRetryHandler("test", slow, 10*time.Millisecond, time.Millisecond, nil)

		err := h.Submit(ctx, data)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Equal(t, int32(2), calls)
	})

	t.Run("Should stop when the caller cancels", func(t *testing.T) {
		var calls int32
		cctx, cancel := context.WithCancel(ctx)
		failing := domain.SubmissionHandlerFunc(func(ctx context.Context, data domain.ContactFormData) error {
			atomic.AddInt32(&calls, 1)
			cancel()
			return errors.New("down")
		})
		h := usecase.NewRetryHandler("test", failing, time.Second, time.Hour, nil)

		err := h.Submit(cctx, data)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, int32(1), calls)
	})
}

func TestSimulatedHandler(t *testing.T) {
	t.Run("Should succeed after the delay", func(t *testing.T) {
		h := usecase.NewSimulatedHandler(time.Millisecond, nil)
		assert.NoError(t, h.Submit(context.Background(), validDraft()))
	})

	t.Run("Should honour cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		h := usecase.NewSimulatedHandler(time.Hour, nil)
		assert.ErrorIs(t, h.Submit(ctx, validDraft()), context.Canceled)
	})
}

func TestChainHandler(t *testing.T) {
	t.Run("Should stop at the first failure", func(t *testing.T) {
		var first, second, third int32
		chain := usecase.ChainHandler{
			countingHandler(&first, 0, nil),
			countingHandler(&second, 1, errors.New("broken")),
			countingHandler(&third, 0, nil),
		}

		err := chain.Submit(context.Background(), validDraft())
		assert.EqualError(t, err, "broken")
		assert.Equal(t, []int32{1, 1, 0}, []int32{first, second, third})
	})

	t.Run("Should succeed when empty", func(t *testing.T) {
		assert.NoError(t, usecase.ChainHandler{}.Submit(context.Background(), validDraft()))
	})
}

func TestArchiveHandler(t *testing.T) {
	t.Run("Should store a trimmed, tagged inquiry", func(t *testing.T) {
		repo := new(MockInquiryRepo)
		var stored *domain.Inquiry
		repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Inquiry")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.Inquiry) }).
			Return(nil)

		data := validDraft()
		data.Name = "  Jane Doe "
		data.Company = "Doe Haulage"
		data.ServiceType = "Storage Solutions"
		ctx := context.WithValue(context.Background(), domain.KeyRequestID, "req-1")

		require.NoError(t, usecase.NewArchiveHandler(repo).Submit(ctx, data))

		repo.AssertExpectations(t)
		require.NotNil(t, stored)
		assert.Equal(t, "Jane Doe", stored.Name)
		assert.Equal(t, "req-1", stored.RequestID)
		assert.Equal(t, []string{"service:Storage Solutions", "business"}, stored.Tags)
		assert.False(t, stored.CreatedAt.IsZero())
	})

	t.Run("Should archive distinct inquiries that share a request id", func(t *testing.T) {
		repo := new(MockInquiryRepo)
		stored := map[string]string{}
		repo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				inq := args.Get(1).(*domain.Inquiry)
				stored[inq.ID] = inq.Name
			}).
			Return(nil)
		handler := usecase.NewRetryHandler("archive", usecase.NewArchiveHandler(repo), time.Second, time.Millisecond, nil)
		ctx := context.WithValue(context.Background(), domain.KeyRequestID, "reused-by-proxy")

		for _, name := range []string{"Alice", "Bob"} {
			form := usecase.NewContactForm(handler, validation.New(), nil)
			d := validDraft()
			d.Name = name
			fill(t, form, d)
			require.NoError(t, form.Submit(ctx))
			assert.Equal(t, domain.StatusSuccess, form.Status())
		}

		names := make([]string, 0, len(stored))
		for _, name := range stored {
			names = append(names, name)
		}
		assert.ElementsMatch(t, []string{"Alice", "Bob"}, names)
	})

	t.Run("Should reuse the inquiry id when one submission is retried", func(t *testing.T) {
		repo := new(MockInquiryRepo)
		var ids []string
		repo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { ids = append(ids, args.Get(1).(*domain.Inquiry).ID) }).
			Return(errors.New("timeout")).Once()
		repo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { ids = append(ids, args.Get(1).(*domain.Inquiry).ID) }).
			Return(nil).Once()
		handler := usecase.NewRetryHandler("archive", usecase.NewArchiveHandler(repo), time.Second, time.Millisecond, nil)

		form := usecase.NewContactForm(handler, validation.New(), nil)
		fill(t, form, validDraft())
		require.NoError(t, form.Submit(context.Background()))

		assert.Equal(t, domain.StatusSuccess, form.Status())
		require.Len(t, ids, 2)
		assert.Equal(t, ids[0], ids[1])
	})

	t.Run("Should mint a fresh id outside a form submission", func(t *testing.T) {
		repo := new(MockInquiryRepo)
		var ids []string
		repo.On("Create", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) { ids = append(ids, args.Get(1).(*domain.Inquiry).ID) }).
			Return(nil)
		h := usecase.NewArchiveHandler(repo)

		ctx := context.WithValue(context.Background(), domain.KeyRequestID, "req-2")
		require.NoError(t, h.Submit(ctx, validDraft()))
		require.NoError(t, h.Submit(ctx, validDraft()))

		require.Len(t, ids, 2)
		assert.NotEqual(t, ids[0], ids[1])
	})

	t.Run("Should wrap repository failures", func(t *testing.T) {
		repo := new(MockInquiryRepo)
		cause := errors.New("connection refused")
		repo.On("Create", mock.Anything, mock.Anything).Return(cause)

		err := usecase.NewArchiveHandler(repo).Submit(context.Background(), validDraft())
		assert.ErrorIs(t, err, cause)
	})
}

func TestEmailHandler(t *testing.T) {
	t.Run("Should fail permanently without SMTP settings", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("IsConfigured").Return(false)

		var calls int32
		h := usecase.NewRetryHandler("email", domain.SubmissionHandlerFunc(func(ctx context.Context, data domain.ContactFormData) error {
			atomic.AddInt32(&calls, 1)
			return usecase.NewEmailHandler(mailer).Submit(ctx, data)
		}), time.Second, time.Millisecond, nil)

		err := h.Submit(context.Background(), validDraft())
		assert.ErrorIs(t, err, usecase.ErrEmailNotConfigured)
		assert.Equal(t, int32(1), calls)
		mailer.AssertNotCalled(t, "SendContactEmail", mock.Anything, mock.Anything)
	})

	t.Run("Should send the trimmed inquiry", func(t *testing.T) {
		mailer := new(MockMailer)
		mailer.On("IsConfigured").Return(true)
		mailer.On("SendContactEmail", mock.Anything, email.ContactEmailData{
			SenderName:  "Jane Doe",
			SenderEmail: "jane@co.com",
			Phone:       "0400000000",
			Subject:     "Quote",
			Message:     "Please send a quote for bulk diesel.",
		}).Return(nil)

		data := validDraft()
		data.Subject = " Quote "
		data.Email = "jane@co.com "

		require.NoError(t, usecase.NewEmailHandler(mailer).Submit(context.Background(), data))
		mailer.AssertExpectations(t)
	})
}
