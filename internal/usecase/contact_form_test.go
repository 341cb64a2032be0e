package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roo-petroleum-web/internal/domain"
	"roo-petroleum-web/internal/usecase"
	"roo-petroleum-web/pkg/validation"
)

func validDraft() domain.ContactFormData {
	return domain.ContactFormData{
		Name:    "Jane Doe",
		Email:   "jane@co.com",
		Phone:   "0400000000",
		Message: "Please send a quote for bulk diesel.",
	}
}

func fill(t *testing.T, form *usecase.ContactForm, data domain.ContactFormData) {
	t.Helper()
	for _, f := range domain.ContactFields {
		require.NoError(t, form.UpdateField(f, data.Get(f)))
	}
}

func okHandler() domain.SubmissionHandler {
	return domain.SubmissionHandlerFunc(func(ctx context.Context, data domain.ContactFormData) error { return nil })
}

func TestContactFormValidate(t *testing.T) {
	validate := validation.New()

	t.Run("Should accept a complete draft", func(t *testing.T) {
		form := usecase.NewContactForm(okHandler(), validate, nil)
		fill(t, form, validDraft())

		assert.True(t, form.Validate())
		assert.Empty(t, form.Errors())
	})

	t.Run("Should accept optional fields left empty or filled", func(t *testing.T) {
		form := usecase.NewContactForm(okHandler(), validate, nil)
		d := validDraft()
		d.Company = "Doe Haulage"
		d.ServiceType = "Storage Solutions"
		d.Subject = "Tank hire"
		fill(t, form, d)

		assert.True(t, form.Validate())
	})

	t.Run("Should report name, email and message for the bad draft", func(t *testing.T) {
		form := usecase.NewContactForm(okHandler(), validate, nil)
		fill(t, form, domain.ContactFormData{Name: "", Email: "bad-email", Phone: "123", Message: "short"})

		assert.False(t, form.Validate())
		errs := form.Errors()
		assert.Len(t, errs, 3)
		assert.Equal(t, "Name is required", errs[domain.FieldName])
		assert.Equal(t, "Please enter a valid email address", errs[domain.FieldEmail])
		assert.Equal(t, "Message must be at least 10 characters long", errs[domain.FieldMessage])
		assert.False(t, errs.Has(domain.FieldPhone))
	})

	cases := []struct {
		name  string
		field domain.Field
		value string
		msg   string
	}{
		{"blank name", domain.FieldName, "   ", "Name is required"},
		{"empty email", domain.FieldEmail, "", "Email is required"},
		{"email without domain dot", domain.FieldEmail, "jane@co", "Please enter a valid email address"},
		{"email with a space", domain.FieldEmail, "jane doe@co.com", "Please enter a valid email address"},
		{"email with two at signs", domain.FieldEmail, "jane@@co.com", "Please enter a valid email address"},
		{"blank phone", domain.FieldPhone, "\t", "Phone number is required"},
		{"empty message", domain.FieldMessage, "", "Message is required"},
		{"message short once trimmed", domain.FieldMessage, "   123456789   ", "Message must be at least 10 characters long"},
	}
	for _, tc := range cases {
		t.Run("Should flag only the field with "+tc.name, func(t *testing.T) {
			form := usecase.NewContactForm(okHandler(), validate, nil)
			fill(t, form, validDraft())
			require.NoError(t, form.UpdateField(tc.field, tc.value))

			assert.False(t, form.Validate())
			assert.Equal(t, domain.FieldErrors{tc.field: tc.msg}, form.Errors())
		})
	}

	t.Run("Should count characters after trimming", func(t *testing.T) {
		form := usecase.NewContactForm(okHandler(), validate, nil)
		d := validDraft()
		d.Message = "  1234567890  "
		fill(t, form, d)

		assert.True(t, form.Validate())
	})

	t.Run("Should accept any non-empty phone", func(t *testing.T) {
		form := usecase.NewContactForm(okHandler(), validate, nil)
		d := validDraft()
		d.Phone = "call me"
		fill(t, form, d)

		assert.True(t, form.Validate())
	})
}

func TestContactFormUpdateField(t *testing.T) {
	t.Run("Should clear only the edited field's error", func(t *testing.T) {
		form := usecase.NewContactForm(okHandler(), nil, nil)
		require.False(t, form.Validate())
		before := form.Errors()
		require.True(t, before.Has(domain.FieldName))
		require.True(t, before.Has(domain.FieldEmail))

		require.NoError(t, form.UpdateField(domain.FieldName, "J"))

		after := form.Errors()
		assert.False(t, after.Has(domain.FieldName))
		delete(before, domain.FieldName)
		assert.Equal(t, before, after)
	})

	t.Run("Should not revalidate on edit", func(t *testing.T) {
		form := usecase.NewContactForm(okHandler(), nil, nil)
		require.NoError(t, form.UpdateField(domain.FieldEmail, "not-an-email"))
		assert.Empty(t, form.Errors())
	})

	t.Run("Should reject unknown fields", func(t *testing.T) {
		form := usecase.NewContactForm(okHandler(), nil, nil)
		err := form.UpdateField(domain.Field("fax"), "123")
		assert.ErrorIs(t, err, domain.ErrUnknownField)
	})

	t.Run("Should return copies of the error set", func(t *testing.T) {
		form := usecase.NewContactForm(okHandler(), nil, nil)
		form.Validate()
		errs := form.Errors()
		errs[domain.FieldPhone] = "tampered"
		delete(errs, domain.FieldName)

		assert.True(t, form.Errors().Has(domain.FieldName))
		assert.NotEqual(t, "tampered", form.Errors()[domain.FieldPhone])
	})
}

func TestContactFormSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Should keep the prior status when the draft is invalid", func(t *testing.T) {
		for _, prior := range []domain.SubmissionStatus{domain.StatusIdle, domain.StatusSuccess, domain.StatusError} {
			called := false
			form := usecase.NewContactForm(domain.SubmissionHandlerFunc(func(ctx context.Context, data domain.ContactFormData) error {
				called = true
				return nil
			}), nil, nil)
			form.Restore(prior)

			err := form.Submit(ctx)

			assert.ErrorIs(t, err, domain.ErrInvalidSubmission)
			assert.Equal(t, prior, form.Status())
			assert.False(t, called)
			assert.NotEmpty(t, form.Errors())
		}
	})

	t.Run("Should pass through submitting to success and reset the draft", func(t *testing.T) {
		var form *usecase.ContactForm
		var seen domain.SubmissionStatus
		var seenSubmitting bool
		var delivered domain.ContactFormData
		form = usecase.NewContactForm(domain.SubmissionHandlerFunc(func(ctx context.Context, data domain.ContactFormData) error {
			seen = form.Status()
			seenSubmitting = form.Submitting()
			delivered = data
			return nil
		}), nil, nil)
		form.Restore(domain.StatusError)
		fill(t, form, validDraft())

		require.NoError(t, form.Submit(ctx))

		assert.Equal(t, domain.StatusSubmitting, seen)
		assert.True(t, seenSubmitting)
		assert.Equal(t, validDraft(), delivered)
		assert.Equal(t, domain.StatusSuccess, form.Status())
		assert.False(t, form.Submitting())
		assert.True(t, form.Draft().IsEmpty())
		assert.Empty(t, form.Errors())
	})

	t.Run("Should end in error and keep the draft when the handler fails", func(t *testing.T) {
		form := usecase.NewContactForm(domain.SubmissionHandlerFunc(func(ctx context.Context, data domain.ContactFormData) error {
			return errors.New("smtp down")
		}), nil, nil)
		fill(t, form, validDraft())

		require.NoError(t, form.Submit(ctx))

		assert.Equal(t, domain.StatusError, form.Status())
		assert.Equal(t, validDraft(), form.Draft())
		assert.False(t, form.Submitting())
	})

	t.Run("Should treat a handler panic as a failure", func(t *testing.T) {
		form := usecase.NewContactForm(domain.SubmissionHandlerFunc(func(ctx context.Context, data domain.ContactFormData) error {
			panic("boom")
		}), nil, nil)
		fill(t, form, validDraft())

		require.NotPanics(t, func() { _ = form.Submit(ctx) })
		assert.Equal(t, domain.StatusError, form.Status())
		assert.Equal(t, validDraft(), form.Draft())
	})

	t.Run("Should refuse to re-enter while submitting", func(t *testing.T) {
		var form *usecase.ContactForm
		var nested error
		form = usecase.NewContactForm(domain.SubmissionHandlerFunc(func(ctx context.Context, data domain.ContactFormData) error {
			nested = form.Submit(ctx)
			return nil
		}), nil, nil)
		fill(t, form, validDraft())

		require.NoError(t, form.Submit(ctx))
		assert.ErrorIs(t, nested, domain.ErrSubmissionInProgress)
		assert.Equal(t, domain.StatusSuccess, form.Status())
	})

	t.Run("Should restore submitting as idle", func(t *testing.T) {
		form := usecase.NewContactForm(okHandler(), nil, nil)
		form.Restore(domain.StatusSubmitting)
		assert.Equal(t, domain.StatusIdle, form.Status())
	})
}
