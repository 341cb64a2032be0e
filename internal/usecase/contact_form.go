package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"roo-petroleum-web/internal/domain"
	"roo-petroleum-web/pkg/validation"
)

// ContactForm owns one contact draft, its error set and its submission status.
// It is not safe for concurrent use; the server builds one per request.
type ContactForm struct {
	draft      domain.ContactFormData
	errors     domain.FieldErrors
	status     domain.SubmissionStatus
	submitting bool

	handler  domain.SubmissionHandler
	validate *validator.Validate
	log      *slog.Logger
}

// NewContactForm creates an empty idle form. A nil handler falls back to a SimulatedHandler
// with the default delay.
func NewContactForm(handler domain.SubmissionHandler, validate *validator.Validate, log *slog.Logger) *ContactForm {
	if handler == nil {
		handler = NewSimulatedHandler(DefaultSimulatedDelay, log)
	}
	if validate == nil {
		validate = validation.New()
	}
	if log == nil {
		log = slog.Default()
	}
	return &ContactForm{
		errors:   domain.FieldErrors{},
		status:   domain.StatusIdle,
		handler:  handler,
		validate: validate,
		log:      log,
	}
}

// Draft returns a copy of the current draft
func (f *ContactForm) Draft() domain.ContactFormData { return f.draft }

// Errors returns a copy of the current error set
func (f *ContactForm) Errors() domain.FieldErrors { return f.errors.Clone() }

func (f *ContactForm) Status() domain.SubmissionStatus { return f.status }

// Submitting reports whether a submission is in flight; the submit control is disabled while true.
func (f *ContactForm) Submitting() bool { return f.submitting }

// Restore seeds a form with the status the visitor was last shown. Only terminal
// and idle statuses can be restored.
func (f *ContactForm) Restore(status domain.SubmissionStatus) {
	if status == domain.StatusSubmitting {
		status = domain.StatusIdle
	}
	f.status = status
}

// UpdateField overwrites one field and clears that field's error, leaving others untouched.
func (f *ContactForm) UpdateField(field domain.Field, value string) error {
	if !f.draft.Set(field, value) {
		return domain.ErrUnknownField
	}
	delete(f.errors, field)
	return nil
}

// Validate recomputes the whole error set from the draft and reports whether it is empty.
func (f *ContactForm) Validate() bool {
	f.errors = validation.ContactErrors(f.validate, f.draft)
	return len(f.errors) == 0
}

// Submit validates the draft and hands it to the handler. Handler failures end in
// StatusError and are only logged; the returned error covers validation and re-entry.
func (f *ContactForm) Submit(ctx context.Context) error {
	if f.submitting {
		return domain.ErrSubmissionInProgress
	}
	if !f.Validate() {
		return domain.ErrInvalidSubmission
	}

	f.submitting = true
	f.status = domain.StatusSubmitting
	defer func() { f.submitting = false }()

	ctx = context.WithValue(ctx, domain.KeySubmissionID, uuid.NewString())
	if err := f.deliver(ctx, f.draft); err != nil {
		f.log.ErrorContext(ctx, "Contact form submission failed", "error", err)
		f.status = domain.StatusError
		return nil
	}

	f.draft = domain.ContactFormData{}
	f.status = domain.StatusSuccess
	return nil
}

// deliver turns a handler panic into an ordinary failure
func (f *ContactForm) deliver(ctx context.Context, data domain.ContactFormData) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("submission handler panicked: %v", r)
		}
	}()
	return f.handler.Submit(ctx, data)
}
