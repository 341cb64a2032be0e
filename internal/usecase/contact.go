package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"roo-petroleum-web/internal/domain"
)

type contactUsecase struct {
	handler      domain.SubmissionHandler
	validate     *validator.Validate
	serviceTypes []string
	log          *slog.Logger
}

// NewContactUsecase creates a new contact usecase. handler is shared by every form instance.
func NewContactUsecase(handler domain.SubmissionHandler, validate *validator.Validate, serviceTypes []string, log *slog.Logger) domain.ContactUsecase {
	if log == nil {
		log = slog.Default()
	}
	return &contactUsecase{
		handler:      handler,
		validate:     validate,
		serviceTypes: serviceTypes,
		log:          log,
	}
}

// Submit replays the posted fields into a fresh form in display order and submits it
func (uc *contactUsecase) Submit(ctx context.Context, posted domain.ContactFormData, prior domain.SubmissionStatus) domain.ContactResult {
	form := NewContactForm(uc.handler, uc.validate, uc.log)
	form.Restore(prior)

	for _, field := range domain.ContactFields {
		// every field in ContactFields is known to the draft
		_ = form.UpdateField(field, posted.Get(field))
	}

	if err := form.Submit(ctx); err != nil && !errors.Is(err, domain.ErrInvalidSubmission) {
		uc.log.ErrorContext(ctx, "Unexpected contact form state", "error", err)
	}

	return domain.ContactResult{
		Draft:  form.Draft(),
		Errors: form.Errors(),
		Status: form.Status(),
	}
}

func (uc *contactUsecase) ServiceTypes() []string {
	return uc.serviceTypes
}
