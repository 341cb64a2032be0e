package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"roo-petroleum-web/internal/domain"
	"roo-petroleum-web/pkg/email"
	"roo-petroleum-web/pkg/security"
)

const (
	// DefaultSimulatedDelay stands in for network latency when no real handler is wired
	DefaultSimulatedDelay = time.Second
	// maxDeliveryAttempts is the first try plus one bounded retry
	maxDeliveryAttempts = 2
)

// ErrEmailNotConfigured is returned when SMTP credentials are missing
var ErrEmailNotConfigured = errors.New("email service is not configured")

// permanentError marks failures a retry cannot fix
type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent wraps err so RetryHandler gives up immediately
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

func isPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}

// SimulatedHandler waits a fixed delay and logs the draft at debug level. No network I/O.
type SimulatedHandler struct {
	delay time.Duration
	log   *slog.Logger
}

func NewSimulatedHandler(delay time.Duration, log *slog.Logger) *SimulatedHandler {
	if log == nil {
		log = slog.Default()
	}
	return &SimulatedHandler{delay: delay, log: log}
}

func (h *SimulatedHandler) Submit(ctx context.Context, data domain.ContactFormData) error {
	if h.delay > 0 {
		timer := time.NewTimer(h.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}
	h.log.DebugContext(ctx, "Form submitted",
		"name", data.Name,
		"email", security.MaskEmail(data.Email),
		"service_type", data.ServiceType,
		"subject", data.Subject,
	)
	return nil
}

// Mailer is the part of email.EmailService the handler needs
type Mailer interface {
	SendContactEmail(ctx context.Context, data email.ContactEmailData) error
	IsConfigured() bool
}

// EmailHandler forwards an inquiry to the sales inbox
type EmailHandler struct {
	mailer Mailer
}

func NewEmailHandler(mailer Mailer) *EmailHandler {
	return &EmailHandler{mailer: mailer}
}

func (h *EmailHandler) Submit(ctx context.Context, data domain.ContactFormData) error {
	if !h.mailer.IsConfigured() {
		return Permanent(ErrEmailNotConfigured)
	}

	emailData := email.ContactEmailData{
		SenderName:  strings.TrimSpace(data.Name),
		SenderEmail: strings.TrimSpace(data.Email),
		Phone:       strings.TrimSpace(data.Phone),
		Company:     strings.TrimSpace(data.Company),
		ServiceType: strings.TrimSpace(data.ServiceType),
		Subject:     strings.TrimSpace(data.Subject),
		Message:     strings.TrimSpace(data.Message),
	}

	if err := h.mailer.SendContactEmail(ctx, emailData); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	return nil
}

// inquiryID is the submission's id, so a retried attempt archives one row.
// Handlers called outside ContactForm.Submit get a fresh id.
func inquiryID(ctx context.Context) string {
	if id, ok := ctx.Value(domain.KeySubmissionID).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

// ArchiveHandler stores every inquiry so nothing is lost when email is down
type ArchiveHandler struct {
	repo domain.InquiryRepository
	now  func() time.Time
}

func NewArchiveHandler(repo domain.InquiryRepository) *ArchiveHandler {
	return &ArchiveHandler{repo: repo, now: time.Now}
}

func (h *ArchiveHandler) Submit(ctx context.Context, data domain.ContactFormData) error {
	requestID, _ := ctx.Value(domain.KeyRequestID).(string)

	inquiry := &domain.Inquiry{
		ID:          inquiryID(ctx),
		RequestID:   requestID,
		Name:        strings.TrimSpace(data.Name),
		Email:       strings.TrimSpace(data.Email),
		Phone:       strings.TrimSpace(data.Phone),
		Company:     strings.TrimSpace(data.Company),
		Subject:     strings.TrimSpace(data.Subject),
		Message:     strings.TrimSpace(data.Message),
		ServiceType: strings.TrimSpace(data.ServiceType),
		Tags:        inquiryTags(data),
		CreatedAt:   h.now().UTC(),
	}

	if err := h.repo.Create(ctx, inquiry); err != nil {
		return fmt.Errorf("failed to archive inquiry: %w", err)
	}
	return nil
}

// inquiryTags labels an inquiry for triage in the sales dashboard
func inquiryTags(data domain.ContactFormData) []string {
	tags := []string{}
	if s := strings.TrimSpace(data.ServiceType); s != "" {
		tags = append(tags, "service:"+s)
	}
	if strings.TrimSpace(data.Company) != "" {
		tags = append(tags, "business")
	}
	return tags
}

// ChainHandler runs handlers in order and stops at the first failure
type ChainHandler []domain.SubmissionHandler

func (c ChainHandler) Submit(ctx context.Context, data domain.ContactFormData) error {
	for _, h := range c {
		if err := h.Submit(ctx, data); err != nil {
			return err
		}
	}
	return nil
}

// RetryHandler bounds each attempt with a timeout and retries once after a backoff.
// Cancelling the caller's context stops both the attempt and the retry.
type RetryHandler struct {
	name    string
	next    domain.SubmissionHandler
	timeout time.Duration
	backoff time.Duration
	log     *slog.Logger
}

func NewRetryHandler(name string, next domain.SubmissionHandler, timeout, backoff time.Duration, log *slog.Logger) *RetryHandler {
	if log == nil {
		log = slog.Default()
	}
	return &RetryHandler{name: name, next: next, timeout: timeout, backoff: backoff, log: log}
}

func (h *RetryHandler) Submit(ctx context.Context, data domain.ContactFormData) error {
	var err error
	for attempt := 1; attempt <= maxDeliveryAttempts; attempt++ {
		err = h.attempt(ctx, data)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return fmt.Errorf("%s: submission cancelled: %w", h.name, ctx.Err())
		}
		if isPermanent(err) || attempt == maxDeliveryAttempts {
			break
		}

		h.log.WarnContext(ctx, "Contact delivery attempt failed, retrying",
			"handler", h.name, "attempt", attempt, "error", err)

		timer := time.NewTimer(h.backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fmt.Errorf("%s: submission cancelled: %w", h.name, ctx.Err())
		case <-timer.C:
		}
	}
	return fmt.Errorf("%s: %w", h.name, err)
}

func (h *RetryHandler) attempt(ctx context.Context, data domain.ContactFormData) error {
	if h.timeout <= 0 {
		return h.next.Submit(ctx, data)
	}
	attemptCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	return h.next.Submit(attemptCtx, data)
}
