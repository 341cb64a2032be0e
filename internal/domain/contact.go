package domain

import (
	"context"
	"errors"
	"sort"
	"time"
)

var (
	// ErrInvalidSubmission is returned by Submit when the draft fails validation
	ErrInvalidSubmission = errors.New("contact form has validation errors")
	// ErrSubmissionInProgress is returned when Submit is re-entered while a submission is in flight
	ErrSubmissionInProgress = errors.New("contact form submission already in progress")
	// ErrUnknownField is returned when updating a field the form does not have
	ErrUnknownField = errors.New("unknown contact form field")
)

// Field names a ContactFormData field. Values match the form input names.
type Field string

const (
	FieldName        Field = "name"
	FieldEmail       Field = "email"
	FieldPhone       Field = "phone"
	FieldCompany     Field = "company"
	FieldSubject     Field = "subject"
	FieldMessage     Field = "message"
	FieldServiceType Field = "serviceType"
)

// ContactFields lists every form field in display order
var ContactFields = []Field{
	FieldName, FieldEmail, FieldPhone, FieldCompany, FieldServiceType, FieldSubject, FieldMessage,
}

// ParseField maps an input name to a Field
func ParseField(s string) (Field, bool) {
	for _, f := range ContactFields {
		if string(f) == s {
			return f, true
		}
	}
	return "", false
}

// ContactFormData is a visitor inquiry draft. Company, Subject and ServiceType are optional.
type ContactFormData struct {
	Name        string `json:"name" form:"name" validate:"notblank" example:"Jane Doe"`
	Email       string `json:"email" form:"email" validate:"notblank,basic_email" example:"jane@co.com"`
	Phone       string `json:"phone" form:"phone" validate:"notblank" example:"0400000000"`
	Company     string `json:"company,omitempty" form:"company" example:"Doe Haulage"`
	Subject     string `json:"subject,omitempty" form:"subject" example:"Bulk diesel quote"`
	Message     string `json:"message" form:"message" validate:"notblank,trimmed_min=10" example:"Please send a quote for bulk diesel."`
	ServiceType string `json:"serviceType,omitempty" form:"serviceType" example:"Fuel Supply & Distribution"`
}

// Get returns the value of the named field
func (d ContactFormData) Get(f Field) string {
	switch f {
	case FieldName:
		return d.Name
	case FieldEmail:
		return d.Email
	case FieldPhone:
		return d.Phone
	case FieldCompany:
		return d.Company
	case FieldSubject:
		return d.Subject
	case FieldMessage:
		return d.Message
	case FieldServiceType:
		return d.ServiceType
	}
	return ""
}

// Set overwrites the named field. It reports false for an unknown field.
func (d *ContactFormData) Set(f Field, value string) bool {
	switch f {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldPhone:
		d.Phone = value
	case FieldCompany:
		d.Company = value
	case FieldSubject:
		d.Subject = value
	case FieldMessage:
		d.Message = value
	case FieldServiceType:
		d.ServiceType = value
	default:
		return false
	}
	return true
}

// IsEmpty reports whether every field is the empty string
func (d ContactFormData) IsEmpty() bool {
	return d == ContactFormData{}
}

// FieldErrors maps a failing field to its message. Only failing fields are present.
type FieldErrors map[Field]string

func (e FieldErrors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

// Clone returns an independent copy; a nil receiver yields an empty set
func (e FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Names lists the failing fields in sorted order, for logs that must not carry values
func (e FieldErrors) Names() []string {
	out := make([]string, 0, len(e))
	for f := range e {
		out = append(out, string(f))
	}
	sort.Strings(out)
	return out
}

// SubmissionStatus drives the banner shown under the form
type SubmissionStatus string

const (
	StatusIdle       SubmissionStatus = "idle"
	StatusSubmitting SubmissionStatus = "submitting"
	StatusSuccess    SubmissionStatus = "success"
	StatusError      SubmissionStatus = "error"
)

// ParseSubmissionStatus falls back to idle for anything unrecognised
func ParseSubmissionStatus(s string) SubmissionStatus {
	switch SubmissionStatus(s) {
	case StatusSubmitting, StatusSuccess, StatusError:
		return SubmissionStatus(s)
	}
	return StatusIdle
}

// SubmissionHandler delivers a validated inquiry somewhere (email, database, queue)
type SubmissionHandler interface {
	Submit(ctx context.Context, data ContactFormData) error
}

// SubmissionHandlerFunc adapts a function to SubmissionHandler
type SubmissionHandlerFunc func(ctx context.Context, data ContactFormData) error

func (f SubmissionHandlerFunc) Submit(ctx context.Context, data ContactFormData) error {
	return f(ctx, data)
}

// Inquiry is the archived form of a successful submission
type Inquiry struct {
	ID          string    `json:"id"`
	RequestID   string    `json:"requestId,omitempty"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Company     string    `json:"company,omitempty"`
	Subject     string    `json:"subject,omitempty"`
	Message     string    `json:"message"`
	ServiceType string    `json:"serviceType,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// InquiryRepository persists archived inquiries
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *Inquiry) error
	Ping(ctx context.Context) error
}

// ContactResult is what one submission attempt ends in
type ContactResult struct {
	Draft  ContactFormData
	Errors FieldErrors
	Status SubmissionStatus
}

// ContactUsecase runs one form submission for a server request
type ContactUsecase interface {
	// Submit applies the posted values on top of an empty draft, validates and delivers.
	// prior is the status the visitor's form was showing before this attempt.
	Submit(ctx context.Context, posted ContactFormData, prior SubmissionStatus) ContactResult
	// ServiceTypes lists the options offered in the service interest select
	ServiceTypes() []string
}
