package domain

type CtxKey string

const (
	KeyRequestID CtxKey = "RequestID"
	// KeySubmissionID identifies one ContactForm.Submit call across handler retries
	KeySubmissionID CtxKey = "SubmissionID"
)
