package response

import (
	"github.com/gin-gonic/gin"

	"roo-petroleum-web/internal/domain"
)

// Response standardizes the JSON API envelope
type Response struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Data      interface{}       `json:"data,omitempty"`
	Error     interface{}       `json:"error,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// RequestID returns the id the request id middleware stored on the context
func RequestID(c *gin.Context) string {
	return c.GetString(string(domain.KeyRequestID))
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: RequestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: RequestID(c),
	})
}

// ValidationError sends a 422 with one message per failing field
func ValidationError(c *gin.Context, code int, message string, fields domain.FieldErrors) {
	out := make(map[string]string, len(fields))
	for f, msg := range fields {
		out[string(f)] = msg
	}
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Fields:    out,
		RequestID: RequestID(c),
	})
}
