package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roo-petroleum-web/internal/delivery/http/response"
	"roo-petroleum-web/internal/domain"
	"roo-petroleum-web/pkg/apperror"
	"roo-petroleum-web/pkg/security"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// ContactStatus is the data payload of a successful submission
type ContactStatus struct {
	Status domain.SubmissionStatus `json:"status" example:"success"`
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public gin.IRouter, contactUC domain.ContactUsecase, limit gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", limit, handler.SubmitContact)
	public.GET("/contact/service-types", handler.ServiceTypes)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send an inquiry through the contact form. Validation failures return one message per field.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactFormData  true  "Contact Form Data"
// @Success      200      {object}  response.Response{data=ContactStatus}
// @Failure      400      {object}  response.Response
// @Failure      422      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactFormData
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	ctx := c.Request.Context()
	result := h.contactUC.Submit(ctx, req, domain.StatusIdle)

	switch {
	case len(result.Errors) > 0:
		security.DefaultLogger().LogValidationFailed(ctx, c.ClientIP(), response.RequestID(c), c.Request.URL.Path, result.Errors.Names())
		response.ValidationError(c, http.StatusUnprocessableEntity, "Please correct the highlighted fields.", result.Errors)
	case result.Status == domain.StatusSuccess:
		response.Success(c, http.StatusOK, "Your message has been sent successfully!", ContactStatus{Status: result.Status})
	default:
		security.DefaultLogger().LogSubmissionFailed(ctx, req.Email, c.ClientIP(), response.RequestID(c), c.Request.URL.Path)
		c.Error(apperror.BadGateway("Sorry, there was an error sending your message. Please try again or contact us directly.", nil))
	}
}

// ServiceTypes godoc
// @Summary      List service interests
// @Description  Options accepted in the serviceType field of a contact submission.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  response.Response{data=[]string}
// @Router       /contact/service-types [get]
func (h *ContactHandler) ServiceTypes(c *gin.Context) {
	response.Success(c, http.StatusOK, "Service types", h.contactUC.ServiceTypes())
}
