package web

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"roo-petroleum-web/internal/delivery/http/middleware"
	"roo-petroleum-web/internal/delivery/http/response"
	"roo-petroleum-web/internal/domain"
	"roo-petroleum-web/internal/ui"
	"roo-petroleum-web/pkg/apperror"
	"roo-petroleum-web/pkg/security"
)

// FlashStore carries the outcome of a submission across the post/redirect/get hop
type FlashStore interface {
	Set(c *gin.Context, status string) error
	Pop(c *gin.Context) string
}

type PageHandler struct {
	pages     *ui.Pages
	contactUC domain.ContactUsecase
	flash     FlashStore
	now       func() time.Time
}

func NewPageHandler(pages *ui.Pages, contactUC domain.ContactUsecase, flash FlashStore) *PageHandler {
	return &PageHandler{
		pages:     pages,
		contactUC: contactUC,
		flash:     flash,
		now:       time.Now,
	}
}

// RegisterRoutes mounts the HTML routes. contactLimit guards the form posts.
func (h *PageHandler) RegisterRoutes(r gin.IRouter, contactLimit gin.HandlerFunc) {
	r.GET("/", h.Home)
	r.GET("/about", h.About)
	r.GET("/services", h.Services)
	r.GET("/services/:slug", h.Service)
	r.GET("/contact", h.Contact)
	r.POST("/contact", contactLimit, h.SubmitContact)
	r.GET("/signin", h.SignIn)
	r.POST("/signin", contactLimit, h.SubmitSignIn)
	r.GET("/assets/theme.css", h.ThemeCSS)
}

func (h *PageHandler) meta(c *gin.Context, title, description string) ui.PageMeta {
	return ui.PageMeta{
		Title:       title,
		Description: description,
		Nav:         ui.NavStateFromURL(c.Request.URL),
		Year:        h.now().Year(),
	}
}

func (h *PageHandler) formView(c *gin.Context, result domain.ContactResult) ui.ContactFormView {
	cp := h.pages.Site.Contact
	if result.Errors == nil {
		result.Errors = domain.FieldErrors{}
	}
	return ui.ContactFormView{
		Title:        cp.FormTitle,
		Subtitle:     cp.FormSubtitle,
		Action:       "/contact",
		CSRFToken:    middleware.CSRFToken(c),
		ServiceTypes: h.contactUC.ServiceTypes(),
		Result:       result,
		Company:      h.pages.Site.Company,
	}
}

// idleForm is a fresh form, showing the banner of a submission that just redirected here
func (h *PageHandler) idleForm(c *gin.Context) ui.ContactFormView {
	status := domain.StatusIdle
	if h.flash != nil {
		status = domain.ParseSubmissionStatus(h.flash.Pop(c))
	}
	return h.formView(c, domain.ContactResult{Status: status})
}

func (h *PageHandler) Home(c *gin.Context) {
	render(c, http.StatusOK, h.pages.Home(h.meta(c, "", ""), h.idleForm(c)))
}

func (h *PageHandler) About(c *gin.Context) {
	about := h.pages.Site.About
	render(c, http.StatusOK, h.pages.About(h.meta(c, "About Us", about.Hero.Subtitle)))
}

func (h *PageHandler) Services(c *gin.Context) {
	sp := h.pages.Site.ServicesPage
	render(c, http.StatusOK, h.pages.Services(h.meta(c, "Services", sp.Hero.Subtitle)))
}

func (h *PageHandler) Service(c *gin.Context) {
	svc, err := h.pages.Site.ServiceBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, domain.ErrServiceNotFound) {
			h.NotFound(c)
			return
		}
		c.Error(apperror.Internal(err))
		return
	}
	render(c, http.StatusOK, h.pages.Service(h.meta(c, svc.Title, svc.Summary), svc))
}

func (h *PageHandler) Contact(c *gin.Context) {
	hero := h.pages.Site.Contact.Hero
	render(c, http.StatusOK, h.pages.Contact(h.meta(c, "Contact Us", hero.Subtitle), h.idleForm(c)))
}

// SubmitContact handles the HTML form post.
// Success redirects back to the contact page so a refresh cannot resend the inquiry;
// invalid input re-renders with 422 and the visitor's draft intact.
func (h *PageHandler) SubmitContact(c *gin.Context) {
	var posted domain.ContactFormData
	if err := c.ShouldBind(&posted); err != nil {
		c.Error(apperror.BadRequest("The form could not be read. Please try again."))
		return
	}
	prior := domain.ParseSubmissionStatus(c.PostForm(ui.StatusField))

	ctx := c.Request.Context()
	result := h.contactUC.Submit(ctx, posted, prior)

	switch result.Status {
	case domain.StatusSuccess:
		if h.flash != nil {
			if err := h.flash.Set(c, string(domain.StatusSuccess)); err != nil {
				c.Error(apperror.Internal(err))
				return
			}
		}
		c.Redirect(http.StatusSeeOther, "/contact#contact-form")
		return
	case domain.StatusError:
		security.DefaultLogger().LogSubmissionFailed(ctx, posted.Email, c.ClientIP(), response.RequestID(c), c.Request.URL.Path)
	}

	code := http.StatusOK
	if len(result.Errors) > 0 {
		code = http.StatusUnprocessableEntity
		security.DefaultLogger().LogValidationFailed(ctx, c.ClientIP(), response.RequestID(c), c.Request.URL.Path, result.Errors.Names())
	}

	hero := h.pages.Site.Contact.Hero
	render(c, code, h.pages.Contact(h.meta(c, "Contact Us", hero.Subtitle), h.formView(c, result)))
}

func (h *PageHandler) SignIn(c *gin.Context) {
	view := ui.SignInView{CSRFToken: middleware.CSRFToken(c)}
	render(c, http.StatusOK, h.pages.SignIn(h.meta(c, "Sign In", h.pages.Site.SignIn.Description), view))
}

// SubmitSignIn never authenticates; the customer portal is not open yet
func (h *PageHandler) SubmitSignIn(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	security.DefaultLogger().LogSignInAttempt(c.Request.Context(), email, c.ClientIP(), response.RequestID(c))

	view := ui.SignInView{
		CSRFToken: middleware.CSRFToken(c),
		Email:     email,
		Notice:    h.pages.Site.SignIn.Unavailable,
	}
	render(c, http.StatusOK, h.pages.SignIn(h.meta(c, "Sign In", h.pages.Site.SignIn.Description), view))
}

// ThemeCSS serves the design tokens as CSS custom properties
func (h *PageHandler) ThemeCSS(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(h.pages.Kit.Theme().CSS()))
}

func (h *PageHandler) NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, h.pages.NotFound(h.meta(c, "Page not found", "")))
}

// ErrorPage renders errors raised by middleware and handlers on HTML routes
func (h *PageHandler) ErrorPage(c *gin.Context, code int, message string) {
	heading := problemHeading(code)
	render(c, code, h.pages.Problem(h.meta(c, heading, ""), heading, message))
}
