package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"roo-petroleum-web/config"
	"roo-petroleum-web/internal/delivery/http/middleware"
	"roo-petroleum-web/internal/delivery/http/web"
	"roo-petroleum-web/internal/domain"
	"roo-petroleum-web/internal/ui"
	"roo-petroleum-web/internal/usecase"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  usecase.HealthUsecase
	Pages     *ui.Pages
	Flash     web.FlashStore
	Config    *config.Config
}

// NewRouter wires the HTML site and the /v1 JSON API onto one engine
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	window := time.Duration(cfg.RateLimitWindowSeconds) * time.Second
	pages := web.NewPageHandler(deps.Pages, deps.ContactUC, deps.Flash)

	r := gin.New()

	// Global Middlewares
	r.Use(middleware.RequestID())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins, cfg.IsProduction()))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware(cfg.IsProduction(), ui.TailwindCDN))
	r.Use(middleware.ErrorHandler(pages.ErrorPage))
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(cfg.RateLimitGlobalThreshold, window)))
	// The JSON API is called cross-origin and is covered by CORS and the contact limit instead
	r.Use(middleware.CSRFMiddleware(cfg.IsProduction(), "/v1/contact"))

	contactLimit := middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(cfg.RateLimitContactLimit, window))

	// Site
	pages.RegisterRoutes(r, contactLimit)
	NewHealthHandler(r, deps.HealthUC)
	r.NoRoute(pages.NotFound)

	// JSON API
	v1 := r.Group("/v1")
	NewHealthHandler(v1, deps.HealthUC)
	NewContactHandler(v1, deps.ContactUC, contactLimit)
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
