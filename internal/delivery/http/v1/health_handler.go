package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"roo-petroleum-web/internal/delivery/http/response"
	"roo-petroleum-web/internal/usecase"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(r gin.IRouter, healthUC usecase.HealthUsecase) *HealthHandler {
	h := &HealthHandler{healthUC: healthUC}
	r.GET("/health", h.Health)
	return h
}

// Health godoc
// @Summary      Health check
// @Description  Reports the state of the database and Redis when they are configured.
// @Tags         system
// @Produce      json
// @Success      200  {object}  response.Response{data=map[string]string}
// @Failure      503  {object}  response.Response{data=map[string]string}
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	report, healthy := h.healthUC.Check(c.Request.Context())
	if !healthy {
		c.JSON(http.StatusServiceUnavailable, response.Response{
			Success:   false,
			Message:   "System degraded",
			Data:      report,
			RequestID: response.RequestID(c),
		})
		return
	}
	response.Success(c, http.StatusOK, "System operational", report)
}
