package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salescrm/internal/pkg/response"
)

// Handler handles dashboard HTTP requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Summary handles GET /api/v1/dashboard
// @Summary Dashboard aggregates
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=Summary}
// @Router /dashboard [get]
func (h *Handler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, summary)
}
