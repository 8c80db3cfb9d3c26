package pipeline

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salescrm/internal/pkg/response"
	"salescrm/internal/pkg/validator"
)

// Handler handles pipeline stage HTTP requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/pipelines?is_active=true
// @Summary List pipeline stages
// @Tags Pipelines
// @Produce json
// @Security BearerAuth
// @Param is_active query bool false "Only active stages"
// @Success 200 {object} response.Response{data=[]Stage}
// @Router /pipelines [get]
func (h *Handler) List(c *gin.Context) {
	activeOnly := c.Query("is_active") == "true"

	stages, err := h.service.List(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, stages)
}

// Create handles POST /api/v1/admin/pipelines
// @Summary Create pipeline stage
// @Tags Pipelines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateStageRequest true "Stage data"
// @Success 201 {object} response.Response{data=Stage}
// @Router /admin/pipelines [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	stage, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, stage)
}

// Update handles PATCH /api/v1/admin/pipelines/:id
// @Summary Update pipeline stage
// @Tags Pipelines
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stage ID"
// @Param request body UpdateStageRequest true "Fields to change"
// @Success 200 {object} response.Response{data=Stage}
// @Failure 404 {object} response.Response
// @Router /admin/pipelines/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	stage, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if err == ErrStageNotFound {
			response.Error(c, http.StatusNotFound, "STAGE_NOT_FOUND", "Pipeline stage not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, stage)
}

// Delete handles DELETE /api/v1/admin/pipelines/:id
// @Summary Delete pipeline stage
// @Tags Pipelines
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stage ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/pipelines/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch err {
		case ErrStageNotFound:
			response.Error(c, http.StatusNotFound, "STAGE_NOT_FOUND", "Pipeline stage not found")
		case ErrStageInUse:
			response.Error(c, http.StatusConflict, "STAGE_IN_USE", "Stage still has deals")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Stage deleted"})
}
