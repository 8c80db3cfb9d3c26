package deal

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salescrm/internal/pkg/response"
	"salescrm/internal/pkg/validator"
)

// Handler handles deal HTTP requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/deals
// @Summary List deals
// @Tags Deals
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(open, won, lost)
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} response.Response{data=DealListResponse}
// @Router /deals [get]
func (h *Handler) List(c *gin.Context) {
	limit := 50
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}

	resp, err := h.service.List(c.Request.Context(), c.Query("status"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Kanban handles GET /api/v1/deals/kanban
// @Summary Kanban board of open deals by stage
// @Tags Deals
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response{data=KanbanResponse}
// @Router /deals/kanban [get]
func (h *Handler) Kanban(c *gin.Context) {
	resp, err := h.service.Kanban(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Get handles GET /api/v1/deals/:id
// @Summary Get deal by ID
// @Tags Deals
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Success 200 {object} response.Response{data=Deal}
// @Failure 404 {object} response.Response
// @Router /deals/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	d, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == ErrDealNotFound {
			response.Error(c, http.StatusNotFound, "DEAL_NOT_FOUND", "Deal not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, d)
}

// Create handles POST /api/v1/deals
// @Summary Create deal
// @Tags Deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateDealRequest true "Deal data"
// @Success 201 {object} response.Response{data=Deal}
// @Failure 404 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /deals [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	d, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrStageNotFound:
			response.Error(c, http.StatusNotFound, "STAGE_NOT_FOUND", "Pipeline stage not found")
		case ErrStageInactive:
			response.Error(c, http.StatusUnprocessableEntity, "STAGE_INACTIVE", "Pipeline stage is not active")
		case ErrAccountNotFound:
			response.Error(c, http.StatusNotFound, "ACCOUNT_NOT_FOUND", "Account not found")
		case ErrContactNotFound:
			response.Error(c, http.StatusNotFound, "CONTACT_NOT_FOUND", "Contact not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, d)
}

// Update handles PATCH /api/v1/deals/:id
// @Summary Update deal fields
// @Tags Deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param request body UpdateDealRequest true "Fields to change"
// @Success 200 {object} response.Response{data=Deal}
// @Failure 409 {object} response.Response
// @Router /deals/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	d, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch err {
		case ErrDealNotFound:
			response.Error(c, http.StatusNotFound, "DEAL_NOT_FOUND", "Deal not found")
		case ErrDealClosed:
			response.Error(c, http.StatusConflict, "DEAL_CLOSED", "Closed deals cannot be edited")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, d)
}

// MoveStage handles PATCH /api/v1/deals/:id/stage
// @Summary Move deal to another stage
// @Tags Deals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Deal ID"
// @Param request body MoveStageRequest true "Target stage"
// @Success 200 {object} response.Response{data=Deal}
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /deals/{id}/stage [patch]
func (h *Handler) MoveStage(c *gin.Context) {
	var req MoveStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	d, err := h.service.MoveStage(c.Request.Context(), c.Param("id"), req.StageID)
	if err != nil {
		switch err {
		case ErrDealNotFound:
			response.Error(c, http.StatusNotFound, "DEAL_NOT_FOUND", "Deal not found")
		case ErrDealClosed:
			response.Error(c, http.StatusConflict, "DEAL_CLOSED", "Closed deals cannot be moved")
		case ErrStageNotFound:
			response.Error(c, http.StatusNotFound, "STAGE_NOT_FOUND", "Pipeline stage not found")
		case ErrStageInactive:
			response.Error(c, http.StatusUnprocessableEntity, "STAGE_INACTIVE", "Pipeline stage is not active")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, d)
}
