package lead

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salescrm/internal/pkg/response"
	"salescrm/internal/pkg/validator"
)

// Handler handles lead HTTP requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/leads
// @Summary List leads
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search by name, company or email"
// @Param status query string false "Filter by status"
// @Param per_page query int false "Page size" default(25)
// @Param page query int false "Page number" default(1)
// @Success 200 {object} response.Response{data=LeadListResponse}
// @Router /leads [get]
func (h *Handler) List(c *gin.Context) {
	params := ListParams{
		Search:  c.Query("q"),
		Status:  c.Query("status"),
		PerPage: 25,
		Page:    1,
	}
	if v, err := strconv.Atoi(c.Query("per_page")); err == nil && v > 0 && v <= 100 {
		params.PerPage = v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		params.Page = v
	}

	resp, err := h.service.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Get handles GET /api/v1/leads/:id
// @Summary Get lead by ID
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 200 {object} response.Response{data=Lead}
// @Failure 404 {object} response.Response
// @Router /leads/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	l, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == ErrLeadNotFound {
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, l)
}

// Create handles POST /api/v1/leads
// @Summary Create lead
// @Tags Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateLeadRequest true "Lead data"
// @Success 201 {object} response.Response{data=Lead}
// @Failure 422 {object} response.Response
// @Router /leads [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	l, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, l)
}

// Update handles PATCH /api/v1/leads/:id
// @Summary Update lead fields
// @Tags Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Param request body UpdateLeadRequest true "Fields to change"
// @Success 200 {object} response.Response{data=Lead}
// @Failure 409 {object} response.Response
// @Router /leads/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	l, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch err {
		case ErrLeadNotFound:
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
		case ErrLeadConverted:
			response.Error(c, http.StatusConflict, "LEAD_CONVERTED", "Converted leads cannot be edited")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, l)
}

// UpdateStatus handles PATCH /api/v1/leads/:id/status
// @Summary Move lead to another funnel status
// @Tags Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Param request body UpdateStatusRequest true "Target status"
// @Success 200 {object} response.Response{data=Lead}
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /leads/{id}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	l, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch err {
		case ErrLeadNotFound:
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
		case ErrLeadConverted:
			response.Error(c, http.StatusConflict, "LEAD_CONVERTED", "Converted leads cannot change status")
		case ErrInvalidTransition:
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_TRANSITION", "Status transition not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, l)
}

// Delete handles DELETE /api/v1/leads/:id
// @Summary Delete lead
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /leads/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch err {
		case ErrLeadNotFound:
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
		case ErrLeadConverted:
			response.Error(c, http.StatusConflict, "LEAD_CONVERTED", "Converted leads cannot be deleted")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// Convert handles POST /api/v1/leads/:id/convert
// @Summary Convert a qualified lead into an account, contact and deal
// @Tags Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Param request body ConvertRequest true "Conversion data"
// @Success 200 {object} response.Response{data=ConversionResult}
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /leads/{id}/convert [post]
func (h *Handler) Convert(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	result, err := h.service.Convert(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch err {
		case ErrLeadNotFound:
			response.Error(c, http.StatusNotFound, "LEAD_NOT_FOUND", "Lead not found")
		case ErrLeadConverted:
			response.Error(c, http.StatusConflict, "LEAD_CONVERTED", "Lead is already converted")
		case ErrLeadNotQualified:
			response.Error(c, http.StatusConflict, "LEAD_NOT_QUALIFIED", "Only qualified leads can be converted")
		case ErrInvalidCombination:
			response.Error(c, http.StatusUnprocessableEntity, "INVALID_COMBINATION", "Create flag and existing id are mutually exclusive")
		case ErrAccountRequired:
			response.Error(c, http.StatusUnprocessableEntity, "ACCOUNT_REQUIRED", "An account must be selected or created")
		case ErrMissingAccountName:
			response.Error(c, http.StatusUnprocessableEntity, "MISSING_ACCOUNT_NAME", "Lead has no company name to create an account from")
		case ErrStageNotFound:
			response.Error(c, http.StatusNotFound, "STAGE_NOT_FOUND", "Pipeline stage not found")
		case ErrStageInactive:
			response.Error(c, http.StatusUnprocessableEntity, "STAGE_INACTIVE", "Pipeline stage is not active")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}
