package account

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salescrm/internal/pkg/response"
	"salescrm/internal/pkg/validator"
)

// Handler handles account HTTP requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/accounts?per_page=100
// @Summary List accounts
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Param q query string false "Name search"
// @Param status query string false "Filter by status" Enums(active, inactive)
// @Param per_page query int false "Page size" default(100)
// @Param page query int false "Page" default(1)
// @Success 200 {object} response.Response{data=AccountListResponse}
// @Router /accounts [get]
func (h *Handler) List(c *gin.Context) {
	p := ListParams{
		Search:  c.Query("q"),
		Status:  c.Query("status"),
		PerPage: 100,
		Page:    1,
	}
	if v, err := strconv.Atoi(c.Query("per_page")); err == nil && v > 0 && v <= 100 {
		p.PerPage = v
	}
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		p.Page = v
	}

	resp, err := h.service.List(c.Request.Context(), p)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Get handles GET /api/v1/accounts/:id
// @Summary Get account by ID
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} response.Response{data=Account}
// @Failure 404 {object} response.Response
// @Router /accounts/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	a, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == ErrAccountNotFound {
			response.Error(c, http.StatusNotFound, "ACCOUNT_NOT_FOUND", "Account not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, a)
}

// Create handles POST /api/v1/accounts
// @Summary Create account
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAccountRequest true "Account data"
// @Success 201 {object} response.Response{data=Account}
// @Router /accounts [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, a)
}

// Update handles PATCH /api/v1/accounts/:id
// @Summary Update account
// @Tags Accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Param request body UpdateAccountRequest true "Fields to change"
// @Success 200 {object} response.Response{data=Account}
// @Failure 404 {object} response.Response
// @Router /accounts/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	a, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if err == ErrAccountNotFound {
			response.Error(c, http.StatusNotFound, "ACCOUNT_NOT_FOUND", "Account not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, a)
}
