package visit

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salescrm/internal/pkg/response"
	"salescrm/internal/pkg/validator"
)

// Handler handles visit report HTTP requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/visits
// @Summary List visit reports
// @Tags Visits
// @Produce json
// @Security BearerAuth
// @Param user_id query string false "Filter by user"
// @Param account_id query string false "Filter by account"
// @Param limit query int false "Limit" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} response.Response{data=VisitListResponse}
// @Router /visits [get]
func (h *Handler) List(c *gin.Context) {
	limit := 50
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}

	resp, err := h.service.List(c.Request.Context(), c.Query("user_id"), c.Query("account_id"), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Get handles GET /api/v1/visits/:id
// @Summary Get visit report by ID
// @Tags Visits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Visit ID"
// @Success 200 {object} response.Response{data=VisitReport}
// @Failure 404 {object} response.Response
// @Router /visits/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	v, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == ErrVisitNotFound {
			response.Error(c, http.StatusNotFound, "VISIT_NOT_FOUND", "Visit not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, v)
}

// CheckIn handles POST /api/v1/visits/check-in
// @Summary Check in at an account
// @Tags Visits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CheckInRequest true "Visit data"
// @Success 201 {object} response.Response{data=VisitReport}
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /visits/check-in [post]
func (h *Handler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	v, err := h.service.CheckIn(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		switch err {
		case ErrVisitOpen:
			response.Error(c, http.StatusConflict, "VISIT_OPEN", "Check out of the current visit first")
		case ErrAccountNotFound:
			response.Error(c, http.StatusNotFound, "ACCOUNT_NOT_FOUND", "Account not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	response.Success(c, http.StatusCreated, v)
}

// CheckOut handles POST /api/v1/visits/check-out
// @Summary Check out of the current visit
// @Tags Visits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CheckOutRequest true "Closing notes"
// @Success 200 {object} response.Response{data=VisitReport}
// @Failure 409 {object} response.Response
// @Router /visits/check-out [post]
func (h *Handler) CheckOut(c *gin.Context) {
	var req CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	v, err := h.service.CheckOut(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		if err == ErrNoOpenVisit {
			response.Error(c, http.StatusConflict, "NO_OPEN_VISIT", "No open visit to check out of")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, v)
}
