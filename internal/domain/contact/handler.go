package contact

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salescrm/internal/pkg/response"
	"salescrm/internal/pkg/validator"
)

// Handler handles contact HTTP requests.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/v1/contacts?account_id=...&per_page=100
// @Summary List contacts for an account
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param account_id query string true "Owning account"
// @Param per_page query int false "Page size" default(100)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} response.Response{data=ContactListResponse}
// @Router /contacts [get]
func (h *Handler) List(c *gin.Context) {
	accountID := c.Query("account_id")
	if accountID == "" {
		response.Error(c, http.StatusBadRequest, "ACCOUNT_ID_REQUIRED", "account_id query parameter is required")
		return
	}

	limit := 100
	if v, err := strconv.Atoi(c.Query("per_page")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	offset := 0
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		offset = v
	}

	resp, err := h.service.ListByAccount(c.Request.Context(), accountID, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Get handles GET /api/v1/contacts/:id
// @Summary Get contact by ID
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} response.Response{data=Contact}
// @Failure 404 {object} response.Response
// @Router /contacts/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	ct, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if err == ErrContactNotFound {
			response.Error(c, http.StatusNotFound, "CONTACT_NOT_FOUND", "Contact not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ct)
}

// Create handles POST /api/v1/contacts
// @Summary Create contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateContactRequest true "Contact data"
// @Success 201 {object} response.Response{data=Contact}
// @Failure 404 {object} response.Response
// @Router /contacts [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	ct, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if err == ErrAccountNotFound {
			response.Error(c, http.StatusNotFound, "ACCOUNT_NOT_FOUND", "Owning account not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, ct)
}

// Update handles PATCH /api/v1/contacts/:id
// @Summary Update contact
// @Tags Contacts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Param request body UpdateContactRequest true "Fields to change"
// @Success 200 {object} response.Response{data=Contact}
// @Failure 404 {object} response.Response
// @Router /contacts/{id} [patch]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Validation failed", errs)
		return
	}

	ct, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if err == ErrContactNotFound {
			response.Error(c, http.StatusNotFound, "CONTACT_NOT_FOUND", "Contact not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, ct)
}

// Delete handles DELETE /api/v1/contacts/:id
// @Summary Delete contact
// @Tags Contacts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Contact ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contacts/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if err == ErrContactNotFound {
			response.Error(c, http.StatusNotFound, "CONTACT_NOT_FOUND", "Contact not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Contact deleted"})
}
