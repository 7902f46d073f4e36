package lead

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Shashankmy/crm/internal/middleware"
	"github.com/Shashankmy/crm/internal/pkg/response"
	"github.com/Shashankmy/crm/internal/pkg/validator"
)

// Handler handles lead HTTP requests
type Handler struct {
	service *Service
}

// NewHandler creates lead handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /api/leads
// @Summary List leads
// @Description Paginated lead list with search, filtering and sorting
// @Tags Leads
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Records per page" default(10)
// @Param search query string false "Substring match over name, email, leadId"
// @Param status query string false "Filter by status"
// @Param source query string false "Filter by source"
// @Param owner query string false "Me, Unassigned, or a team name"
// @Param date query string false "Today, Yesterday, This week, This month"
// @Param sortField query string false "name, status, source, createdDate, owner"
// @Param sortDirection query string false "asc or desc"
// @Success 200 {object} ListResponse
// @Failure 500 {object} map[string]string
// @Router /leads [get]
func (h *Handler) List(c *gin.Context) {
	q := ListQuery{
		Page:          intQuery(c, "page"),
		Limit:         intQuery(c, "limit"),
		Search:        c.Query("search"),
		Status:        c.Query("status"),
		Source:        c.Query("source"),
		Owner:         c.Query("owner"),
		Date:          c.Query("date"),
		SortField:     c.Query("sortField"),
		SortDirection: c.Query("sortDirection"),
		CurrentUser:   middleware.CurrentUser(c),
	}

	result, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		response.Internal(c, "Failed to fetch leads", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get handles GET /api/leads/:id
// @Summary Get lead by ID
// @Tags Leads
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {object} Lead
// @Failure 404 {object} map[string]string
// @Router /leads/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Lead not found")
		return
	}

	l, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, "Lead not found")
			return
		}
		response.Internal(c, "Failed to fetch lead", err)
		return
	}

	c.JSON(http.StatusOK, l)
}

// Create handles POST /api/leads
// @Summary Create lead
// @Description Server assigns leadId, createdAt and updatedAt
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body CreateLeadRequest true "Lead fields"
// @Success 201 {object} Lead
// @Failure 400 {object} map[string]string
// @Router /leads [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.Error(c, http.StatusBadRequest, validator.Message(errs))
		return
	}

	l, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) || errors.Is(err, ErrInvalidSource) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Internal(c, "Failed to create lead", err)
		return
	}

	c.JSON(http.StatusCreated, l)
}

// Update handles PUT /api/leads/:id
// @Summary Update lead
// @Description Applies only the provided fields
// @Tags Leads
// @Accept json
// @Produce json
// @Param id path int true "Lead ID"
// @Param request body UpdateLeadRequest true "Partial lead fields"
// @Success 200 {object} Lead
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /leads/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Lead not found")
		return
	}

	var req UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if errs := validator.Validate(&req); errs != nil {
		response.Error(c, http.StatusBadRequest, validator.Message(errs))
		return
	}

	l, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, ErrLeadNotFound):
			response.Error(c, http.StatusNotFound, "Lead not found")
		case errors.Is(err, ErrInvalidStatus), errors.Is(err, ErrInvalidSource):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Internal(c, "Failed to update lead", err)
		}
		return
	}

	c.JSON(http.StatusOK, l)
}

// Delete handles DELETE /api/leads/:id
// @Summary Delete lead
// @Description Hard delete, irreversible
// @Tags Leads
// @Produce json
// @Param id path int true "Lead ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /leads/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Lead not found")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			response.Error(c, http.StatusNotFound, "Lead not found")
			return
		}
		response.Internal(c, "Failed to delete lead", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Lead deleted successfully"})
}

// BulkDelete handles POST /api/leads/bulk-delete
// @Summary Bulk delete leads
// @Description Deletes every matched id; unmatched ids are skipped
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body BulkDeleteRequest true "Lead ids"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /leads/bulk-delete [post]
func (h *Handler) BulkDelete(c *gin.Context) {
	var req BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		response.Error(c, http.StatusBadRequest, "Invalid request: ids array is required")
		return
	}

	count, err := h.service.BulkDelete(c.Request.Context(), req.IDs)
	if err != nil {
		response.Internal(c, "Failed to delete leads", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%d leads deleted successfully", count),
		"count":   count,
	})
}

// BulkUpdate handles POST /api/leads/bulk-update
// @Summary Bulk update leads
// @Description Applies the same field set to every matched id
// @Tags Leads
// @Accept json
// @Produce json
// @Param request body BulkUpdateRequest true "Lead ids and updates"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Router /leads/bulk-update [post]
func (h *Handler) BulkUpdate(c *gin.Context) {
	var req BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 || req.Updates == nil {
		response.Error(c, http.StatusBadRequest, "Invalid request: ids array and updates object are required")
		return
	}

	if errs := validator.Validate(req.Updates); errs != nil {
		response.Error(c, http.StatusBadRequest, validator.Message(errs))
		return
	}

	count, err := h.service.BulkUpdate(c.Request.Context(), req.IDs, req.Updates)
	if err != nil {
		if errors.Is(err, ErrInvalidStatus) || errors.Is(err, ErrInvalidSource) {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
		response.Internal(c, "Failed to update leads", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("%d leads updated successfully", count),
		"count":   count,
	})
}

// Stats handles GET /api/stats
// @Summary Lead statistics
// @Description Totals, per-status and per-source counts, 5 most recent leads
// @Tags Leads
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string
// @Router /stats [get]
func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Internal(c, "Failed to fetch stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// intQuery parses a positive integer query param; 0 means absent/invalid
// and lets ListQuery.Normalize pick the default.
func intQuery(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v < 1 {
		return 0
	}
	return v
}
