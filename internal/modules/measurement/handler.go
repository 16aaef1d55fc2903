package measurement

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gymcoach/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterClientRoutes(rg *gin.RouterGroup) {
	rg.POST("/measurements", h.Record)
	rg.GET("/measurements", h.History)
	rg.GET("/measurements/latest", h.Latest)
}

func (h *Handler) Record(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	m, err := h.service.Record(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "At least one measurement value is required")
		case ErrForbidden:
			response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record measurements")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"measurement": m})
}

func (h *Handler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	items, err := h.service.History(c.Request.Context(), c.GetInt64("user_id"), limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list measurements")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"measurements": items})
}

func (h *Handler) Latest(c *gin.Context) {
	m, err := h.service.Latest(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load measurement")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"measurement": m})
}
