package admin

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

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/coaches", h.CreateCoach)
	rg.PUT("/users/:id/suspend", h.SuspendUser)
	rg.PUT("/users/:id/restore", h.RestoreUser)
}

func (h *Handler) CreateCoach(c *gin.Context) {
	var req CreateCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	result, err := h.service.CreateCoach(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrEmailAlreadyExists:
			response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
		case ErrValidation:
			response.ValidationError(c, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create coach")
		}
		return
	}

	response.Success(c, http.StatusCreated, result)
}

func (h *Handler) SuspendUser(c *gin.Context) {
	h.setStatus(c, true)
}

func (h *Handler) RestoreUser(c *gin.Context) {
	h.setStatus(c, false)
}

func (h *Handler) setStatus(c *gin.Context, suspend bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "Invalid user id")
		return
	}

	if suspend {
		err = h.service.SuspendUser(c.Request.Context(), id)
	} else {
		err = h.service.RestoreUser(c.Request.Context(), id)
	}
	if err != nil {
		if err == ErrUserNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update user")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"updated": true})
}
