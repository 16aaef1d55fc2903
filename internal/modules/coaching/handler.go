package coaching

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

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/coaches", h.ListCoaches)
}

func (h *Handler) RegisterClientRoutes(rg *gin.RouterGroup) {
	rg.POST("/coach-requests", h.RequestCoach)
	rg.GET("/coach-status", h.CoachStatus)
}

func (h *Handler) RegisterCoachRoutes(rg *gin.RouterGroup) {
	rg.GET("/requests", h.ListPendingRequests)
	rg.PUT("/requests/:id/accept", h.AcceptRequest)
	rg.PUT("/requests/:id/reject", h.RejectRequest)
	rg.GET("/clients", h.ListClients)
	rg.GET("/clients/:id", h.GetClient)
	rg.PUT("/profile", h.UpdateProfile)
}

func (h *Handler) ListCoaches(c *gin.Context) {
	items, err := h.service.ListCoaches(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list coaches")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"coaches": items})
}

func (h *Handler) RequestCoach(c *gin.Context) {
	var req RequestCoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	a, err := h.service.RequestCoach(c.Request.Context(), c.GetInt64("user_id"), req.CoachID)
	if err != nil {
		h.writeError(c, err, "Failed to request coach")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"assignment": a})
}

func (h *Handler) CoachStatus(c *gin.Context) {
	status, err := h.service.CoachStatus(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err, "Failed to load coach status")
		return
	}
	response.Success(c, http.StatusOK, status)
}

func (h *Handler) AcceptRequest(c *gin.Context) {
	h.decide(c, true)
}

func (h *Handler) RejectRequest(c *gin.Context) {
	h.decide(c, false)
}

func (h *Handler) decide(c *gin.Context, accept bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "Invalid assignment id")
		return
	}

	var a any
	if accept {
		a, err = h.service.AcceptRequest(c.Request.Context(), c.GetInt64("user_id"), id)
	} else {
		a, err = h.service.RejectRequest(c.Request.Context(), c.GetInt64("user_id"), id)
	}
	if err != nil {
		h.writeError(c, err, "Failed to decide request")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"assignment": a})
}

func (h *Handler) ListClients(c *gin.Context) {
	items, err := h.service.ListClients(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err, "Failed to list clients")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"clients": items})
}

func (h *Handler) ListPendingRequests(c *gin.Context) {
	items, err := h.service.ListPendingRequests(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.writeError(c, err, "Failed to list requests")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"requests": items})
}

func (h *Handler) GetClient(c *gin.Context) {
	clientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ValidationError(c, "Invalid client id")
		return
	}

	client, err := h.service.GetClient(c.Request.Context(), c.GetInt64("user_id"), clientID)
	if err != nil {
		h.writeError(c, err, "Failed to load client")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"client": client})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "Invalid request body")
		return
	}

	coach, err := h.service.UpdateProfile(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.writeError(c, err, "Failed to update profile")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"coach": coach})
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case ErrCoachNotFound, ErrAssignmentNotFound, ErrClientNotFound, ErrNoCoachProfile:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case ErrAlreadyAssigned, ErrRequestPending, ErrAlreadyDecided:
		response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
