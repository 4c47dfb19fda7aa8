package stats

import (
	"errors"
	"net/http"
	"strconv"

	"bostonsuites/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats/dashboard", h.Dashboard)
	rg.GET("/revenue", h.Revenue)
}

func (h *Handler) Dashboard(c *gin.Context) {
	s, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute dashboard stats")
		return
	}
	response.Success(c, http.StatusOK, s)
}

func (h *Handler) Revenue(c *gin.Context) {
	var roomID int64
	if raw := c.Query("room_id"); raw != "" && raw != "all" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room_id")
			return
		}
		roomID = id
	}

	rows, err := h.service.Revenue(c.Request.Context(), roomID, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid start_date or end_date")
		case errors.Is(err, ErrRoomNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute revenue")
		}
		return
	}
	response.Success(c, http.StatusOK, rows)
}
