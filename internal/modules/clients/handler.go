package clients

import (
	"context"
	"net/http"

	"bostonsuites/internal/domain"
	"bostonsuites/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// ClientRepository is the read side of the guest registry; writes happen only
// through booking creation and edit.
type ClientRepository interface {
	List(ctx context.Context) ([]domain.Client, error)
}

type Handler struct {
	clients ClientRepository
}

func NewHandler(clients ClientRepository) *Handler {
	return &Handler{clients: clients}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/clients", h.ListClients)
}

func (h *Handler) ListClients(c *gin.Context) {
	rows, err := h.clients.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load clients")
		return
	}
	response.Success(c, http.StatusOK, rows)
}
