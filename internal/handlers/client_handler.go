package handlers

import (
	"net/http"

	"homecare-tracker/internal/models"
	"homecare-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/Clients
func (h *Handler) ListClients(c *gin.Context) {
	clients, err := h.store.ListClients(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Client")
		return
	}
	respondList(c, clients)
}

// GET /api/Clients/:id
func (h *Handler) GetClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	client, err := h.store.GetClient(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Client")
		return
	}
	c.JSON(http.StatusOK, client)
}

// GET /api/Clients/connected/:email: client yang terhubung ke healthworker tsb.
// List kosong tetap 200 dengan array kosong.
func (h *Handler) ConnectedClients(c *gin.Context) {
	clients, err := h.store.ConnectedClients(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.fail(c, err, "Health worker")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// POST /api/Clients: buat account + profile client.
func (h *Handler) CreateClient(c *gin.Context) {
	var input models.RegisterClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	acc, profile, err := clientFromInput(input)
	if err != nil {
		h.fail(c, err, "Client")
		return
	}
	ctx := c.Request.Context()
	if err := h.store.CreateClient(ctx, acc, profile); err != nil {
		h.fail(c, err, "Client")
		return
	}
	c.JSON(http.StatusCreated, models.NewClientView(*acc, *profile))
}

// PUT /api/Clients/:id (full replace)
func (h *Handler) UpdateClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input models.UpdateClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}
	if !checkBodyID(c, id, input.ID) {
		return
	}

	if err := h.store.UpdateClient(c.Request.Context(), input); err != nil {
		h.fail(c, err, "Client")
		return
	}
	utils.NoContent(c)
}

// DELETE /api/Clients/:id
func (h *Handler) DeleteClient(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	client, err := h.store.DeleteClient(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Client")
		return
	}
	c.JSON(http.StatusOK, client)
}
