package handlers

import (
	"net/http"

	"homecare-tracker/internal/middleware"
	"homecare-tracker/internal/models"
	"homecare-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/account/user: data account pemilik token.
func (h *Handler) GetCurrentUser(c *gin.Context) {
	acc, ok := middleware.CurrentAccount(c)
	if !ok {
		utils.APIResponse(c, http.StatusNotFound, "User not found")
		return
	}

	view, err := h.store.AccountView(c.Request.Context(), acc)
	if err != nil {
		h.fail(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, view)
}

// GET /api/account/currentUser/:email
func (h *Handler) GetUserByEmail(c *gin.Context) {
	ctx := c.Request.Context()

	acc, err := h.store.FindAccountByEmail(ctx, c.Param("email"))
	if err != nil {
		h.fail(c, err, "User")
		return
	}
	view, err := h.store.AccountView(ctx, acc)
	if err != nil {
		h.fail(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, view)
}

// PUT /api/account/edit/:email: ganti alamat client.
func (h *Handler) EditClientAddress(c *gin.Context) {
	var input models.EditClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	if err := h.store.EditClientAddress(c.Request.Context(), c.Param("email"), input); err != nil {
		h.fail(c, err, "Client")
		return
	}
	utils.NoContent(c)
}

// PUT /api/account/addHealthworker/:email: healthWorker_Id null = lepas relasi.
func (h *Handler) SetClientHealthWorker(c *gin.Context) {
	var input models.AddHealthWorkerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	if err := h.store.SetClientHealthWorker(c.Request.Context(), c.Param("email"), input.HealthWorkerID); err != nil {
		h.fail(c, err, "Client")
		return
	}
	utils.NoContent(c)
}
