package handlers

import (
	"net/http"

	"homecare-tracker/internal/models"
	"homecare-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListHealthWorkers(c *gin.Context) {
	workers, err := h.store.ListHealthWorkers(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Health worker")
		return
	}
	respondList(c, workers)
}

func (h *Handler) GetHealthWorker(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	worker, err := h.store.GetHealthWorker(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Health worker")
		return
	}
	c.JSON(http.StatusOK, worker)
}

func (h *Handler) CreateHealthWorker(c *gin.Context) {
	var input models.RegisterHealthWorkerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	acc, profile, err := healthWorkerFromInput(input)
	if err != nil {
		h.fail(c, err, "Health worker")
		return
	}
	if err := h.store.CreateHealthWorker(c.Request.Context(), acc, profile); err != nil {
		h.fail(c, err, "Health worker")
		return
	}
	c.JSON(http.StatusCreated, models.NewHealthWorkerView(*acc, *profile))
}

// PUT /api/HealthWorkers/:id
func (h *Handler) UpdateHealthWorker(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input models.UpdateHealthWorkerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}
	if !checkBodyID(c, id, input.ID) {
		return
	}

	if err := h.store.UpdateHealthWorker(c.Request.Context(), input); err != nil {
		h.fail(c, err, "Health worker")
		return
	}
	utils.NoContent(c)
}

// PUT /api/HealthWorkers/edit/:id: tanpa id, email & version di body.
func (h *Handler) EditHealthWorker(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input models.EditHealthWorkerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	if err := h.store.EditHealthWorker(c.Request.Context(), id, input); err != nil {
		h.fail(c, err, "Health worker")
		return
	}
	utils.NoContent(c)
}

// DELETE /api/HealthWorkers/:id: client yang terhubung dilepas dulu.
func (h *Handler) DeleteHealthWorker(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	worker, err := h.store.DeleteHealthWorker(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Health worker")
		return
	}
	c.JSON(http.StatusOK, worker)
}
