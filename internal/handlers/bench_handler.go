package handlers

import (
	"net/http"

	"homecare-tracker/internal/models"
	"homecare-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListBenches(c *gin.Context) {
	benches, err := h.store.ListBenches(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Bench")
		return
	}
	respondList(c, benches)
}

func (h *Handler) GetBench(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	bench, err := h.store.GetBench(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Bench")
		return
	}
	c.JSON(http.StatusOK, bench)
}

func (h *Handler) CreateBench(c *gin.Context) {
	var input models.BenchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	bench := input.ToBench()
	if err := h.store.CreateBench(c.Request.Context(), &bench); err != nil {
		h.fail(c, err, "Bench")
		return
	}
	c.JSON(http.StatusCreated, bench)
}

func (h *Handler) UpdateBench(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input models.BenchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}
	if !checkBodyID(c, id, input.ID) {
		return
	}

	bench := input.ToBench()
	if err := h.store.UpdateBench(c.Request.Context(), &bench); err != nil {
		h.fail(c, err, "Bench")
		return
	}
	utils.NoContent(c)
}

func (h *Handler) DeleteBench(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	bench, err := h.store.DeleteBench(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Bench")
		return
	}
	c.JSON(http.StatusOK, bench)
}

// Appointment status: read-only.

func (h *Handler) ListAppointmentStatuses(c *gin.Context) {
	statuses, err := h.store.ListAppointmentStatuses(c.Request.Context())
	if err != nil {
		h.fail(c, err, "Appointment status")
		return
	}
	respondList(c, statuses)
}

func (h *Handler) GetAppointmentStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	status, err := h.store.GetAppointmentStatus(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Appointment status")
		return
	}
	c.JSON(http.StatusOK, status)
}
