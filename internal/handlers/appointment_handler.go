package handlers

import (
	"context"
	"net/http"
	"strconv"

	"homecare-tracker/internal/models"
	"homecare-tracker/internal/store"
	"homecare-tracker/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/Appointments?clientId=&healthworkerId=
func (h *Handler) ListAppointments(c *gin.Context) {
	var filter store.AppointmentFilter
	var ok bool
	if filter.ClientID, ok = queryID(c, "clientId"); !ok {
		return
	}
	if filter.HealthworkerID, ok = queryID(c, "healthworkerId"); !ok {
		return
	}

	appointments, err := h.store.ListAppointments(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err, "Appointment")
		return
	}
	respondList(c, appointments)
}

// GET /api/Appointments/:id: lengkap dengan client, healthworker, bench & status.
func (h *Handler) GetAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	appointment, err := h.store.GetAppointmentView(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Appointment")
		return
	}
	c.JSON(http.StatusOK, appointment)
}

// POST /api/Appointments: status awal selalu pending.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var input models.CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}

	appointment := models.Appointment{
		Time:           input.Time,
		ClientID:       input.ClientID,
		HealthworkerID: input.HealthworkerID,
		BenchID:        input.BenchID,
	}
	if err := h.store.CreateAppointment(c.Request.Context(), &appointment); err != nil {
		h.fail(c, err, "Appointment")
		return
	}

	h.notifyAppointment(c.Request.Context(), appointment)
	c.JSON(http.StatusCreated, appointment)
}

// notifyAppointment kirim push ke client & healthworker yang punya FCM token.
// Gagal kirim hanya di-log.
func (h *Handler) notifyAppointment(ctx context.Context, a models.Appointment) {
	data := map[string]string{
		"appointment_id": strconv.FormatUint(a.ID, 10),
		"time":           a.Time.UTC().Format("2006-01-02T15:04:05Z"),
	}
	for _, accountID := range []uint64{a.ClientID, a.HealthworkerID} {
		acc, err := h.store.GetAccount(ctx, accountID)
		if err != nil || acc.FCMToken == "" {
			continue
		}
		err = h.notifier.Send(ctx, acc.FCMToken, "New appointment", "A new appointment has been scheduled", data)
		if err != nil {
			h.log.Warn().Err(err).Uint64("account_id", accountID).Uint64("appointment_id", a.ID).Msg("push notification failed")
		}
	}
}

// PUT /api/Appointments/:id: full replace, status bebas diganti.
func (h *Handler) UpdateAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input models.UpdateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindError(c, err)
		return
	}
	if !checkBodyID(c, id, input.ID) {
		return
	}

	appointment := models.Appointment{
		ID:             input.ID,
		Time:           input.Time,
		ClientID:       input.ClientID,
		HealthworkerID: input.HealthworkerID,
		BenchID:        input.BenchID,
		StatusID:       input.StatusID,
		Version:        input.Version,
	}
	if err := h.store.UpdateAppointment(c.Request.Context(), &appointment); err != nil {
		h.fail(c, err, "Appointment")
		return
	}
	utils.NoContent(c)
}

func (h *Handler) DeleteAppointment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	appointment, err := h.store.DeleteAppointment(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Appointment")
		return
	}
	c.JSON(http.StatusOK, appointment)
}
