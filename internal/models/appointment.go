package models

import "time"

// Status default untuk appointment baru (1 = pending).
const DefaultAppointmentStatusID uint64 = 1

// Appointment hanya menyimpan id relasi. Tidak ada FK constraint di database,
// relasi di-resolve saat read (lihat store.AppointmentView).
type Appointment struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	Time           time.Time `gorm:"not null" json:"time"`
	ClientID       uint64    `gorm:"index;not null" json:"clientId"`
	HealthworkerID uint64    `gorm:"index;not null" json:"healthworkerId"`
	BenchID        uint64    `gorm:"not null" json:"benchId"`
	StatusID       uint64    `gorm:"not null" json:"statusId"`
	Version        int64     `gorm:"not null;default:1" json:"version"`
}

func (Appointment) KeyColumn() string { return "id" }

func (a *Appointment) UpdateColumns() map[string]interface{} {
	return map[string]interface{}{
		"time":            a.Time,
		"client_id":       a.ClientID,
		"healthworker_id": a.HealthworkerID,
		"bench_id":        a.BenchID,
		"status_id":       a.StatusID,
	}
}

type AppointmentStatus struct {
	ID   uint64 `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`
}

// DefaultAppointmentStatuses di-seed saat migrate.
var DefaultAppointmentStatuses = []AppointmentStatus{
	{ID: 1, Name: "pending"},
	{ID: 2, Name: "confirmed"},
	{ID: 3, Name: "completed"},
	{ID: 4, Name: "cancelled"},
}

type CreateAppointmentInput struct {
	Time           time.Time `json:"time" binding:"required"` // Format: 2025-11-20T08:00:00Z
	ClientID       uint64    `json:"clientId" binding:"required"`
	HealthworkerID uint64    `json:"healthworkerId" binding:"required"`
	BenchID        uint64    `json:"benchId" binding:"required"`
}

// UpdateAppointmentInput: full replace, status boleh diganti ke id apa saja.
type UpdateAppointmentInput struct {
	ID             uint64    `json:"id" binding:"required"`
	Time           time.Time `json:"time" binding:"required"`
	ClientID       uint64    `json:"clientId" binding:"required"`
	HealthworkerID uint64    `json:"healthworkerId" binding:"required"`
	BenchID        uint64    `json:"benchId" binding:"required"`
	StatusID       uint64    `json:"statusId" binding:"required"`
	Version        int64     `json:"version"`
}
