package models

import "time"

type HealthWorkerProfile struct {
	AccountID   uint64    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	FirstName   string    `gorm:"size:100;not null" json:"firstName"`
	LastName    string    `gorm:"size:100;not null" json:"lastName"`
	Gender      string    `gorm:"size:20" json:"gender"`
	BirthDay    time.Time `json:"birthDay"`
	PhoneNumber string    `gorm:"size:20" json:"phoneNumber"`
	Version     int64     `gorm:"not null;default:1" json:"version"`
}

func (HealthWorkerProfile) KeyColumn() string { return "account_id" }

func (p *HealthWorkerProfile) UpdateColumns() map[string]interface{} {
	return map[string]interface{}{
		"first_name":   p.FirstName,
		"last_name":    p.LastName,
		"gender":       p.Gender,
		"birth_day":    p.BirthDay,
		"phone_number": p.PhoneNumber,
	}
}

// UpdateHealthWorkerInput adalah body PUT /api/HealthWorkers/{id}.
type UpdateHealthWorkerInput struct {
	ID          uint64    `json:"id" binding:"required"`
	Email       string    `json:"email" binding:"required,email,max=256"`
	FirstName   string    `json:"firstName" binding:"required,max=100"`
	LastName    string    `json:"lastName" binding:"required,max=100"`
	Gender      string    `json:"gender" binding:"required,max=20"`
	BirthDay    time.Time `json:"birthDay" binding:"required"`
	PhoneNumber string    `json:"phoneNumber" binding:"required,max=20"`
	Version     int64     `json:"version"`
}

// EditHealthWorkerInput dipakai PUT /api/HealthWorkers/edit/{id}: tanpa id & email.
type EditHealthWorkerInput struct {
	FirstName   string    `json:"firstName" binding:"required,max=100"`
	LastName    string    `json:"lastName" binding:"required,max=100"`
	Gender      string    `json:"gender" binding:"required,max=20"`
	BirthDay    time.Time `json:"birthDay" binding:"required"`
	PhoneNumber string    `json:"phoneNumber" binding:"required,max=20"`
}
