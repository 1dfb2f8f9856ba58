package models

import "time"

// ClientProfile menyimpan data pribadi client. Primary key = id account-nya.
type ClientProfile struct {
	AccountID      uint64    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	FirstName      string    `gorm:"size:100;not null" json:"firstName"`
	LastName       string    `gorm:"size:100;not null" json:"lastName"`
	Gender         string    `gorm:"size:20" json:"gender"`
	BirthDay       time.Time `json:"birthDay"`
	StreetName     string    `gorm:"size:100" json:"streetName"`
	HouseNumber    string    `gorm:"size:10" json:"houseNumber"`
	Province       string    `gorm:"size:100" json:"province"`
	District       string    `gorm:"size:100" json:"district"`
	HealthWorkerID *uint64   `gorm:"index" json:"healthWorker_Id"` // Pointer karena bisa NULL
	Version        int64     `gorm:"not null;default:1" json:"version"`
}

func (ClientProfile) KeyColumn() string { return "account_id" }

func (p *ClientProfile) UpdateColumns() map[string]interface{} {
	return map[string]interface{}{
		"first_name":       p.FirstName,
		"last_name":        p.LastName,
		"gender":           p.Gender,
		"birth_day":        p.BirthDay,
		"street_name":      p.StreetName,
		"house_number":     p.HouseNumber,
		"province":         p.Province,
		"district":         p.District,
		"health_worker_id": p.HealthWorkerID,
	}
}

// UpdateClientInput adalah body PUT /api/Clients/{id} (full replace).
type UpdateClientInput struct {
	ID             uint64    `json:"id" binding:"required"`
	Email          string    `json:"email" binding:"required,email,max=256"`
	FirstName      string    `json:"firstName" binding:"required,max=100"`
	LastName       string    `json:"lastName" binding:"required,max=100"`
	Gender         string    `json:"gender" binding:"required,max=20"`
	BirthDay       time.Time `json:"birthDay" binding:"required"`
	StreetName     string    `json:"streetName" binding:"required,max=100"`
	HouseNumber    string    `json:"houseNumber" binding:"required,max=10"`
	Province       string    `json:"province" binding:"required,max=100"`
	District       string    `json:"district" binding:"required,max=100"`
	HealthWorkerID *uint64   `json:"healthWorker_Id"`
	Version        int64     `json:"version"`
}
