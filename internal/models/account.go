package models

import (
	"time"
)

const (
	RoleAdmin        = "admin"
	RoleClient       = "client"
	RoleHealthWorker = "healthworker"
)

// Account adalah data login dasar semua user (admin, client, healthworker).
// Data khusus role disimpan di ClientProfile / HealthWorkerProfile dengan key account_id.
type Account struct {
	ID           uint64    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:256;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"size:20;not null;index" json:"role"`
	FCMToken     string    `gorm:"size:255" json:"-"`
	Version      int64     `gorm:"not null;default:1" json:"version"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Input register untuk admin (hanya email & password)
type RegisterAdminInput struct {
	Email           string `json:"email" binding:"required,email,max=256"`
	Password        string `json:"password" binding:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

type RegisterClientInput struct {
	Email           string    `json:"email" binding:"required,email,max=256"`
	Password        string    `json:"password" binding:"required,min=6,max=72"`
	ConfirmPassword string    `json:"confirmPassword" binding:"required,eqfield=Password"`
	FirstName       string    `json:"firstName" binding:"required,max=100"`
	LastName        string    `json:"lastName" binding:"required,max=100"`
	Gender          string    `json:"gender" binding:"required,max=20"`
	BirthDay        time.Time `json:"birthDay" binding:"required"`
	StreetName      string    `json:"streetName" binding:"required,max=100"`
	HouseNumber     string    `json:"houseNumber" binding:"required,max=10"`
	Province        string    `json:"province" binding:"required,max=100"`
	District        string    `json:"district" binding:"required,max=100"`
	HealthWorkerID  *uint64   `json:"healthWorker_Id"`
}

type RegisterHealthWorkerInput struct {
	Email           string    `json:"email" binding:"required,email,max=256"`
	Password        string    `json:"password" binding:"required,min=6,max=72"`
	ConfirmPassword string    `json:"confirmPassword" binding:"required,eqfield=Password"`
	FirstName       string    `json:"firstName" binding:"required,max=100"`
	LastName        string    `json:"lastName" binding:"required,max=100"`
	Gender          string    `json:"gender" binding:"required,max=20"`
	BirthDay        time.Time `json:"birthDay" binding:"required"`
	PhoneNumber     string    `json:"phoneNumber" binding:"required,max=20"`
}

// LoginInput dipakai signin & generatetoken. FCMToken opsional dari device mobile.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FCMToken string `json:"fcmToken" binding:"max=255"`
}

// EditClientInput hanya mengganti alamat client.
type EditClientInput struct {
	StreetName  string `json:"streetName" binding:"required,max=100"`
	HouseNumber string `json:"houseNumber" binding:"required,max=10"`
	Province    string `json:"province" binding:"required,max=100"`
	District    string `json:"district" binding:"required,max=100"`
}

// AddHealthWorkerInput menghubungkan client ke healthworker. null = lepas relasi.
type AddHealthWorkerInput struct {
	HealthWorkerID *uint64 `json:"healthWorker_Id"`
}
