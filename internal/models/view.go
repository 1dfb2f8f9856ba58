package models

import "time"

// View model: bentuk response ke mobile app. Tidak ada password hash / security stamp.

type ClientView struct {
	ID             uint64    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Gender         string    `json:"gender"`
	BirthDay       time.Time `json:"birthDay"`
	StreetName     string    `json:"streetName"`
	HouseNumber    string    `json:"houseNumber"`
	Province       string    `json:"province"`
	District       string    `json:"district"`
	HealthWorkerID *uint64   `json:"healthWorker_Id"`
	Version        int64     `json:"version"`
}

func NewClientView(acc Account, p ClientProfile) ClientView {
	return ClientView{
		ID:             acc.ID,
		Email:          acc.Email,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Gender:         p.Gender,
		BirthDay:       p.BirthDay,
		StreetName:     p.StreetName,
		HouseNumber:    p.HouseNumber,
		Province:       p.Province,
		District:       p.District,
		HealthWorkerID: p.HealthWorkerID,
		Version:        p.Version,
	}
}

type HealthWorkerView struct {
	ID          uint64    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	Gender      string    `json:"gender"`
	BirthDay    time.Time `json:"birthDay"`
	PhoneNumber string    `json:"phoneNumber"`
	Version     int64     `json:"version"`
}

func NewHealthWorkerView(acc Account, p HealthWorkerProfile) HealthWorkerView {
	return HealthWorkerView{
		ID:          acc.ID,
		Email:       acc.Email,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Gender:      p.Gender,
		BirthDay:    p.BirthDay,
		PhoneNumber: p.PhoneNumber,
		Version:     p.Version,
	}
}

// AccountView dipakai endpoint /api/account/user & currentUser.
// Hanya salah satu dari Client / HealthWorker yang terisi, sesuai role.
type AccountView struct {
	ID           uint64            `json:"id"`
	Email        string            `json:"email"`
	Role         string            `json:"role"`
	Client       *ClientView       `json:"client,omitempty"`
	HealthWorker *HealthWorkerView `json:"healthWorker,omitempty"`
}

type AppointmentView struct {
	ID           uint64            `json:"id"`
	Time         time.Time         `json:"time"`
	Status       AppointmentStatus `json:"status"`
	Bench        Bench             `json:"bench"`
	Client       ClientView        `json:"client"`
	Healthworker HealthWorkerView  `json:"healthworker"`
	Version      int64             `json:"version"`
}

type AnswerView struct {
	QuestionID uint64 `json:"questionId"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
}

type QuestionnaireWithAnswersView struct {
	ID      uint64       `json:"id"`
	Client  ClientView   `json:"client"`
	Time    time.Time    `json:"time"`
	Answers []AnswerView `json:"answers"`
	Redflag bool         `json:"redflag"`
	Version int64        `json:"version"`
}
