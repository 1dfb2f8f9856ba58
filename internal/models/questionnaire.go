package models

import "time"

type Questionnaire struct {
	ID       uint64    `gorm:"primaryKey" json:"id"`
	Time     time.Time `gorm:"not null" json:"time"`
	ClientID uint64    `gorm:"column:client_id;index;not null" json:"client_id"`
	Redflag  bool      `gorm:"not null;default:false" json:"redflag"`
	Version  int64     `gorm:"not null;default:1" json:"version"`
}

func (Questionnaire) KeyColumn() string { return "id" }

func (q *Questionnaire) UpdateColumns() map[string]interface{} {
	return map[string]interface{}{
		"time":      q.Time,
		"client_id": q.ClientID,
		"redflag":   q.Redflag,
	}
}

type Question struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Question string `gorm:"type:text;not null" json:"question"`
	Version  int64  `gorm:"not null;default:1" json:"version"`
}

func (Question) KeyColumn() string { return "id" }

func (q *Question) UpdateColumns() map[string]interface{} {
	return map[string]interface{}{"question": q.Question}
}

type Answer struct {
	ID              uint64 `gorm:"primaryKey" json:"id"`
	QuestionnaireID uint64 `gorm:"column:questionnaire_id;index;not null" json:"questionnaire_id"`
	QuestionID      uint64 `gorm:"column:question_id;not null" json:"question_id"`
	Answer          string `gorm:"type:text" json:"answer"`
}

type CreateQuestionnaireInput struct {
	Time     time.Time `json:"time" binding:"required"`
	ClientID uint64    `json:"client_id" binding:"required"`
	Redflag  bool      `json:"redflag"`
}

type UpdateQuestionnaireInput struct {
	ID       uint64    `json:"id" binding:"required"`
	Time     time.Time `json:"time" binding:"required"`
	ClientID uint64    `json:"client_id" binding:"required"`
	Redflag  bool      `json:"redflag"`
	Version  int64     `json:"version"`
}

type QuestionInput struct {
	ID       uint64 `json:"id"`
	Question string `json:"question" binding:"required,max=1000"`
	Version  int64  `json:"version"`
}

// AnswerInput satu item dari bulk POST /api/Answers.
type AnswerInput struct {
	QuestionnaireID uint64 `json:"questionnaire_id" binding:"required"`
	QuestionID      uint64 `json:"question_id" binding:"required"`
	Answer          string `json:"answer" binding:"required,max=2000"`
}
