package models

import (
	"time"

	"gorm.io/gorm"
)

// Input types a question can render as.
const (
	QuestionTypeText     = "text"
	QuestionTypeEmail    = "email"
	QuestionTypePassword = "password"
	QuestionTypeNumber   = "number"
	QuestionTypeDate     = "date"
)

var QuestionTypes = []string{
	QuestionTypeText,
	QuestionTypeEmail,
	QuestionTypePassword,
	QuestionTypeNumber,
	QuestionTypeDate,
}

type Question struct {
	ID          uint           `json:"_id" gorm:"primaryKey"`
	QuestionID  string         `json:"questionId" gorm:"index"`
	FormID      string         `json:"formId" gorm:"index;not null"`
	Title       string         `json:"title" gorm:"not null"`
	Placeholder string         `json:"placeholder"`
	Type        string         `json:"type" gorm:"not null;default:'text'"`
	Required    bool           `json:"required" gorm:"not null;default:false"`
	Order       int            `json:"order" gorm:"not null"`
	Answer      string         `json:"answer"`
	IsTaken     bool           `json:"isTaken" gorm:"not null;default:false"`
	TakenAt     *time.Time     `json:"takenAt"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
