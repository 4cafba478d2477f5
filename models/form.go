package models

import (
	"time"

	"gorm.io/gorm"
)

type Form struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	FormID      string         `json:"formId" gorm:"index;not null"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Always populated from the questions table at read time, never persisted.
	Questions []Question `json:"questions" gorm:"-"`
}
