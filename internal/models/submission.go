package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Статусы обработки отправки
const (
	StatusOK      = "ok"
	StatusInvalid = "invalid"
	StatusFailed  = "failed"
)

// Submission одна обработанная отправка формы (журнал)
type Submission struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Function  string    `json:"function" gorm:"type:text;not null"`
	Latex     string    `json:"latex,omitempty" gorm:"type:text"`
	Status    string    `json:"status" gorm:"type:varchar(16);not null;index"`
	IsStable  *bool     `json:"is_stable,omitempty"`
	Plots     []string  `json:"plots" gorm:"serializer:json;type:jsonb"` // отрисованные графики по порядку
	Error     string    `json:"error,omitempty" gorm:"type:text"`
	Duration  int64     `json:"duration_ms"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;index"`
}

// BeforeCreate устанавливает ID перед созданием
func (s *Submission) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
