package services

import (
	"context"
	"errors"
	"fmt"

	"control-system/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrHistoryDisabled журнал не настроен (DB_ENABLED=false)
	ErrHistoryDisabled    = errors.New("журнал отправок отключён")
	ErrSubmissionNotFound = errors.New("отправка не найдена")
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 200
)

// HistoryService отвечает за журнал отправок в БД
type HistoryService struct {
	db *gorm.DB
}

// NewHistoryService создает сервис журнала
func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Record сохраняет отправку
func (hs *HistoryService) Record(ctx context.Context, submission *models.Submission) error {
	if err := hs.db.WithContext(ctx).Create(submission).Error; err != nil {
		return fmt.Errorf("ошибка сохранения отправки: %w", err)
	}
	return nil
}

// Recent последние отправки, новые первыми
func (hs *HistoryService) Recent(ctx context.Context, limit int) ([]models.Submission, error) {
	var submissions []models.Submission
	err := hs.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(ClampHistoryLimit(limit)).
		Find(&submissions).Error
	if err != nil {
		return nil, fmt.Errorf("ошибка получения журнала: %w", err)
	}
	return submissions, nil
}

// Get одна отправка по ID
func (hs *HistoryService) Get(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	var submission models.Submission
	err := hs.db.WithContext(ctx).First(&submission, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSubmissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка получения отправки: %w", err)
	}
	return &submission, nil
}

// ClampHistoryLimit приводит limit к диапазону 1..MaxHistoryLimit
func ClampHistoryLimit(limit int) int {
	if limit <= 0 {
		return DefaultHistoryLimit
	}
	return min(limit, MaxHistoryLimit)
}
