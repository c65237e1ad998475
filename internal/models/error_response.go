package models

// ErrorResponse стандартная структура ошибки
type ErrorResponse struct {
	Error   string `json:"error" example:"invalid request"`                   // Сообщение об ошибке
	Details string `json:"details,omitempty" example:"function is required"` // Дополнительные детали
}
