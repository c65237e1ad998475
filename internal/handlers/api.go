package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"control-system/internal/formula"
	"control-system/internal/models"
	"control-system/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HistoryReader чтение журнала отправок
type HistoryReader interface {
	Recent(ctx context.Context, limit int) ([]models.Submission, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Submission, error)
}

// APIHandler JSON API поверх обработчика отправки
type APIHandler struct {
	submissions *services.SubmissionService
	history     HistoryReader
	healthCheck func() error
}

func NewAPIHandler(submissions *services.SubmissionService, history HistoryReader, healthCheck func() error) *APIHandler {
	return &APIHandler{
		submissions: submissions,
		history:     history,
		healthCheck: healthCheck,
	}
}

// AnalysisResponse результат расчёта передаточной функции
// @Description Формула, метки устойчивости и графики в порядке вывода
type AnalysisResponse struct {
	Function  string               `json:"function" example:"(s+3)/(s^2+4s+5)"`                                // Исходная функция
	Latex     string               `json:"latex" example:"\\frac{\\left(s+3\\right)}{\\left(s^{2}+4s+5\\right)}"` // LaTeX дроби
	Formula   string               `json:"formula"`                                                             // W(s) = ...
	Zeros     string               `json:"zeros" example:"-3"`                                                  // Нули
	Poles     string               `json:"poles" example:"-2+1j, -2-1j"`                                        // Полюса
	Stability services.Stability   `json:"stability"`                                                           // Метка устойчивости
	Plots     []services.PlotBlock `json:"plots"`                                                               // Графики
}

// LatexResponse LaTeX представление функции
type LatexResponse struct {
	Latex   string `json:"latex"`
	Formula string `json:"formula"`
}

// SubmissionsResponse страница журнала
type SubmissionsResponse struct {
	Submissions []models.Submission `json:"submissions"`
	Count       int                 `json:"count" example:"20"`
}

// HealthResponse состояние сервиса
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`
	Service   string    `json:"service" example:"control-system"`
	Timestamp time.Time `json:"timestamp"`
	History   string    `json:"history" example:"disabled" enums:"ok,disabled,unavailable"`
}

// Compute выполняет полный цикл обработки функции
// @Summary Расчёт передаточной функции
// @Description Проверяет форму ввода, строит LaTeX, вызывает сервис расчёта и возвращает графики
// @Tags compute
// @Accept json
// @Produce json
// @Param request body models.ComputeRequest true "Передаточная функция"
// @Success 200 {object} AnalysisResponse "Результат расчёта"
// @Failure 400 {object} models.ErrorResponse "Неверный формат функции"
// @Failure 502 {object} models.ErrorResponse "Сервис расчёта недоступен"
// @Router /compute [post]
func (h *APIHandler) Compute(c *gin.Context) {
	var req models.ComputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Details: err.Error(),
		})
		return
	}

	display := NewPageDisplay(req.Function)
	report, err := h.submissions.Submit(c.Request.Context(), req.Function, display)
	if err != nil {
		c.JSON(submitStatus(err), models.ErrorResponse{Error: display.View().Error})
		return
	}

	view := display.View()
	c.JSON(http.StatusOK, AnalysisResponse{
		Function:  req.Function,
		Latex:     view.Latex,
		Formula:   view.Formula,
		Zeros:     report.Zeros,
		Poles:     report.Poles,
		Stability: report.Stability,
		Plots:     append([]services.PlotBlock{}, report.Plots...),
	})
}

// Latex переводит функцию в LaTeX без обращения к сервису расчёта
// @Summary Предпросмотр формулы
// @Tags compute
// @Accept json
// @Produce json
// @Param request body models.ComputeRequest true "Передаточная функция"
// @Success 200 {object} LatexResponse "LaTeX"
// @Failure 400 {object} models.ErrorResponse "Неверный формат функции"
// @Router /formula/latex [post]
func (h *APIHandler) Latex(c *gin.Context) {
	var req models.ComputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid request",
			Details: err.Error(),
		})
		return
	}

	if !formula.IsValidTransferFunction(req.Function) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: services.MsgInvalidFunction})
		return
	}

	latex := formula.ToLatex(req.Function)
	c.JSON(http.StatusOK, LatexResponse{
		Latex:   latex,
		Formula: formula.DisplayFormula(latex),
	})
}

// ListSubmissions последние отправки
// @Summary Журнал отправок
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Количество записей (1..200)"
// @Success 200 {object} SubmissionsResponse "Последние отправки"
// @Failure 400 {object} models.ErrorResponse "Неверный limit"
// @Failure 401 {object} models.ErrorResponse "Нет токена"
// @Failure 503 {object} models.ErrorResponse "Журнал отключён"
// @Router /submissions [get]
func (h *APIHandler) ListSubmissions(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: services.ErrHistoryDisabled.Error()})
		return
	}

	limit := services.DefaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid limit", Details: err.Error()})
			return
		}
		limit = n
	}

	submissions, err := h.history.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "history error", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, SubmissionsResponse{Submissions: submissions, Count: len(submissions)})
}

// GetSubmission одна отправка
// @Summary Отправка по ID
// @Tags history
// @Produce json
// @Security BearerAuth
// @Param id path string true "UUID отправки" format(uuid)
// @Success 200 {object} models.Submission "Отправка"
// @Failure 400 {object} models.ErrorResponse "Неверный ID"
// @Failure 404 {object} models.ErrorResponse "Не найдена"
// @Failure 503 {object} models.ErrorResponse "Журнал отключён"
// @Router /submissions/{id} [get]
func (h *APIHandler) GetSubmission(c *gin.Context) {
	if h.history == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: services.ErrHistoryDisabled.Error()})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid submission id"})
		return
	}

	submission, err := h.history.Get(c.Request.Context(), id)
	if errors.Is(err, services.ErrSubmissionNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "history error", Details: err.Error()})
		return
	}

	c.JSON(http.StatusOK, submission)
}

// Health проверяет состояние сервиса
// @Summary Проверка состояния сервиса
// @Tags monitoring
// @Produce json
// @Success 200 {object} HealthResponse "Сервис работает"
// @Router /monitoring/health [get]
func (h *APIHandler) Health(c *gin.Context) {
	history := "disabled"
	if h.healthCheck != nil {
		history = "ok"
		if err := h.healthCheck(); err != nil {
			history = "unavailable"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Service:   "control-system",
		Timestamp: time.Now().UTC(),
		History:   history,
	})
}
