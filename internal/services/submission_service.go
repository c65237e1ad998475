package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"control-system/internal/formula"
	"control-system/internal/models"

	"github.com/google/uuid"
)

// ErrInvalidFunction ввод не имеет формы (числитель)/(знаменатель)
var ErrInvalidFunction = errors.New("неверный формат передаточной функции")

// Display области страницы, в которые пишет обработчик отправки
type Display interface {
	// Reset очищает ошибку, формулу и графики прошлой отправки
	Reset()
	SetLoading(loading bool)
	ShowError(message string)
	ShowFormula(latex string)
	ShowSummary(report *Report)
	AddPlot(block PlotBlock)
}

// Computer выполняет расчёт передаточной функции
type Computer interface {
	Compute(ctx context.Context, function string) (*models.ComputeResponse, error)
	APIURL() string
}

// SubmissionRecorder сохраняет результат отправки в журнал
type SubmissionRecorder interface {
	Record(ctx context.Context, submission *models.Submission) error
}

// ResultPublisher рассылает результат отправки подписчикам
type ResultPublisher interface {
	Publish(submission *models.Submission) error
}

// SubmissionService обрабатывает отправку формы: проверка, формула, расчёт, отрисовка
type SubmissionService struct {
	computer  Computer
	recorder  SubmissionRecorder
	publisher ResultPublisher
}

// NewSubmissionService создает обработчик отправки
func NewSubmissionService(computer Computer) *SubmissionService {
	return &SubmissionService{computer: computer}
}

// SetRecorder подключает журнал отправок
func (s *SubmissionService) SetRecorder(recorder SubmissionRecorder) {
	s.recorder = recorder
}

// SetPublisher подключает рассылку результатов
func (s *SubmissionService) SetPublisher(publisher ResultPublisher) {
	s.publisher = publisher
}

// Submit выполняет один цикл обработки. Индикатор загрузки снимается на любом выходе.
func (s *SubmissionService) Submit(ctx context.Context, input string, display Display) (*Report, error) {
	started := time.Now()

	display.Reset()
	display.SetLoading(true)
	defer display.SetLoading(false)

	if !formula.IsValidTransferFunction(input) {
		display.ShowError(MsgInvalidFunction)
		s.finish(ctx, &models.Submission{Function: input, Status: models.StatusInvalid}, started)
		return nil, ErrInvalidFunction
	}

	latex := formula.ToLatex(input)
	display.ShowFormula(latex)
	submission := &models.Submission{Function: input, Latex: latex}

	resp, err := s.computer.Compute(ctx, input)
	if err != nil {
		slog.Error("Compute request failed", "function", input, "error", err)
		display.ShowError(MsgRequestFailed)
		submission.Status = models.StatusFailed
		submission.Error = err.Error()
		s.finish(ctx, submission, started)
		return nil, err
	}

	report := BuildReport(resp, s.computer.APIURL())
	display.ShowSummary(&report)
	for _, block := range report.Plots {
		display.AddPlot(block)
	}

	stable := report.Stability.Stable
	submission.Status = models.StatusOK
	submission.IsStable = &stable
	submission.Plots = report.PlotKeys()
	s.finish(ctx, submission, started)

	slog.Info("Submission handled",
		"function", input,
		"stable", stable,
		"plots", len(report.Plots),
	)
	return &report, nil
}

// finish журналирует и публикует итог. Ошибки здесь не влияют на ответ пользователю.
func (s *SubmissionService) finish(ctx context.Context, submission *models.Submission, started time.Time) {
	if submission.ID == uuid.Nil {
		submission.ID = uuid.New()
	}
	submission.CreatedAt = started.UTC()
	submission.Duration = time.Since(started).Milliseconds()

	if s.recorder != nil {
		if err := s.recorder.Record(context.WithoutCancel(ctx), submission); err != nil {
			slog.Warn("Failed to record submission", "error", err)
		}
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(submission); err != nil {
			slog.Warn("Failed to publish submission", "error", err)
		}
	}
}
