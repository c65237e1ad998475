package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"control-system/internal/models"
)

// ErrRequestFailed любая ошибка обращения к сервису расчёта
var ErrRequestFailed = errors.New("запрос к сервису расчёта не выполнен")

// RequestError сервис расчёта ответил не-2xx статусом
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("ошибка сервера %d: %s", e.StatusCode, e.Body)
}

func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

// ComputeClient отвечает за взаимодействие с внешним сервисом расчёта
type ComputeClient struct {
	apiURL     string
	httpClient *http.Client
}

// NewComputeClient создает клиент. apiURL - полный адрес эндпоинта /api/compute,
// timeout 0 означает отсутствие таймаута.
func NewComputeClient(apiURL string, timeout time.Duration) *ComputeClient {
	return &ComputeClient{
		apiURL: apiURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIURL адрес эндпоинта, относительно него разрешаются ссылки на картинки
func (c *ComputeClient) APIURL() string {
	return c.apiURL
}

// Compute отправляет одну передаточную функцию на расчёт. Повторов нет.
func (c *ComputeClient) Compute(ctx context.Context, function string) (*models.ComputeResponse, error) {
	requestBody, err := json.Marshal(models.ComputeRequest{Function: function})
	if err != nil {
		return nil, fmt.Errorf("%w: ошибка сериализации запроса: %v", ErrRequestFailed, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("%w: ошибка создания запроса: %v", ErrRequestFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: ошибка выполнения запроса: %v", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: ошибка чтения ответа: %v", ErrRequestFailed, err)
	}

	var computeResponse models.ComputeResponse
	if err := json.Unmarshal(responseBody, &computeResponse); err != nil {
		return nil, fmt.Errorf("%w: ошибка десериализации ответа: %v", ErrRequestFailed, err)
	}

	slog.Debug("Compute response received", "function", function, "bytes", len(responseBody))
	return &computeResponse, nil
}
