package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент для работы с IdentityService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента IdentityService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetWorker получает карточку работника по идентификатору
func (c *Client) GetWorker(ctx context.Context, workerID string) (*Worker, error) {
	reqURL := fmt.Sprintf("%s/internal/workers/%s", c.baseURL, url.PathEscape(workerID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid worker ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrWorkerNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var worker Worker
	if err := json.NewDecoder(resp.Body).Decode(&worker); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &worker, nil
}

// GetWorkerWithGracefulDegradation получает карточку работника с graceful degradation
// При недоступности IdentityService возвращает ErrServiceDegraded, что позволяет
// создать бронирование без денормализованных имени и профессии работника
func (c *Client) GetWorkerWithGracefulDegradation(ctx context.Context, workerID string) (*Worker, error) {
	worker, err := c.GetWorker(ctx, workerID)
	if err != nil {
		// Критичная бизнес-ошибка (работник не зарегистрирован) пробрасывается дальше
		if err == ErrWorkerNotFound {
			c.log.Info("Worker %s not found in identity service", workerID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		c.log.Error("IdentityService unavailable, applying graceful degradation for worker_id=%s: %v", workerID, err)
		return nil, fmt.Errorf("%w: worker_id=%s, error=%v", ErrServiceDegraded, workerID, err)
	}

	return worker, nil
}
