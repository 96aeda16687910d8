package bookingfeed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/arena-booking/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client публикует созданные бронирования во внешнюю ленту (POST JSON)
type Client struct {
	url        string
	httpClient *http.Client
	log        Logger
}

// NewClient создает клиента ленты бронирований
func NewClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Publish отправляет бронирование в ленту
func (c *Client) Publish(ctx context.Context, booking *domain.Booking) error {
	event := BookingEvent{
		ID:        booking.ID,
		Name:      booking.CustomerName,
		Date:      booking.Date.Format(domain.DateFormat),
		Time:      booking.Time.String(),
		Phone:     booking.Phone,
		Status:    string(booking.Status),
		Price:     booking.Price,
		Venue:     booking.Venue,
		Timestamp: booking.CreatedAt.UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to encode event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	return nil
}

// PublishWithGracefulDegradation публикует бронирование, но при недоступности ленты
// только логирует ошибку: бронирование уже сохранено и не откатывается
func (c *Client) PublishWithGracefulDegradation(ctx context.Context, booking *domain.Booking) error {
	if err := c.Publish(ctx, booking); err != nil {
		c.log.Error("BookingFeed: failed to publish booking id=%d, applying graceful degradation: %v", booking.ID, err)
		return fmt.Errorf("%w: booking_id=%d, error=%v", ErrServiceDegraded, booking.ID, err)
	}

	c.log.Info("BookingFeed: published booking id=%d", booking.ID)
	return nil
}

// IsDegraded сообщает, что ошибка означает пропущенную публикацию
func IsDegraded(err error) bool {
	return errors.Is(err, ErrServiceDegraded)
}
