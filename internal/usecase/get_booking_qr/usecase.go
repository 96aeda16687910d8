package get_booking_qr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"

	"github.com/m04kA/arena-booking/internal/domain"
	bookingRepo "github.com/m04kA/arena-booking/internal/infra/storage/booking"
)

// ImageSize сторона PNG в пикселях
const ImageSize = 256

type UseCase struct {
	bookingRepo BookingRepository
	publicURL   string
	logger      Logger
}

// NewUseCase создает новый экземпляр use case. Пустой publicURL убирает ссылку из QR-кода
func NewUseCase(bookingRepo BookingRepository, publicURL string, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		publicURL:   strings.TrimRight(publicURL, "/"),
		logger:      logger,
	}
}

// Execute строит QR-код для передачи бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	// 1. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("GetBookingQR: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("GetBookingQR: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 2. Чужую бронь видит только администратор
	if booking.UserID != nil && !req.IsAdmin && (req.UserID == nil || *req.UserID != *booking.UserID) {
		uc.logger.Warn("GetBookingQR: access denied to booking id=%d", req.BookingID)
		return nil, ErrAccessDenied
	}

	// 3. Кодируем
	data, err := json.Marshal(uc.payloadFor(booking))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	png, err := qrcode.Encode(string(data), qrcode.Medium, ImageSize)
	if err != nil {
		uc.logger.Error("GetBookingQR: failed to render QR for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to render QR code: %v", ErrInternal, err)
	}

	return &Response{
		Filename: fmt.Sprintf("booking_%d.png", booking.ID),
		PNG:      png,
	}, nil
}

func (uc *UseCase) payloadFor(b *domain.Booking) payload {
	p := payload{
		Type:      "booking",
		BookingID: b.ID,
		Date:      b.Date.Format(domain.DateFormat),
		Time:      b.Time.String(),
		Venue:     b.Venue,
	}
	if uc.publicURL != "" {
		p.ShareURL = fmt.Sprintf("%s/booking/%d", uc.publicURL, b.ID)
	}
	return p
}
