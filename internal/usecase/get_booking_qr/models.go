package get_booking_qr

// Request модель запроса QR-кода бронирования
type Request struct {
	BookingID int64
	UserID    *int64 // X-User-ID вызывающего
	IsAdmin   bool
}

// Response PNG с QR-кодом
type Response struct {
	Filename string
	PNG      []byte
}

// payload содержимое QR-кода
type payload struct {
	Type      string `json:"type"`
	BookingID int64  `json:"bookingId"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Venue     string `json:"venue"`
	ShareURL  string `json:"shareUrl,omitempty"`
}
