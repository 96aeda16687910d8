package bookingfeed

// BookingEvent запись о бронировании для внешней ленты
type BookingEvent struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Phone     string  `json:"phone"`
	Status    string  `json:"status"`
	Price     float64 `json:"price"`
	Venue     string  `json:"venue"`
	Timestamp string  `json:"timestamp"`
}
