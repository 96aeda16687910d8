package export_bookings

// Format формат выгрузки
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// Range период выгрузки относительно текущей даты
type Range string

const (
	RangeAll   Range = "all"
	RangeToday Range = "today"
	RangeWeek  Range = "week"
	RangeMonth Range = "month"
	RangeYear  Range = "year"
)

// StatusAll выгрузка без фильтра по статусу
const StatusAll = "all"

// Request модель запроса на выгрузку
type Request struct {
	Format Format
	Range  Range
	Status string // all, pending, confirmed, cancelled
}

// Response готовый файл и сводка
type Response struct {
	Filename    string
	ContentType string
	Content     []byte
	Summary     Summary
}

// Summary сводка по выгруженным бронированиям
type Summary struct {
	Total     int
	Confirmed int
	Pending   int
	Cancelled int
	Revenue   float64 // сумма цен без отменённых
}
