package export_bookings

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/m04kA/arena-booking/internal/domain"
)

var csvHeader = []string{
	"ID", "Customer Name", "Phone", "Date", "Time", "Price", "Status", "Venue", "Created At",
}

// writeCSV таблица бронирований в CSV с заголовком
func writeCSV(bookings []*domain.Booking) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, b := range bookings {
		record := []string{
			strconv.FormatInt(b.ID, 10),
			safeCell(b.CustomerName),
			safeCell(b.Phone),
			b.Date.Format(domain.DateFormat),
			b.Time.String(),
			strconv.FormatFloat(b.Price, 'f', 2, 64),
			string(b.Status),
			safeCell(b.Venue),
			b.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// safeCell не даёт табличным редакторам исполнить ячейку как формулу
func safeCell(v string) string {
	if v == "" {
		return v
	}
	switch v[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + v
	}
	return v
}

var pdfColumns = []struct {
	title string
	width float64
}{
	{"ID", 14},
	{"Customer", 44},
	{"Phone", 30},
	{"Date", 24},
	{"Time", 16},
	{"Price", 20},
	{"Status", 22},
	{"Venue", 30},
}

// writePDF отчёт: заголовок, сводка и таблица бронирований
func writePDF(bookings []*domain.Booking, summary Summary, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 15, 10)
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	// Заголовок
	pdf.SetFont("Helvetica", "B", 20)
	pdf.Cell(0, 10, "Bookings Report")
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Export Date: "+generatedAt.Format(domain.DateFormat))
	pdf.Ln(10)

	// Сводка
	pdf.SetFont("Helvetica", "", 12)
	for _, line := range []string{
		fmt.Sprintf("Total Bookings: %d", summary.Total),
		fmt.Sprintf("Total Revenue: $%.2f", summary.Revenue),
		fmt.Sprintf("Confirmed Bookings: %d", summary.Confirmed),
		fmt.Sprintf("Pending Bookings: %d", summary.Pending),
		fmt.Sprintf("Cancelled Bookings: %d", summary.Cancelled),
	} {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}
	pdf.Ln(5)

	drawTableHeader(pdf)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for i, b := range bookings {
		// перенос шапки таблицы на новую страницу
		if pdf.GetY() > 270 {
			pdf.AddPage()
			drawTableHeader(pdf)
			pdf.SetFont("Helvetica", "", 8)
			pdf.SetTextColor(0, 0, 0)
		}

		fill := i%2 == 1
		pdf.SetFillColor(245, 245, 245)
		cells := []string{
			strconv.FormatInt(b.ID, 10),
			tr(b.CustomerName),
			b.Phone,
			b.Date.Format(domain.DateFormat),
			b.Time.String(),
			fmt.Sprintf("$%.2f", b.Price),
			string(b.Status),
			tr(b.Venue),
		}
		for j, col := range pdfColumns {
			pdf.CellFormat(col.width, 7, cells[j], "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(255, 0, 0)
	pdf.SetTextColor(255, 255, 255)
	for _, col := range pdfColumns {
		pdf.CellFormat(col.width, 8, col.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
}
