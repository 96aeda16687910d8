// Package availability answers whether a slot on a date is free.
package availability

import (
	"time"

	"github.com/m04kA/arena-booking/internal/domain"
	"github.com/m04kA/arena-booking/pkg/types"
)

// SlotLister источник меток слотов (catalog.Catalog)
type SlotLister interface {
	ListSlots(date time.Time) []types.TimeString
}

// Index множество занятых ключей слотов. Для каждого ключа хранится число
// активных бронирований, чтобы удаление одной из двух конфликтующих броней
// не освобождало слот.
type Index struct {
	occupied map[domain.SlotKey]int
}

// Build строит индекс по активным бронированиям, отменённые пропускаются
func Build(bookings []*domain.Booking) *Index {
	idx := &Index{occupied: make(map[domain.SlotKey]int, len(bookings))}
	for _, b := range bookings {
		idx.Add(b)
	}
	return idx
}

// IsAvailable true, если ни одно активное бронирование не занимает слот
func (idx *Index) IsAvailable(date time.Time, t types.TimeString) bool {
	return idx.occupied[domain.NewSlotKey(date, t)] == 0
}

// Add учитывает бронирование. Отменённые и nil игнорируются
func (idx *Index) Add(b *domain.Booking) {
	if b == nil || !b.IsActive() {
		return
	}
	idx.occupied[b.Key()]++
}

// Remove снимает бронирование с учёта. Как и Add, игнорирует отменённые и nil:
// передавайте бронирование в статусе до отмены
func (idx *Index) Remove(b *domain.Booking) {
	if b == nil || !b.IsActive() {
		return
	}
	key := b.Key()
	if n := idx.occupied[key]; n > 1 {
		idx.occupied[key] = n - 1
		return
	}
	delete(idx.occupied, key)
}

// Len количество занятых ключей
func (idx *Index) Len() int {
	return len(idx.occupied)
}

// Slots возвращает слоты каталога на дату с признаком доступности
func (idx *Index) Slots(catalog SlotLister, date time.Time) []domain.Slot {
	labels := catalog.ListSlots(date)
	slots := make([]domain.Slot, 0, len(labels))
	for _, t := range labels {
		slots = append(slots, domain.Slot{
			Date:      date,
			Time:      t,
			Available: idx.IsAvailable(date, t),
		})
	}
	return slots
}

// DaySummary считает свободные слоты каталога на дату
func (idx *Index) DaySummary(catalog SlotLister, date time.Time) domain.DaySummary {
	labels := catalog.ListSlots(date)
	summary := domain.DaySummary{Total: len(labels)}
	for _, t := range labels {
		if idx.IsAvailable(date, t) {
			summary.Available++
		}
	}
	if summary.Total > 0 {
		summary.Percentage = summary.Available * 100 / summary.Total
	}
	return summary
}
