// Package catalog describes the fixed daily set of bookable slots.
package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/arena-booking/pkg/types"
)

const (
	DefaultFirstSlot   types.TimeString = "06:00"
	DefaultLastSlot    types.TimeString = "23:00"
	DefaultStepMinutes                  = 60
)

// ErrInvalidBounds возвращается, если из границ нельзя построить непустой каталог
var ErrInvalidBounds = errors.New("catalog: invalid slot bounds")

// Catalog упорядоченный список меток слотов, одинаковый для любой даты
type Catalog struct {
	slots []types.TimeString
	index map[types.TimeString]struct{}
}

// Default каталог 06:00-23:00 с шагом в час (18 слотов)
func Default() *Catalog {
	c, err := New(DefaultFirstSlot, DefaultLastSlot, DefaultStepMinutes)
	if err != nil {
		panic(err)
	}
	return c
}

// New строит каталог от first до last включительно с шагом stepMinutes
func New(first, last types.TimeString, stepMinutes int) (*Catalog, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("%w: step must be positive, got %d", ErrInvalidBounds, stepMinutes)
	}
	if err := first.Validate(); err != nil {
		return nil, fmt.Errorf("%w: first slot: %v", ErrInvalidBounds, err)
	}
	if err := last.Validate(); err != nil {
		return nil, fmt.Errorf("%w: last slot: %v", ErrInvalidBounds, err)
	}
	if last.IsBefore(first) {
		return nil, fmt.Errorf("%w: last slot %s is before first slot %s", ErrInvalidBounds, last, first)
	}

	c := &Catalog{
		slots: make([]types.TimeString, 0),
		index: make(map[types.TimeString]struct{}),
	}

	current := first
	for !current.IsAfter(last) {
		c.slots = append(c.slots, current)
		c.index[current] = struct{}{}

		next, err := current.AddMinutes(stepMinutes)
		if err != nil {
			// шаг вывел за пределы суток
			break
		}
		current = next
	}

	return c, nil
}

// ListSlots возвращает метки слотов для даты. Результат одинаков для всех дат
func (c *Catalog) ListSlots(_ time.Time) []types.TimeString {
	out := make([]types.TimeString, len(c.slots))
	copy(out, c.slots)
	return out
}

// Contains проверяет, что t является слотом каталога
func (c *Catalog) Contains(t types.TimeString) bool {
	_, ok := c.index[t]
	return ok
}

// Len количество слотов в дне
func (c *Catalog) Len() int {
	return len(c.slots)
}

// Next возвращает первый слот каталога строго после t
func (c *Catalog) Next(t types.TimeString) (types.TimeString, bool) {
	for _, s := range c.slots {
		if s.IsAfter(t) {
			return s, true
		}
	}
	return "", false
}
