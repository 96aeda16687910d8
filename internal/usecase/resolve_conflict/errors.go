package resolve_conflict

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_conflict: invalid input data")

	// ErrConflictNotFound возвращается, когда конфликт не найден
	ErrConflictNotFound = errors.New("resolve_conflict: conflict not found")

	// ErrAlreadyResolved возвращается для конфликта не в статусе pending
	ErrAlreadyResolved = errors.New("resolve_conflict: conflict already resolved")

	// ErrBookingNotFound возвращается, когда бронирование из конфликта удалено
	ErrBookingNotFound = errors.New("resolve_conflict: booking not found")

	// ErrInvalidTarget возвращается для некорректного или прошедшего целевого слота
	ErrInvalidTarget = errors.New("resolve_conflict: invalid target slot")

	// ErrTargetSlotTaken возвращается, когда целевой слот занят
	ErrTargetSlotTaken = errors.New("resolve_conflict: target slot is taken")

	// ErrNoFreeSlot возвращается, когда в окне поиска нет свободного слота
	ErrNoFreeSlot = errors.New("resolve_conflict: no free slot found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_conflict: internal error")
)
