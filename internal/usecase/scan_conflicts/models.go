package scan_conflicts

import "github.com/m04kA/arena-booking/internal/domain"

// Response результат сканирования
type Response struct {
	Conflicts    []domain.Conflict // все конфликты текущего состояния
	New          int               // впервые сохранённые
	AutoResolved int               // pending-конфликты, которых больше нет
	ByType       map[domain.ConflictType]int
}
