package scan_conflicts

import "errors"

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("scan_conflicts: internal error")
