package scan_conflicts

import (
	"github.com/m04kA/arena-booking/internal/service/conflicts/models"
	scanConflicts "github.com/m04kA/arena-booking/internal/usecase/scan_conflicts"
)

// ScanResponse HTTP response model
type ScanResponse struct {
	Conflicts    []models.ConflictResponse `json:"conflicts"`
	New          int                       `json:"new"`
	AutoResolved int                       `json:"autoResolved"`
	ByType       map[string]int            `json:"byType"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *scanConflicts.Response) *ScanResponse {
	out := &ScanResponse{
		Conflicts:    make([]models.ConflictResponse, 0, len(resp.Conflicts)),
		New:          resp.New,
		AutoResolved: resp.AutoResolved,
		ByType:       make(map[string]int, len(resp.ByType)),
	}
	for i := range resp.Conflicts {
		out.Conflicts = append(out.Conflicts, *models.FromDomainConflict(&resp.Conflicts[i]))
	}
	for t, n := range resp.ByType {
		out.ByType[string(t)] = n
	}
	return out
}
