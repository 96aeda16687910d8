package conflicts

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/arena-booking/internal/domain"
	conflictRepo "github.com/m04kA/arena-booking/internal/infra/storage/conflict"
	"github.com/m04kA/arena-booking/internal/service/conflicts/models"
)

// Service сервис чтения конфликтов
type Service struct {
	conflictRepo ConflictRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса конфликтов
func NewService(conflictRepo ConflictRepository, logger Logger) *Service {
	return &Service{
		conflictRepo: conflictRepo,
		logger:       logger,
	}
}

// List возвращает конфликты, опционально по статусу
func (s *Service) List(ctx context.Context, status *string) (*models.ConflictListResponse, error) {
	var filter *domain.ConflictStatus
	if status != nil {
		st := domain.ConflictStatus(*status)
		if !st.IsValid() {
			s.logger.Warn("List: invalid status=%s", *status)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *status)
		}
		filter = &st
	}

	conflicts, err := s.conflictRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d conflicts", len(conflicts))
	return models.FromDomainConflictList(conflicts), nil
}

// GetByID получает конфликт. Некорректный UUID считается отсутствующим конфликтом
func (s *Service) GetByID(ctx context.Context, id string) (*models.ConflictResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("GetByID: malformed conflict id=%q", id)
		return nil, ErrConflictNotFound
	}

	c, err := s.conflictRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, conflictRepo.ErrConflictNotFound) {
			s.logger.Warn("GetByID: conflict id=%s not found", id)
			return nil, ErrConflictNotFound
		}
		s.logger.Error("GetByID: repository error for conflict id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConflict(c), nil
}
