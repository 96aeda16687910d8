package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/arena-booking/internal/domain"
	"github.com/m04kA/arena-booking/internal/gamification"
	"github.com/m04kA/arena-booking/internal/infra/cache/leaderboard"
	userRepo "github.com/m04kA/arena-booking/internal/infra/storage/user"
	"github.com/m04kA/arena-booking/internal/service/users/models"
	"github.com/m04kA/arena-booking/internal/validator"
)

const (
	// DefaultLeaderboardLimit размер рейтинга по умолчанию
	DefaultLeaderboardLimit = 10
	// MaxLeaderboardLimit максимальный размер рейтинга
	MaxLeaderboardLimit = 100

	referralPrefix = "ARENA-"
)

// Service сервис клиентов программы лояльности
type Service struct {
	userRepo UserRepository
	cache    LeaderboardCache
	logger   Logger
}

// NewService создает новый экземпляр сервиса. cache может быть nil
func NewService(userRepo UserRepository, cache LeaderboardCache, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		cache:    cache,
		logger:   logger,
	}
}

// Create регистрирует клиента и выдаёт ему реферальный код
func (s *Service) Create(ctx context.Context, req *models.CreateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Create: registering user name=%q", req.Name)

	if err := validator.ValidateContact(req.Name, req.Phone); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	u := &domain.User{
		Name:         strings.TrimSpace(req.Name),
		Phone:        strings.TrimSpace(req.Phone),
		Level:        gamification.LevelFor(0),
		Badges:       []string{},
		Achievements: []string{},
		ReferralCode: newReferralCode(),
		Status:       domain.CustomerActive,
	}

	created, err := s.userRepo.Create(ctx, u)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserExists) {
			s.logger.Warn("Create: phone already registered")
			return nil, ErrUserAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.warm(ctx, created)

	s.logger.Info("Create: successfully registered user id=%d", created.ID)
	return models.FromDomainUser(created), nil
}

// GetByID профиль клиента с уровнем и достижениями
func (s *Service) GetByID(ctx context.Context, id int64) (*models.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetByID: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(u), nil
}

// Leaderboard рейтинг по категории. Сначала читает Redis; если кэш недоступен,
// пуст или расходится с базой по числу клиентов, считает по базе и пересобирает кэш
func (s *Service) Leaderboard(ctx context.Context, req *models.LeaderboardRequest) (*models.LeaderboardResponse, error) {
	category := domain.LeaderboardCategory(strings.ToLower(strings.TrimSpace(req.Category)))
	if category == "" {
		category = domain.CategoryPoints
	}
	if !category.IsValid() {
		s.logger.Warn("Leaderboard: invalid category=%s", req.Category)
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, req.Category)
	}

	limit := req.Limit
	switch {
	case limit <= 0:
		limit = DefaultLeaderboardLimit
	case limit > MaxLeaderboardLimit:
		limit = MaxLeaderboardLimit
	}

	if s.cache != nil {
		entries, err := s.fromCache(ctx, category, limit)
		if err == nil {
			return models.FromDomainLeaderboard(category, entries), nil
		}
		s.logger.Warn("Leaderboard: cache miss for %s: %v", category, err)
	}

	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("Leaderboard: repository error: %v", err)
		return nil, fmt.Errorf("%w: Leaderboard - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Rebuild(ctx, users...); err != nil {
			s.logger.Warn("Leaderboard: failed to rebuild leaderboard cache: %v", err)
		}
	}

	return models.FromDomainLeaderboard(category, gamification.Rank(users, category, limit)), nil
}

// fromCache id из Redis, данные пользователей из базы, порядок пересчитывается
// тем же правилом, что и без кэша
func (s *Service) fromCache(ctx context.Context, category domain.LeaderboardCategory, limit int) ([]domain.LeaderboardEntry, error) {
	// Клиенты, зарегистрированные при недоступном Redis, в кэш не попали
	size, err := s.cache.Size(ctx, category)
	if err != nil {
		return nil, err
	}
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if size != int64(count) {
		return nil, fmt.Errorf("%w: cached=%d users=%d", leaderboard.ErrCacheStale, size, count)
	}

	top, err := s.cache.Top(ctx, category, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(top))
	for _, t := range top {
		ids = append(ids, t.UserID)
	}

	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	return gamification.Rank(users, category, limit), nil
}

// ListCustomers список клиентов для админки со сводкой по всей базе
func (s *Service) ListCustomers(ctx context.Context, req *models.ListCustomersRequest) (*models.CustomerListResponse, error) {
	filter := domain.CustomerFilter{
		Search: strings.TrimSpace(req.Search),
		SortBy: domain.SortByName,
	}

	if status := strings.ToLower(strings.TrimSpace(req.Status)); status != "" && status != "all" {
		st := domain.CustomerStatus(status)
		if !st.IsValid() {
			s.logger.Warn("ListCustomers: invalid status=%s", req.Status)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
		}
		filter.Status = &st
	}

	if sortBy := strings.TrimSpace(req.SortBy); sortBy != "" {
		filter.SortBy = domain.CustomerSort(sortBy)
		if !filter.SortBy.IsValid() {
			s.logger.Warn("ListCustomers: invalid sort=%s", req.SortBy)
			return nil, fmt.Errorf("%w: unknown sort %q", ErrInvalidInput, req.SortBy)
		}
	}

	customers, err := s.userRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListCustomers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListCustomers - repository error: %v", ErrInternal, err)
	}

	stats, err := s.userRepo.Stats(ctx)
	if err != nil {
		s.logger.Error("ListCustomers: stats error: %v", err)
		return nil, fmt.Errorf("%w: ListCustomers - stats error: %v", ErrInternal, err)
	}

	return models.FromDomainCustomers(customers, stats), nil
}

// UpdateCustomer меняет имя, телефон или статус клиента
func (s *Service) UpdateCustomer(ctx context.Context, id int64, req *models.UpdateCustomerRequest) (*models.UserResponse, error) {
	s.logger.Info("UpdateCustomer: updating user id=%d", id)

	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("UpdateCustomer: user id=%d not found", id)
			return nil, ErrUserNotFound
		}
		s.logger.Error("UpdateCustomer: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateCustomer - repository error: %v", ErrInternal, err)
	}

	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		u.Phone = strings.TrimSpace(*req.Phone)
	}
	if err := validator.ValidateContact(u.Name, u.Phone); err != nil {
		s.logger.Warn("UpdateCustomer: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if req.Status != nil {
		status := domain.CustomerStatus(strings.ToLower(strings.TrimSpace(*req.Status)))
		if !status.IsValid() {
			s.logger.Warn("UpdateCustomer: invalid status=%s", *req.Status)
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		u.Status = status
	}

	updated, err := s.userRepo.UpdateContact(ctx, u)
	if err != nil {
		switch {
		case errors.Is(err, userRepo.ErrUserNotFound):
			return nil, ErrUserNotFound
		case errors.Is(err, userRepo.ErrUserExists):
			s.logger.Warn("UpdateCustomer: phone already registered")
			return nil, ErrUserAlreadyExists
		}
		s.logger.Error("UpdateCustomer: repository error for user id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateCustomer - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCustomer: successfully updated user id=%d", id)
	return models.FromDomainUser(updated), nil
}

// DeleteCustomer удаляет клиента и убирает его из рейтингов
func (s *Service) DeleteCustomer(ctx context.Context, id int64) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("DeleteCustomer: user id=%d not found", id)
			return ErrUserNotFound
		}
		s.logger.Error("DeleteCustomer: repository error for user id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteCustomer - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Remove(ctx, id); err != nil {
			s.logger.Warn("DeleteCustomer: failed to update leaderboard cache: %v", err)
		}
	}

	s.logger.Info("DeleteCustomer: successfully deleted user id=%d", id)
	return nil
}

func (s *Service) warm(ctx context.Context, users ...*domain.User) {
	if s.cache == nil || len(users) == 0 {
		return
	}
	if err := s.cache.Upsert(ctx, users...); err != nil {
		s.logger.Warn("warm: failed to update leaderboard cache: %v", err)
	}
}

func newReferralCode() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return referralPrefix + strings.ToUpper(id[:8])
}
