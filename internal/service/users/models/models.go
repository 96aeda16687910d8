package models

import (
	"time"

	"github.com/m04kA/arena-booking/internal/domain"
	"github.com/m04kA/arena-booking/internal/gamification"
)

// CreateUserRequest запрос на регистрацию клиента
type CreateUserRequest struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ListCustomersRequest фильтр списка клиентов
type ListCustomersRequest struct {
	Search string
	Status string // active, vip, inactive или all
	SortBy string // name, totalSpent, totalBookings, lastVisit
}

// UpdateCustomerRequest частичное обновление клиента
type UpdateCustomerRequest struct {
	Name   *string `json:"name,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Status *string `json:"status,omitempty"`
}

// LeaderboardRequest запрос рейтинга
type LeaderboardRequest struct {
	Category string
	Limit    int
}

// LevelResponse информация об уровне
type LevelResponse struct {
	Level        int    `json:"level"`
	Name         string `json:"name"`
	NextLevelAt  *int   `json:"nextLevelAt,omitempty"`
	PointsToNext int    `json:"pointsToNext"`
	Progress     int    `json:"progress"`
}

// AchievementResponse достижение в профиле
type AchievementResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	RewardPoints int    `json:"rewardPoints"`
	Unlocked     bool   `json:"unlocked"`
}

// UserResponse профиль клиента
type UserResponse struct {
	ID           int64                 `json:"id"`
	Name         string                `json:"name"`
	Phone        string                `json:"phone"`
	Points       int                   `json:"points"`
	Level        LevelResponse         `json:"level"`
	Badges       []string              `json:"badges"`
	Achievements []AchievementResponse `json:"achievements"`
	TotalVisits  int                   `json:"totalVisits"`
	TotalSpent   float64               `json:"totalSpent"`
	ReferralCode string                `json:"referralCode"`
	Status       string                `json:"status"`
	LastVisit    *time.Time            `json:"lastVisit,omitempty"`
	CreatedAt    time.Time             `json:"createdAt"`
}

// CustomerResponse строка списка клиентов
type CustomerResponse struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Phone         string     `json:"phone"`
	Status        string     `json:"status"`
	Points        int        `json:"points"`
	Level         int        `json:"level"`
	TotalBookings int        `json:"totalBookings"`
	TotalSpent    float64    `json:"totalSpent"`
	LastVisit     *time.Time `json:"lastVisit,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// CustomerStatsResponse сводка по клиентам
type CustomerStatsResponse struct {
	Total        int     `json:"total"`
	Active       int     `json:"active"`
	VIP          int     `json:"vip"`
	TotalRevenue float64 `json:"totalRevenue"`
	AverageSpent float64 `json:"averageSpent"`
}

// CustomerListResponse список клиентов со сводкой
type CustomerListResponse struct {
	Customers []CustomerResponse    `json:"customers"`
	Stats     CustomerStatsResponse `json:"stats"`
}

// LeaderboardEntryResponse строка рейтинга
type LeaderboardEntryResponse struct {
	Rank   int     `json:"rank"`
	UserID int64   `json:"userId"`
	Name   string  `json:"name"`
	Level  int     `json:"level"`
	Value  float64 `json:"value"`
}

// LeaderboardResponse рейтинг по категории
type LeaderboardResponse struct {
	Category string                     `json:"category"`
	Entries  []LeaderboardEntryResponse `json:"entries"`
}

// FromDomainUser конвертирует пользователя в профиль с уровнем и достижениями
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}

	info := gamification.DescribeLevel(u.Points)

	achievements := make([]AchievementResponse, 0)
	for _, a := range gamification.Achievements() {
		achievements = append(achievements, AchievementResponse{
			ID:           a.ID,
			Name:         a.Name,
			Description:  a.Description,
			RewardPoints: a.RewardPoints,
			Unlocked:     u.HasAchievement(a.ID),
		})
	}

	badges := u.Badges
	if badges == nil {
		badges = []string{}
	}

	return &UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Phone:  u.Phone,
		Points: u.Points,
		Level: LevelResponse{
			Level:        info.Level,
			Name:         info.Name,
			NextLevelAt:  info.NextLevelAt,
			PointsToNext: info.PointsToNext,
			Progress:     info.Progress,
		},
		Badges:       badges,
		Achievements: achievements,
		TotalVisits:  u.TotalVisits,
		TotalSpent:   u.TotalSpent,
		ReferralCode: u.ReferralCode,
		Status:       string(u.Status),
		LastVisit:    u.LastVisitAt,
		CreatedAt:    u.CreatedAt,
	}
}

// FromDomainCustomers конвертирует список клиентов и сводку
func FromDomainCustomers(users []*domain.User, stats *domain.CustomerStats) *CustomerListResponse {
	resp := &CustomerListResponse{Customers: make([]CustomerResponse, 0, len(users))}
	for _, u := range users {
		resp.Customers = append(resp.Customers, CustomerResponse{
			ID:            u.ID,
			Name:          u.Name,
			Phone:         u.Phone,
			Status:        string(u.Status),
			Points:        u.Points,
			Level:         u.Level,
			TotalBookings: u.TotalVisits,
			TotalSpent:    u.TotalSpent,
			LastVisit:     u.LastVisitAt,
			CreatedAt:     u.CreatedAt,
		})
	}
	if stats != nil {
		resp.Stats = CustomerStatsResponse{
			Total:        stats.Total,
			Active:       stats.Active,
			VIP:          stats.VIP,
			TotalRevenue: stats.TotalRevenue,
			AverageSpent: stats.AverageSpent,
		}
	}
	return resp
}

// FromDomainLeaderboard конвертирует рейтинг в DTO
func FromDomainLeaderboard(category domain.LeaderboardCategory, entries []domain.LeaderboardEntry) *LeaderboardResponse {
	resp := &LeaderboardResponse{
		Category: string(category),
		Entries:  make([]LeaderboardEntryResponse, 0, len(entries)),
	}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, LeaderboardEntryResponse{
			Rank:   e.Rank,
			UserID: e.UserID,
			Name:   e.Name,
			Level:  e.Level,
			Value:  e.Value,
		})
	}
	return resp
}
