package gamification

import (
	"sort"

	"github.com/m04kA/arena-booking/internal/domain"
)

// Score значение пользователя в категории рейтинга
func Score(u *domain.User, category domain.LeaderboardCategory) float64 {
	switch category {
	case domain.CategoryVisits:
		return float64(u.TotalVisits)
	case domain.CategorySpending:
		return u.TotalSpent
	default:
		return float64(u.Points)
	}
}

// Rank сортирует пользователей по категории по убыванию, при равенстве по id.
// limit <= 0 означает без ограничения
func Rank(users []*domain.User, category domain.LeaderboardCategory, limit int) []domain.LeaderboardEntry {
	sorted := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if u != nil {
			sorted = append(sorted, u)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := Score(sorted[i], category), Score(sorted[j], category)
		if si != sj {
			return si > sj
		}
		return sorted[i].ID < sorted[j].ID
	})

	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	entries := make([]domain.LeaderboardEntry, 0, len(sorted))
	for i, u := range sorted {
		entries = append(entries, domain.LeaderboardEntry{
			Rank:   i + 1,
			UserID: u.ID,
			Name:   u.Name,
			Level:  LevelFor(u.Points),
			Value:  Score(u, category),
		})
	}
	return entries
}
