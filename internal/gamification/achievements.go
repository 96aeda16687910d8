package gamification

import "github.com/m04kA/arena-booking/internal/domain"

// Achievement ids
const (
	AchievementFirstVisit      = "first_visit"
	AchievementLoyalCustomer   = "loyal_customer"
	AchievementBigSpender      = "big_spender"
	AchievementSocialButterfly = "social_butterfly"
	AchievementEarlyBird       = "early_bird"
	AchievementNightOwl        = "night_owl"
	AchievementChampion        = "champion"
)

// Badges counted by achievements
const (
	BadgeReferral       = "referral"
	BadgeMorningBooking = "morning_booking"
	BadgeEveningBooking = "evening_booking"
)

// Achievement a milestone with its reward
type Achievement struct {
	ID           string
	Name         string
	Description  string
	RewardPoints int
	unlocked     func(u *domain.User) bool
}

// Satisfied reports whether the predicate holds for u
func (a Achievement) Satisfied(u *domain.User) bool {
	return a.unlocked(u)
}

var catalogue = []Achievement{
	{
		ID: AchievementFirstVisit, Name: "First Steps", Description: "Complete your first visit", RewardPoints: 50,
		unlocked: func(u *domain.User) bool { return u.TotalVisits >= 1 },
	},
	{
		ID: AchievementLoyalCustomer, Name: "Loyal Customer", Description: "Visit 10 times", RewardPoints: 200,
		unlocked: func(u *domain.User) bool { return u.TotalVisits >= 10 },
	},
	{
		ID: AchievementBigSpender, Name: "Big Spender", Description: "Spend 500 total", RewardPoints: 300,
		unlocked: func(u *domain.User) bool { return u.TotalSpent >= 500 },
	},
	{
		ID: AchievementSocialButterfly, Name: "Social Butterfly", Description: "Refer 5 friends", RewardPoints: 400,
		unlocked: func(u *domain.User) bool { return u.BadgeCount(BadgeReferral) >= 5 },
	},
	{
		ID: AchievementEarlyBird, Name: "Early Bird", Description: "Book 5 morning sessions", RewardPoints: 150,
		unlocked: func(u *domain.User) bool { return u.BadgeCount(BadgeMorningBooking) >= 5 },
	},
	{
		ID: AchievementNightOwl, Name: "Night Owl", Description: "Book 5 evening sessions", RewardPoints: 150,
		unlocked: func(u *domain.User) bool { return u.BadgeCount(BadgeEveningBooking) >= 5 },
	},
	{
		ID: AchievementChampion, Name: "Champion", Description: "Reach level 10", RewardPoints: 1000,
		unlocked: func(u *domain.User) bool { return LevelFor(u.Points) >= 10 },
	},
}

// Achievements возвращает каталог достижений в фиксированном порядке
func Achievements() []Achievement {
	out := make([]Achievement, len(catalogue))
	copy(out, catalogue)
	return out
}

// AchievementByID ищет достижение в каталоге
func AchievementByID(id string) (Achievement, bool) {
	for _, a := range catalogue {
		if a.ID == id {
			return a, true
		}
	}
	return Achievement{}, false
}

// EvaluateAchievements возвращает id достижений, условия которых выполнены,
// но которые ещё не разблокированы. Порядок как в каталоге
func EvaluateAchievements(user *domain.User) []string {
	unlocked := make([]string, 0)
	for _, a := range catalogue {
		if user.HasAchievement(a.ID) {
			continue
		}
		if a.unlocked(user) {
			unlocked = append(unlocked, a.ID)
		}
	}
	return unlocked
}

// Unlock разблокирует достижения: id попадает в achievements и badges,
// пользователь получает награду. Уже разблокированные и неизвестные id пропускаются
func Unlock(user *domain.User, ids []string) (*domain.User, int) {
	next := user.Clone()
	awarded := 0
	for _, id := range ids {
		a, ok := AchievementByID(id)
		if !ok || next.HasAchievement(id) {
			continue
		}
		next.Achievements = append(next.Achievements, id)
		next.Badges = append(next.Badges, id)
		awarded += a.RewardPoints
	}
	if awarded == 0 {
		return next, 0
	}
	return AddPoints(next, awarded), awarded
}

// Settle повторяет проверку и разблокировку, пока появляются новые достижения:
// награда может поднять уровень до 10 и открыть champion
func Settle(user *domain.User) (*domain.User, []string) {
	current := user
	all := make([]string, 0)
	for {
		ids := EvaluateAchievements(current)
		if len(ids) == 0 {
			return current, all
		}
		current, _ = Unlock(current, ids)
		all = append(all, ids...)
	}
}
