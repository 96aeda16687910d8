package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/arena-booking/internal/domain"
)

func repeat(badge string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = badge
	}
	return out
}

func TestEvaluateAchievements_TenVisits(t *testing.T) {
	user := &domain.User{TotalVisits: 10}
	assert.Equal(t, []string{AchievementFirstVisit, AchievementLoyalCustomer}, EvaluateAchievements(user))
}

func TestEvaluateAchievements_Predicates(t *testing.T) {
	tests := []struct {
		name string
		user *domain.User
		want []string
	}{
		{"nothing", &domain.User{}, []string{}},
		{"first visit", &domain.User{TotalVisits: 1}, []string{AchievementFirstVisit}},
		{"spent 499", &domain.User{TotalSpent: 499}, []string{}},
		{"spent 500", &domain.User{TotalSpent: 500}, []string{AchievementBigSpender}},
		{"four referrals", &domain.User{Badges: repeat(BadgeReferral, 4)}, []string{}},
		{"five referrals", &domain.User{Badges: repeat(BadgeReferral, 5)}, []string{AchievementSocialButterfly}},
		{"five mornings", &domain.User{Badges: repeat(BadgeMorningBooking, 5)}, []string{AchievementEarlyBird}},
		{"five evenings", &domain.User{Badges: repeat(BadgeEveningBooking, 5)}, []string{AchievementNightOwl}},
		{"level ten", &domain.User{Points: 9000}, []string{AchievementChampion}},
		{
			"already unlocked are skipped",
			&domain.User{TotalVisits: 12, Achievements: []string{AchievementFirstVisit}},
			[]string{AchievementLoyalCustomer},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateAchievements(tt.user))
		})
	}
}

func TestUnlock_AwardsAndIsMonotonic(t *testing.T) {
	user := &domain.User{TotalVisits: 1}

	got, awarded := Unlock(user, []string{AchievementFirstVisit})
	assert.Equal(t, 50, awarded)
	assert.Equal(t, 50, got.Points)
	assert.Equal(t, []string{AchievementFirstVisit}, got.Achievements)
	assert.Equal(t, []string{AchievementFirstVisit}, got.Badges)

	again, awarded := Unlock(got, []string{AchievementFirstVisit, "unknown"})
	assert.Equal(t, 0, awarded)
	assert.Equal(t, got, again)

	// условие больше не выполняется, но достижение остаётся
	again.TotalVisits = 0
	assert.Empty(t, EvaluateAchievements(again))
	assert.True(t, again.HasAchievement(AchievementFirstVisit))
}

func TestSettle_RewardUnlocksChampion(t *testing.T) {
	// награды big_spender и social_butterfly поднимают до 10 уровня, следом открывается champion
	user := &domain.User{
		Points:     8700,
		TotalSpent: 600,
		Badges:     repeat(BadgeReferral, 5),
	}

	got, unlocked := Settle(user)

	assert.Equal(t, []string{AchievementBigSpender, AchievementSocialButterfly, AchievementChampion}, unlocked)
	assert.Equal(t, 8700+300+400+1000, got.Points)
	assert.Equal(t, LevelFor(got.Points), got.Level)
}
