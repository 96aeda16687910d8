package gamification

import (
	"errors"
	"fmt"

	"github.com/m04kA/arena-booking/internal/domain"
	"github.com/m04kA/arena-booking/pkg/types"
)

// Activity действие, за которое начисляются очки
type Activity string

const (
	ActivityVisit       Activity = "visit"
	ActivityBooking     Activity = "booking"
	ActivityReferral    Activity = "referral"
	ActivityReview      Activity = "review"
	ActivitySocialShare Activity = "social_share"
	ActivityPhotoUpload Activity = "photo_upload"
)

var activityPoints = map[Activity]int{
	ActivityVisit:       50,
	ActivityBooking:     100,
	ActivityReferral:    200,
	ActivityReview:      25,
	ActivitySocialShare: 15,
	ActivityPhotoUpload: 30,
}

// ErrUnknownActivity неизвестный тип активности
var ErrUnknownActivity = errors.New("gamification: unknown activity")

// PointsFor очки за активность
func PointsFor(a Activity) (int, bool) {
	p, ok := activityPoints[a]
	return p, ok
}

// Outcome результат начисления
type Outcome struct {
	User         *domain.User
	Points       int      // очки за саму активность
	RewardPoints int      // очки за новые достижения
	Unlocked     []string // новые достижения
}

// RecordActivity начисляет очки за активность и разблокирует достижения.
// visit увеличивает число посещений, referral добавляет бейдж referral
func RecordActivity(user *domain.User, activity Activity) (Outcome, error) {
	points, ok := PointsFor(activity)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownActivity, activity)
	}

	next := AddPoints(user, points)
	switch activity {
	case ActivityVisit:
		next.TotalVisits++
	case ActivityReferral:
		next.Badges = append(next.Badges, BadgeReferral)
	}

	return settle(next, points), nil
}

// RecordBooking учитывает подтверждённое бронирование: очки за бронь,
// траты, посещение и бейдж утреннего (до 12:00) или вечернего (с 18:00) слота
func RecordBooking(user *domain.User, price float64, slot types.TimeString) Outcome {
	points := activityPoints[ActivityBooking]

	next := AddPoints(user, points)
	next.TotalSpent += price
	next.TotalVisits++

	switch hour := slot.Hour(); {
	case hour >= 0 && hour < 12:
		next.Badges = append(next.Badges, BadgeMorningBooking)
	case hour >= 18:
		next.Badges = append(next.Badges, BadgeEveningBooking)
	}

	return settle(next, points)
}

func settle(after *domain.User, points int) Outcome {
	settled, unlocked := Settle(after)
	return Outcome{
		User:         settled,
		Points:       points,
		RewardPoints: settled.Points - after.Points,
		Unlocked:     unlocked,
	}
}
