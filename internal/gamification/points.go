// Package gamification implements loyalty points, levels and achievements.
// All functions are pure: they return a new user value and never modify the argument.
package gamification

import "github.com/m04kA/arena-booking/internal/domain"

// PointsPerLevel размер уровня в очках
const PointsPerLevel = 1000

// MaxNamedLevel последний уровень со своим названием
const MaxNamedLevel = 10

var levelNames = [MaxNamedLevel]string{
	"Rookie", "Player", "Pro", "Expert", "Master",
	"Legend", "Elite", "Champion", "Hero", "God",
}

// LevelFor level = floor(points/1000)+1
func LevelFor(points int) int {
	if points < 0 {
		points = 0
	}
	return points/PointsPerLevel + 1
}

// AddPoints прибавляет delta к очкам и пересчитывает уровень.
// Очки не опускаются ниже нуля
func AddPoints(user *domain.User, delta int) *domain.User {
	next := user.Clone()
	next.Points += delta
	if next.Points < 0 {
		next.Points = 0
	}
	next.Level = LevelFor(next.Points)
	return next
}

// LevelInfo описание уровня для профиля
type LevelInfo struct {
	Level        int
	Name         string
	NextLevelAt  *int // nil на последнем именованном уровне
	PointsToNext int
	Progress     int // процент внутри текущего уровня
}

// DescribeLevel информация об уровне пользователя с points очков
func DescribeLevel(points int) LevelInfo {
	level := LevelFor(points)

	info := LevelInfo{Level: level}
	if level >= MaxNamedLevel {
		info.Name = levelNames[MaxNamedLevel-1]
		info.Progress = 100
		return info
	}

	info.Name = levelNames[level-1]
	next := level * PointsPerLevel
	info.NextLevelAt = &next
	info.PointsToNext = next - points
	info.Progress = (points % PointsPerLevel) * 100 / PointsPerLevel
	return info
}
