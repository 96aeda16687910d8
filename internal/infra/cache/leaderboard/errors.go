package leaderboard

import "errors"

var (
	// ErrCacheUnavailable возвращается при ошибках обращения к Redis
	ErrCacheUnavailable = errors.New("leaderboard.cache: redis unavailable")

	// ErrCacheEmpty возвращается, если рейтинг ещё не прогрет
	ErrCacheEmpty = errors.New("leaderboard.cache: leaderboard is empty")

	// ErrCacheStale возвращается, если в рейтинге не те пользователи, что в базе
	ErrCacheStale = errors.New("leaderboard.cache: leaderboard is out of sync")
)
