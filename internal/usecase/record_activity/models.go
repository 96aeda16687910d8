package record_activity

// Request модель запроса на начисление очков за активность
type Request struct {
	UserID   int64
	Activity string
}

// Response результат начисления
type Response struct {
	UserID       int64
	Activity     string
	Points       int
	RewardPoints int
	TotalPoints  int
	Level        int
	LevelUp      bool
	Unlocked     []string
}
