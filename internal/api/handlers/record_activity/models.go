package record_activity

import recordActivity "github.com/m04kA/arena-booking/internal/usecase/record_activity"

// RecordActivityRequest HTTP request model
type RecordActivityRequest struct {
	Activity string `json:"activity"` // booking, review, referral, social_share, check_in, ...
}

// RecordActivityResponse HTTP response model
type RecordActivityResponse struct {
	UserID       int64    `json:"userId"`
	Activity     string   `json:"activity"`
	Points       int      `json:"points"`
	RewardPoints int      `json:"rewardPoints"`
	TotalPoints  int      `json:"totalPoints"`
	Level        int      `json:"level"`
	LevelUp      bool     `json:"levelUp"`
	Unlocked     []string `json:"unlocked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *recordActivity.Response) *RecordActivityResponse {
	unlocked := resp.Unlocked
	if unlocked == nil {
		unlocked = []string{}
	}
	return &RecordActivityResponse{
		UserID:       resp.UserID,
		Activity:     resp.Activity,
		Points:       resp.Points,
		RewardPoints: resp.RewardPoints,
		TotalPoints:  resp.TotalPoints,
		Level:        resp.Level,
		LevelUp:      resp.LevelUp,
		Unlocked:     unlocked,
	}
}
