package model

import "time"

// LeaderboardEntry is one ranked user: their profile name and the total score
// summed across every activity they own.
type LeaderboardEntry struct {
	UserID      string `json:"userId"`
	ProfileName string `json:"profileName"`
	TotalScore  int    `json:"totalScore"`
}

// Leaderboard is the three-bucket ranking consumed by the reward screen:
// the first three entries regardless of score, every further user that has
// been scored, and the rest.
type Leaderboard struct {
	TopThree []LeaderboardEntry `json:"topThree"`
	Scored   []LeaderboardEntry `json:"scored"`
	Unscored []LeaderboardEntry `json:"unscored"`

	GeneratedAt time.Time `json:"generatedAt"`
}
