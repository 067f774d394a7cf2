package entity

// StreakResult holds the contiguous-day activity streaks for a wallet.
// CurrentStreak is zero when the last active day is not "today".
type StreakResult struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}
