package entity

// AnalysisResult is the complete output of one wallet-activity analysis.
type AnalysisResult struct {
	Metrics MetricsResult `json:"metrics"`
	Streaks StreakResult  `json:"streaks"`
	Grid    ActivityGrid  `json:"grid"`
}
