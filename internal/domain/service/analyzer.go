package service

import (
	"time"

	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/entity"
)

// Analyze executa o pipeline completo sobre um conjunto de transferências:
// agregação por dia, streaks, métricas e grade de contribuição. Qualquer
// falha de um estágio é propagada sem resultado parcial.
func Analyze(records []entity.TransferRecord, today time.Time) (entity.AnalysisResult, error) {
	activity, err := AggregateActivity(records)
	if err != nil {
		return entity.AnalysisResult{}, err
	}

	metrics := ComputeMetrics(records)
	streaks := ComputeStreaks(activity, today)

	grid, err := BuildGrid(activity, today)
	if err != nil {
		return entity.AnalysisResult{}, err
	}

	return entity.AnalysisResult{
		Metrics: metrics,
		Streaks: streaks,
		Grid:    grid,
	}, nil
}
