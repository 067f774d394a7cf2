package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/entity"
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/shared/types"
)

func TestAnalyze_EmptyRecordsFailsOnGrid(t *testing.T) {
	_, err := Analyze(nil, day(2024, 1, 5))
	require.ErrorIs(t, err, types.ErrEmptyActivity)
}

func TestAnalyze_ComposesAllStages(t *testing.T) {
	records := []entity.TransferRecord{
		record(day(2024, 1, 1), 1, "10.5"),
		record(day(2024, 1, 2), 1, "5.25"),
		record(day(2024, 1, 3), 137, "100"),
	}

	result, err := Analyze(records, day(2024, 1, 3))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Metrics.DistinctChainCount)
	assert.Equal(t, "115.75", result.Metrics.TotalUSD.String())
	assert.Equal(t, 3, result.Streaks.CurrentStreak)
	assert.Equal(t, 3, result.Streaks.LongestStreak)
	assert.Equal(t, day(2024, 1, 1), result.Grid.StartDate)
	assert.Equal(t, day(2024, 1, 3), result.Grid.EndDate)
	assert.Len(t, result.Grid.Cells, 7)
}

func TestAnalyze_BadRecordPropagatesUnchanged(t *testing.T) {
	records := []entity.TransferRecord{
		record(day(2024, 1, 1), 1, "10"),
		{DestinationChainID: 1},
	}

	result, err := Analyze(records, day(2024, 1, 1))

	var dataErr *types.DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, entity.AnalysisResult{}, result, "all-or-nothing: no partial result")
}
