package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/entity"
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/shared/types"
)

func TestBuildGrid_EmptyMapFails(t *testing.T) {
	_, err := BuildGrid(entity.ActivityMap{}, day(2024, 1, 5))
	require.ErrorIs(t, err, types.ErrEmptyActivity)
}

func TestBuildGrid_SingleDay(t *testing.T) {
	// 2024-01-01 foi uma segunda-feira
	grid, err := BuildGrid(activityOn(day(2024, 1, 1)), day(2024, 1, 1))
	require.NoError(t, err)

	assert.Equal(t, 1, grid.Weeks)
	assert.Len(t, grid.Cells, 7)
	assert.Equal(t, 1, grid.Cells[0][0], "monday row, first week")
	assert.Equal(t, day(2024, 1, 1), grid.StartDate)
	assert.Equal(t, day(2024, 1, 1), grid.EndDate)
}

func TestBuildGrid_LeadingPadPlacesFirstDayOnWeekdayRow(t *testing.T) {
	// 2024-01-03 foi uma quarta-feira: linha 2 com segunda = 0
	grid, err := BuildGrid(activityOn(day(2024, 1, 3)), day(2024, 1, 3))
	require.NoError(t, err)

	assert.Equal(t, 1, grid.Weeks)
	assert.Equal(t, 0, grid.Cells[0][0])
	assert.Equal(t, 0, grid.Cells[1][0])
	assert.Equal(t, 1, grid.Cells[2][0])
}

func TestBuildGrid_ColumnMajorFillAcrossWeeks(t *testing.T) {
	// Segunda 2024-01-01 até segunda 2024-01-08: duas semanas
	activity := activityOn(day(2024, 1, 1), day(2024, 1, 8))

	grid, err := BuildGrid(activity, day(2024, 1, 8))
	require.NoError(t, err)

	assert.Equal(t, 2, grid.Weeks)
	assert.Equal(t, 1, grid.Cells[0][0], "first monday in week 0")
	assert.Equal(t, 1, grid.Cells[0][1], "second monday in week 1")
}

func TestBuildGrid_SumOfCellsEqualsSumOfActivity(t *testing.T) {
	activity := entity.ActivityMap{
		day(2024, 1, 3):  4,
		day(2024, 1, 7):  1,
		day(2024, 2, 15): 9,
	}

	grid, err := BuildGrid(activity, day(2024, 3, 1))
	require.NoError(t, err)

	cellSum := 0
	for _, row := range grid.Cells {
		for _, cell := range row {
			cellSum += cell
		}
	}
	assert.Equal(t, 14, cellSum, "padding must never lose or duplicate counts")
}

func TestBuildGrid_MinimalPadding(t *testing.T) {
	start := day(2024, 1, 3)
	today := day(2024, 5, 20)

	grid, err := BuildGrid(activityOn(start), today)
	require.NoError(t, err)

	totalDays := int(today.Sub(start).Hours()/24) + 1
	leadingPad := (int(start.Weekday()) + 6) % 7

	assert.Len(t, grid.Cells, 7)
	assert.GreaterOrEqual(t, grid.Weeks*7, leadingPad+totalDays)
	assert.Less(t, grid.Weeks*7-(leadingPad+totalDays), 7)
}

func TestBuildGrid_CoversEveryDateExactlyOnce(t *testing.T) {
	// Atividade em todos os dias de um intervalo: cada célula real vale 1
	start := day(2024, 1, 1)
	today := day(2024, 1, 21)

	dates := []time.Time{}
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}

	grid, err := BuildGrid(activityOn(dates...), today)
	require.NoError(t, err)

	cellSum := 0
	for _, row := range grid.Cells {
		for _, cell := range row {
			assert.LessOrEqual(t, cell, 1)
			cellSum += cell
		}
	}
	assert.Equal(t, len(dates), cellSum)
}
