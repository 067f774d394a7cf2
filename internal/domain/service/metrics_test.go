package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/entity"
)

func TestComputeMetrics_Empty(t *testing.T) {
	result := ComputeMetrics(nil)
	assert.Equal(t, 0, result.DistinctChainCount)
	assert.True(t, result.TotalUSD.IsZero())
}

func TestComputeMetrics_DistinctChainsAndTotal(t *testing.T) {
	records := []entity.TransferRecord{
		record(day(2024, 1, 1), 1, "10.5"),
		record(day(2024, 1, 2), 1, "5.25"),
		record(day(2024, 1, 3), 2, "100"),
	}

	result := ComputeMetrics(records)
	assert.Equal(t, 2, result.DistinctChainCount)
	assert.True(t, result.TotalUSD.Equal(decimal.RequireFromString("115.75")),
		"expected 115.75, got %s", result.TotalUSD)
}

func TestComputeMetrics_DecimalSumHasNoFloatDrift(t *testing.T) {
	// 0.1 somado mil vezes precisa dar exatamente 100.00
	records := make([]entity.TransferRecord, 1000)
	for i := range records {
		records[i] = record(day(2024, 1, 1), 10, "0.1")
	}

	result := ComputeMetrics(records)
	assert.Equal(t, "100", result.TotalUSD.String())
}
