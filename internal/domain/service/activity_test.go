package service

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/entity"
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/shared/types"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func record(receivedAt time.Time, chainID int64, amountUSD string) entity.TransferRecord {
	return entity.TransferRecord{
		ReceivedAtUTC:      receivedAt,
		DestinationChainID: chainID,
		AmountUSD:          decimal.RequireFromString(amountUSD),
	}
}

func TestAggregateActivity_BucketsByUTCDay(t *testing.T) {
	records := []entity.TransferRecord{
		record(time.Date(2024, 1, 1, 0, 15, 0, 0, time.UTC), 1, "10"),
		record(time.Date(2024, 1, 1, 23, 59, 59, 0, time.UTC), 137, "5"),
		record(time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC), 1, "1"),
	}

	activity, err := AggregateActivity(records)
	require.NoError(t, err)

	assert.Len(t, activity, 2)
	assert.Equal(t, 2, activity[day(2024, 1, 1)])
	assert.Equal(t, 1, activity[day(2024, 1, 2)])
}

func TestAggregateActivity_NonUTCTimestampsCollapseToUTCDay(t *testing.T) {
	// 23:30 em UTC-3 já é o dia seguinte em UTC
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	records := []entity.TransferRecord{
		record(time.Date(2024, 3, 9, 23, 30, 0, 0, saoPaulo), 1, "10"),
	}

	activity, err := AggregateActivity(records)
	require.NoError(t, err)

	assert.Equal(t, 1, activity[day(2024, 3, 10)])
}

func TestAggregateActivity_EmptyInput(t *testing.T) {
	activity, err := AggregateActivity(nil)
	require.NoError(t, err)
	assert.Empty(t, activity)
}

func TestAggregateActivity_MissingTimestampFailsFast(t *testing.T) {
	records := []entity.TransferRecord{
		record(day(2024, 1, 1), 1, "10"),
		{DestinationChainID: 137, AmountUSD: decimal.NewFromInt(5)},
	}

	activity, err := AggregateActivity(records)
	require.Error(t, err)
	assert.Nil(t, activity, "no partial aggregation on bad input")

	var dataErr *types.DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, 1, dataErr.Index)
	assert.Equal(t, "receivedAtUtc", dataErr.Field)
}

func TestAggregateActivity_NegativeAmountFailsFast(t *testing.T) {
	records := []entity.TransferRecord{
		record(day(2024, 1, 1), 1, "-0.01"),
	}

	_, err := AggregateActivity(records)
	var dataErr *types.DataError
	require.ErrorAs(t, err, &dataErr)
	assert.Equal(t, "amountUsd", dataErr.Field)
}
