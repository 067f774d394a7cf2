package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/entity"
)

func TestComputeMonthlyVolumes_GroupsAndOrdersChronologically(t *testing.T) {
	records := []entity.TransferRecord{
		record(day(2024, 2, 10), 1, "20"),
		record(day(2024, 1, 5), 1, "10"),
		record(day(2024, 1, 25), 137, "2.5"),
	}

	volumes := ComputeMonthlyVolumes(records)

	assert.Equal(t, []string{"Jan 2024", "Feb 2024"}, []string{volumes[0].Month, volumes[1].Month})
	assert.Equal(t, 2, volumes[0].Count)
	assert.Equal(t, "12.5", volumes[0].TotalUSD.String())
	assert.Equal(t, 1, volumes[1].Count)
}

func TestComputeMonthlyVolumes_Empty(t *testing.T) {
	assert.Empty(t, ComputeMonthlyVolumes(nil))
}
