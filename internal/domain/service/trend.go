package service

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/entity"
)

// ComputeMonthlyVolumes agrupa as transferências por mês de calendário (UTC)
// para o relatório de tendência, em ordem cronológica.
func ComputeMonthlyVolumes(records []entity.TransferRecord) []entity.MonthlyVolume {
	type monthAgg struct {
		count int
		total decimal.Decimal
	}

	months := make(map[time.Time]*monthAgg)
	for _, rec := range records {
		day := entity.DayUTC(rec.ReceivedAtUTC)
		month := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
		agg, ok := months[month]
		if !ok {
			agg = &monthAgg{total: decimal.Zero}
			months[month] = agg
		}
		agg.count++
		agg.total = agg.total.Add(rec.AmountUSD)
	}

	keys := make([]time.Time, 0, len(months))
	for month := range months {
		keys = append(keys, month)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	volumes := make([]entity.MonthlyVolume, 0, len(keys))
	for _, month := range keys {
		agg := months[month]
		volumes = append(volumes, entity.MonthlyVolume{
			Month:    month.Format("Jan 2006"),
			Count:    agg.count,
			TotalUSD: agg.total,
		})
	}

	return volumes
}
