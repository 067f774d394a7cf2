package service

import (
	"github.com/shopspring/decimal"

	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/entity"
)

// ComputeMetrics calcula o número de chains de destino distintas e o volume
// total em USD. A soma usa decimal para não acumular deriva de ponto
// flutuante em totais exibidos ao usuário.
func ComputeMetrics(records []entity.TransferRecord) entity.MetricsResult {
	chains := make(map[int64]struct{})
	totalUSD := decimal.Zero

	for _, rec := range records {
		chains[rec.DestinationChainID] = struct{}{}
		totalUSD = totalUSD.Add(rec.AmountUSD)
	}

	return entity.MetricsResult{
		DistinctChainCount: len(chains),
		TotalUSD:           totalUSD,
	}
}
