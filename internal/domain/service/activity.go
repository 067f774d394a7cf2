package service

import (
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/entity"
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/shared/types"
)

// AggregateActivity converte transferências brutas em um mapa dia→contagem.
// O dia é derivado do instante de recebimento truncado para UTC; dias sem
// transferência ficam ausentes do mapa. Um registro malformado aborta a
// análise inteira com DataError, nunca é pulado em silêncio.
func AggregateActivity(records []entity.TransferRecord) (entity.ActivityMap, error) {
	activity := entity.ActivityMap{}

	for i, rec := range records {
		if rec.ReceivedAtUTC.IsZero() {
			return nil, &types.DataError{Index: i, Field: "receivedAtUtc", Reason: "is missing"}
		}
		if rec.AmountUSD.IsNegative() {
			return nil, &types.DataError{Index: i, Field: "amountUsd", Reason: "is negative"}
		}
		activity[entity.DayUTC(rec.ReceivedAtUTC)]++
	}

	return activity, nil
}
