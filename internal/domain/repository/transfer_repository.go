package repository

import (
	"context"
	"time"

	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/entity"
)

// TransferRepository defines the interface for fetching inbound transfer
// records for a wallet. The analytics core does not care how records were
// obtained (REST call, cache, file).
type TransferRepository interface {
	FetchTransfers(ctx context.Context, wallet string, since time.Time) ([]entity.TransferRecord, error)
}

// Clock fornece o "hoje" em UTC, injetado para manter o core determinístico.
type Clock interface {
	Today() time.Time
}
