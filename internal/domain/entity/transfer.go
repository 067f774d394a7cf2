package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferRecord represents one inbound bridge transfer received by a wallet.
type TransferRecord struct {
	ReceivedAtUTC      time.Time       `json:"received_at_utc"`
	DestinationChainID int64           `json:"destination_chain_id"`
	AmountUSD          decimal.Decimal `json:"amount_usd"`
}
