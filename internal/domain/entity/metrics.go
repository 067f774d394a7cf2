package entity

import "github.com/shopspring/decimal"

// MetricsResult agrega as métricas de volume de um conjunto de transferências.
type MetricsResult struct {
	DistinctChainCount int             `json:"distinct_chain_count"`
	TotalUSD           decimal.Decimal `json:"total_usd"`
}
