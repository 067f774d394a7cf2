package entity

import "github.com/shopspring/decimal"

// WalletReport represents all data collected for a specific wallet address,
// ready for table display and export.
type WalletReport struct {
	Wallet             string          `json:"wallet"`
	TransferCount      int             `json:"transfer_count"`
	CurrentStreak      int             `json:"current_streak"`
	LongestStreak      int             `json:"longest_streak"`
	DistinctChainCount int             `json:"distinct_chain_count"`
	TotalUSD           decimal.Decimal `json:"total_usd"`
	Grid               *ActivityGrid   `json:"grid,omitempty"`
	MonthlyVolumes     []MonthlyVolume `json:"monthly_volumes,omitempty"`
	Success            bool            `json:"success"`
	Error              string          `json:"error,omitempty"`
}

// MonthlyVolume representa a atividade de um mês específico, usada para
// gráficos de tendência.
type MonthlyVolume struct {
	Month    string          `json:"month"`
	Count    int             `json:"count"`
	TotalUSD decimal.Decimal `json:"total_usd"`
}
