package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Wallets      []string `json:"wallets" yaml:"wallets" toml:"wallets"`
	LookbackDays int      `json:"lookback_days" yaml:"lookback_days" toml:"lookback_days"`
	ReportName   string   `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType   []string `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir          string   `json:"dir" yaml:"dir" toml:"dir"`
	Trend        bool     `json:"trend" yaml:"trend" toml:"trend"`
	NoGrid       bool     `json:"no_grid" yaml:"no_grid" toml:"no_grid"`
}
