package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile   string
	Wallets      []string
	LookbackDays int
	ReportName   string
	ReportType   []string
	Dir          string
	Trend        bool
	NoGrid       bool
}
