package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"

	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/entity"
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/repository"
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/service"
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/shared/types"
)

const defaultLookbackDays = 365

// DashboardUseCase handles the main dashboard functionality.
type DashboardUseCase struct {
	transferRepo repository.TransferRepository
	exportRepo   repository.ExportRepository
	configRepo   repository.ConfigRepository
	clock        repository.Clock
	console      types.ConsoleInterface
}

// NewDashboardUseCase creates a new dashboard use case.
func NewDashboardUseCase(
	transferRepo repository.TransferRepository,
	exportRepo repository.ExportRepository,
	configRepo repository.ConfigRepository,
	clock repository.Clock,
	console types.ConsoleInterface,
) *DashboardUseCase {
	return &DashboardUseCase{
		transferRepo: transferRepo,
		exportRepo:   exportRepo,
		configRepo:   configRepo,
		clock:        clock,
		console:      console,
	}
}

// ResolveArgs mescla o arquivo de configuração (se houver) nos argumentos da
// CLI e aplica os padrões. Flags explícitas têm prioridade sobre o arquivo.
func (uc *DashboardUseCase) ResolveArgs(args *types.CLIArgs) error {
	if args.ConfigFile != "" {
		config, err := uc.configRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return err
		}

		if len(args.Wallets) == 0 {
			args.Wallets = config.Wallets
		}
		if args.LookbackDays == 0 {
			args.LookbackDays = config.LookbackDays
		}
		if args.ReportName == "" {
			args.ReportName = config.ReportName
		}
		if len(args.ReportType) == 0 {
			args.ReportType = config.ReportType
		}
		if args.Dir == "" {
			args.Dir = config.Dir
		}
		if !args.Trend {
			args.Trend = config.Trend
		}
		if !args.NoGrid {
			args.NoGrid = config.NoGrid
		}
	}

	if args.LookbackDays <= 0 {
		args.LookbackDays = defaultLookbackDays
	}

	if len(args.Wallets) == 0 {
		return types.ErrNoWallets
	}

	return nil
}

// RunDashboard executa a funcionalidade principal do dashboard.
func (uc *DashboardUseCase) RunDashboard(ctx context.Context, args *types.CLIArgs) error {
	if err := uc.ResolveArgs(args); err != nil {
		return err
	}

	today := uc.clock.Today()
	since := today.AddDate(0, 0, -args.LookbackDays)

	status := uc.console.Status("Initializing dashboard...")

	table := uc.createDisplayTable(args.LookbackDays)

	// Três etapas por carteira: busca, análise, preparação do relatório
	progress := uc.console.ProgressWithTotal(len(args.Wallets) * 3)

	reports := make([]entity.WalletReport, 0, len(args.Wallets))
	for _, wallet := range args.Wallets {
		status.Update(fmt.Sprintf("Processing wallet %s...", wallet))
		report := uc.processWallet(ctx, wallet, since, today, progress, status)
		reports = append(reports, report)
		uc.addWalletToTable(table, report)
	}

	progress.Stop()
	status.Stop()

	uc.console.Print(table.Render())

	for _, report := range reports {
		if !report.Success {
			continue
		}

		if !args.NoGrid && report.Grid != nil {
			uc.console.Printf("\n%s\n", pterm.FgYellow.Sprintf("Wallet: %s", report.Wallet))
			uc.console.DisplayActivityGrid(toHeatmapData(*report.Grid))
		}

		if args.Trend && len(report.MonthlyVolumes) > 0 {
			uc.console.DisplayTrendBars(toMonthlyVolumes(report.MonthlyVolumes))
		}
	}

	uc.exportReports(reports, args)

	return nil
}

// processWallet busca e analisa a atividade de uma carteira. Uma falha
// produz uma linha de erro, nunca um relatório parcial, e não interrompe as
// demais carteiras.
func (uc *DashboardUseCase) processWallet(
	ctx context.Context,
	wallet string,
	since time.Time,
	today time.Time,
	progress types.ProgressHandle,
	status types.StatusHandle,
) entity.WalletReport {
	report := entity.WalletReport{Wallet: wallet, TotalUSD: decimal.Zero}

	// Etapa 1: buscar as transferências
	status.Update(fmt.Sprintf("Fetching transfers for %s...", wallet))
	records, err := uc.transferRepo.FetchTransfers(ctx, wallet, since)
	if err != nil {
		report.Error = err.Error()
		progress.Increment() // 1/3
		progress.Increment() // 2/3
		progress.Increment() // 3/3
		return report
	}
	progress.Increment() // 1/3

	// Carteira sem atividade degrada para métricas zeradas, sem grade
	if len(records) == 0 {
		uc.console.LogWarning("No activity found for wallet %s in the selected period", wallet)
		report.Success = true
		progress.Increment() // 2/3
		progress.Increment() // 3/3
		return report
	}

	// Etapa 2: executar o pipeline de análise
	status.Update(fmt.Sprintf("Analyzing activity for %s...", wallet))
	result, err := service.Analyze(records, today)
	if err != nil {
		report.Error = err.Error()
		progress.Increment() // 2/3
		progress.Increment() // 3/3
		return report
	}
	progress.Increment() // 2/3

	// Etapa 3: preparar o relatório
	status.Update(fmt.Sprintf("Preparing report for %s...", wallet))
	grid := result.Grid
	report.TransferCount = len(records)
	report.CurrentStreak = result.Streaks.CurrentStreak
	report.LongestStreak = result.Streaks.LongestStreak
	report.DistinctChainCount = result.Metrics.DistinctChainCount
	report.TotalUSD = result.Metrics.TotalUSD
	report.Grid = &grid
	report.MonthlyVolumes = service.ComputeMonthlyVolumes(records)
	report.Success = true
	progress.Increment() // 3/3

	return report
}

// exportReports grava os relatórios solicitados, registrando cada resultado.
func (uc *DashboardUseCase) exportReports(reports []entity.WalletReport, args *types.CLIArgs) {
	if args.ReportName == "" {
		return
	}

	reportTypes := args.ReportType
	if len(reportTypes) == 0 {
		reportTypes = []string{"csv"}
	}

	for _, reportType := range reportTypes {
		switch reportType {
		case "csv":
			csvPath, err := uc.exportRepo.ExportToCSV(reports, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to CSV: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to CSV: %s", csvPath)
			}
		case "json":
			jsonPath, err := uc.exportRepo.ExportToJSON(reports, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to JSON: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to JSON: %s", jsonPath)
			}
		case "pdf":
			pdfPath, err := uc.exportRepo.ExportToPDF(reports, args.ReportName, args.Dir)
			if err != nil {
				uc.console.LogError("Failed to export to PDF: %s", err)
			} else {
				uc.console.LogSuccess("Successfully exported to PDF: %s", pdfPath)
			}
		default:
			uc.console.LogWarning("Unknown report type '%s' (expected csv, json or pdf)", reportType)
		}
	}
}

// createDisplayTable cria e configura a tabela de exibição.
func (uc *DashboardUseCase) createDisplayTable(lookbackDays int) types.TableInterface {
	table := uc.console.CreateTable()

	table.AddColumn("Wallet")
	table.AddColumn(fmt.Sprintf("Transfers\n(last %dd)", lookbackDays))
	table.AddColumn("Active Streak")
	table.AddColumn("Longest Streak")
	table.AddColumn("Distinct Chains")
	table.AddColumn("Total Volume (USD)")

	return table
}

// addWalletToTable adiciona os dados da carteira à tabela de exibição.
func (uc *DashboardUseCase) addWalletToTable(table types.TableInterface, report entity.WalletReport) {
	if report.Success {
		table.AddRow(
			pterm.FgMagenta.Sprintf("%s", report.Wallet),
			fmt.Sprintf("%d", report.TransferCount),
			pterm.FgGreen.Sprintf("%d days", report.CurrentStreak),
			pterm.FgCyan.Sprintf("%d days", report.LongestStreak),
			fmt.Sprintf("%d", report.DistinctChainCount),
			pterm.NewStyle(pterm.FgGreen, pterm.Bold).Sprintf("$%s", report.TotalUSD.StringFixed(2)),
		)
	} else {
		table.AddRow(
			pterm.FgMagenta.Sprintf("%s", report.Wallet),
			pterm.FgRed.Sprint("Error"),
			pterm.FgRed.Sprint("N/A"),
			pterm.FgRed.Sprint("N/A"),
			pterm.FgRed.Sprint("N/A"),
			pterm.FgRed.Sprintf("Failed to process wallet: %s", report.Error),
		)
	}
}

// toHeatmapData converte a grade do domínio para o tipo de exibição.
func toHeatmapData(grid entity.ActivityGrid) types.HeatmapData {
	return types.HeatmapData{
		Cells:     grid.Cells,
		Weeks:     grid.Weeks,
		StartDate: grid.StartDate,
		EndDate:   grid.EndDate,
	}
}

// toMonthlyVolumes converte para o tipo correto de exibição.
func toMonthlyVolumes(volumes []entity.MonthlyVolume) []types.MonthlyVolume {
	uiVolumes := make([]types.MonthlyVolume, len(volumes))
	for i, mv := range volumes {
		uiVolumes[i] = types.MonthlyVolume{
			Month:    mv.Month,
			Count:    mv.Count,
			TotalUSD: mv.TotalUSD.InexactFloat64(),
		}
	}
	return uiVolumes
}
