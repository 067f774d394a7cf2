package main

import (
	"fmt"
	"os"

	"github.com/walletpulse/wallet-activity-dashboard-go/internal/adapter/driven/clock"
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/adapter/driven/config"
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/adapter/driven/export"
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/adapter/driven/lifi"
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/adapter/driving/cli"
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/application/usecase"
	"github.com/walletpulse/wallet-activity-dashboard-go/pkg/console"
	"github.com/walletpulse/wallet-activity-dashboard-go/pkg/version"
)

func main() {
	// Inicializa o aplicativo CLI
	app := cli.NewCLIApp(version.Version)

	// Inicializa os repositórios; o repositório de configuração carrega o
	// .env antes de lermos os overrides da API
	configRepo := config.NewConfigRepository()
	transferRepo := lifi.NewLiFiRepository(os.Getenv("LIFI_API_BASE_URL"), os.Getenv("LIFI_INTEGRATOR"))
	exportRepo := export.NewExportRepository()
	systemClock := clock.NewSystemClock()
	consoleImpl := console.NewConsole()

	// Inicializa o caso de uso
	dashboardUseCase := usecase.NewDashboardUseCase(
		transferRepo,
		exportRepo,
		configRepo,
		systemClock,
		consoleImpl,
	)

	// Define o caso de uso no aplicativo CLI
	app.SetDashboardUseCase(dashboardUseCase)

	// Executa o aplicativo
	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
