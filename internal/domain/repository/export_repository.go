package repository

import (
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/entity"
)

type ExportRepository interface {
	ExportToCSV(data []entity.WalletReport, filename string, outputDir string) (string, error)
	ExportToJSON(data []entity.WalletReport, filename string, outputDir string) (string, error)
	ExportToPDF(data []entity.WalletReport, filename string, outputDir string) (string, error)
}
