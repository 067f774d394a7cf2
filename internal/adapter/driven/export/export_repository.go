package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/entity"
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/repository"
)

// ExportRepositoryImpl implementa o ExportRepository.
type ExportRepositoryImpl struct{}

// NewExportRepository cria uma nova implementação do ExportRepository.
func NewExportRepository() repository.ExportRepository {
	return &ExportRepositoryImpl{}
}

func (r *ExportRepositoryImpl) ExportToCSV(data []entity.WalletReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "csv")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	headers := []string{
		"Wallet", "Transfers", "Active Streak", "Longest Streak",
		"Distinct Chains", "Total Volume (USD)", "First Activity", "Last Activity",
	}
	if err := writer.Write(headers); err != nil {
		return "", fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, row := range data {
		firstActivity, lastActivity := "", ""
		if row.Grid != nil {
			firstActivity = row.Grid.StartDate.Format("2006-01-02")
			lastActivity = row.Grid.EndDate.Format("2006-01-02")
		}

		record := []string{
			cleanRichTags(row.Wallet),
			strconv.Itoa(row.TransferCount),
			strconv.Itoa(row.CurrentStreak),
			strconv.Itoa(row.LongestStreak),
			strconv.Itoa(row.DistinctChainCount),
			row.TotalUSD.StringFixed(2),
			firstActivity,
			lastActivity,
		}
		if err := writer.Write(record); err != nil {
			return "", fmt.Errorf("error writing CSV record: %w", err)
		}
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToJSON(data []entity.WalletReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "json")
	if err != nil {
		return "", err
	}

	file, err := os.Create(outputFilename)
	if err != nil {
		return "", fmt.Errorf("error creating JSON file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return "", fmt.Errorf("error encoding JSON data: %w", err)
	}

	return filepath.Abs(outputFilename)
}

func (r *ExportRepositoryImpl) ExportToPDF(data []entity.WalletReport, filename, outputDir string) (string, error) {
	outputFilename, err := generateFilename(filename, outputDir, "pdf")
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	headerColor := [3]int{40, 40, 40}
	headerTextColor := [3]int{255, 255, 255}
	sectionTitleColor := [3]int{0, 0, 0}
	bodyTextColor := [3]int{50, 50, 50}
	lineColor := [3]int{200, 200, 200}

	drawSection := func(title string, content string) {
		if content == "" {
			return
		}
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
		pdf.Cell(0, 8, tr(title))
		pdf.Ln(7)

		pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
		pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
		pdf.Ln(4)

		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(bodyTextColor[0], bodyTextColor[1], bodyTextColor[2])
		pdf.MultiCell(190, 5, tr(content), "", "L", false)
		pdf.Ln(8)
	}

	for i, row := range data {
		pdf.AddPage()

		// Cabeçalho
		pdf.SetFillColor(headerColor[0], headerColor[1], headerColor[2])
		pdf.SetTextColor(headerTextColor[0], headerTextColor[1], headerTextColor[2])
		pdf.SetFont("Arial", "B", 14)
		walletLabel := row.Wallet
		if len(walletLabel) > 60 {
			walletLabel = walletLabel[:57] + "..."
		}
		pdf.CellFormat(0, 12, tr(fmt.Sprintf("  Wallet Activity: %s", walletLabel)), "", 1, "L", true, 0, "")
		pdf.Ln(8)

		if !row.Success {
			drawSection("Error", row.Error)
			continue
		}

		summary := fmt.Sprintf(
			"Transfers: %d\nActive Streak: %d days\nLongest Streak: %d days\nDistinct Chains Visited: %d\nTotal Volume: $%s",
			row.TransferCount, row.CurrentStreak, row.LongestStreak,
			row.DistinctChainCount, row.TotalUSD.StringFixed(2),
		)
		drawSection("Activity Summary", summary)

		if row.Grid != nil {
			pdf.SetFont("Arial", "B", 12)
			pdf.SetTextColor(sectionTitleColor[0], sectionTitleColor[1], sectionTitleColor[2])
			pdf.Cell(0, 8, tr(fmt.Sprintf("Contribution Graph (%s to %s)",
				row.Grid.StartDate.Format("2006-01-02"), row.Grid.EndDate.Format("2006-01-02"))))
			pdf.Ln(7)
			pdf.SetDrawColor(lineColor[0], lineColor[1], lineColor[2])
			pdf.Line(pdf.GetX(), pdf.GetY(), pdf.GetX()+190, pdf.GetY())
			pdf.Ln(4)

			drawHeatmap(pdf, row.Grid)
			pdf.Ln(8)
		}

		if len(row.MonthlyVolumes) > 0 {
			monthly := ""
			for _, mv := range row.MonthlyVolumes {
				monthly += fmt.Sprintf("%s: %d transfers, $%s\n", mv.Month, mv.Count, mv.TotalUSD.StringFixed(2))
			}
			drawSection("Monthly Volume", monthly)
		}

		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		footerText := fmt.Sprintf("Generated by Wallet Activity Dashboard | %s", time.Now().Format("2006-01-02"))
		pdf.CellFormat(0, 10, tr(footerText), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Page %d", i+1)), "", 0, "R", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(outputFilename); err != nil {
		return "", fmt.Errorf("error writing PDF file: %w", err)
	}

	return filepath.Abs(outputFilename)
}

// drawHeatmap desenha a grade de contribuição como células coloridas por
// intensidade, no estilo de um gráfico de contribuição de calendário.
func drawHeatmap(pdf *gofpdf.Fpdf, grid *entity.ActivityGrid) {
	maxCount := 0
	for _, row := range grid.Cells {
		for _, cell := range row {
			if cell > maxCount {
				maxCount = cell
			}
		}
	}

	const cellSize = 2.6
	const cellGap = 0.6

	// Limita a largura à área útil da página A4
	cellPitch := float64(cellSize + cellGap)
	maxWeeks := int(190.0 / cellPitch)
	weeks := grid.Weeks
	if weeks > maxWeeks {
		weeks = maxWeeks
	}

	originX := pdf.GetX()
	originY := pdf.GetY()

	for rowIdx, row := range grid.Cells {
		for week := 0; week < weeks; week++ {
			count := row[week]
			r, g, b := heatmapColor(count, maxCount)
			pdf.SetFillColor(r, g, b)
			x := originX + float64(week)*(cellSize+cellGap)
			y := originY + float64(rowIdx)*(cellSize+cellGap)
			pdf.Rect(x, y, cellSize, cellSize, "F")
		}
	}

	pdf.SetY(originY + 7*(cellSize+cellGap) + 2)
}

// heatmapColor devolve tons de verde progressivamente mais escuros,
// quantizados em quartis do máximo diário.
func heatmapColor(count, maxCount int) (int, int, int) {
	if count == 0 || maxCount == 0 {
		return 235, 237, 240
	}
	switch {
	case count*4 <= maxCount:
		return 155, 233, 168
	case count*2 <= maxCount:
		return 64, 196, 99
	case count*4 <= maxCount*3:
		return 48, 161, 78
	default:
		return 33, 110, 57
	}
}

func generateFilename(base, dir, ext string) (string, error) {
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("could not get current working directory: %w", err)
		}
		dir = cwd
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory '%s': %w", dir, err)
	}
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.%s", base, timestamp, ext)
	return filepath.Join(dir, filename), nil
}

// Regex para limpar formatação pterm (rich tags) e sequências ANSI de cor/estilo.
var richTagRegex = regexp.MustCompile(`\[/?([a-zA-Z]+|#[0-9a-fA-F]{6})\]`)
var ansiRegex = regexp.MustCompile(`\x1B\[[0-9;]*[A-Za-z]`)

// cleanRichTags remove tags de formatação do pterm e sequências ANSI.
func cleanRichTags(text string) string {
	text = richTagRegex.ReplaceAllString(text, "")
	text = ansiRegex.ReplaceAllString(text, "")
	return text
}
