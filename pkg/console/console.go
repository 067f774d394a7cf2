package console

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/walletpulse/wallet-activity-dashboard-go/internal/shared/types"
)

// Console é uma implementação do ConsoleInterface.
type Console struct{}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{}
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Print(a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Println(a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	pterm.Success.Printfln(format, a...)
}

// Cores predefinidas para uso consistente
var (
	BrightMagenta = color.New(color.FgMagenta, color.Bold).SprintFunc()
	BrightGreen   = color.New(color.FgGreen, color.Bold).SprintFunc()
	BrightYellow  = color.New(color.FgYellow, color.Bold).SprintFunc()
	BrightCyan    = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// progressHandle é uma implementação do ProgressHandle.
type progressHandle struct {
	bar *pterm.ProgressbarPrinter
}

func (c *Console) ProgressWithTotal(total int) types.ProgressHandle {
	bar, _ := pterm.DefaultProgressbar.
		WithTotal(total).
		WithTitle("Processing wallet activity").
		WithShowElapsedTime(true).
		WithShowCount(true).
		WithRemoveWhenDone(false).
		Start()
	return &progressHandle{bar: bar}
}

// Increment incrementa a barra de progresso.
func (h *progressHandle) Increment() {
	if h.bar != nil {
		h.bar.Increment()
	}
}

// Stop pára a barra de progresso.
func (h *progressHandle) Stop() {
	if h.bar != nil {
		h.bar.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// Rampa de intensidade para a grade: sem atividade, e quartis do máximo diário.
var heatGlyphs = []string{"·", "░", "▒", "▓", "█"}

var weekdayLabels = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// DisplayActivityGrid renderiza a grade de contribuição no terminal:
// linhas de dias da semana, colunas de semanas, meses no topo.
func (c *Console) DisplayActivityGrid(grid types.HeatmapData) {
	if grid.Weeks == 0 || len(grid.Cells) != 7 {
		pterm.Warning.Println("Nothing to display: empty contribution grid")
		return
	}

	maxCount := 0
	for _, row := range grid.Cells {
		for _, cell := range row {
			if cell > maxCount {
				maxCount = cell
			}
		}
	}

	var sb strings.Builder
	sb.WriteString("    " + monthLabelLine(grid) + "\n")

	for rowIdx, row := range grid.Cells {
		sb.WriteString(weekdayLabels[rowIdx] + " ")
		for _, cell := range row {
			sb.WriteString(heatCell(cell, maxCount) + " ")
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n    " + pterm.FgGray.Sprint("Less ") +
		pterm.FgGray.Sprint(heatGlyphs[0]) + " " +
		pterm.FgGreen.Sprint(heatGlyphs[1]) + " " +
		pterm.FgGreen.Sprint(heatGlyphs[2]) + " " +
		pterm.FgLightGreen.Sprint(heatGlyphs[3]) + " " +
		pterm.FgLightGreen.Sprint(heatGlyphs[4]) +
		pterm.FgGray.Sprint(" More"))

	panel := pterm.DefaultBox.
		WithTitle(fmt.Sprintf("Contribution Graph (%s to %s)",
			grid.StartDate.Format("2006-01-02"), grid.EndDate.Format("2006-01-02"))).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(sb.String())

	fmt.Println("\n" + panel)
}

// heatCell devolve o glifo colorido para uma contagem diária.
func heatCell(count, maxCount int) string {
	if count == 0 || maxCount == 0 {
		return pterm.FgDarkGray.Sprint(heatGlyphs[0])
	}
	switch {
	case count*4 <= maxCount:
		return pterm.FgGreen.Sprint(heatGlyphs[1])
	case count*2 <= maxCount:
		return pterm.FgGreen.Sprint(heatGlyphs[2])
	case count*4 <= maxCount*3:
		return pterm.FgLightGreen.Sprint(heatGlyphs[3])
	default:
		return pterm.FgLightGreen.Sprint(heatGlyphs[4])
	}
}

// monthLabelLine monta a linha de rótulos de mês alinhada às colunas de
// semana: cada coluna ocupa dois caracteres ("X ").
func monthLabelLine(grid types.HeatmapData) string {
	// A primeira coluna começa na segunda-feira da semana da primeira atividade
	leadingPad := (int(grid.StartDate.Weekday()) + 6) % 7
	gridStart := grid.StartDate.AddDate(0, 0, -leadingPad)

	line := make([]rune, grid.Weeks*2)
	for i := range line {
		line[i] = ' '
	}

	previousMonth := time.Month(0)
	for week := 0; week < grid.Weeks; week++ {
		monday := gridStart.AddDate(0, 0, week*7)
		if monday.Month() != previousMonth {
			label := []rune(monday.Format("Jan"))
			for j, r := range label {
				pos := week*2 + j
				if pos < len(line) {
					line[pos] = r
				}
			}
			previousMonth = monday.Month()
		}
	}

	return pterm.FgGray.Sprint(string(line))
}

// DisplayTrendBars exibe gráficos de barras para a tendência mensal de volume.
func (c *Console) DisplayTrendBars(monthlyVolumes []types.MonthlyVolume) {
	maxCount := 0
	for _, mv := range monthlyVolumes {
		if mv.Count > maxCount {
			maxCount = mv.Count
		}
	}

	if maxCount == 0 {
		pterm.Warning.Println("No transfers in this period")
		return
	}

	tableData := pterm.TableData{
		{"Month", "Transfers", "", "Volume (USD)", "MoM Change"},
	}

	var prevVolume *float64

	for _, mv := range monthlyVolumes {
		barLength := int((float64(mv.Count) / float64(maxCount)) * 40)
		bar := strings.Repeat("█", barLength)

		barColor := pterm.FgBlue.Sprint(bar)
		change := ""

		if prevVolume != nil {
			// Variação percentual do volume mês a mês
			if *prevVolume < 0.01 {
				if mv.TotalUSD < 0.01 {
					change = pterm.FgYellow.Sprint("0%")
					barColor = pterm.FgYellow.Sprint(bar)
				} else {
					change = pterm.FgGreen.Sprint("N/A")
					barColor = pterm.FgGreen.Sprint(bar)
				}
			} else {
				changePercent := ((mv.TotalUSD - *prevVolume) / *prevVolume) * 100.0

				if math.Abs(changePercent) < 0.01 {
					change = pterm.FgYellow.Sprintf("0%%")
					barColor = pterm.FgYellow.Sprint(bar)
				} else if math.Abs(changePercent) > 999 {
					if changePercent > 0 {
						change = pterm.FgGreen.Sprint(">+999%")
						barColor = pterm.FgGreen.Sprint(bar)
					} else {
						change = pterm.FgRed.Sprint(">-999%")
						barColor = pterm.FgRed.Sprint(bar)
					}
				} else {
					if changePercent > 0 {
						change = pterm.FgGreen.Sprintf("+%.2f%%", changePercent)
						barColor = pterm.FgGreen.Sprint(bar)
					} else {
						change = pterm.FgRed.Sprintf("%.2f%%", changePercent)
						barColor = pterm.FgRed.Sprint(bar)
					}
				}
			}
		}

		tableData = append(tableData, []string{
			mv.Month,
			fmt.Sprintf("%d", mv.Count),
			barColor,
			fmt.Sprintf("$%.2f", mv.TotalUSD),
			change,
		})

		currentVolume := mv.TotalUSD
		prevVolume = &currentVolume
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(tableData)
	renderedTable, _ := table.Srender()

	panel := pterm.DefaultBox.WithTitle("Monthly Volume Trend").WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).Sprint(renderedTable)

	fmt.Println("\n" + panel)
}
