package types

import "time"

// ConsoleInterface define a interface para saída no console.
type ConsoleInterface interface {
	Print(a ...interface{})
	Printf(format string, a ...interface{})
	Println(a ...interface{})

	LogInfo(format string, a ...interface{})
	LogWarning(format string, a ...interface{})
	LogError(format string, a ...interface{})
	LogSuccess(format string, a ...interface{})

	Status(message string) StatusHandle
	ProgressWithTotal(total int) ProgressHandle

	CreateTable() TableInterface
	DisplayActivityGrid(grid HeatmapData)
	DisplayTrendBars(monthlyVolumes []MonthlyVolume)
}

// StatusHandle é uma interface para atualizar uma mensagem de status.
type StatusHandle interface {
	Update(message string)
	Stop()
}

// ProgressHandle é uma interface para atualizar uma barra de progresso.
type ProgressHandle interface {
	Increment()
	Stop()
}

// TableInterface define a interface para criar e manipular tabelas.
type TableInterface interface {
	AddColumn(name string, options ...interface{})
	AddRow(cells ...interface{})
	Render() string
}

// HeatmapData carrega a grade de contribuição pronta para renderização:
// 7 linhas (segunda a domingo) por Weeks colunas.
type HeatmapData struct {
	Cells     [][]int
	Weeks     int
	StartDate time.Time
	EndDate   time.Time
}

// MonthlyVolume representa a atividade de um mês específico, usada para
// gráficos de tendência.
type MonthlyVolume struct {
	Month    string
	Count    int
	TotalUSD float64
}
