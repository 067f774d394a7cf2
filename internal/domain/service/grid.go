package service

import (
	"time"

	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/entity"
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/shared/types"
)

// BuildGrid monta a grade de contribuição alinhada por semana: 7 linhas
// (segunda a domingo) por N colunas de semanas cobrindo [primeira atividade,
// today]. Células fora do intervalo real são preenchimento com zero.
func BuildGrid(activity entity.ActivityMap, today time.Time) (entity.ActivityGrid, error) {
	if len(activity) == 0 {
		return entity.ActivityGrid{}, types.ErrEmptyActivity
	}

	var start time.Time
	for date := range activity {
		if start.IsZero() || date.Before(start) {
			start = date
		}
	}

	end := entity.DayUTC(today)
	if end.Before(start) {
		// "today" anterior à primeira atividade não encolhe a grade
		end = start
	}

	totalDays := int(end.Sub(start).Hours()/24) + 1

	// Índice do dia da semana com segunda-feira = 0
	leadingPad := (int(start.Weekday()) + 6) % 7

	// Menor múltiplo de 7 que comporta o preenchimento inicial + os dias reais
	weeks := (leadingPad + totalDays + 6) / 7

	flat := make([]int, weeks*7)
	for day := 0; day < totalDays; day++ {
		flat[leadingPad+day] = activity[start.AddDate(0, 0, day)]
	}

	// Remodela em colunas de 7 dias: dia i da sequência → linha i%7, coluna i/7
	cells := make([][]int, 7)
	for row := range cells {
		cells[row] = make([]int, weeks)
		for week := 0; week < weeks; week++ {
			cells[row][week] = flat[week*7+row]
		}
	}

	return entity.ActivityGrid{
		Cells:     cells,
		Weeks:     weeks,
		StartDate: start,
		EndDate:   end,
	}, nil
}
