package service

import (
	"sort"
	"time"

	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/entity"
)

// ComputeStreaks calcula os streaks atual e mais longo de dias consecutivos
// de atividade. O streak atual só conta se o último dia ativo for exatamente
// o dia "today" injetado; caso contrário o streak está quebrado e vale zero.
func ComputeStreaks(activity entity.ActivityMap, today time.Time) entity.StreakResult {
	if len(activity) == 0 {
		return entity.StreakResult{}
	}

	dates := make([]time.Time, 0, len(activity))
	for date := range activity {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	currentStreak := 0
	longestStreak := 0
	var previousDate time.Time

	for _, date := range dates {
		if !previousDate.IsZero() && date.Equal(previousDate.AddDate(0, 0, 1)) {
			currentStreak++
		} else {
			// Lacuna de dois ou mais dias reinicia; um dia isolado conta como 1
			currentStreak = 1
		}

		if currentStreak > longestStreak {
			longestStreak = currentStreak
		}
		previousDate = date
	}

	if !dates[len(dates)-1].Equal(entity.DayUTC(today)) {
		currentStreak = 0
	}

	return entity.StreakResult{CurrentStreak: currentStreak, LongestStreak: longestStreak}
}
