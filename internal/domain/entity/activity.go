package entity

import "time"

// ActivityMap mapeia um dia de calendário (meia-noite UTC) para o número de
// transferências recebidas naquele dia. Dias sem atividade não têm entrada.
type ActivityMap map[time.Time]int

// DayUTC trunca um instante para o dia de calendário correspondente em UTC.
func DayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ActivityGrid is a week-aligned occurrence matrix for calendar-heatmap
// rendering: 7 rows (Monday first) by Weeks columns. Cells outside
// [StartDate, EndDate] are zero padding.
type ActivityGrid struct {
	Cells     [][]int   `json:"cells"`
	Weeks     int       `json:"weeks"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}
