package clock

import (
	"time"

	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/entity"
	"github.com/walletpulse/wallet-activity-dashboard-go/internal/domain/repository"
)

// SystemClock implementa o Clock sobre o relógio do sistema.
type SystemClock struct{}

// NewSystemClock cria um novo SystemClock.
func NewSystemClock() repository.Clock {
	return &SystemClock{}
}

// Today retorna o dia de calendário atual em UTC (meia-noite).
func (c *SystemClock) Today() time.Time {
	return entity.DayUTC(time.Now())
}
