package types

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyActivity é retornado quando a grade de contribuição é pedida
	// sem nenhum dia de atividade: sem uma data inicial não há eixo de tempo.
	ErrEmptyActivity = errors.New("no activity days: cannot build a contribution grid without a start date")

	ErrNoWallets = errors.New("no wallet addresses provided. Use --wallets or a config file")
)

// DataError indicates a transfer record with a missing or malformed field.
// Records are never silently skipped; a bad record aborts the whole analysis.
type DataError struct {
	Index  int
	Field  string
	Reason string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("invalid transfer record %d: field %q %s", e.Index, e.Field, e.Reason)
}
