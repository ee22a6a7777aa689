package utils

import (
	"fmt"
	"math"
)

// Buffer status bands, ordered from worst to best.
const (
	BufferCritical = "CRITICAL"
	BufferLow      = "LOW"
	BufferModerate = "MODERATE"
	BufferHealthy  = "HEALTHY"
)

// BufferReport is the classified safety margin: balance left over after all
// outstanding goal amounts, expressed in days of average expense coverage.
type BufferReport struct {
	Buffer     float64 `json:"buffer"`
	BufferDays int     `json:"buffer_days"`
	Status     string  `json:"status"`
	Message    string  `json:"message"`
}

// ClassifyBuffer turns balance and outstanding savings into a status band.
// A zero averageDailyExpenses falls back to 1000 so the division stays
// defined.
func ClassifyBuffer(totalBalance, totalSavingRequired, averageDailyExpenses float64) BufferReport {
	avg := averageDailyExpenses
	if avg == 0 {
		avg = 1000
	}

	buffer := totalBalance - totalSavingRequired
	days := int(math.Floor(buffer / avg))

	r := BufferReport{Buffer: buffer, BufferDays: days}
	switch {
	case days < 0:
		r.Status = BufferCritical
		r.Message = fmt.Sprintf("Deficit: $%g. Increase income or extend deadlines.", math.Abs(buffer))
	case days < 7:
		r.Status = BufferLow
		r.Message = fmt.Sprintf("%d days of safety. Execute with caution.", days)
	case days < 30:
		r.Status = BufferModerate
		r.Message = fmt.Sprintf("%d days of safety. Maintain discipline.", days)
	default:
		r.Status = BufferHealthy
		r.Message = fmt.Sprintf("%d days of safety. Surplus detected.", days)
	}
	return r
}
