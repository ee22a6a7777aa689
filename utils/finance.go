package utils

import (
	"math"
	"time"

	"backend/models"
)

// DaysRemaining counts whole days from today (midnight) until the target
// date, never less than 1 so per-day figures stay finite.
func DaysRemaining(targetDate, today time.Time) int {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	days := int(math.Ceil(targetDate.Sub(start).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

// CalculateDailySavingTarget sums, across goals that still need money, the
// per-day amount weighted by each goal's category weight. Uncategorized
// goals carry weight 0 and contribute nothing. Returns the ceiling of the
// sum, 0 for an empty goal set.
//
// Re-derived on every transaction: both "today" and saved amounts move.
func CalculateDailySavingTarget(goals []models.Goal, today time.Time) float64 {
	var total float64
	for i := range goals {
		g := &goals[i]
		remaining := g.TargetAmount - g.SavedAmount
		if remaining <= 0 {
			continue
		}
		days := DaysRemaining(g.TargetDate, today)
		total += remaining / float64(days) * g.Weight()
	}
	return math.Ceil(total)
}

// TotalSavingRequired sums the remaining-to-save across goals. Goals already
// at or past their target contribute nothing.
func TotalSavingRequired(goals []models.Goal) float64 {
	var total float64
	for i := range goals {
		remaining := goals[i].TargetAmount - goals[i].SavedAmount
		if remaining > 0 {
			total += remaining
		}
	}
	return total
}

// CalculateDailySpendingBuffer derives today's safe-to-spend figure from two
// independent estimates and keeps the lower one:
//
//   - immediate: today's income minus the daily savings target
//   - long-horizon: what is left of the balance after all outstanding goal
//     amounts, spread over the longest remaining goal duration
//
// The result is floored at zero: the user is never told a negative
// allowance, even when both estimates are negative.
func CalculateDailySpendingBuffer(totalBalance, todayIncome, dailySavingTarget float64, goals []models.Goal, today time.Time) float64 {
	immediate := todayIncome - dailySavingTarget

	var required float64
	longest := 0
	for i := range goals {
		g := &goals[i]
		remaining := g.TargetAmount - g.SavedAmount
		if remaining <= 0 {
			continue
		}
		required += remaining
		if d := DaysRemaining(g.TargetDate, today); d > longest {
			longest = d
		}
	}

	longTerm := 0.0
	if longest > 0 {
		longTerm = (totalBalance - required) / float64(longest)
	}

	return math.Floor(math.Max(0, math.Min(immediate, longTerm)))
}
