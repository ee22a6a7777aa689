package utils

import (
	"fmt"
	"math"
)

// OverspendingRecovery describes an overspending event and the next-day
// compensation required to absorb it.
type OverspendingRecovery struct {
	Overspent        float64 `json:"overspent"`
	RecoveryRequired bool    `json:"recovery_required"`
	TomorrowTarget   float64 `json:"tomorrow_target"`
	DaysAdded        int     `json:"days_added"`
	Message          string  `json:"message"`
}

// DetectOverspending checks a new expense against the spending buffer the
// user was last shown (the stored value, not the one being recalculated in
// the same pass). Returns nil while today's total stays within the buffer.
//
// A savings target below 1 is floored to 1 so the delay estimate stays
// finite when no target is set.
func DetectOverspending(todayExpenses, expenseAmount, dailySpendingBuffer, dailySavingsTarget float64) *OverspendingRecovery {
	todayTotal := todayExpenses + expenseAmount
	if todayTotal <= dailySpendingBuffer {
		return nil
	}

	overspent := todayTotal - dailySpendingBuffer
	target := dailySavingsTarget
	if target < 1 {
		target = 1
	}
	daysAdded := int(math.Ceil(overspent / target))
	tomorrow := dailySavingsTarget + overspent

	return &OverspendingRecovery{
		Overspent:        overspent,
		RecoveryRequired: true,
		TomorrowTarget:   tomorrow,
		DaysAdded:        daysAdded,
		Message: fmt.Sprintf("Overspent by $%g. Tomorrow's target: $%g. All goals delayed by %d days.",
			overspent, tomorrow, daysAdded),
	}
}

// PrioritizedGoal is the allocator's view of a goal. DaysRemaining must be
// attached by the caller; the allocator never recomputes it.
type PrioritizedGoal struct {
	ID            uint
	Name          string
	TargetAmount  float64
	Weight        float64
	DaysRemaining int
}

// SurplusAllocation names the goal that receives today's surplus and how
// many days that pulls its finish date forward.
type SurplusAllocation struct {
	Amount          float64 `json:"amount"`
	GoalID          uint    `json:"goal_id"`
	AllocatedTo     string  `json:"allocated_to"`
	DaysAccelerated int     `json:"days_accelerated"`
	Message         string  `json:"message"`
}

// AllocateSurplus directs income left over after the savings target and
// today's expenses to the goal in the highest-weighted category. On equal
// weights the first goal in iteration order wins. Returns nil when there is
// no surplus or no goals.
func AllocateSurplus(income, savingsTarget, expenses float64, goals []PrioritizedGoal) *SurplusAllocation {
	surplus := income - (savingsTarget + expenses)
	if surplus <= 0 || len(goals) == 0 {
		return nil
	}

	best := goals[0]
	for _, g := range goals[1:] {
		if g.Weight > best.Weight {
			best = g
		}
	}

	days := best.DaysRemaining
	if days < 1 {
		days = 1
	}
	accelerated := 0
	if perDay := best.TargetAmount / float64(days); perDay > 0 {
		accelerated = int(math.Floor(surplus / perDay))
	}

	return &SurplusAllocation{
		Amount:          surplus,
		GoalID:          best.ID,
		AllocatedTo:     best.Name,
		DaysAccelerated: accelerated,
		Message:         fmt.Sprintf("Surplus: $%g. %s accelerated by %d days.", surplus, best.Name, accelerated),
	}
}
