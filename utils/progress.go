package utils

import (
	"fmt"
	"math"
	"time"

	"backend/models"
)

// ProgressReport compares how much of a goal is saved against how much of
// its lifetime has passed.
type ProgressReport struct {
	Status     string `json:"status"`
	DaysOffset int    `json:"days_offset"`
	Message    string `json:"message"`
}

// ClassifyGoalProgress marks a goal AHEAD or BEHIND when actual progress
// diverges from the time-based expectation by at least 10 percentage
// points, ON_TRACK otherwise. A goal due the day it was created is treated
// as having a one-day duration.
func ClassifyGoalProgress(g models.Goal, now time.Time) ProgressReport {
	total := g.TargetDate.Sub(g.CreatedAt)
	if total < 24*time.Hour {
		total = 24 * time.Hour
	}
	elapsed := now.Sub(g.CreatedAt)

	expected := elapsed.Seconds() / total.Seconds()
	actual := 0.0
	if g.TargetAmount > 0 {
		actual = g.SavedAmount / g.TargetAmount
	}

	diff := actual - expected
	daysOffset := int(math.Floor(diff * total.Hours() / 24))

	r := ProgressReport{DaysOffset: daysOffset}
	switch {
	case diff >= 0.1:
		r.Status = models.GoalAhead
	case diff <= -0.1:
		r.Status = models.GoalBehind
	default:
		r.Status = models.GoalOnTrack
	}

	switch {
	case daysOffset > 0:
		r.Message = fmt.Sprintf("%d days ahead of schedule", daysOffset)
	case daysOffset < 0:
		r.Message = fmt.Sprintf("%d days behind schedule", -daysOffset)
	default:
		r.Message = "On track with schedule"
	}
	return r
}
