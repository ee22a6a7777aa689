package utils

import (
	"testing"
	"time"

	"backend/models"
)

var testToday = time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

func testGoal(target, saved float64, days int, weight float64) models.Goal {
	g := models.Goal{
		TargetAmount: target,
		SavedAmount:  saved,
		TargetDate:   time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days),
	}
	if weight > 0 {
		g.Category = &models.Category{Weight: weight}
	}
	return g
}

func TestDaysRemaining(t *testing.T) {
	tests := []struct {
		name   string
		target time.Time
		want   int
	}{
		{"ten days out", testToday.AddDate(0, 0, 10), 10},
		{"tomorrow", time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC), 1},
		{"today", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), 1},
		{"past date floors to one", testToday.AddDate(0, 0, -5), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysRemaining(tt.target, testToday); got != tt.want {
				t.Errorf("DaysRemaining() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateDailySavingTarget(t *testing.T) {
	tests := []struct {
		name  string
		goals []models.Goal
		want  float64
	}{
		{"empty set", nil, 0},
		{"single goal", []models.Goal{testGoal(1000, 0, 10, 1.0)}, 100},
		{"weighted goal", []models.Goal{testGoal(1000, 0, 10, 0.5)}, 50},
		{"completed goal contributes nothing", []models.Goal{testGoal(1000, 1000, 10, 1.0)}, 0},
		{"overfunded goal contributes nothing", []models.Goal{testGoal(1000, 1500, 10, 1.0)}, 0},
		{"uncategorized goal has weight zero", []models.Goal{testGoal(1000, 0, 10, 0)}, 0},
		{"sum is ceiled", []models.Goal{testGoal(100, 0, 3, 1.0)}, 34},
		{"mixed set", []models.Goal{
			testGoal(1000, 0, 10, 0.5),
			testGoal(600, 100, 5, 0.2),
			testGoal(300, 300, 3, 1.0),
		}, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDailySavingTarget(tt.goals, testToday)
			if got != tt.want {
				t.Errorf("CalculateDailySavingTarget() = %v, want %v", got, tt.want)
			}
			if got < 0 {
				t.Errorf("target must never be negative, got %v", got)
			}
		})
	}
}

func TestTotalSavingRequired(t *testing.T) {
	goals := []models.Goal{
		testGoal(1000, 200, 10, 1.0),
		testGoal(500, 500, 5, 1.0),
		testGoal(300, 400, 3, 1.0),
	}
	if got := TotalSavingRequired(goals); got != 800 {
		t.Errorf("TotalSavingRequired() = %v, want 800", got)
	}
	if got := TotalSavingRequired(nil); got != 0 {
		t.Errorf("TotalSavingRequired(nil) = %v, want 0", got)
	}
}

func TestCalculateDailySpendingBuffer(t *testing.T) {
	tests := []struct {
		name         string
		totalBalance float64
		todayIncome  float64
		target       float64
		goals        []models.Goal
		want         float64
	}{
		{
			// immediate = 400, long = (5000-1000)/10 = 400
			name: "estimates agree", totalBalance: 5000, todayIncome: 500, target: 100,
			goals: []models.Goal{testGoal(1000, 0, 10, 1.0)},
			want:  400,
		},
		{
			// immediate = 100 is the lower estimate
			name: "immediate method wins", totalBalance: 10000, todayIncome: 200, target: 100,
			goals: []models.Goal{testGoal(1000, 0, 10, 1.0)},
			want:  100,
		},
		{
			// long = (1500-1000)/10 = 50 is the lower estimate
			name: "long-horizon method wins", totalBalance: 1500, todayIncome: 1000, target: 100,
			goals: []models.Goal{testGoal(1000, 0, 10, 1.0)},
			want:  50,
		},
		{
			// both estimates negative, clamped to zero
			name: "never negative", totalBalance: 100, todayIncome: 0, target: 500,
			goals: []models.Goal{testGoal(2000, 0, 10, 1.0)},
			want:  0,
		},
		{
			// no outstanding goals: long-horizon estimate is zero
			name: "no outstanding goals", totalBalance: 5000, todayIncome: 500, target: 0,
			goals: []models.Goal{testGoal(1000, 1000, 10, 1.0)},
			want:  0,
		},
		{
			name: "empty goal set", totalBalance: 5000, todayIncome: 500, target: 0,
			goals: nil,
			want:  0,
		},
		{
			// fractional result is floored: (1400-1000)/7 = 57.14 → 57
			name: "floored", totalBalance: 1400, todayIncome: 1000, target: 100,
			goals: []models.Goal{testGoal(1000, 0, 7, 1.0)},
			want:  57,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateDailySpendingBuffer(tt.totalBalance, tt.todayIncome, tt.target, tt.goals, testToday)
			if got != tt.want {
				t.Errorf("CalculateDailySpendingBuffer() = %v, want %v", got, tt.want)
			}
			if got < 0 {
				t.Errorf("buffer must never be negative, got %v", got)
			}
		})
	}
}
