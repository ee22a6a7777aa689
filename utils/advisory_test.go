package utils

import (
	"strings"
	"testing"
)

func TestDetectOverspending(t *testing.T) {
	t.Run("within allowance returns nil", func(t *testing.T) {
		if r := DetectOverspending(0, 100, 150, 100); r != nil {
			t.Errorf("expected nil, got %+v", r)
		}
	})

	t.Run("exactly at allowance returns nil", func(t *testing.T) {
		if r := DetectOverspending(50, 100, 150, 100); r != nil {
			t.Errorf("expected nil, got %+v", r)
		}
	})

	t.Run("overspend is the exact excess", func(t *testing.T) {
		r := DetectOverspending(0, 200, 150, 100)
		if r == nil {
			t.Fatal("expected a recovery advisory")
		}
		if r.Overspent != 50 {
			t.Errorf("Overspent = %v, want 50", r.Overspent)
		}
		if r.TomorrowTarget != 150 {
			t.Errorf("TomorrowTarget = %v, want 150", r.TomorrowTarget)
		}
		if r.DaysAdded != 1 {
			t.Errorf("DaysAdded = %d, want 1", r.DaysAdded)
		}
		if !r.RecoveryRequired {
			t.Error("RecoveryRequired should be true")
		}
	})

	t.Run("accumulated expenses count", func(t *testing.T) {
		r := DetectOverspending(120, 100, 150, 50)
		if r == nil {
			t.Fatal("expected a recovery advisory")
		}
		if r.Overspent != 70 {
			t.Errorf("Overspent = %v, want 70", r.Overspent)
		}
		if r.DaysAdded != 2 { // ceil(70/50)
			t.Errorf("DaysAdded = %d, want 2", r.DaysAdded)
		}
	})

	t.Run("zero savings target is floored", func(t *testing.T) {
		r := DetectOverspending(0, 200, 150, 0)
		if r == nil {
			t.Fatal("expected a recovery advisory")
		}
		if r.DaysAdded != 50 { // ceil(50/1)
			t.Errorf("DaysAdded = %d, want 50", r.DaysAdded)
		}
	})
}

func TestAllocateSurplus(t *testing.T) {
	t.Run("no surplus returns nil", func(t *testing.T) {
		if s := AllocateSurplus(100, 80, 20, surplusGoals()); s != nil {
			t.Errorf("expected nil, got %+v", s)
		}
	})

	t.Run("negative surplus returns nil", func(t *testing.T) {
		if s := AllocateSurplus(100, 150, 20, surplusGoals()); s != nil {
			t.Errorf("expected nil, got %+v", s)
		}
	})

	t.Run("no goals returns nil", func(t *testing.T) {
		if s := AllocateSurplus(500, 100, 0, nil); s != nil {
			t.Errorf("expected nil, got %+v", s)
		}
	})

	t.Run("amount equals the surplus exactly", func(t *testing.T) {
		s := AllocateSurplus(500, 100, 50, surplusGoals())
		if s == nil {
			t.Fatal("expected a surplus allocation")
		}
		if s.Amount != 350 {
			t.Errorf("Amount = %v, want 350", s.Amount)
		}
	})

	t.Run("highest weight wins", func(t *testing.T) {
		s := AllocateSurplus(500, 100, 0, surplusGoals())
		if s == nil {
			t.Fatal("expected a surplus allocation")
		}
		if s.AllocatedTo != "Emergency fund" {
			t.Errorf("AllocatedTo = %s, want Emergency fund", s.AllocatedTo)
		}
	})

	t.Run("first goal wins ties", func(t *testing.T) {
		tied := []PrioritizedGoal{
			{ID: 1, Name: "First", TargetAmount: 1000, Weight: 0.5, DaysRemaining: 10},
			{ID: 2, Name: "Second", TargetAmount: 1000, Weight: 0.5, DaysRemaining: 10},
		}
		s := AllocateSurplus(500, 100, 0, tied)
		if s == nil {
			t.Fatal("expected a surplus allocation")
		}
		if s.AllocatedTo != "First" {
			t.Errorf("AllocatedTo = %s, want First", s.AllocatedTo)
		}
	})

	t.Run("days accelerated from per-day target", func(t *testing.T) {
		// per-day = 2000/10 = 200, surplus = 400 → 2 days
		g := []PrioritizedGoal{{ID: 1, Name: "Trip", TargetAmount: 2000, Weight: 0.5, DaysRemaining: 10}}
		s := AllocateSurplus(500, 100, 0, g)
		if s == nil {
			t.Fatal("expected a surplus allocation")
		}
		if s.DaysAccelerated != 2 {
			t.Errorf("DaysAccelerated = %d, want 2", s.DaysAccelerated)
		}
		if !strings.Contains(s.Message, "Trip") {
			t.Errorf("message should name the goal, got %q", s.Message)
		}
	})
}

func surplusGoals() []PrioritizedGoal {
	return []PrioritizedGoal{
		{ID: 1, Name: "New laptop", TargetAmount: 1500, Weight: 0.3, DaysRemaining: 30},
		{ID: 2, Name: "Emergency fund", TargetAmount: 5000, Weight: 0.5, DaysRemaining: 100},
		{ID: 3, Name: "Holiday", TargetAmount: 1200, Weight: 0.2, DaysRemaining: 60},
	}
}
