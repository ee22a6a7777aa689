package models

import (
    "time"

    "gorm.io/gorm"
)

// Goal status values assigned by the progress classifier.
const (
    GoalAhead   = "AHEAD"
    GoalOnTrack = "ON_TRACK"
    GoalBehind  = "BEHIND"
)

type Goal struct {
    gorm.Model
    UserID      uint   `gorm:"index;not null"`
    Name        string `gorm:"not null"`
    Description string

    TargetAmount float64 `gorm:"not null"`
    SavedAmount  float64 // grows with allocations; not clamped to TargetAmount
    TargetDate   time.Time

    CategoryID *uint
    Category   *Category

    Status        string `gorm:"size:16"` // AHEAD | ON_TRACK | BEHIND
    DaysOffset    int
    StatusMessage string
}

// Weight returns the category weight, 0 for uncategorized goals.
func (g *Goal) Weight() float64 {
    if g.Category == nil {
        return 0
    }
    return g.Category.Weight
}
