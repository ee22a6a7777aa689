package models

import (
    "gorm.io/gorm"
)

// Profile holds each user's running financial state. One row per user,
// created at registration and rewritten by the finance engine after every
// transaction.
type Profile struct {
    gorm.Model
    UserID uint `gorm:"uniqueIndex;not null"`

    TotalBalance  float64
    TodayIncome   float64
    TodayExpenses float64

    DailySavingsTarget  float64
    DailySpendingBuffer float64

    BufferStatus string `gorm:"size:16"` // CRITICAL | LOW | MODERATE | HEALTHY
    BufferDays   int    // may be negative when in deficit

    // Used to express the buffer in days of coverage. Zero means "unset";
    // the classifier falls back to 1000.
    AverageDailyExpenses float64

    // Serialized advisory snapshots from the most recent recalculation.
    // NULL when the last event produced none.
    SurplusAllocation    *string `gorm:"type:text"`
    OverspendingRecovery *string `gorm:"type:text"`
}
