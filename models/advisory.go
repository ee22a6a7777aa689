package models

import "time"

// Advisory type tags emitted by the finance engine.
const (
    AdvisorySurplus        = "surplus"
    AdvisoryOverspending   = "overspending"
    AdvisoryBufferCritical = "buffer.critical"
)

type Advisory struct {
    ID        uint      `gorm:"primaryKey"`
    UserID    uint      `gorm:"index"`
    Type      string    `gorm:"size:20"`
    Message   string    `gorm:"type:text"`
    CreatedAt time.Time
}
