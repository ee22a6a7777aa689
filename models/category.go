package models

import "gorm.io/gorm"

// Category groups goals and carries the fraction of income directed to
// goals in that category. Weights are not forced to sum to 1 across
// categories; that is up to whoever curates the seed set.
type Category struct {
    gorm.Model
    Name   string  `gorm:"uniqueIndex;not null"`
    Weight float64 `gorm:"not null"`
}
