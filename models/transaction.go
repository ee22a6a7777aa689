package models

import "gorm.io/gorm"

// Transaction is an immutable income/expense record. Positive amount is
// income, negative is an expense. The engine reads only sign and magnitude.
type Transaction struct {
    gorm.Model
    UserID uint    `gorm:"index;not null"`
    Amount float64 `gorm:"not null"`
    Note   string
}
