package models

// Income is a single recorded income amount. Immutable once created except
// by deletion through clear-all.
type Income struct {
	Base
	UserID string  `gorm:"not null;index" json:"userId"`
	Amount float64 `gorm:"not null" json:"amount"`
}
