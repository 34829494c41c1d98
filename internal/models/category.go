package models

// Category is a user-defined label attachable to expenses. Names are unique
// per owner; the composite index backs the duplicate check under concurrent
// creates.
type Category struct {
	Base
	UserID string `gorm:"not null;index;uniqueIndex:idx_categories_user_name" json:"userId"`
	Name   string `gorm:"not null;uniqueIndex:idx_categories_user_name" json:"name"`

	// Relationships
	Expenses []Expense `gorm:"foreignKey:CategoryID" json:"expenses,omitempty"`
}
