package models

// Expense is a single recorded expense amount, optionally labelled with one
// of the owner's categories. A nil CategoryID means "uncategorized"; deleting
// a category nulls the reference rather than cascading.
type Expense struct {
	Base
	UserID     string  `gorm:"not null;index" json:"userId"`
	Amount     float64 `gorm:"not null" json:"amount"`
	CategoryID *string `gorm:"type:uuid" json:"categoryId"`

	// Relationships
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category"`
}
