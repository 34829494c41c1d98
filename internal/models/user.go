package models

import "time"

// User mirrors an identity issued by the external auth provider. The ID is
// the provider's stable subject, never generated locally. Rows are upserted
// lazily on first touch and are never deleted by the application.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     *string   `gorm:"uniqueIndex" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
