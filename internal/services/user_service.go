package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "spendwise/internal/errors"
	"spendwise/internal/models"
)

// userService handles identity bookkeeping.
type userService struct {
	db *gorm.DB
}

// NewUserService creates a new UserServicer.
func NewUserService(db *gorm.DB) UserServicer {
	return &userService{db: db}
}

// EnsureUser makes sure a row exists for the authenticated identity. With an
// email it upserts (keeping the stored email current); without one it only
// creates the row if missing. Idempotent, safe to call on every request.
func (s *userService) EnsureUser(userID string, email *string) (*models.User, error) {
	user := &models.User{ID: userID, Email: email}

	conflict := clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoNothing: true,
	}
	if email != nil {
		conflict = clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "updated_at"}),
		}
	}

	if err := s.db.Clauses(conflict).Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return user, nil
}
