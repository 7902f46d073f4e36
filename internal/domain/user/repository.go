package user

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repository handles user data access
type Repository struct {
	db *gorm.DB
}

// NewRepository creates user repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new user
func (r *Repository) Create(ctx context.Context, u *User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// GetByID retrieves a user by ID, nil when absent
func (r *Repository) GetByID(ctx context.Context, id int64) (*User, error) {
	var u User
	tx := r.db.WithContext(ctx).First(&u, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}

// GetByUsername retrieves a user by unique username, nil when absent
func (r *Repository) GetByUsername(ctx context.Context, username string) (*User, error) {
	var u User
	tx := r.db.WithContext(ctx).Where("username = ?", username).First(&u)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &u, nil
}
