package dogstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound reports a lookup for a dog that does not exist.
var ErrNotFound = errors.New("dogstore: dog not found")

// Repository implements relational access to dogs and their images.
type Repository struct {
	store *Store
}

// NewRepository binds the repository to a Store.
func NewRepository(store *Store) *Repository {
	return &Repository{store: store}
}

// CreateDogWithImages inserts the dog row together with its image rows in one
// transaction. IDs are populated on the passed value.
func (r *Repository) CreateDogWithImages(ctx context.Context, dog *Dog) error {
	if err := r.store.DB().WithContext(ctx).Create(dog).Error; err != nil {
		return fmt.Errorf("dogstore: failed to create dog: %w", err)
	}
	return nil
}

// GetDogWithImagesByID loads a dog and preloads its images. Missing rows
// yield ErrNotFound.
func (r *Repository) GetDogWithImagesByID(ctx context.Context, dogID int64) (*Dog, error) {
	var dog Dog
	err := r.store.DB().WithContext(ctx).Preload("Images").First(&dog, dogID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, dogID)
	}
	if err != nil {
		return nil, fmt.Errorf("dogstore: failed to load dog %d: %w", dogID, err)
	}
	return &dog, nil
}

// UpdateIsMatched flips the matched flag on the dog row. Updating a missing
// dog yields ErrNotFound.
func (r *Repository) UpdateIsMatched(ctx context.Context, dogID int64, isMatched bool) error {
	res := r.store.DB().WithContext(ctx).
		Model(&Dog{}).
		Where("id = ?", dogID).
		Update("is_matched", isMatched)
	if res.Error != nil {
		return fmt.Errorf("dogstore: failed to update dog %d: %w", dogID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, dogID)
	}
	return nil
}

// UpdateIsVerified flips the moderation flag on the dog row.
func (r *Repository) UpdateIsVerified(ctx context.Context, dogID int64, isVerified bool) error {
	res := r.store.DB().WithContext(ctx).
		Model(&Dog{}).
		Where("id = ?", dogID).
		Update("is_verified", isVerified)
	if res.Error != nil {
		return fmt.Errorf("dogstore: failed to update dog %d: %w", dogID, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrNotFound, dogID)
	}
	return nil
}
