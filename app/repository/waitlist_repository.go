package repository

import (
	"github.com/entrext/companion/app/models"
	"gorm.io/gorm"
)

// waitlistRepository implements the WaitlistRepository interface
type waitlistRepository struct {
	db *gorm.DB
}

// NewWaitlistRepository creates a new waitlist repository instance
func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

// Create inserts a new waitlist entry. The unique index on email surfaces a
// duplicate signup as gorm.ErrDuplicatedKey (TranslateError is enabled on
// the connection); mapping that to a stable error kind happens in the
// gateway, not here.
func (r *waitlistRepository) Create(entry *models.WaitlistEntry) error {
	return r.db.Create(entry).Error
}

// GetByEmail retrieves a waitlist entry by email address
func (r *waitlistRepository) GetByEmail(email string) (*models.WaitlistEntry, error) {
	var entry models.WaitlistEntry
	err := r.db.Where("email = ?", email).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// List retrieves waitlist entries with pagination, newest first
func (r *waitlistRepository) List(offset, limit int) ([]models.WaitlistEntry, error) {
	var entries []models.WaitlistEntry
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&entries).Error
	return entries, err
}

// Count returns the total number of waitlist entries
func (r *waitlistRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.WaitlistEntry{}).Count(&count).Error
	return count, err
}
