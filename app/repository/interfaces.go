package repository

import (
	"github.com/entrext/companion/app/models"
)

// WaitlistRepository defines the interface for waitlist database operations
type WaitlistRepository interface {
	Create(entry *models.WaitlistEntry) error
	GetByEmail(email string) (*models.WaitlistEntry, error)
	List(offset, limit int) ([]models.WaitlistEntry, error)
	Count() (int64, error)
}

// OrderRepository defines the interface for order database operations
type OrderRepository interface {
	Create(order *models.Order) error
	GetByUUID(uuid string) (*models.Order, error)
	GetByCheckoutSessionID(sessionID string) (*models.Order, error)
	Update(order *models.Order) error
	List(offset, limit int) ([]models.Order, error)
	Count() (int64, error)
}
