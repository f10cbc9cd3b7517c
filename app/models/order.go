package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
	OrderStatusRefunded  = "refunded"
)

// OrderItem is a single checkout line item. Items are built per request and
// stored on the order as a JSON snapshot; prices are in major units (dollars).
type OrderItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order records a checkout attempt against the payment processor. It is
// created pending when a checkout session is opened and completed once the
// session verifies as paid. TotalAmount is in minor units (cents), matching
// what the processor reports back.
type Order struct {
	ID                    uint           `gorm:"primaryKey" json:"-"`
	UUID                  string         `gorm:"type:varchar(36);uniqueIndex" json:"id"`
	ItemsJSON             string         `gorm:"type:text" json:"-"`
	TotalAmount           int64          `gorm:"not null;default:0" json:"total_amount"`
	Currency              string         `gorm:"type:varchar(10);default:'usd'" json:"currency"`
	Status                string         `gorm:"type:varchar(20);index;default:'pending'" json:"status"`
	CheckoutSessionID     string         `gorm:"type:varchar(255);index" json:"checkout_session_id"`
	PaymentIntentID       string         `gorm:"type:varchar(255)" json:"payment_intent_id,omitempty"`
	CustomerEmail         string         `gorm:"type:varchar(200)" json:"customer_email,omitempty"`
	CustomerName          string         `gorm:"type:varchar(150)" json:"customer_name,omitempty"`
	CompletedAt           *time.Time     `gorm:"type:timestamp;default:null" json:"completed_at,omitempty"`
	CreatedAt             time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt             gorm.DeletedAt `gorm:"index" json:"-"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.UUID == "" {
		o.UUID = uuid.New().String()
	}
	return nil
}

// Items decodes the stored line-item snapshot.
func (o *Order) Items() ([]OrderItem, error) {
	if o.ItemsJSON == "" {
		return nil, nil
	}
	var items []OrderItem
	if err := json.Unmarshal([]byte(o.ItemsJSON), &items); err != nil {
		return nil, err
	}
	return items, nil
}

// SetItems stores the line-item snapshot and derives the total in cents.
func (o *Order) SetItems(items []OrderItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	o.ItemsJSON = string(raw)
	o.TotalAmount = ItemsTotalCents(items)
	return nil
}

// ItemsTotalCents sums line items into minor units. Prices come from the
// static plan table so rounding to the nearest cent is exact.
func ItemsTotalCents(items []OrderItem) int64 {
	var total int64
	for _, it := range items {
		qty := it.Quantity
		if qty < 1 {
			qty = 1
		}
		total += int64(it.Price*100+0.5) * int64(qty)
	}
	return total
}

// MarkCompleted transitions a pending order to completed with the customer
// details the processor reported.
func (o *Order) MarkCompleted(paymentIntentID, email, name string) {
	now := time.Now()
	o.Status = OrderStatusCompleted
	o.PaymentIntentID = paymentIntentID
	o.CustomerEmail = email
	o.CustomerName = name
	o.CompletedAt = &now
}
