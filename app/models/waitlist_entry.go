package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WaitlistEntry is a pre-launch signup. Rows are insert-only; the unique
// index on Email makes a duplicate signup a constraint violation instead of
// a second row.
type WaitlistEntry struct {
	ID        uint           `gorm:"primaryKey" json:"-"`
	UUID      string         `gorm:"type:varchar(36);uniqueIndex" json:"id"`
	Email     string         `gorm:"uniqueIndex;type:varchar(200) CHARACTER SET utf8 COLLATE utf8_bin" json:"email" validate:"required,email,min=5,max=200"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (w *WaitlistEntry) Validate() error {
	v := validator.New()

	return v.Struct(w)
}

func (w *WaitlistEntry) BeforeCreate(tx *gorm.DB) error {
	if w.UUID == "" {
		w.UUID = uuid.New().String()
	}
	return nil
}

func NewWaitlistEntry(email string) (*WaitlistEntry, error) {
	w := &WaitlistEntry{
		UUID:  uuid.New().String(),
		Email: email,
	}

	if err := w.Validate(); err != nil {
		return nil, err
	}

	return w, nil
}
