package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FoodList holds one user's ordered list of arbitrary JSON entries
// (cart/favorites). At most one list exists per user; entries are
// append-only and never deleted.
type FoodList struct {
	ID        uint            `json:"-" gorm:"primaryKey"`
	UserID    uuid.UUID       `json:"userId" gorm:"type:char(36);uniqueIndex;not null"`
	Data      json.RawMessage `json:"data" gorm:"type:json"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Entries decodes the stored JSON array. A zero-value list decodes to nil.
func (f *FoodList) Entries() ([]json.RawMessage, error) {
	if len(f.Data) == 0 {
		return nil, nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(f.Data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
