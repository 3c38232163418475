package repository

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"foodhub/internal/model"
)

// FoodListRepository defines food list persistence operations.
type FoodListRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.FoodList, error)
	AppendEntries(ctx context.Context, userID uuid.UUID, entries []json.RawMessage) error
}

type foodListRepository struct {
	db *gorm.DB
}

// NewFoodListRepository creates a new food list repository.
func NewFoodListRepository(db *gorm.DB) FoodListRepository {
	return &foodListRepository{db: db}
}

// FindByUserID finds the food list owned by a user.
func (r *foodListRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.FoodList, error) {
	var list model.FoodList
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// AppendEntries appends entries to the user's list, creating it on first use.
// The read-modify-write runs inside a transaction holding a FOR UPDATE lock
// on the list row, so concurrent appends to the same list serialize instead
// of overwriting each other.
func (r *foodListRepository) AppendEntries(ctx context.Context, userID uuid.UUID, entries []json.RawMessage) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var list model.FoodList
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&list).Error
		if err == gorm.ErrRecordNotFound {
			data, err := json.Marshal(entries)
			if err != nil {
				return err
			}
			list = model.FoodList{UserID: userID, Data: data}
			return tx.Create(&list).Error
		}
		if err != nil {
			return err
		}

		existing, err := list.Entries()
		if err != nil {
			return err
		}
		data, err := json.Marshal(append(existing, entries...))
		if err != nil {
			return err
		}
		list.Data = data
		return tx.Save(&list).Error
	})
}
