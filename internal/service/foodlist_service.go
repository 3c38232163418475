package service

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodhub/internal/model"
	"foodhub/internal/repository"
)

// FoodListService handles the per-user food list.
type FoodListService interface {
	Append(ctx context.Context, userID uuid.UUID, entries []json.RawMessage) error
	Get(ctx context.Context, userID uuid.UUID) (*model.FoodList, error)
}

type foodListService struct {
	repo repository.FoodListRepository
}

// NewFoodListService creates a new food list service.
func NewFoodListService(repo repository.FoodListRepository) FoodListService {
	return &foodListService{repo: repo}
}

// Append extends the user's list with the given entries, preserving prior
// order; the list is created on first append.
func (s *foodListService) Append(ctx context.Context, userID uuid.UUID, entries []json.RawMessage) error {
	return s.repo.AppendEntries(ctx, userID, entries)
}

// Get returns the user's list, or an empty one if nothing was appended yet.
func (s *foodListService) Get(ctx context.Context, userID uuid.UUID) (*model.FoodList, error) {
	list, err := s.repo.FindByUserID(ctx, userID)
	if err == gorm.ErrRecordNotFound {
		return &model.FoodList{UserID: userID, Data: json.RawMessage("[]")}, nil
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}
