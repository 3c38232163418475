package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"foodhub/internal/auth"
	"foodhub/internal/model"
)

// MockFoodListService is a mock implementation of service.FoodListService.
type MockFoodListService struct {
	mock.Mock
}

func (m *MockFoodListService) Append(ctx context.Context, userID uuid.UUID, entries []json.RawMessage) error {
	args := m.Called(ctx, userID, entries)
	return args.Error(0)
}

func (m *MockFoodListService) Get(ctx context.Context, userID uuid.UUID) (*model.FoodList, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.FoodList), args.Error(1)
}

func TestFoodListHandler_Add(t *testing.T) {
	userID := uuid.New()
	mockSvc := new(MockFoodListService)
	mockSvc.On("Append", mock.Anything, userID, mock.AnythingOfType("[]json.RawMessage")).Return(nil)
	h := NewFoodListHandler(mockSvc)

	c, rec := newTestContext(t, http.MethodPost, "/api/userfood", `[{"dish":"tacos"},"apple"]`)
	c.Set("user", &auth.Claims{UserID: userID.String()})

	assert.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	entries := mockSvc.Calls[0].Arguments.Get(2).([]json.RawMessage)
	assert.Len(t, entries, 2)
	assert.JSONEq(t, `{"dish":"tacos"}`, string(entries[0]))

	mockSvc.AssertExpectations(t)
}

func TestFoodListHandler_AddRejectsNonArray(t *testing.T) {
	mockSvc := new(MockFoodListService)
	h := NewFoodListHandler(mockSvc)

	c, _ := newTestContext(t, http.MethodPost, "/api/userfood", `{"dish":"tacos"}`)
	c.Set("user", &auth.Claims{UserID: uuid.New().String()})

	err := h.Add(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	mockSvc.AssertNotCalled(t, "Append")
}

func TestFoodListHandler_AddWithoutClaims(t *testing.T) {
	mockSvc := new(MockFoodListService)
	h := NewFoodListHandler(mockSvc)

	c, _ := newTestContext(t, http.MethodPost, "/api/userfood", `[1]`)

	err := h.Add(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)

	mockSvc.AssertNotCalled(t, "Append")
}

func TestFoodListHandler_Get(t *testing.T) {
	userID := uuid.New()
	mockSvc := new(MockFoodListService)
	mockSvc.On("Get", mock.Anything, userID).Return(&model.FoodList{
		UserID: userID,
		Data:   json.RawMessage(`[{"dish":"tacos"}]`),
	}, nil)
	h := NewFoodListHandler(mockSvc)

	c, rec := newTestContext(t, http.MethodGet, "/api/userfood", "")
	c.Set("user", &auth.Claims{UserID: userID.String()})

	assert.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dish":"tacos"`)

	mockSvc.AssertExpectations(t)
}
