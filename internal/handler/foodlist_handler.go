package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "foodhub/internal/errors"
	"foodhub/internal/service"
)

// FoodListHandler handles the per-user food list endpoints.
type FoodListHandler struct {
	foodListService service.FoodListService
}

// NewFoodListHandler creates a new food list handler.
func NewFoodListHandler(foodListService service.FoodListService) *FoodListHandler {
	return &FoodListHandler{foodListService: foodListService}
}

// FoodListResponse represents a successful append response.
type FoodListResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Add godoc
// @Summary Append entries to the authenticated user's food list
// @Tags foodlist
// @Accept json
// @Produce json
// @Security TokenAuth
// @Param request body []interface{} true "JSON array of entries"
// @Success 200 {object} FoodListResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 401 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /userfood [post]
func (h *FoodListHandler) Add(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	// The body is an array of arbitrary JSON values; elements are stored
	// opaquely in request order.
	var entries []json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&entries); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.MessageResponse{Message: "request body must be a JSON array"})
	}

	if err := h.foodListService.Append(c.Request().Context(), userID, entries); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, apperrors.MessageResponse{Message: httpErr.Message})
	}

	return c.JSON(http.StatusOK, FoodListResponse{
		Success: true,
		Message: "Food list updated.",
	})
}

// Get godoc
// @Summary Get the authenticated user's food list
// @Tags foodlist
// @Produce json
// @Security TokenAuth
// @Success 200 {object} model.FoodList
// @Failure 401 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /userfood [get]
func (h *FoodListHandler) Get(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	list, err := h.foodListService.Get(c.Request().Context(), userID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, apperrors.MessageResponse{Message: httpErr.Message})
	}

	return c.JSON(http.StatusOK, list)
}
