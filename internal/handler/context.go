package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"foodhub/internal/auth"
	apperrors "foodhub/internal/errors"
)

// userIDFromContext reads the user ID out of the verified token claims that
// the JWT middleware stored on the request context.
func userIDFromContext(c echo.Context) (uuid.UUID, error) {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.MessageResponse{Message: "invalid token"})
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.MessageResponse{Message: "invalid token"})
	}
	return id, nil
}
