package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "foodhub/internal/errors"
	"foodhub/internal/service"
)

// ProfileHandler handles profile endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileResponse is the subset of profile fields exposed to the client.
type ProfileResponse struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	State    string `json:"state"`
	ImgURL   string `json:"imgurl"`
}

// EditRequest carries the replacement profile fields. All five are written
// unconditionally: a present-but-empty field blanks the stored value.
type EditRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	State    string `json:"state"`
}

// ImageResponse represents an image upload response.
type ImageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ImgURL  string `json:"imgurl"`
}

// Profile godoc
// @Summary Get the authenticated user's profile
// @Tags profile
// @Produce json
// @Security TokenAuth
// @Success 200 {object} ProfileResponse
// @Failure 401 {object} errors.MessageResponse
// @Failure 404 {object} errors.MessageResponse
// @Router /profile [get]
func (h *ProfileHandler) Profile(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	user, err := h.profileService.GetProfile(c.Request().Context(), userID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, apperrors.MessageResponse{Message: httpErr.Message})
	}

	return c.JSON(http.StatusOK, ProfileResponse{
		FullName: user.FullName,
		Email:    user.Email,
		Phone:    user.Phone,
		City:     user.City,
		State:    user.State,
		ImgURL:   user.ImgURL,
	})
}

// Edit godoc
// @Summary Replace the authenticated user's profile fields
// @Tags profile
// @Accept json
// @Security TokenAuth
// @Success 200
// @Failure 400 {object} errors.MessageResponse
// @Failure 401 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /edit [put]
func (h *ProfileHandler) Edit(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	var req EditRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.MessageResponse{Message: "invalid request body"})
	}

	if err := h.profileService.UpdateProfile(c.Request().Context(), userID,
		req.FullName, req.Email, req.Phone, req.City, req.State); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, apperrors.MessageResponse{Message: httpErr.Message})
	}

	return c.NoContent(http.StatusOK)
}

// AddImage godoc
// @Summary Upload a profile image
// @Tags profile
// @Accept mpfd
// @Produce json
// @Security TokenAuth
// @Param profileImage formData file true "Profile image"
// @Success 200 {object} ImageResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 401 {object} errors.MessageResponse
// @Failure 404 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /addimage [post]
func (h *ProfileHandler) AddImage(c echo.Context) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("profileImage")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.MessageResponse{Message: "profileImage file is required"})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, apperrors.MessageResponse{Message: "failed to read upload"})
	}
	defer src.Close()

	imgURL, err := h.profileService.AttachImage(c.Request().Context(), userID, fileHeader.Filename, src)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, apperrors.MessageResponse{Message: httpErr.Message})
	}

	return c.JSON(http.StatusOK, ImageResponse{
		Success: true,
		Message: "Image uploaded successfully.",
		ImgURL:  imgURL,
	})
}
