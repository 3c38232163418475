package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "foodhub/internal/errors"
	"foodhub/internal/model"
	"foodhub/internal/service"
	"foodhub/internal/validation"
)

// AuthHandler handles registration and authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	State    string `json:"state"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest represents a logout request.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse represents a successful registration or login response.
type AuthResponse struct {
	Message      string `json:"message"`
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.ValidationResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.MessageResponse{Message: "invalid request body"})
	}

	if errs := validation.Registration(req.FullName, req.Email, req.Password); len(errs) > 0 {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.ValidationResponse{Errors: errs})
	}

	return h.register(c, &req)
}

// QuickRegister godoc
// @Summary Register a new user without field-format validation
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 500 {object} errors.MessageResponse
// @Router /goregister [post]
func (h *AuthHandler) QuickRegister(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.MessageResponse{Message: "invalid request body"})
	}

	// Format rules are skipped, but the record still needs a usable
	// credential pair for a token to be issued against it.
	if req.Email == "" || req.Password == "" {
		httpErr := apperrors.MapErrorToHTTP(apperrors.ErrMissingFields)
		return echo.NewHTTPError(httpErr.StatusCode, apperrors.MessageResponse{Message: httpErr.Message})
	}

	return h.register(c, &req)
}

func (h *AuthHandler) register(c echo.Context, req *RegisterRequest) error {
	user := &model.User{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		City:     req.City,
		State:    req.State,
	}

	accessToken, refreshToken, err := h.authService.Register(c.Request().Context(), user, req.Password)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, apperrors.MessageResponse{Message: httpErr.Message})
	}

	return c.JSON(http.StatusCreated, AuthResponse{
		Message:      "User registered successfully.",
		Token:        accessToken,
		RefreshToken: refreshToken,
	})
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 401 {object} errors.MessageResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.MessageResponse{Message: "invalid request body"})
	}

	// Presence only; login does not re-check field formats.
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.MessageResponse{Message: apperrors.ErrMissingFields.Error()})
	}

	accessToken, refreshToken, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, apperrors.MessageResponse{Message: httpErr.Message})
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Message:      "Login successful.",
		Token:        accessToken,
		RefreshToken: refreshToken,
	})
}

// Refresh godoc
// @Summary Refresh access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 401 {object} errors.MessageResponse
// @Router /refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.MessageResponse{Message: "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.MessageResponse{Message: "refresh_token is required"})
	}

	accessToken, err := h.authService.RefreshToken(c.Request().Context(), req.RefreshToken)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, apperrors.MessageResponse{Message: httpErr.Message})
	}

	return c.JSON(http.StatusOK, AuthResponse{
		Message: "Token refreshed.",
		Token:   accessToken,
	})
}

// Logout godoc
// @Summary Logout user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LogoutRequest true "Refresh token"
// @Success 200 {object} errors.MessageResponse
// @Failure 400 {object} errors.MessageResponse
// @Failure 401 {object} errors.MessageResponse
// @Router /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.MessageResponse{Message: "invalid request body"})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, apperrors.MessageResponse{Message: "refresh_token is required"})
	}

	if err := h.authService.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, apperrors.MessageResponse{Message: httpErr.Message})
	}

	return c.JSON(http.StatusOK, apperrors.MessageResponse{Message: "Logged out successfully."})
}
