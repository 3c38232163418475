package router

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"foodhub/internal/auth"
	"foodhub/internal/config"
	apperrors "foodhub/internal/errors"
	"foodhub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	foodListHandler *handler.FoodListHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Liveness probe
	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, "hola")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Uploaded profile images are served publicly.
	e.Static("/uploads", cfg.UploadDir)

	api := e.Group("/api")

	// Public routes
	api.POST("/register", authHandler.Register)
	api.POST("/goregister", authHandler.QuickRegister)
	api.POST("/login", authHandler.Login)
	api.POST("/refresh", authHandler.Refresh)
	api.POST("/logout", authHandler.Logout)

	// Secured routes. Clients send the raw token in the authorization
	// header with no Bearer scheme, hence the trailing empty cut-prefix
	// in the lookup.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		TokenLookup: "header:authorization:",
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			return jwtService.ValidateToken(tokenString)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			message := "missing or invalid token"
			if errors.Is(err, auth.ErrTokenExpired) {
				message = "token expired"
			}
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.MessageResponse{Message: message})
		},
	}))

	// Profile routes
	secured.GET("/profile", profileHandler.Profile)
	secured.PUT("/edit", profileHandler.Edit)
	secured.POST("/addimage", profileHandler.AddImage)

	// Food list routes
	secured.POST("/userfood", foodListHandler.Add)
	secured.GET("/userfood", foodListHandler.Get)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
