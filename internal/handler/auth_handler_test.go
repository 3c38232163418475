package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "foodhub/internal/errors"
	"foodhub/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, user *model.User, password string) (string, string, error) {
	args := m.Called(ctx, user, password)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, string, *model.User, error) {
	args := m.Called(ctx, email, password)
	var user *model.User
	if args.Get(2) != nil {
		user = args.Get(2).(*model.User)
	}
	return args.String(0), args.String(1), user, args.Error(3)
}

func (m *MockAuthService) RefreshToken(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_RegisterValidationErrors(t *testing.T) {
	mockSvc := new(MockAuthService)
	h := NewAuthHandler(mockSvc)

	c, _ := newTestContext(t, http.MethodPost, "/api/register",
		`{"fullName":"Jane","email":"not-an-email","password":"weak"}`)

	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	resp, ok := httpErr.Message.(apperrors.ValidationResponse)
	assert.True(t, ok)
	assert.Contains(t, resp.Errors, "fullName")
	assert.Contains(t, resp.Errors, "email")
	assert.Contains(t, resp.Errors, "password")

	mockSvc.AssertNotCalled(t, "Register")
}

func TestAuthHandler_RegisterDuplicateEmail(t *testing.T) {
	mockSvc := new(MockAuthService)
	mockSvc.On("Register", mock.Anything, mock.AnythingOfType("*model.User"), "Secret1").
		Return("", "", apperrors.ErrEmailTaken)
	h := NewAuthHandler(mockSvc)

	c, _ := newTestContext(t, http.MethodPost, "/api/register",
		`{"fullName":"Jane Doe","email":"jane@example.com","password":"Secret1"}`)

	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	resp, ok := httpErr.Message.(apperrors.MessageResponse)
	assert.True(t, ok)
	assert.Equal(t, apperrors.ErrEmailTaken.Error(), resp.Message)

	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_RegisterSuccess(t *testing.T) {
	mockSvc := new(MockAuthService)
	mockSvc.On("Register", mock.Anything, mock.AnythingOfType("*model.User"), "Secret1").
		Return("access-token", "refresh-token", nil)
	h := NewAuthHandler(mockSvc)

	c, rec := newTestContext(t, http.MethodPost, "/api/register",
		`{"fullName":"Jane Doe","email":"jane@example.com","password":"Secret1","phone":"555-0100","city":"Lima","state":"LI"}`)

	assert.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"access-token"`)

	// The bound profile fields reach the service untouched.
	user := mockSvc.Calls[0].Arguments.Get(1).(*model.User)
	assert.Equal(t, "Jane Doe", user.FullName)
	assert.Equal(t, "Lima", user.City)

	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_QuickRegisterSkipsFormatRules(t *testing.T) {
	mockSvc := new(MockAuthService)
	mockSvc.On("Register", mock.Anything, mock.AnythingOfType("*model.User"), "weak").
		Return("access-token", "refresh-token", nil)
	h := NewAuthHandler(mockSvc)

	// A payload register would reject is accepted here.
	c, rec := newTestContext(t, http.MethodPost, "/api/goregister",
		`{"fullName":"Jane","email":"not-an-email","password":"weak"}`)

	assert.NoError(t, h.QuickRegister(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_QuickRegisterStillNeedsCredentials(t *testing.T) {
	mockSvc := new(MockAuthService)
	h := NewAuthHandler(mockSvc)

	c, _ := newTestContext(t, http.MethodPost, "/api/goregister", `{"fullName":"Jane"}`)

	err := h.QuickRegister(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	mockSvc.AssertNotCalled(t, "Register")
}

func TestAuthHandler_LoginMissingFields(t *testing.T) {
	mockSvc := new(MockAuthService)
	h := NewAuthHandler(mockSvc)

	c, _ := newTestContext(t, http.MethodPost, "/api/login", `{"email":"jane@example.com"}`)

	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)

	mockSvc.AssertNotCalled(t, "Login")
}

func TestAuthHandler_LoginInvalidCredentials(t *testing.T) {
	mockSvc := new(MockAuthService)
	mockSvc.On("Login", mock.Anything, "jane@example.com", "Wrong1").
		Return("", "", nil, apperrors.ErrInvalidCredentials)
	h := NewAuthHandler(mockSvc)

	c, _ := newTestContext(t, http.MethodPost, "/api/login",
		`{"email":"jane@example.com","password":"Wrong1"}`)

	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)

	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_LoginSuccess(t *testing.T) {
	mockSvc := new(MockAuthService)
	mockSvc.On("Login", mock.Anything, "jane@example.com", "Password123").
		Return("access-token", "refresh-token", &model.User{Email: "jane@example.com"}, nil)
	h := NewAuthHandler(mockSvc)

	c, rec := newTestContext(t, http.MethodPost, "/api/login",
		`{"email":"jane@example.com","password":"Password123"}`)

	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token":"access-token"`)

	mockSvc.AssertExpectations(t)
}
