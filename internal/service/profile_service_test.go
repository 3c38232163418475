package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "foodhub/internal/errors"
	"foodhub/internal/model"
)

func TestProfileService_GetProfile(t *testing.T) {
	userID := uuid.New()
	stored := &model.User{ID: userID, FullName: "Jane Doe", Email: "jane@example.com"}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, userID).Return(stored, nil)

	svc := NewProfileService(mockRepo, nil, t.TempDir())
	user, err := svc.GetProfile(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, "Jane Doe", user.FullName)

	missing := uuid.New()
	mockRepo.On("FindByID", mock.Anything, missing).Return(nil, gorm.ErrRecordNotFound)
	_, err = svc.GetProfile(context.Background(), missing)
	assert.Equal(t, apperrors.ErrUserNotFound, err)

	mockRepo.AssertExpectations(t)
}

func TestProfileService_UpdateProfileOverwrites(t *testing.T) {
	userID := uuid.New()
	stored := &model.User{
		ID:       userID,
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "555-0100",
		City:     "Lima",
		State:    "LI",
	}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, userID).Return(stored, nil)
	mockRepo.On("Update", mock.Anything, stored).Return(nil)

	svc := NewProfileService(mockRepo, nil, t.TempDir())

	// Fields are replaced wholesale: empty values blank the stored ones.
	err := svc.UpdateProfile(context.Background(), userID, "Janet Doe", "jane@example.com", "", "Cusco", "")
	assert.NoError(t, err)
	assert.Equal(t, "Janet Doe", stored.FullName)
	assert.Empty(t, stored.Phone)
	assert.Equal(t, "Cusco", stored.City)
	assert.Empty(t, stored.State)

	mockRepo.AssertExpectations(t)
}

func TestProfileService_UpdateProfileEmailCollision(t *testing.T) {
	userID := uuid.New()
	stored := &model.User{ID: userID, Email: "jane@example.com"}
	other := &model.User{ID: uuid.New(), Email: "taken@example.com"}

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, userID).Return(stored, nil)
	mockRepo.On("FindByEmail", mock.Anything, "taken@example.com").Return(other, nil)

	svc := NewProfileService(mockRepo, nil, t.TempDir())
	err := svc.UpdateProfile(context.Background(), userID, "Jane Doe", "taken@example.com", "", "", "")
	assert.Equal(t, apperrors.ErrEmailTaken, err)

	mockRepo.AssertExpectations(t)
}

func TestProfileService_AttachImage(t *testing.T) {
	userID := uuid.New()
	stored := &model.User{ID: userID, Email: "jane@example.com"}
	uploadDir := t.TempDir()

	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, userID).Return(stored, nil)
	mockRepo.On("Update", mock.Anything, stored).Return(nil)

	svc := NewProfileService(mockRepo, nil, uploadDir)
	imgURL, err := svc.AttachImage(context.Background(), userID, "avatar.png", strings.NewReader("png-bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(imgURL, "/uploads/"))
	assert.True(t, strings.HasSuffix(imgURL, ".png"))
	assert.Equal(t, imgURL, stored.ImgURL)

	// The file landed on disk with the uploaded content.
	content, err := os.ReadFile(filepath.Join(uploadDir, strings.TrimPrefix(imgURL, "/uploads/")))
	assert.NoError(t, err)
	assert.Equal(t, "png-bytes", string(content))

	mockRepo.AssertExpectations(t)
}

func TestProfileService_AttachImageUserGone(t *testing.T) {
	userID := uuid.New()
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewProfileService(mockRepo, nil, t.TempDir())
	_, err := svc.AttachImage(context.Background(), userID, "avatar.png", strings.NewReader("x"))
	assert.Equal(t, apperrors.ErrUserNotFound, err)

	mockRepo.AssertExpectations(t)
}
