package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodhub/internal/cache"
	apperrors "foodhub/internal/errors"
	"foodhub/internal/model"
	"foodhub/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// ProfileService handles profile reads and mutations.
type ProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, fullName, email, phone, city, state string) error
	AttachImage(ctx context.Context, userID uuid.UUID, filename string, src io.Reader) (imgURL string, err error)
}

type profileService struct {
	repo      repository.UserRepository
	cache     *cache.Client
	uploadDir string
}

// NewProfileService creates a new profile service storing images under uploadDir.
func NewProfileService(repo repository.UserRepository, cache *cache.Client, uploadDir string) ProfileService {
	return &profileService{
		repo:      repo,
		cache:     cache,
		uploadDir: uploadDir,
	}
}

func (s *profileService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("profile:%s", id.String())
}

// GetProfile retrieves a user by ID with caching.
func (s *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID), payload, profileCacheTTL)
	}

	return user, nil
}

// UpdateProfile overwrites the editable fields unconditionally: a
// present-but-empty field blanks the stored value.
func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, fullName, email, phone, city, state string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	// Changing email must not collide with another account.
	if email != user.Email {
		if other, err := s.repo.FindByEmail(ctx, email); err == nil && other != nil && other.ID != userID {
			return apperrors.ErrEmailTaken
		} else if err != nil && err != gorm.ErrRecordNotFound {
			return err
		}
	}

	user.FullName = fullName
	user.Email = email
	user.Phone = phone
	user.City = city
	user.State = state

	if err := s.repo.Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return nil
}

// AttachImage stores the uploaded file under the upload directory, named by
// owner and upload timestamp, and records its public path on the user.
func (s *profileService) AttachImage(ctx context.Context, userID uuid.UUID, filename string, src io.Reader) (string, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "", apperrors.ErrUserNotFound
		}
		return "", err
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s-%d%s", userID.String(), time.Now().UnixMilli(), filepath.Ext(filename))
	dst, err := os.Create(filepath.Join(s.uploadDir, name))
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	user.ImgURL = "/uploads/" + name
	if err := s.repo.Update(ctx, user); err != nil {
		return "", fmt.Errorf("update user: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return user.ImgURL, nil
}
