package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ghuser/swapspace/internal/logger"
	"github.com/ghuser/swapspace/internal/models"
)

// ErrUserNotFound is returned when a user id no longer resolves to a record.
var ErrUserNotFound = errors.New("user not found")

// ProfileReader defines read operations for user profiles.
type ProfileReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProfileWriter defines write operations for user profiles.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, name, bio, location string) error
}

// UserService serves the current-user profile endpoints.
type UserService struct {
	reader ProfileReader
	writer ProfileWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader ProfileReader, writer ProfileWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Get returns the public fields of a user.
func (svc *UserService) Get(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user.Public(), nil
}

// UpdateProfile overwrites each non-empty field and leaves the rest as-is.
// An empty string therefore cannot clear a field; callers relying on that
// behavior are pinned by tests. Email is immutable here.
func (svc *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, name, bio, location string) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if name != "" {
		user.Name = name
	}
	if bio != "" {
		user.Bio = bio
	}
	if location != "" {
		user.Location = location
	}

	if err := svc.writer.UpdateProfile(ctx, userID, user.Name, user.Bio, user.Location); err != nil {
		logger.Log.Errorw("failed to update profile", "user_id", userID, "err", err)
		return nil, err
	}

	return user.Public(), nil
}
