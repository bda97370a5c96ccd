// Package app содержит сценарии использования сервиса пользователей.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"useradmin/internal/users/domain/entities"
	"useradmin/internal/users/ports/api"
	"useradmin/internal/users/ports/repositories"
	"useradmin/internal/users/ports/services"
	"useradmin/pkg/logger"
)

// Значения пагинации по умолчанию.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

const (
	msgListingUsers  = "listing users"
	msgUserFetched   = "user fetched"
	msgUserCreated   = "user created"
	msgUserUpdated   = "user updated"
	msgUserDeleted   = "user deleted"
	msgErrRepository = "repository operation failed"
	msgErrHashing    = "password hashing failed"

	errCtxListingUsers = "listing users"
	errCtxFetchingUser = "fetching user"
	errCtxCreatingUser = "creating user"
	errCtxUpdatingUser = "updating user"
	errCtxDeletingUser = "deleting user"
	errCtxHashing      = "hashing password"
)

// UserUseCaseImpl реализует интерфейс api.UserUseCase.
type UserUseCaseImpl struct {
	userRepo        repositories.UserRepository
	passwordService services.PasswordService
}

// NewUserUseCase создает новый экземпляр сервиса пользователей.
func NewUserUseCase(userRepo repositories.UserRepository, passwordService services.PasswordService) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// ListUsers возвращает страницу пользователей. Значения страницы и размера
// меньше единицы заменяются значениями по умолчанию.
func (u *UserUseCaseImpl) ListUsers(ctx context.Context, page, pageSize int, search string) (*entities.UserPage, error) {
	log := logger.Log(ctx).With(zap.String("method", "ListUsers"))

	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	offset := (page - 1) * pageSize

	log.Debug(ctx, msgListingUsers,
		zap.Int("page", page), zap.Int("pageSize", pageSize), zap.String("search", search))

	users, totalCount, err := u.userRepo.List(ctx, search, pageSize, offset)
	if err != nil {
		log.Error(ctx, msgErrRepository, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxListingUsers, err)
	}

	return &entities.UserPage{
		Users:      users,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// GetUser получает пользователя по ID.
func (u *UserUseCaseImpl) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", "GetUser"), zap.Int64("id", id))

	if id <= 0 {
		return nil, entities.ErrInvalidUserID
	}

	user, err := u.userRepo.FindByID(ctx, id)
	if err != nil {
		log.Error(ctx, msgErrRepository, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errCtxFetchingUser, err)
	}

	log.Debug(ctx, msgUserFetched)
	return user, nil
}

// CreateUser хэширует пароль и сохраняет новую запись.
func (u *UserUseCaseImpl) CreateUser(ctx context.Context, user *entities.User, password string) error {
	log := logger.Log(ctx).With(zap.String("method", "CreateUser"), zap.String("email", user.Email))

	hash, err := u.passwordService.Hash(ctx, password)
	if err != nil {
		log.Error(ctx, msgErrHashing, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxHashing, err)
	}
	user.PasswordHash = hash

	id, err := u.userRepo.Create(ctx, user)
	if err != nil {
		log.Error(ctx, msgErrRepository, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxCreatingUser, err)
	}
	user.ID = id

	log.Info(ctx, msgUserCreated, zap.Int64("id", id))
	return nil
}

// UpdateUser применяет патч к записи; не-nil password перехэшируется.
func (u *UserUseCaseImpl) UpdateUser(ctx context.Context, id int64, patch *entities.UserPatch, password *string) error {
	log := logger.Log(ctx).With(zap.String("method", "UpdateUser"), zap.Int64("id", id))

	if id <= 0 {
		return entities.ErrInvalidUserID
	}

	if password != nil {
		hash, err := u.passwordService.Hash(ctx, *password)
		if err != nil {
			log.Error(ctx, msgErrHashing, zap.Error(err))
			return fmt.Errorf("%s: %w", errCtxHashing, err)
		}
		patch.PasswordHash = &hash
	}

	if err := u.userRepo.Update(ctx, id, patch); err != nil {
		log.Error(ctx, msgErrRepository, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxUpdatingUser, err)
	}

	log.Info(ctx, msgUserUpdated)
	return nil
}

// DeleteUser удаляет запись пользователя.
func (u *UserUseCaseImpl) DeleteUser(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("method", "DeleteUser"), zap.Int64("id", id))

	if id <= 0 {
		return entities.ErrInvalidUserID
	}

	if err := u.userRepo.Delete(ctx, id); err != nil {
		log.Error(ctx, msgErrRepository, zap.Error(err))
		return fmt.Errorf("%s: %w", errCtxDeletingUser, err)
	}

	log.Info(ctx, msgUserDeleted)
	return nil
}
