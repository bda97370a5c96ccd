package api

import (
	"context"

	"useradmin/internal/users/domain/entities"
)

// UserUseCase определяет операции сервиса пользователей.
// Ошибки типизированы ошибками домена, конверт ответа строит HTTP-слой.
type UserUseCase interface {
	ListUsers(ctx context.Context, page, pageSize int, search string) (*entities.UserPage, error)

	GetUser(ctx context.Context, id int64) (*entities.User, error)

	// CreateUser хэширует пароль и сохраняет запись.
	CreateUser(ctx context.Context, user *entities.User, password string) error

	// UpdateUser применяет патч; не-nil password перехэшируется.
	UpdateUser(ctx context.Context, id int64, patch *entities.UserPatch, password *string) error

	DeleteUser(ctx context.Context, id int64) error
}
