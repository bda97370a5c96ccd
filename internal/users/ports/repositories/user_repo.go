package repositories

import (
	"context"

	"useradmin/internal/users/domain/entities"
)

// UserRepository определяет интерфейс хранилища записей пользователей.
type UserRepository interface {
	// List возвращает страницу пользователей и общее количество совпадений.
	// Непустой search фильтрует по подстроке имени или фамилии без учета регистра.
	List(ctx context.Context, search string, limit, offset int) ([]*entities.User, int, error)

	FindByID(ctx context.Context, id int64) (*entities.User, error)

	Create(ctx context.Context, user *entities.User) (int64, error)

	// Update применяет патч и всегда обновляет updated_at.
	Update(ctx context.Context, id int64, patch *entities.UserPatch) error

	Delete(ctx context.Context, id int64) error
}
