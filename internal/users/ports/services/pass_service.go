package services

import "context"

// PasswordService определяет интерфейс хэширования паролей.
type PasswordService interface {
	// Hash возвращает одностороннее хэш-представление пароля.
	Hash(ctx context.Context, password string) (string, error)

	// Verify проверяет соответствие пароля хэшу.
	Verify(ctx context.Context, password, hash string) (bool, error)
}
