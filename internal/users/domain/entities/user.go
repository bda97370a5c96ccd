package entities

import (
	"errors"
	"time"
)

// Ошибки домена пользователя.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailAlreadyTaken = errors.New("email already taken")
	ErrInvalidUserID     = errors.New("user id must be positive")
	ErrEmptyPassword     = errors.New("password cannot be empty")
)

// User представляет основную сущность домена пользователя.
// Необязательные колонки таблицы представлены указателями: nil означает NULL.
type User struct {
	ID           int64
	Name         string
	Surname      string
	Email        string
	PasswordHash string
	Phone        *string
	Age          *int
	Country      *string
	District     *string
	Role         *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserPatch описывает частичное обновление пользователя.
// nil-поле отсутствует в запросе и не изменяется; не-nil поле
// устанавливается, в том числе в пустую строку или ноль.
type UserPatch struct {
	Name         *string
	Surname      *string
	Email        *string
	PasswordHash *string
	Phone        *string
	Age          *int
	Country      *string
	District     *string
	Role         *string
}

// UserPage - страница списка пользователей с общим количеством совпадений.
type UserPage struct {
	Users      []*User
	TotalCount int
	Page       int
	PageSize   int
}
