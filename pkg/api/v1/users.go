package v1

import "time"

// User - JSON-представление записи пользователя.
// Хэш пароля наружу не отдается никогда.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Age       *int      `json:"age"`
	Country   *string   `json:"country"`
	District  *string   `json:"district"`
	Role      *string   `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListUsersData - полезная нагрузка ответа GET /users.
type ListUsersData struct {
	Users          []User `json:"users"`
	TotalUserCount int    `json:"totalUserCount"`
	Page           int    `json:"page"`
	PageSize       int    `json:"pageSize"`
}

// CreateUserRequest - тело запроса POST /users/save.
// Ограничения длин совпадают со схемой таблицы users.
type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Surname  string  `json:"surname" validate:"required,max=100"`
	Email    string  `json:"email" validate:"required,email,max=150"`
	Password string  `json:"password" validate:"required,min=1,max=72"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=15"`
	Age      *int    `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	Country  *string `json:"country,omitempty" validate:"omitempty,max=100"`
	District *string `json:"district,omitempty" validate:"omitempty,max=100"`
	Role     *string `json:"role,omitempty" validate:"omitempty,max=50"`
}

// UpdateUserRequest - тело запроса POST /users/update.
// Отсутствующее в JSON поле (nil) не изменяется; присутствующее
// устанавливается, включая пустую строку и ноль.
type UpdateUserRequest struct {
	ID       int64   `json:"id" validate:"required,gt=0"`
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Surname  *string `json:"surname,omitempty" validate:"omitempty,min=1,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=150"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=1,max=72"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=15"`
	Age      *int    `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	Country  *string `json:"country,omitempty" validate:"omitempty,max=100"`
	District *string `json:"district,omitempty" validate:"omitempty,max=100"`
	Role     *string `json:"role,omitempty" validate:"omitempty,max=50"`
}

// DeleteUserRequest - тело запроса DELETE /users/delete.
type DeleteUserRequest struct {
	ID int64 `json:"id" validate:"required,gt=0"`
}
