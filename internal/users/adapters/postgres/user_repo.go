// Package postgres содержит реализацию хранилища пользователей поверх pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"useradmin/internal/users/domain/entities"
	"useradmin/internal/users/ports/repositories"
	"useradmin/pkg/logger"
)

// Код ошибки Postgres для нарушения уникального ограничения.
const uniqueViolationCode = "23505"

// Querier - минимальный интерфейс пула, нужный хранилищу.
// Ему удовлетворяют pgxpool.Pool и pgxmock.
type Querier interface {
	QueryRow(ctx context.Context, query string, args ...any) pgx.Row
	Query(ctx context.Context, query string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error)
}

const userColumns = "id, name, surname, email, phone, age, country, district, role, created_at, updated_at"

// UserRepository реализует repositories.UserRepository для Postgres.
type UserRepository struct {
	pool Querier
}

// NewUserRepository создает новое хранилище пользователей.
func NewUserRepository(pool Querier) repositories.UserRepository {
	return &UserRepository{pool: pool}
}

// List возвращает страницу пользователей и общее количество совпадений.
// Страница упорядочена по id: без явного ORDER BY постраничная выборка
// недетерминирована.
func (r *UserRepository) List(ctx context.Context, search string, limit, offset int) ([]*entities.User, int, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "List"))

	countQuery := `SELECT COUNT(*) FROM users`
	pageQuery := `SELECT ` + userColumns + ` FROM users`

	args := make([]any, 0, 3)
	if search != "" {
		countQuery += ` WHERE name ILIKE $1 OR surname ILIKE $1`
		pageQuery += ` WHERE name ILIKE $1 OR surname ILIKE $1`
		args = append(args, "%"+search+"%")
	}

	var totalCount int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		log.Error(ctx, "error counting users", zap.Error(err))
		return nil, 0, fmt.Errorf("error counting users: %w", err)
	}

	pageQuery += fmt.Sprintf(` ORDER BY id LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, pageQuery, args...)
	if err != nil {
		log.Error(ctx, "error listing users", zap.Error(err))
		return nil, 0, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	users := make([]*entities.User, 0)
	for rows.Next() {
		var user entities.User
		if err := scanUser(rows, &user); err != nil {
			log.Error(ctx, "error scanning user row", zap.Error(err))
			return nil, 0, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating user rows", zap.Error(err))
		return nil, 0, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, totalCount, nil
}

// FindByID находит пользователя по ID. Колонка password не выбирается:
// хэш пароля не покидает хранилище.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user entities.User
	err := scanUser(r.pool.QueryRow(ctx, query, id), &user)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "user not found", zap.Int64("id", id))
			return nil, entities.ErrUserNotFound
		}
		log.Error(ctx, "error finding user by id", zap.Error(err))
		return nil, fmt.Errorf("error querying user by id: %w", err)
	}

	return &user, nil
}

// Create сохраняет нового пользователя и возвращает присвоенный ID.
func (r *UserRepository) Create(ctx context.Context, user *entities.User) (int64, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	query := `
        INSERT INTO users (name, surname, email, password, phone, age, country, district, role, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
        RETURNING id
    `

	var id int64
	err := r.pool.QueryRow(ctx, query,
		user.Name,
		user.Surname,
		user.Email,
		user.PasswordHash,
		user.Phone,
		user.Age,
		user.Country,
		user.District,
		user.Role,
	).Scan(&id)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "duplicate email", zap.String("email", user.Email))
			return 0, entities.ErrEmailAlreadyTaken
		}
		log.Error(ctx, "error creating user", zap.Error(err))
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return id, nil
}

// Update применяет патч к записи. Поле patch равное nil пропускается,
// updated_at обновляется всегда.
func (r *UserRepository) Update(ctx context.Context, id int64, patch *entities.UserPatch) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Update"))

	set := make([]string, 0, 10)
	args := make([]any, 0, 10)

	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.Surname != nil {
		add("surname", *patch.Surname)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.PasswordHash != nil {
		add("password", *patch.PasswordHash)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.Age != nil {
		add("age", *patch.Age)
	}
	if patch.Country != nil {
		add("country", *patch.Country)
	}
	if patch.District != nil {
		add("district", *patch.District)
	}
	if patch.Role != nil {
		add("role", *patch.Role)
	}
	set = append(set, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE users SET %s WHERE id = $%d", strings.Join(set, ", "), len(args))

	result, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			log.Debug(ctx, "duplicate email on update", zap.Int64("id", id))
			return entities.ErrEmailAlreadyTaken
		}
		log.Error(ctx, "error updating user", zap.Error(err))
		return fmt.Errorf("error updating user: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "user not found for update", zap.Int64("id", id))
		return entities.ErrUserNotFound
	}

	return nil
}

// Delete удаляет запись пользователя.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Delete"))

	result, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, "error deleting user", zap.Error(err))
		return fmt.Errorf("error deleting user: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "user not found for deletion", zap.Int64("id", id))
		return entities.ErrUserNotFound
	}

	return nil
}

func scanUser(row pgx.Row, user *entities.User) error {
	return row.Scan(
		&user.ID,
		&user.Name,
		&user.Surname,
		&user.Email,
		&user.Phone,
		&user.Age,
		&user.Country,
		&user.District,
		&user.Role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
