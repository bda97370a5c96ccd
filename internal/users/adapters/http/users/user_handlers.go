// Package users содержит HTTP-обработчики операций над пользователями.
package users

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"useradmin/internal/users/domain/entities"
	"useradmin/internal/users/ports/api"
	v1 "useradmin/pkg/api/v1"
	"useradmin/pkg/logger"
)

// Константы сообщений для логирования.
const (
	LogHandlerListUsers  = "handling list users request"
	LogHandlerGetUser    = "handling get user request"
	LogHandlerSaveUser   = "handling save user request"
	LogHandlerUpdateUser = "handling update user request"
	LogHandlerDeleteUser = "handling delete user request"

	ErrMsgInvalidUserID      = "invalid user id"
	ErrMsgInvalidPagination  = "invalid pagination parameters"
	ErrMsgInvalidRequestBody = "invalid request body"
	ErrMsgValidationFailed   = "validation failed"
)

// Сообщения конверта ответа.
const (
	MsgUsersFetched = "Users fetched successfully"
	MsgUserFetched  = "User fetched successfully"
	MsgUserSaved    = "User saved successfully"
	MsgUserUpdated  = "User updated successfully"
	MsgUserDeleted  = "User deleted successfully"

	MsgUserNotFound   = "User not found"
	MsgEmailTaken     = "Email already taken"
	MsgInternalError  = "Internal Server Error"
	MsgBadRequest     = "Bad Request"
)

// Handler содержит HTTP-обработчики операций над пользователями.
type Handler struct {
	userService api.UserUseCase
	validate    *validator.Validate
}

// NewHandler создает новый экземпляр обработчика пользователей.
func NewHandler(userService api.UserUseCase) *Handler {
	return &Handler{
		userService: userService,
		validate:    validator.New(),
	}
}

// ListUsers обрабатывает GET /users: страница, размер страницы и поиск
// по подстроке имени или фамилии.
func (h *Handler) ListUsers(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListUsers"))
	log.Debug(requestCtx, LogHandlerListUsers)

	page, err := strconv.Atoi(ctx.Query("page", "1"))
	if err != nil {
		log.Debug(requestCtx, ErrMsgInvalidPagination, zap.Error(err))
		return sendFailure(ctx, http.StatusBadRequest, ErrMsgInvalidPagination, err)
	}
	pageSize, err := strconv.Atoi(ctx.Query("pageSize", "10"))
	if err != nil {
		log.Debug(requestCtx, ErrMsgInvalidPagination, zap.Error(err))
		return sendFailure(ctx, http.StatusBadRequest, ErrMsgInvalidPagination, err)
	}
	search := ctx.Query("search", "")

	result, err := h.userService.ListUsers(requestCtx, page, pageSize, search)
	if err != nil {
		log.Error(requestCtx, "failed to list users", zap.Error(err))
		return sendServiceError(ctx, err)
	}

	data := v1.ListUsersData{
		Users:          make([]v1.User, 0, len(result.Users)),
		TotalUserCount: result.TotalCount,
		Page:           result.Page,
		PageSize:       result.PageSize,
	}
	for _, user := range result.Users {
		data.Users = append(data.Users, toAPIUser(user))
	}

	return sendSuccess(ctx, data, MsgUsersFetched)
}

// GetUser обрабатывает GET /users/:id.
func (h *Handler) GetUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.GetUser"))
	log.Debug(requestCtx, LogHandlerGetUser)

	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		log.Debug(requestCtx, ErrMsgInvalidUserID)
		return sendFailure(ctx, http.StatusBadRequest, ErrMsgInvalidUserID, err)
	}

	user, err := h.userService.GetUser(requestCtx, id)
	if err != nil {
		log.Error(requestCtx, "failed to get user", zap.Error(err))
		return sendServiceError(ctx, err)
	}

	return sendSuccess(ctx, toAPIUser(user), MsgUserFetched)
}

// SaveUser обрабатывает POST /users/save.
func (h *Handler) SaveUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.SaveUser"))
	log.Debug(requestCtx, LogHandlerSaveUser)

	var req v1.CreateUserRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendFailure(ctx, http.StatusBadRequest, ErrMsgInvalidRequestBody, err)
	}

	if err := h.validate.Struct(&req); err != nil {
		log.Debug(requestCtx, ErrMsgValidationFailed, zap.Error(err))
		return sendFailure(ctx, http.StatusBadRequest, ErrMsgValidationFailed, err)
	}

	user := &entities.User{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Phone:    req.Phone,
		Age:      req.Age,
		Country:  req.Country,
		District: req.District,
		Role:     req.Role,
	}

	if err := h.userService.CreateUser(requestCtx, user, req.Password); err != nil {
		log.Error(requestCtx, "failed to save user", zap.Error(err))
		return sendServiceError(ctx, err)
	}

	return sendSuccess(ctx, nil, MsgUserSaved)
}

// UpdateUser обрабатывает POST /users/update: частичное обновление,
// отсутствующие в теле поля не изменяются.
func (h *Handler) UpdateUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateUser"))
	log.Debug(requestCtx, LogHandlerUpdateUser)

	var req v1.UpdateUserRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendFailure(ctx, http.StatusBadRequest, ErrMsgInvalidRequestBody, err)
	}

	if err := h.validate.Struct(&req); err != nil {
		log.Debug(requestCtx, ErrMsgValidationFailed, zap.Error(err))
		return sendFailure(ctx, http.StatusBadRequest, ErrMsgValidationFailed, err)
	}

	patch := &entities.UserPatch{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Phone:    req.Phone,
		Age:      req.Age,
		Country:  req.Country,
		District: req.District,
		Role:     req.Role,
	}

	if err := h.userService.UpdateUser(requestCtx, req.ID, patch, req.Password); err != nil {
		log.Error(requestCtx, "failed to update user", zap.Error(err))
		return sendServiceError(ctx, err)
	}

	return sendSuccess(ctx, nil, MsgUserUpdated)
}

// DeleteUser обрабатывает DELETE /users/delete.
func (h *Handler) DeleteUser(ctx fiber.Ctx) error {
	requestCtx := ctx.Context()
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteUser"))
	log.Debug(requestCtx, LogHandlerDeleteUser)

	var req v1.DeleteUserRequest
	if err := ctx.Bind().Body(&req); err != nil {
		log.Debug(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendFailure(ctx, http.StatusBadRequest, ErrMsgInvalidRequestBody, err)
	}

	if err := h.validate.Struct(&req); err != nil {
		log.Debug(requestCtx, ErrMsgValidationFailed, zap.Error(err))
		return sendFailure(ctx, http.StatusBadRequest, ErrMsgValidationFailed, err)
	}

	if err := h.userService.DeleteUser(requestCtx, req.ID); err != nil {
		log.Error(requestCtx, "failed to delete user", zap.Error(err))
		return sendServiceError(ctx, err)
	}

	return sendSuccess(ctx, nil, MsgUserDeleted)
}

// sendServiceError переводит типизированную ошибку домена в конверт ответа.
func sendServiceError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entities.ErrUserNotFound):
		return sendFailure(ctx, http.StatusNotFound, MsgUserNotFound, err)
	case errors.Is(err, entities.ErrEmailAlreadyTaken):
		return sendFailure(ctx, http.StatusConflict, MsgEmailTaken, err)
	case errors.Is(err, entities.ErrInvalidUserID), errors.Is(err, entities.ErrEmptyPassword):
		return sendFailure(ctx, http.StatusBadRequest, MsgBadRequest, err)
	default:
		return sendFailure(ctx, http.StatusInternalServerError, MsgInternalError, err)
	}
}

func sendSuccess(ctx fiber.Ctx, data any, message string) error {
	if err := ctx.Status(http.StatusOK).JSON(v1.Success(data, message)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func sendFailure(ctx fiber.Ctx, statusCode int, message string, cause error) error {
	errText := message
	if cause != nil {
		errText = cause.Error()
	}
	if err := ctx.Status(statusCode).JSON(v1.Failure(statusCode, message, errText)); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

func toAPIUser(user *entities.User) v1.User {
	return v1.User{
		ID:        user.ID,
		Name:      user.Name,
		Surname:   user.Surname,
		Email:     user.Email,
		Phone:     user.Phone,
		Age:       user.Age,
		Country:   user.Country,
		District:  user.District,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
