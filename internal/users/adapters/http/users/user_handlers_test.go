package users_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"useradmin/internal/users/adapters/http/users"
	"useradmin/internal/users/domain/entities"
	"useradmin/internal/users/ports/api"
	v1 "useradmin/pkg/api/v1"
)

type stubUseCase struct {
	listFn   func(ctx context.Context, page, pageSize int, search string) (*entities.UserPage, error)
	getFn    func(ctx context.Context, id int64) (*entities.User, error)
	createFn func(ctx context.Context, user *entities.User, password string) error
	updateFn func(ctx context.Context, id int64, patch *entities.UserPatch, password *string) error
	deleteFn func(ctx context.Context, id int64) error
}

func (s *stubUseCase) ListUsers(ctx context.Context, page, pageSize int, search string) (*entities.UserPage, error) {
	return s.listFn(ctx, page, pageSize, search)
}

func (s *stubUseCase) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	return s.getFn(ctx, id)
}

func (s *stubUseCase) CreateUser(ctx context.Context, user *entities.User, password string) error {
	return s.createFn(ctx, user, password)
}

func (s *stubUseCase) UpdateUser(ctx context.Context, id int64, patch *entities.UserPatch, password *string) error {
	return s.updateFn(ctx, id, patch, password)
}

func (s *stubUseCase) DeleteUser(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

// envelope повторяет конверт ответа с отложенным разбором data.
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
}

func setupApp(useCase api.UserUseCase) *fiber.App {
	app := fiber.New()
	handler := users.NewHandler(useCase)

	group := app.Group("/users")
	group.Get("/", handler.ListUsers)
	group.Get("/:id", handler.GetUser)
	group.Post("/save", handler.SaveUser)
	group.Post("/update", handler.UpdateUser)
	group.Delete("/delete", handler.DeleteUser)

	return app
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env))
	return env
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestHandler_ListUsers(t *testing.T) {
	t.Run("returns users with pagination payload", func(t *testing.T) {
		useCase := &stubUseCase{
			listFn: func(_ context.Context, page, pageSize int, search string) (*entities.UserPage, error) {
				assert.Equal(t, 2, page)
				assert.Equal(t, 5, pageSize)
				assert.Equal(t, "ann", search)
				return &entities.UserPage{
					Users:      []*entities.User{{ID: 7, Name: "Ann", Surname: "Smith", Email: "ann@example.com"}},
					TotalCount: 11,
					Page:       2,
					PageSize:   5,
				}, nil
			},
		}

		app := setupApp(useCase)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users?page=2&pageSize=5&search=ann", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, http.StatusOK, env.StatusCode)
		assert.Equal(t, users.MsgUsersFetched, env.Message)
		assert.Empty(t, env.Error)

		var data v1.ListUsersData
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, 11, data.TotalUserCount)
		require.Len(t, data.Users, 1)
		assert.Equal(t, int64(7), data.Users[0].ID)
	})

	t.Run("rejects non-numeric page", func(t *testing.T) {
		app := setupApp(&stubUseCase{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users?page=abc", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, http.StatusBadRequest, env.StatusCode)
		assert.NotEmpty(t, env.Error)
	})
}

func TestHandler_GetUser(t *testing.T) {
	t.Run("returns a single user", func(t *testing.T) {
		useCase := &stubUseCase{
			getFn: func(_ context.Context, id int64) (*entities.User, error) {
				assert.Equal(t, int64(7), id)
				return &entities.User{ID: 7, Name: "Ann", Surname: "Smith", Email: "ann@example.com"}, nil
			},
		}

		app := setupApp(useCase)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/7", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		env := decodeEnvelope(t, resp)

		var user v1.User
		require.NoError(t, json.Unmarshal(env.Data, &user))
		assert.Equal(t, int64(7), user.ID)
		assert.Equal(t, "ann@example.com", user.Email)
	})

	t.Run("unknown user yields 404 envelope", func(t *testing.T) {
		useCase := &stubUseCase{
			getFn: func(_ context.Context, _ int64) (*entities.User, error) {
				return nil, entities.ErrUserNotFound
			},
		}

		app := setupApp(useCase)

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/999", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, http.StatusNotFound, env.StatusCode)
		assert.Equal(t, users.MsgUserNotFound, env.Message)
	})

	t.Run("non-numeric id yields 400", func(t *testing.T) {
		app := setupApp(&stubUseCase{})

		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/users/abc", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestHandler_SaveUser(t *testing.T) {
	t.Run("creates a user from a valid body", func(t *testing.T) {
		var gotPassword string
		useCase := &stubUseCase{
			createFn: func(_ context.Context, user *entities.User, password string) error {
				gotPassword = password
				assert.Equal(t, "ann@example.com", user.Email)
				return nil
			},
		}

		app := setupApp(useCase)

		req := jsonRequest(t, http.MethodPost, "/users/save", v1.CreateUserRequest{
			Name:     "Ann",
			Surname:  "Smith",
			Email:    "ann@example.com",
			Password: "secret",
		})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, users.MsgUserSaved, env.Message)
		assert.Equal(t, "secret", gotPassword)
	})

	t.Run("missing required fields yield 400", func(t *testing.T) {
		app := setupApp(&stubUseCase{})

		req := jsonRequest(t, http.MethodPost, "/users/save", v1.CreateUserRequest{Name: "Ann"})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, http.StatusBadRequest, env.StatusCode)
	})

	t.Run("duplicate email yields 409", func(t *testing.T) {
		useCase := &stubUseCase{
			createFn: func(_ context.Context, _ *entities.User, _ string) error {
				return entities.ErrEmailAlreadyTaken
			},
		}

		app := setupApp(useCase)

		req := jsonRequest(t, http.MethodPost, "/users/save", v1.CreateUserRequest{
			Name:     "Ann",
			Surname:  "Smith",
			Email:    "taken@example.com",
			Password: "secret",
		})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, http.StatusConflict, env.StatusCode)
		assert.Equal(t, users.MsgEmailTaken, env.Message)
	})
}

func TestHandler_UpdateUser(t *testing.T) {
	t.Run("passes only present fields to the patch", func(t *testing.T) {
		var gotPatch *entities.UserPatch
		var gotPassword *string
		useCase := &stubUseCase{
			updateFn: func(_ context.Context, id int64, patch *entities.UserPatch, password *string) error {
				assert.Equal(t, int64(7), id)
				gotPatch = patch
				gotPassword = password
				return nil
			},
		}

		app := setupApp(useCase)

		name := "Anna"
		req := jsonRequest(t, http.MethodPost, "/users/update", v1.UpdateUserRequest{ID: 7, Name: &name})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		require.NotNil(t, gotPatch.Name)
		assert.Equal(t, "Anna", *gotPatch.Name)
		assert.Nil(t, gotPatch.Surname)
		assert.Nil(t, gotPassword)
	})

	t.Run("missing id yields 400", func(t *testing.T) {
		app := setupApp(&stubUseCase{})

		req := jsonRequest(t, http.MethodPost, "/users/update", map[string]any{"name": "Anna"})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown user yields 404", func(t *testing.T) {
		useCase := &stubUseCase{
			updateFn: func(_ context.Context, _ int64, _ *entities.UserPatch, _ *string) error {
				return entities.ErrUserNotFound
			},
		}

		app := setupApp(useCase)

		name := "Anna"
		req := jsonRequest(t, http.MethodPost, "/users/update", v1.UpdateUserRequest{ID: 999, Name: &name})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestHandler_DeleteUser(t *testing.T) {
	t.Run("deletes a user by id from the body", func(t *testing.T) {
		var gotID int64
		useCase := &stubUseCase{
			deleteFn: func(_ context.Context, id int64) error {
				gotID = id
				return nil
			},
		}

		app := setupApp(useCase)

		req := jsonRequest(t, http.MethodDelete, "/users/delete", v1.DeleteUserRequest{ID: 7})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		assert.Equal(t, users.MsgUserDeleted, env.Message)
		assert.Equal(t, int64(7), gotID)
	})

	t.Run("unknown user yields 404", func(t *testing.T) {
		useCase := &stubUseCase{
			deleteFn: func(_ context.Context, _ int64) error {
				return entities.ErrUserNotFound
			},
		}

		app := setupApp(useCase)

		req := jsonRequest(t, http.MethodDelete, "/users/delete", v1.DeleteUserRequest{ID: 999})

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
