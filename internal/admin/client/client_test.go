package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"useradmin/internal/admin/client"
	v1 "useradmin/pkg/api/v1"
)

type recordingNotifier struct {
	notifications []client.Notification
}

func (r *recordingNotifier) Notify(n client.Notification) {
	r.notifications = append(r.notifications, n)
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, env v1.Envelope) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(env))
}

func listEnvelope(users []v1.User, total, page, pageSize int) v1.Envelope {
	return v1.Success(v1.ListUsersData{
		Users:          users,
		TotalUserCount: total,
		Page:           page,
		PageSize:       pageSize,
	}, "Users fetched successfully")
}

func TestContext_FetchUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("list response updates the state", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/users", r.URL.Path)
			assert.Equal(t, "2", r.URL.Query().Get("page"))
			assert.Equal(t, "5", r.URL.Query().Get("pageSize"))
			assert.Equal(t, "ann", r.URL.Query().Get("search"))

			writeEnvelope(t, w, listEnvelope(
				[]v1.User{{ID: 7, Name: "Ann", Surname: "Smith", Email: "ann@example.com"}},
				11, 2, 5))
		}))
		defer server.Close()

		notifier := &recordingNotifier{}
		dataCtx := client.New(server.URL, time.Second, 5, notifier)

		require.NoError(t, dataCtx.FetchUsers(ctx, 2, 5, "ann"))

		users := dataCtx.Users()
		require.Len(t, users, 1)
		assert.Equal(t, "ann@example.com", users[0].Email)

		page, pageSize, total := dataCtx.Pagination()
		assert.Equal(t, 2, page)
		assert.Equal(t, 5, pageSize)
		assert.Equal(t, 11, total)
		assert.Equal(t, "ann", dataCtx.SearchText())
		assert.Empty(t, notifier.notifications)
	})

	t.Run("server failure produces an error notification", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			writeEnvelope(t, w, v1.Failure(http.StatusInternalServerError, "Internal Server Error", "boom"))
		}))
		defer server.Close()

		notifier := &recordingNotifier{}
		dataCtx := client.New(server.URL, time.Second, 5, notifier)

		err := dataCtx.FetchUsers(ctx, 1, 5, "")

		require.Error(t, err)
		require.Len(t, notifier.notifications, 1)
		assert.Equal(t, client.KindError, notifier.notifications[0].Kind)
		assert.Equal(t, client.NotifyKeyUsers, notifier.notifications[0].Key)
	})
}

func TestContext_GetUser(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/7", r.URL.Path)
		writeEnvelope(t, w, v1.Success(v1.User{ID: 7, Name: "Ann", Email: "ann@example.com"}, "User fetched successfully"))
	}))
	defer server.Close()

	dataCtx := client.New(server.URL, time.Second, 5, &recordingNotifier{})

	user, err := dataCtx.GetUser(ctx, 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "ann@example.com", user.Email)
}

func TestContext_Mutations(t *testing.T) {
	ctx := context.Background()

	t.Run("create refetches the first page and notifies", func(t *testing.T) {
		var listCalls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/users/save":
				assert.Equal(t, http.MethodPost, r.Method)
				writeEnvelope(t, w, v1.Success(nil, "User saved successfully"))
			case "/users":
				listCalls++
				assert.Equal(t, "1", r.URL.Query().Get("page"))
				assert.Equal(t, "5", r.URL.Query().Get("pageSize"))
				assert.Empty(t, r.URL.Query().Get("search"))
				writeEnvelope(t, w, listEnvelope([]v1.User{{ID: 1, Name: "Ann"}}, 1, 1, 5))
			default:
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
		}))
		defer server.Close()

		notifier := &recordingNotifier{}
		dataCtx := client.New(server.URL, time.Second, 5, notifier)

		err := dataCtx.CreateUser(ctx, &v1.CreateUserRequest{
			Name: "Ann", Surname: "Smith", Email: "ann@example.com", Password: "secret",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, listCalls)

		require.Len(t, notifier.notifications, 1)
		assert.Equal(t, client.KindSuccess, notifier.notifications[0].Kind)
		assert.Equal(t, "User saved successfully", notifier.notifications[0].Message)

		page, _, _ := dataCtx.Pagination()
		assert.Equal(t, 1, page)
	})

	t.Run("conflict surfaces the server message", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/users/save", r.URL.Path)
			w.WriteHeader(http.StatusConflict)
			writeEnvelope(t, w, v1.Failure(http.StatusConflict, "Email already taken", "duplicate email"))
		}))
		defer server.Close()

		notifier := &recordingNotifier{}
		dataCtx := client.New(server.URL, time.Second, 5, notifier)

		err := dataCtx.CreateUser(ctx, &v1.CreateUserRequest{
			Name: "Ann", Surname: "Smith", Email: "taken@example.com", Password: "secret",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Email already taken")

		require.Len(t, notifier.notifications, 1)
		assert.Equal(t, client.KindError, notifier.notifications[0].Kind)
	})

	t.Run("delete sends the id in the body", func(t *testing.T) {
		var gotID int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/users/delete":
				assert.Equal(t, http.MethodDelete, r.Method)
				var req v1.DeleteUserRequest
				require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
				gotID = req.ID
				writeEnvelope(t, w, v1.Success(nil, "User deleted successfully"))
			case "/users":
				writeEnvelope(t, w, listEnvelope(nil, 0, 1, 5))
			}
		}))
		defer server.Close()

		dataCtx := client.New(server.URL, time.Second, 5, &recordingNotifier{})

		require.NoError(t, dataCtx.DeleteUser(ctx, 7))
		assert.Equal(t, int64(7), gotID)
	})
}
