// Package client реализует состояние консоли администратора и доступ
// к HTTP API сервиса пользователей.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	v1 "useradmin/pkg/api/v1"
)

// Константы сообщений об ошибках.
const (
	ErrBuildRequest   = "failed to build request"
	ErrSendRequest    = "failed to send request"
	ErrDecodeResponse = "failed to decode response"
)

// Страница, к которой возвращается список после любой мутации.
const (
	firstPage   = 1
	emptySearch = ""
)

// envelope повторяет форму ответа API; Data разбирается отложенно,
// так как тип полезной нагрузки зависит от операции.
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// Context хранит текущее состояние консоли: загруженные пользователи,
// параметры пагинации и строку поиска. Методы мутаций после успеха
// перезагружают первую страницу и шлют уведомление оператору.
type Context struct {
	baseURL         string
	httpClient      *http.Client
	notifier        Notifier
	defaultPageSize int

	mu         sync.RWMutex
	users      []v1.User
	page       int
	pageSize   int
	totalCount int
	searchText string
}

// New создает контекст данных консоли администратора.
func New(baseURL string, timeout time.Duration, defaultPageSize int, notifier Notifier) *Context {
	if defaultPageSize < 1 {
		defaultPageSize = 5
	}

	return &Context{
		baseURL:         baseURL,
		httpClient:      &http.Client{Timeout: timeout},
		notifier:        notifier,
		defaultPageSize: defaultPageSize,
		page:            firstPage,
		pageSize:        defaultPageSize,
	}
}

// Users возвращает копию загруженного списка пользователей.
func (c *Context) Users() []v1.User {
	c.mu.RLock()
	defer c.mu.RUnlock()

	users := make([]v1.User, len(c.users))
	copy(users, c.users)
	return users
}

// Pagination возвращает текущую страницу, размер страницы и общее
// количество пользователей.
func (c *Context) Pagination() (page, pageSize, totalCount int) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.page, c.pageSize, c.totalCount
}

// SearchText возвращает текущую строку поиска.
func (c *Context) SearchText() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.searchText
}

// FetchUsers загружает страницу списка пользователей и обновляет состояние.
func (c *Context) FetchUsers(ctx context.Context, page, pageSize int, search string) error {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("pageSize", strconv.Itoa(pageSize))
	if search != "" {
		query.Set("search", search)
	}

	env, err := c.do(ctx, http.MethodGet, "/users?"+query.Encode(), nil)
	if err != nil {
		c.notifier.Notify(Notification{Key: NotifyKeyUsers, Kind: KindError, Message: err.Error()})
		return err
	}

	var data v1.ListUsersData
	if err := json.Unmarshal(env.Data, &data); err != nil {
		wrapped := fmt.Errorf("%s: %w", ErrDecodeResponse, err)
		c.notifier.Notify(Notification{Key: NotifyKeyUsers, Kind: KindError, Message: wrapped.Error()})
		return wrapped
	}

	c.mu.Lock()
	c.users = data.Users
	c.page = data.Page
	c.pageSize = data.PageSize
	c.totalCount = data.TotalUserCount
	c.searchText = search
	c.mu.Unlock()

	return nil
}

// Search загружает первую страницу по подстроке имени или фамилии.
func (c *Context) Search(ctx context.Context, search string) error {
	return c.FetchUsers(ctx, firstPage, c.defaultPageSize, search)
}

// GetUser возвращает одного пользователя для формы редактирования.
func (c *Context) GetUser(ctx context.Context, id int64) (*v1.User, error) {
	env, err := c.do(ctx, http.MethodGet, "/users/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		c.notifier.Notify(Notification{Key: NotifyKeyUsers, Kind: KindError, Message: err.Error()})
		return nil, err
	}

	var user v1.User
	if err := json.Unmarshal(env.Data, &user); err != nil {
		wrapped := fmt.Errorf("%s: %w", ErrDecodeResponse, err)
		c.notifier.Notify(Notification{Key: NotifyKeyUsers, Kind: KindError, Message: wrapped.Error()})
		return nil, wrapped
	}

	return &user, nil
}

// CreateUser сохраняет нового пользователя и перезагружает первую страницу.
func (c *Context) CreateUser(ctx context.Context, req *v1.CreateUserRequest) error {
	return c.mutate(ctx, http.MethodPost, "/users/save", req)
}

// UpdateUser частично обновляет пользователя и перезагружает первую страницу.
func (c *Context) UpdateUser(ctx context.Context, req *v1.UpdateUserRequest) error {
	return c.mutate(ctx, http.MethodPost, "/users/update", req)
}

// DeleteUser удаляет пользователя и перезагружает первую страницу.
func (c *Context) DeleteUser(ctx context.Context, id int64) error {
	return c.mutate(ctx, http.MethodDelete, "/users/delete", &v1.DeleteUserRequest{ID: id})
}

// mutate выполняет мутацию и при успехе возвращает список к первой
// странице с пустым поиском, как и после любого изменения данных.
func (c *Context) mutate(ctx context.Context, method, path string, body any) error {
	env, err := c.do(ctx, method, path, body)
	if err != nil {
		c.notifier.Notify(Notification{Key: NotifyKeyUsers, Kind: KindError, Message: err.Error()})
		return err
	}

	if err := c.FetchUsers(ctx, firstPage, c.defaultPageSize, emptySearch); err != nil {
		return err
	}

	c.notifier.Notify(Notification{Key: NotifyKeyUsers, Kind: KindSuccess, Message: env.Message})
	return nil
}

// do выполняет HTTP-запрос и разбирает конверт ответа. Неуспешный
// statusCode превращается в ошибку с текстом из конверта.
func (c *Context) do(ctx context.Context, method, path string, body any) (*envelope, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrBuildRequest, err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrBuildRequest, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrSendRequest, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDecodeResponse, err)
	}

	if env.StatusCode != http.StatusOK {
		message := env.Message
		if env.Error != "" && env.Error != message {
			message = fmt.Sprintf("%s: %s", env.Message, env.Error)
		}
		return nil, fmt.Errorf("server responded %d: %s", env.StatusCode, message)
	}

	return &env, nil
}
