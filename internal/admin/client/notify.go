package client

import (
	"fmt"
	"io"
	"sync"
)

// Kind определяет тип уведомления.
type Kind string

// Виды уведомлений.
const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// NotifyKeyUsers - общий ключ уведомлений об операциях над пользователями.
// Повторное уведомление с тем же ключом замещает предыдущее, а не
// добавляется к нему.
const NotifyKeyUsers = "users"

// Notification - одно транзитное уведомление для оператора.
type Notification struct {
	Key     string
	Kind    Kind
	Message string
}

// Notifier принимает уведомления об исходе операций.
type Notifier interface {
	Notify(n Notification)
}

// ConsoleNotifier печатает уведомления и хранит последнее по каждому ключу.
type ConsoleNotifier struct {
	mu     sync.Mutex
	out    io.Writer
	latest map[string]Notification
}

// NewConsoleNotifier создает notifier, пишущий в указанный writer.
func NewConsoleNotifier(out io.Writer) *ConsoleNotifier {
	return &ConsoleNotifier{
		out:    out,
		latest: make(map[string]Notification),
	}
}

// Notify выводит уведомление. Повтор с тем же ключом и текстом подавляется,
// чтобы одинаковые сообщения не накапливались на экране.
func (c *ConsoleNotifier) Notify(n Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.latest[n.Key]; ok && prev.Kind == n.Kind && prev.Message == n.Message {
		return
	}
	c.latest[n.Key] = n

	switch n.Kind {
	case KindError:
		fmt.Fprintf(c.out, "[error] %s\n", n.Message)
	default:
		fmt.Fprintf(c.out, "[ok] %s\n", n.Message)
	}
}

// Current возвращает последнее уведомление по ключу.
func (c *ConsoleNotifier) Current(key string) (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.latest[key]
	return n, ok
}

// Reset очищает сохраненные уведомления, позволяя показать повтор.
func (c *ConsoleNotifier) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.latest = make(map[string]Notification)
}
