// Package cli реализует интерактивную консоль администратора:
// табличный список пользователей и формы создания и редактирования.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"

	"useradmin/internal/admin/client"
	"useradmin/internal/admin/config"
)

// App связывает контекст данных, ввод и вывод консоли.
type App struct {
	dataCtx  *client.Context
	reader   *bufio.Reader
	out      io.Writer
	validate *validator.Validate
	pageSize int
}

// NewApp создает консоль поверх готового контекста данных.
func NewApp(cfg *config.Config, dataCtx *client.Context) *App {
	return &App{
		dataCtx:  dataCtx,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		validate: validator.New(),
		pageSize: cfg.PageSize,
	}
}

// Run загружает первую страницу и запускает цикл команд.
// Цикл и формы делят один a.reader.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "User administration console (type 'help' for commands)")

	// Первая страница загружается сразу, до первой команды.
	if err := a.dataCtx.FetchUsers(ctx, 1, a.pageSize, ""); err == nil {
		a.renderCurrent()
	}

	runREPL(ctx, a, a.reader)
}

// List перечитывает текущую страницу с текущим поиском и выводит таблицу.
func (a *App) List(ctx context.Context) error {
	page, pageSize, _ := a.dataCtx.Pagination()
	if err := a.dataCtx.FetchUsers(ctx, page, pageSize, a.dataCtx.SearchText()); err != nil {
		return err
	}
	a.renderCurrent()
	return nil
}

// Search загружает первую страницу по подстроке имени или фамилии.
func (a *App) Search(ctx context.Context, text string) error {
	if err := a.dataCtx.Search(ctx, text); err != nil {
		return err
	}
	a.renderCurrent()
	return nil
}

// Page переходит на указанную страницу списка.
func (a *App) Page(ctx context.Context, page int) error {
	if page < 1 {
		fmt.Fprintln(a.out, "Page must be positive")
		return nil
	}
	_, pageSize, _ := a.dataCtx.Pagination()
	if err := a.dataCtx.FetchUsers(ctx, page, pageSize, a.dataCtx.SearchText()); err != nil {
		return err
	}
	a.renderCurrent()
	return nil
}

// PageSize меняет размер страницы и возвращается на первую страницу.
func (a *App) PageSize(ctx context.Context, size int) error {
	if size < 1 {
		fmt.Fprintln(a.out, "Page size must be positive")
		return nil
	}
	if err := a.dataCtx.FetchUsers(ctx, 1, size, a.dataCtx.SearchText()); err != nil {
		return err
	}
	a.renderCurrent()
	return nil
}

func (a *App) renderCurrent() {
	page, pageSize, total := a.dataCtx.Pagination()
	renderUsers(a.out, a.dataCtx.Users(), page, pageSize, total)
}
