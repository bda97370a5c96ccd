package cli

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
)

// printlnFn - тестовая точка подмены пользовательского вывода.
var printlnFn = fmt.Println

// execIface - минимальный набор команд, нужный циклу. Реальный App
// удовлетворяет интерфейсу; тесты подставляют заглушку.
type execIface interface {
	List(ctx context.Context) error
	Search(ctx context.Context, text string) error
	Page(ctx context.Context, page int) error
	PageSize(ctx context.Context, size int) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, id int64) error
}

// runREPL читает строку, разбирает первый токен как команду и вызывает
// соответствующий метод. Команды и формы читают из одного reader:
// второй буфер поверх того же дескриптора съедал бы строки, которые
// ждут формы создания и редактирования. Цикл завершается по EOF или
// командам exit/quit. Ошибки обработчиков здесь игнорируются:
// обработчики сами сообщают о своих ошибках через уведомления.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		printlnFn("users> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn("Available commands: (l)ist, search <text>, page <n>, size <n>, create, edit <id>, exit")

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "page":
			if len(args) == 0 {
				printlnFn("Usage: page <n>")
				continue
			}
			page, convErr := strconv.Atoi(args[0])
			if convErr != nil {
				printlnFn("Page must be a number")
				continue
			}
			_ = a.Page(ctx, page)

		case "size":
			if len(args) == 0 {
				printlnFn("Usage: size <n>")
				continue
			}
			size, convErr := strconv.Atoi(args[0])
			if convErr != nil {
				printlnFn("Page size must be a number")
				continue
			}
			_ = a.PageSize(ctx, size)

		case "create":
			_ = a.Create(ctx)

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <id>")
				continue
			}
			id, convErr := strconv.ParseInt(args[0], 10, 64)
			if convErr != nil || id <= 0 {
				printlnFn("User id must be a positive number")
				continue
			}
			_ = a.Edit(ctx, id)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
