package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword - тестовая точка подмены term.ReadPassword, чтобы тесты
// не трогали терминал.
var readPassword = term.ReadPassword

// clearMark очищает необязательное поле в форме редактирования.
// Очистка записывает пустую строку (для возраста - ноль), а не NULL:
// частичное обновление различает только присутствие и отсутствие поля,
// вернуть колонку в NULL через него нельзя.
const clearMark = "-"

// GetSimpleText печатает подсказку и читает одну строку ввода.
// Завершающий перевод строки отбрасывается; частичная строка перед EOF
// возвращается как есть.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword читает пароль из терминала без эха.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetOptionalText читает необязательное поле формы создания: пустой
// ввод означает отсутствие значения.
func GetOptionalText(reader *bufio.Reader, prompt string, w io.Writer) (*string, error) {
	text, err := GetSimpleText(reader, prompt+" (Enter to skip)", w)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}
	return &text, nil
}

// GetPatchText читает поле формы редактирования: пустой ввод оставляет
// текущее значение, clearMark очищает поле.
func GetPatchText(reader *bufio.Reader, prompt, current string, w io.Writer) (*string, error) {
	text, err := GetSimpleText(reader, fmt.Sprintf("%s [%s] (Enter to keep, %q to clear)", prompt, current, clearMark), w)
	if err != nil {
		return nil, err
	}
	switch text {
	case "":
		return nil, nil
	case clearMark:
		empty := ""
		return &empty, nil
	default:
		return &text, nil
	}
}
