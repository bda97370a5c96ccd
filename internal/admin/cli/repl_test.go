package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExec struct {
	reader   *bufio.Reader
	calls    []string
	searches []string
	pages    []int
	sizes    []int
	editIDs  []int64
	names    []string
}

func (s *stubExec) List(_ context.Context) error {
	s.calls = append(s.calls, "list")
	return nil
}

func (s *stubExec) Search(_ context.Context, text string) error {
	s.calls = append(s.calls, "search")
	s.searches = append(s.searches, text)
	return nil
}

func (s *stubExec) Page(_ context.Context, page int) error {
	s.calls = append(s.calls, "page")
	s.pages = append(s.pages, page)
	return nil
}

func (s *stubExec) PageSize(_ context.Context, size int) error {
	s.calls = append(s.calls, "size")
	s.sizes = append(s.sizes, size)
	return nil
}

func (s *stubExec) Create(_ context.Context) error {
	s.calls = append(s.calls, "create")
	if s.reader != nil {
		name, err := GetSimpleText(s.reader, "Name", io.Discard)
		if err != nil {
			return err
		}
		s.names = append(s.names, name)
	}
	return nil
}

func (s *stubExec) Edit(_ context.Context, id int64) error {
	s.calls = append(s.calls, "edit")
	s.editIDs = append(s.editIDs, id)
	return nil
}

func runWithInput(t *testing.T, input string) (*stubExec, []string) {
	t.Helper()

	var printed []string
	original := printlnFn
	printlnFn = func(args ...any) (int, error) {
		for _, arg := range args {
			if s, ok := arg.(string); ok {
				printed = append(printed, s)
			}
		}
		return 0, nil
	}
	defer func() { printlnFn = original }()

	stub := &stubExec{}
	reader := bufio.NewReader(strings.NewReader(input))
	stub.reader = reader
	runREPL(context.Background(), stub, reader)

	return stub, printed
}

func TestRunREPL(t *testing.T) {
	t.Run("dispatches commands with arguments", func(t *testing.T) {
		stub, _ := runWithInput(t, "list\nsearch ann smith\npage 3\nsize 20\nedit 7\nexit\n")

		assert.Equal(t, []string{"list", "search", "page", "size", "edit"}, stub.calls)
		assert.Equal(t, []string{"ann smith"}, stub.searches)
		assert.Equal(t, []int{3}, stub.pages)
		assert.Equal(t, []int{20}, stub.sizes)
		assert.Equal(t, []int64{7}, stub.editIDs)
	})

	t.Run("short list alias works", func(t *testing.T) {
		stub, _ := runWithInput(t, "l\nexit\n")

		assert.Equal(t, []string{"list"}, stub.calls)
	})

	t.Run("form reads the line after its command from piped input", func(t *testing.T) {
		// Формы читают из того же reader, что и цикл команд: строка
		// после "create" достается форме, а не разбирается как команда.
		stub, printed := runWithInput(t, "create\nAnn\nlist\nexit\n")

		require.Equal(t, []string{"create", "list"}, stub.calls)
		assert.Equal(t, []string{"Ann"}, stub.names)
		assert.NotContains(t, printed, "Unknown command:")
	})

	t.Run("unknown command is reported", func(t *testing.T) {
		stub, printed := runWithInput(t, "frobnicate\nexit\n")

		assert.Empty(t, stub.calls)
		assert.Contains(t, printed, "Unknown command:")
	})

	t.Run("invalid edit id is rejected locally", func(t *testing.T) {
		stub, printed := runWithInput(t, "edit abc\nedit -1\nexit\n")

		assert.Empty(t, stub.editIDs)
		assert.Contains(t, printed, "User id must be a positive number")
	})

	t.Run("blank lines are skipped and EOF ends the loop", func(t *testing.T) {
		stub, _ := runWithInput(t, "\n\nlist\n")

		assert.Equal(t, []string{"list"}, stub.calls)
	})

	t.Run("command on the final unterminated line still runs", func(t *testing.T) {
		stub, _ := runWithInput(t, "list")

		assert.Equal(t, []string{"list"}, stub.calls)
	})
}
