package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	v1 "useradmin/pkg/api/v1"
)

func TestRenderUsers(t *testing.T) {
	phone := "+123456789"
	age := 30
	created := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)

	t.Run("renders rows with formatted dates", func(t *testing.T) {
		var out bytes.Buffer

		renderUsers(&out, []v1.User{
			{ID: 7, Name: "Ann", Surname: "Smith", Email: "ann@example.com", Phone: &phone, Age: &age, CreatedAt: created, UpdatedAt: created},
		}, 1, 5, 11)

		rendered := out.String()
		assert.Contains(t, rendered, "ID")
		assert.Contains(t, rendered, "ann@example.com")
		assert.Contains(t, rendered, "+123456789")
		assert.Contains(t, rendered, "30")
		assert.Contains(t, rendered, "30/08/2026 15:04:05")
	})

	t.Run("nil optional fields render as empty cells", func(t *testing.T) {
		var out bytes.Buffer

		renderUsers(&out, []v1.User{
			{ID: 7, Name: "Ann", Surname: "Smith", Email: "ann@example.com"},
		}, 1, 5, 1)

		assert.NotContains(t, out.String(), "<nil>")
	})

	t.Run("footer shows total and page count", func(t *testing.T) {
		var out bytes.Buffer

		renderUsers(&out, nil, 2, 5, 11)

		assert.Contains(t, out.String(), "Total users: 11 | page 2 of 3 (size 5)")
	})

	t.Run("zero page size avoids division", func(t *testing.T) {
		var out bytes.Buffer

		renderUsers(&out, nil, 1, 0, 0)

		assert.Contains(t, out.String(), "page 1 of 0")
	})
}
