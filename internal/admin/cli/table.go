package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	v1 "useradmin/pkg/api/v1"
)

// Формат дат в таблице: день/месяц/год часы:минуты:секунды.
const tableTimeLayout = "02/01/2006 15:04:05"

// renderUsers печатает страницу списка пользователей выровненной таблицей
// с итоговой строкой пагинации.
func renderUsers(out io.Writer, users []v1.User, page, pageSize, totalCount int) {
	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "ID\tNAME\tSURNAME\tEMAIL\tPHONE\tAGE\tCOUNTRY\tDISTRICT\tROLE\tCREATED\tUPDATED")
	for _, user := range users {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			user.ID,
			user.Name,
			user.Surname,
			user.Email,
			strOrEmpty(user.Phone),
			intOrEmpty(user.Age),
			strOrEmpty(user.Country),
			strOrEmpty(user.District),
			strOrEmpty(user.Role),
			formatTableTime(user.CreatedAt),
			formatTableTime(user.UpdatedAt),
		)
	}
	_ = tw.Flush()

	totalPages := 0
	if pageSize > 0 {
		totalPages = (totalCount + pageSize - 1) / pageSize
	}
	fmt.Fprintf(out, "Total users: %d | page %d of %d (size %d)\n", totalCount, page, totalPages, pageSize)
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrEmpty(n *int) string {
	if n == nil {
		return ""
	}
	return fmt.Sprintf("%d", *n)
}

func formatTableTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(tableTimeLayout)
}
