package printer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/hay-kot/clipstash/internal/core/clip"
	"github.com/hay-kot/clipstash/internal/styles"
)

// EntryTable renders records grouped by history. The history name appears
// only on the first row of its group. Histories listed in empty get a
// placeholder row; both slices must be sorted by history. Values longer than
// preview runes are truncated, and a preview of 0 disables truncation.
func EntryTable(records []clip.Record, empty []string, preview int) string {
	rows := make([][]string, 0, len(records)+len(empty))

	last := ""
	for i, r := range records {
		for len(empty) > 0 && empty[0] < r.History {
			rows = append(rows, []string{empty[0], "", "(empty)"})
			empty = empty[1:]
		}

		name := r.History
		if i > 0 && r.History == last {
			name = ""
		}
		last = r.History

		rows = append(rows, []string{name, r.Key, Preview(r.Value, preview)})
	}
	for _, name := range empty {
		rows = append(rows, []string{name, "", "(empty)"})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.TableBorderStyle).
		Headers("HISTORY", "KEY", "VALUE").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.TableHeaderStyle
			case col == 0:
				return styles.TableHistoryStyle
			default:
				return styles.TableCellStyle
			}
		}).
		Rows(rows...)

	return t.String()
}

// Preview flattens line breaks and shortens s to at most n runes.
func Preview(s string, n int) string {
	s = strings.NewReplacer("\r\n", "↵", "\n", "↵", "\t", "  ").Replace(s)
	if n <= 0 {
		return s
	}

	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}
