package browse

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"meme-studio/pkg/memeapi"
)

// View renders the browser.
func (m *model) View() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n\n")

	switch {
	case m.detail != nil:
		b.WriteString(m.detailView(*m.detail))
	case m.mode == modeGrid:
		b.WriteString(m.gridView())
	default:
		b.WriteString(m.table.View())
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(m.helpView())
	return b.String()
}

func (m *model) header() string {
	tabs := []string{tabStyle.Render("Table"), tabStyle.Render("Grid")}
	tabs[m.mode] = activeTabStyle.Render([]string{"Table", "Grid"}[m.mode])

	title := headerStyle.Render("Sent Memes")
	if m.loading {
		title += " " + m.spinner.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m *model) gridView() string {
	if len(m.grid.Cells) == 0 {
		return helpStyle.Render("No memes yet.")
	}

	// Borders take two columns of the item size.
	inner := max(int(m.grid.ItemSize)-2, 4)
	cols := max(m.grid.Columns, 1)
	gap := strings.Repeat(" ", int(m.grid.Spacing))

	var rows []string
	for start := 0; start < len(m.grid.Cells); start += cols {
		end := min(start+cols, len(m.grid.Cells))
		var cells []string
		for i := start; i < end; i++ {
			style := cellStyle
			if i == m.gridCursor {
				style = selectedCellStyle
			}
			cells = append(cells, style.Width(inner).Render(cellText(m.grid.Cells[i], inner)))
			if i < end-1 && gap != "" {
				cells = append(cells, gap)
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func cellText(mm memeapi.Meme, width int) string {
	label := fmt.Sprintf("#%d", mm.Index)
	top := truncate(mm.TopText, width)
	return label + "\n" + captionStyle.Render(top)
}

func (m *model) detailView(mm memeapi.Meme) string {
	lines := []string{
		headerStyle.Render(fmt.Sprintf("Meme #%d", mm.Index)),
		"",
		captionStyle.Render(orDash(mm.TopText)),
		captionStyle.Render(orDash(mm.BottomText)),
		"",
		helpStyle.Render("id      " + mm.ID),
		helpStyle.Render("created " + mm.CreatedAt.Local().Format(createdLayout)),
		helpStyle.Render("image   " + mm.ImageURL),
	}
	return detailStyle.Render(strings.Join(lines, "\n"))
}

func (m *model) helpView() string {
	var parts []string
	for _, k := range m.keys.help() {
		h := k.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return helpStyle.Render(strings.Join(parts, " • "))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
