package browse

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"meme-studio/pkg/memeapi"
)

// Update handles all state updates for the browser.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table.SetColumns(columnsFor(msg.Width))
		m.table.SetWidth(msg.Width)
		m.table.SetHeight(max(msg.Height-6, 3))
		if m.mode == modeGrid {
			m.loading = true
			return m, m.loadGrid()
		}
		return m, nil

	case tableMsg:
		m.loading, m.err = false, nil
		m.table.SetRows(tableRows(msg.table.Rows))
		return m, nil

	case gridMsg:
		m.loading, m.err = false, nil
		m.grid = msg.grid
		if m.gridCursor >= len(m.grid.Cells) {
			m.gridCursor = max(len(m.grid.Cells)-1, 0)
		}
		return m, nil

	case detailMsg:
		m.loading, m.err = false, nil
		d := msg.meme
		m.detail = &d
		return m, nil

	case errMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.detail = nil
		m.err = nil
		return m, nil

	case m.detail != nil:
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		if m.mode == modeTable {
			m.mode = modeGrid
		} else {
			m.mode = modeTable
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.load())

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.load())

	case key.Matches(msg, m.keys.Open):
		index := m.selectedIndex()
		if index < 0 {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadDetail(index))
	}

	if m.mode == modeGrid {
		m.moveGridCursor(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *model) moveGridCursor(msg tea.KeyMsg) {
	n := len(m.grid.Cells)
	if n == 0 {
		return
	}
	cols := max(m.grid.Columns, 1)

	next := m.gridCursor
	switch {
	case key.Matches(msg, m.keys.Left):
		next--
	case key.Matches(msg, m.keys.Right):
		next++
	case key.Matches(msg, m.keys.Up):
		next -= cols
	case key.Matches(msg, m.keys.Down):
		next += cols
	}
	if next >= 0 && next < n {
		m.gridCursor = next
	}
}

func columnsFor(width int) []table.Column {
	const indexW, createdW = 5, 19
	rest := max(width-indexW-createdW-8, 20)
	return []table.Column{
		{Title: "#", Width: indexW},
		{Title: "Top", Width: rest / 2},
		{Title: "Bottom", Width: rest - rest/2},
		{Title: "Created", Width: createdW},
	}
}

func tableRows(memes []memeapi.Meme) []table.Row {
	rows := make([]table.Row, len(memes))
	for i, mm := range memes {
		rows[i] = table.Row{strconv.Itoa(mm.Index), mm.TopText, mm.BottomText, mm.CreatedAt.Local().Format(createdLayout)}
	}
	return rows
}

func rowIndex(r table.Row) int {
	if len(r) == 0 {
		return -1
	}
	i, err := strconv.Atoi(r[0])
	if err != nil {
		return -1
	}
	return i
}
