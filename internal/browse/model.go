// Package browse is a terminal browser for sent memes with a table view, a
// grid view and a detail pane.
package browse

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"meme-studio/pkg/memeapi"
)

const (
	gridColumns   = 3
	gridSpacing   = 1
	fetchTimeout  = 5 * time.Second
	defaultWidth  = 80
	defaultHeight = 24
	createdLayout = "2006-01-02 15:04"
)

// Source is where the browser reads memes from. *memeapi.Client satisfies it.
type Source interface {
	Table(ctx context.Context) (memeapi.Table, error)
	Grid(ctx context.Context, req memeapi.GridRequest) (memeapi.Grid, error)
	Detail(ctx context.Context, index int) (memeapi.Meme, error)
}

type mode int

const (
	modeTable mode = iota
	modeGrid
)

// --- Messages ---

type tableMsg struct{ table memeapi.Table }
type gridMsg struct{ grid memeapi.Grid }
type detailMsg struct{ meme memeapi.Meme }
type errMsg struct{ err error }

type model struct {
	src  Source
	keys keyMap

	mode    mode
	width   int
	height  int
	loading bool
	err     error

	table   table.Model
	spinner spinner.Model

	grid       memeapi.Grid
	gridCursor int

	detail *memeapi.Meme
}

// New creates the browser model over src.
func New(src Source) *model {
	t := table.New(
		table.WithColumns(columnsFor(defaultWidth)),
		table.WithFocused(true),
		table.WithHeight(defaultHeight-6),
	)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = headerStyle

	return &model{
		src:     src,
		keys:    defaultKeyMap(),
		mode:    modeTable,
		width:   defaultWidth,
		height:  defaultHeight,
		loading: true,
		table:   t,
		spinner: s,
	}
}

// Init starts the spinner and fetches the first view.
func (m *model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load())
}

func (m *model) load() tea.Cmd {
	if m.mode == modeGrid {
		return m.loadGrid()
	}
	return m.loadTable()
}

func (m *model) loadTable() tea.Cmd {
	src := m.src
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		out, err := src.Table(ctx)
		if err != nil {
			return errMsg{err: err}
		}
		return tableMsg{table: out}
	}
}

func (m *model) loadGrid() tea.Cmd {
	src := m.src
	req := memeapi.GridRequest{
		Width:   float64(m.width),
		Columns: gridColumns,
		Spacing: gridSpacing,
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		out, err := src.Grid(ctx, req)
		if err != nil {
			return errMsg{err: err}
		}
		return gridMsg{grid: out}
	}
}

func (m *model) loadDetail(index int) tea.Cmd {
	src := m.src
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		out, err := src.Detail(ctx, index)
		if err != nil {
			return errMsg{err: err}
		}
		return detailMsg{meme: out}
	}
}

// selectedIndex returns the store index under the cursor, or -1.
func (m *model) selectedIndex() int {
	switch m.mode {
	case modeGrid:
		if m.gridCursor >= 0 && m.gridCursor < len(m.grid.Cells) {
			return m.grid.Cells[m.gridCursor].Index
		}
	default:
		rows := m.table.Rows()
		cursor := m.table.Cursor()
		if cursor >= 0 && cursor < len(rows) {
			return rowIndex(rows[cursor])
		}
	}
	return -1
}
