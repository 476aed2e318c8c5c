package browse

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meme-studio/pkg/memeapi"
)

type fakeSource struct {
	table   memeapi.Table
	grid    memeapi.Grid
	gridReq memeapi.GridRequest
	memes   map[int]memeapi.Meme
	err     error
}

func (f *fakeSource) Table(ctx context.Context) (memeapi.Table, error) {
	return f.table, f.err
}

func (f *fakeSource) Grid(ctx context.Context, req memeapi.GridRequest) (memeapi.Grid, error) {
	f.gridReq = req
	return f.grid, f.err
}

func (f *fakeSource) Detail(ctx context.Context, index int) (memeapi.Meme, error) {
	m, ok := f.memes[index]
	if !ok {
		return memeapi.Meme{}, memeapi.ErrNotFound
	}
	return m, nil
}

func sample() *fakeSource {
	memes := []memeapi.Meme{
		{Index: 0, ID: "a", TopText: "ONE DOES NOT", BottomText: "SIMPLY"},
		{Index: 1, ID: "b", TopText: "LOL"},
		{Index: 2, ID: "c", TopText: "WOW", BottomText: "MUCH GRID"},
		{Index: 3, ID: "d", TopText: "FOUR"},
	}
	byIndex := map[int]memeapi.Meme{}
	for _, m := range memes {
		byIndex[m.Index] = m
	}
	return &fakeSource{
		table: memeapi.Table{Rows: memes, Total: len(memes)},
		grid:  memeapi.Grid{Cells: memes, Columns: 3, Spacing: 1, ItemSize: 26, Total: len(memes)},
		memes: byIndex,
	}
}

// run executes cmd and feeds its message back into the model.
func run(t *testing.T, m *model, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	m.Update(cmd())
}

func press(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTableView(t *testing.T) {
	m := New(sample())
	run(t, m, m.loadTable())

	assert.False(t, m.loading)
	assert.Len(t, m.table.Rows(), 4)
	assert.Contains(t, m.View(), "ONE DOES NOT")

	m.Update(press("down"))
	assert.Equal(t, 1, m.selectedIndex())
}

func TestToggleToGrid(t *testing.T) {
	src := sample()
	m := New(src)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

	m.Update(press("tab"))
	assert.Equal(t, modeGrid, m.mode)
	assert.True(t, m.loading)

	run(t, m, m.loadGrid())
	assert.Equal(t, memeapi.GridRequest{Width: 80, Columns: gridColumns, Spacing: gridSpacing}, src.gridReq)
	assert.False(t, m.loading)
	assert.Contains(t, m.View(), "#3")

	m.Update(press("right"))
	assert.Equal(t, 1, m.selectedIndex())
	m.Update(press("down"))
	assert.Equal(t, 1, m.gridCursor, "no cell below the second column")
	m.Update(press("h"))
	m.Update(press("j"))
	assert.Equal(t, 3, m.selectedIndex())
}

func TestOpenDetail(t *testing.T) {
	m := New(sample())
	run(t, m, m.loadTable())
	m.Update(press("down"))
	m.Update(press("down"))

	_, cmd := m.Update(press("enter"))
	require.NotNil(t, cmd)
	run(t, m, m.loadDetail(m.selectedIndex()))

	require.NotNil(t, m.detail)
	assert.Equal(t, "WOW", m.detail.TopText)
	assert.Contains(t, m.View(), "MUCH GRID")

	m.Update(press("esc"))
	assert.Nil(t, m.detail)
}

func TestErrors(t *testing.T) {
	src := sample()
	src.err = errors.New("connection refused")
	m := New(src)

	run(t, m, m.loadTable())
	assert.Error(t, m.err)
	assert.Contains(t, m.View(), "connection refused")

	run(t, m, m.loadDetail(42))
	assert.ErrorIs(t, m.err, memeapi.ErrNotFound)
}

func TestQuit(t *testing.T) {
	m := New(sample())
	_, cmd := m.Update(press("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abc…", truncate("abcdef", 4))
}
