package usecase

import (
	"context"
	"math"

	"meme-studio/internal/meme"
)

const (
	defaultGridWidth   = 375
	defaultGridColumns = 3
	defaultGridSpacing = 3
)

// Table returns every meme as a row, in insertion order.
func (uc *implUseCase) Table(ctx context.Context) (meme.TableOutput, error) {
	rows := uc.entries()
	return meme.TableOutput{Rows: rows, Total: len(rows)}, nil
}

// Grid returns every meme as a cell together with the square cell size that
// fills the container width with Columns cells and Spacing gaps between them.
func (uc *implUseCase) Grid(ctx context.Context, input meme.GridInput) (meme.GridOutput, error) {
	width := input.Width
	if width == 0 {
		width = defaultGridWidth
	}
	columns := input.Columns
	if columns == 0 {
		columns = defaultGridColumns
	}
	spacing := float64(defaultGridSpacing)
	if input.Spacing != nil {
		spacing = *input.Spacing
	}

	if columns < 0 || spacing < 0 || width < 0 || !finite(width) || !finite(spacing) {
		return meme.GridOutput{}, meme.ErrInvalidGrid
	}
	gaps := float64(columns-1) * spacing
	if width <= gaps {
		return meme.GridOutput{}, meme.ErrInvalidGrid
	}

	cells := uc.entries()
	return meme.GridOutput{
		Cells:    cells,
		Columns:  columns,
		Spacing:  spacing,
		ItemSize: (width - gaps) / float64(columns),
		Total:    len(cells),
	}, nil
}

// Detail returns the meme at index. Out-of-range indexes are reported as
// ErrMemeNotFound rather than reaching the store's bounds check.
func (uc *implUseCase) Detail(ctx context.Context, index int) (meme.DetailOutput, error) {
	if index < 0 || index >= uc.store.Count() {
		return meme.DetailOutput{}, meme.ErrMemeNotFound
	}
	return meme.DetailOutput{Entry: meme.Entry{Index: index, Meme: uc.store.At(index)}}, nil
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func (uc *implUseCase) entries() []meme.Entry {
	all := uc.store.All()
	entries := make([]meme.Entry, len(all))
	for i, m := range all {
		entries[i] = meme.Entry{Index: i, Meme: m}
	}
	return entries
}
