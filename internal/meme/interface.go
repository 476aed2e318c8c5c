package meme

import "context"

// UseCase exposes the read-only browsing views over the meme store. Every
// call re-reads the store, so views always reflect the latest appends.
type UseCase interface {
	Table(ctx context.Context) (TableOutput, error)
	Grid(ctx context.Context, input GridInput) (GridOutput, error)
	Detail(ctx context.Context, index int) (DetailOutput, error)
	Image(ctx context.Context, input ImageInput) (ImageOutput, error)
}
