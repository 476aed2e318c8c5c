package editor

import (
	"context"
	"image"

	"meme-studio/pkg/compositor"
)

// Acquirer supplies an image from a source. Returning
// ErrAcquisitionCancelled means the user backed out.
type Acquirer interface {
	Acquire(ctx context.Context, src Source) (image.Image, error)
}

// AcquirerFunc adapts a function to Acquirer.
type AcquirerFunc func(ctx context.Context, src Source) (image.Image, error)

func (f AcquirerFunc) Acquire(ctx context.Context, src Source) (image.Image, error) {
	return f(ctx, src)
}

// Sharer presents one flattened image to a share surface. Returning
// ErrShareCancelled means the surface was dismissed.
type Sharer interface {
	Share(ctx context.Context, img image.Image) (ShareResult, error)
}

// SharerFunc adapts a function to Sharer.
type SharerFunc func(ctx context.Context, img image.Image) (ShareResult, error)

func (f SharerFunc) Share(ctx context.Context, img image.Image) (ShareResult, error) {
	return f(ctx, img)
}

// Composer flattens a layout. *compositor.Compositor satisfies it.
type Composer interface {
	Compose(l compositor.Layout) (*image.RGBA, error)
}

// UseCase drives editor sessions for remote clients. Each session is an
// Editor guarded by its own lock; all sessions append to the same store.
type UseCase interface {
	Create(ctx context.Context) (SessionOutput, error)
	Get(ctx context.Context, id string) (SessionOutput, error)
	Close(ctx context.Context, id string) error
	Acquire(ctx context.Context, input AcquireInput) (AcquireOutput, error)
	SetCaption(ctx context.Context, input CaptionInput) (SessionOutput, error)
	Focus(ctx context.Context, id string, field Field) (SessionOutput, error)
	RequestShare(ctx context.Context, id string) (ShareOutput, error)
	CompleteShare(ctx context.Context, input CompleteInput) (CompleteOutput, error)
	CancelShare(ctx context.Context, id string) (SessionOutput, error)
	Cancel(ctx context.Context, id string) (SessionOutput, error)
	Library(ctx context.Context) ([]string, error)
}
