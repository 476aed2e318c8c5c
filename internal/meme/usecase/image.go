package usecase

import (
	"context"
	"image"

	"meme-studio/internal/meme"
	"meme-studio/pkg/imaging"
	"meme-studio/pkg/response"
)

// Image returns the PNG encoding of one picture of the meme at input.Index.
// Memes never change, so encodings are cached by meme id and variant.
func (uc *implUseCase) Image(ctx context.Context, input meme.ImageInput) (meme.ImageOutput, error) {
	detail, err := uc.Detail(ctx, input.Index)
	if err != nil {
		return meme.ImageOutput{}, err
	}
	m := detail.Entry.Meme

	variant := input.Variant
	if variant == "" {
		variant = meme.VariantMemed
	}

	key := cacheKey{id: m.ID(), variant: variant}
	if data, ok := uc.images.Get(key); ok {
		return meme.ImageOutput{Data: data, ContentType: response.ContentTypePNG}, nil
	}

	var img image.Image
	switch variant {
	case meme.VariantMemed:
		img = m.MemedImage()
	case meme.VariantOriginal:
		img = m.OriginalImage()
	case meme.VariantThumbnail:
		img = imaging.Thumbnail(m.MemedImage(), uc.thumbSize)
	default:
		return meme.ImageOutput{}, meme.ErrInvalidVariant
	}

	data, err := imaging.EncodePNG(img)
	if err != nil {
		uc.l.Errorf(ctx, "internal.meme.usecase.Image: encode %s/%s: %v", m.ID(), variant, err)
		return meme.ImageOutput{}, err
	}
	uc.images.Add(key, data)

	return meme.ImageOutput{Data: data, ContentType: response.ContentTypePNG}, nil
}
