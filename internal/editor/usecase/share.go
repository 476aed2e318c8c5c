package usecase

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"meme-studio/internal/editor"
	"meme-studio/pkg/imaging"
	"meme-studio/pkg/response"
)

// RequestShare flattens the session's meme and returns it as PNG. The meme
// is held until CompleteShare or CancelShare.
func (uc *implUseCase) RequestShare(ctx context.Context, id string) (editor.ShareOutput, error) {
	ctx, span := uc.tracer.Start(ctx, "editor.RequestShare")
	span.SetAttributes(attribute.String("session.id", id))
	defer span.End()

	var out editor.ShareOutput
	err := uc.with(id, func(s *session) error {
		start := time.Now()
		img, err := s.editor.RequestShare()
		if err != nil {
			return err
		}
		if uc.metrics != nil {
			uc.metrics.CompositionDuration.Observe(time.Since(start).Seconds())
		}

		data, err := imaging.EncodePNG(img)
		if err != nil {
			if cancelErr := s.editor.CancelShare(); cancelErr != nil {
				return errors.Join(err, cancelErr)
			}
			return err
		}

		b := img.Bounds()
		span.SetAttributes(attribute.Int("meme.width", b.Dx()), attribute.Int("meme.height", b.Dy()))
		out = editor.ShareOutput{
			Session:     newSessionOutput(s),
			Data:        data,
			ContentType: response.ContentTypePNG,
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, editor.ErrNoImageSelected) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			uc.l.Warnf(ctx, "internal.editor.usecase.RequestShare: session=%s: %v", id, err)
		}
		return editor.ShareOutput{}, err
	}
	return out, nil
}

// CompleteShare saves the pending meme when the share was accepted and
// discards it otherwise.
func (uc *implUseCase) CompleteShare(ctx context.Context, input editor.CompleteInput) (editor.CompleteOutput, error) {
	var out editor.CompleteOutput
	err := uc.with(input.SessionID, func(s *session) error {
		res, err := s.editor.CompleteShare(input.Accepted)
		if err != nil {
			return err
		}
		out = editor.CompleteOutput{
			Session: newSessionOutput(s),
			Saved:   res.Saved,
			Index:   -1,
		}
		if res.Saved {
			out.Index = res.Index
			out.MemeID = res.Meme.ID()
		}
		return nil
	})
	if err != nil {
		return editor.CompleteOutput{}, err
	}

	if out.Saved {
		uc.l.Infof(ctx, "internal.editor.usecase.CompleteShare: session=%s saved meme=%s index=%d", input.SessionID, out.MemeID, out.Index)
		if uc.metrics != nil {
			uc.metrics.MemesSaved.Inc()
		}
	} else if uc.metrics != nil {
		uc.metrics.SharesCancelled.Inc()
	}
	return out, nil
}

// CancelShare drops the pending meme after the share surface was dismissed.
func (uc *implUseCase) CancelShare(ctx context.Context, id string) (editor.SessionOutput, error) {
	var out editor.SessionOutput
	err := uc.with(id, func(s *session) error {
		if err := s.editor.CancelShare(); err != nil {
			return err
		}
		out = newSessionOutput(s)
		return nil
	})
	if err != nil {
		return editor.SessionOutput{}, err
	}
	if uc.metrics != nil {
		uc.metrics.SharesCancelled.Inc()
	}
	return out, nil
}
