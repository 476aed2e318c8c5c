package usecase

import (
	"context"
	"errors"

	"meme-studio/internal/editor"
	"meme-studio/internal/editor/acquire"
)

// Acquire loads an image into a session from the source its tag selects.
func (uc *implUseCase) Acquire(ctx context.Context, input editor.AcquireInput) (editor.AcquireOutput, error) {
	var out editor.AcquireOutput
	err := uc.with(input.SessionID, func(s *session) error {
		src, err := s.editor.Acquire(ctx, input.Tag, uc.acquirer(input))
		out.Source = src
		uc.observeAcquisition(src, err)
		if err != nil {
			return err
		}
		out.Session = newSessionOutput(s)
		return nil
	})
	if err != nil && !errors.Is(err, editor.ErrAcquisitionCancelled) && !errors.Is(err, editor.ErrSessionNotFound) {
		uc.l.Warnf(ctx, "internal.editor.usecase.Acquire: session=%s source=%s: %v", input.SessionID, out.Source, err)
	}
	return out, err
}

// Library lists the images a session can pick by name.
func (uc *implUseCase) Library(ctx context.Context) ([]string, error) {
	names, err := acquire.List(uc.cfg.LibraryDir)
	if err != nil {
		uc.l.Errorf(ctx, "internal.editor.usecase.Library: %v", err)
		return nil, err
	}
	return names, nil
}

func (uc *implUseCase) acquirer(input editor.AcquireInput) editor.Acquirer {
	upload := acquire.Upload{Data: input.Data, MaxPixels: uc.cfg.MaxPixels}
	var library editor.Acquirer = upload
	if input.LibraryName != "" {
		library = acquire.Library{Dir: uc.cfg.LibraryDir, Name: input.LibraryName, MaxPixels: uc.cfg.MaxPixels}
	}
	return acquire.Gate{
		CameraEnabled: uc.cfg.CameraEnabled,
		Capture:       upload,
		Library:       library,
	}
}

func (uc *implUseCase) observeAcquisition(src editor.Source, err error) {
	if uc.metrics == nil {
		return
	}
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, editor.ErrAcquisitionCancelled):
		outcome = "cancelled"
	default:
		outcome = "error"
	}
	uc.metrics.Acquisitions.WithLabelValues(src.String(), outcome).Inc()
}
