package usecase

import (
	"context"

	"github.com/google/uuid"

	"meme-studio/internal/editor"
)

// Create opens a new editor session in the Idle state.
func (uc *implUseCase) Create(ctx context.Context) (editor.SessionOutput, error) {
	s := &session{
		id: uuid.NewString(),
		editor: editor.New(uc.store, uc.composer, editor.Options{
			Style:    uc.cfg.Style,
			Viewport: uc.cfg.Viewport,
		}),
	}

	uc.reg.Lock()
	uc.sessions.Add(s.id, s)
	uc.reg.Unlock()
	uc.incSessions()
	uc.l.Debugf(ctx, "internal.editor.usecase.Create: session=%s", s.id)

	return newSessionOutput(s), nil
}

// Get reports the state of a session.
func (uc *implUseCase) Get(ctx context.Context, id string) (editor.SessionOutput, error) {
	var out editor.SessionOutput
	err := uc.with(id, func(s *session) error {
		out = newSessionOutput(s)
		return nil
	})
	return out, err
}

// Close discards a session. Nothing it composed is saved.
func (uc *implUseCase) Close(ctx context.Context, id string) error {
	uc.reg.Lock()
	removed := uc.sessions.Remove(id)
	uc.reg.Unlock()
	if !removed {
		return editor.ErrSessionNotFound
	}
	uc.l.Debugf(ctx, "internal.editor.usecase.Close: session=%s", id)
	return nil
}

// SetCaption replaces one caption of a session.
func (uc *implUseCase) SetCaption(ctx context.Context, input editor.CaptionInput) (editor.SessionOutput, error) {
	var out editor.SessionOutput
	err := uc.with(input.SessionID, func(s *session) error {
		if err := s.editor.SetCaption(input.Field, input.Text); err != nil {
			return err
		}
		out = newSessionOutput(s)
		return nil
	})
	return out, err
}

// Focus moves input focus to a caption field.
func (uc *implUseCase) Focus(ctx context.Context, id string, field editor.Field) (editor.SessionOutput, error) {
	var out editor.SessionOutput
	err := uc.with(id, func(s *session) error {
		if err := s.editor.Focus(field); err != nil {
			return err
		}
		out = newSessionOutput(s)
		return nil
	})
	return out, err
}

// Cancel resets a session to Idle.
func (uc *implUseCase) Cancel(ctx context.Context, id string) (editor.SessionOutput, error) {
	var out editor.SessionOutput
	err := uc.with(id, func(s *session) error {
		s.editor.Cancel()
		out = newSessionOutput(s)
		return nil
	})
	return out, err
}

// with runs fn while holding the session lock and renews the session TTL.
func (uc *implUseCase) with(id string, fn func(s *session) error) error {
	s, ok := uc.renew(id)
	if !ok {
		return editor.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s)
}

// renew looks a session up and restarts its TTL. Get does not extend the
// expiry, so the entry is re-added; if it expired between the two calls the
// re-add inserted it again and the gauge has to count it back.
func (uc *implUseCase) renew(id string) (*session, bool) {
	uc.reg.Lock()
	defer uc.reg.Unlock()

	s, ok := uc.sessions.Get(id)
	if !ok {
		return nil, false
	}
	uc.sessions.Add(id, s)
	if s.evicted.Swap(false) {
		uc.incSessions()
	}
	return s, true
}

func (uc *implUseCase) incSessions() {
	if uc.metrics != nil {
		uc.metrics.ActiveSessions.Inc()
	}
}

func newSessionOutput(s *session) editor.SessionOutput {
	snap := s.editor.Snapshot()
	out := editor.SessionOutput{
		ID:         s.id,
		State:      snap.State,
		TopText:    snap.TopText,
		BottomText: snap.BottomText,
	}
	if snap.Image != nil {
		b := snap.Image.Bounds()
		out.HasImage = true
		out.ImageWidth = b.Dx()
		out.ImageHeight = b.Dy()
	}
	return out
}
