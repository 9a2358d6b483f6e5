package peripheral

import (
	"context"
)

// Speaker is an attached speaker.
type Speaker struct {
	Base
}

// NewSpeaker creates a speaker proxy bound to the given handle.
func NewSpeaker(sess Session, handle Handle) *Speaker {
	return &Speaker{Base: NewBase(sess, handle)}
}

// PlayNote plays an instrument note. Volume ranges 0..3, pitch 0..24.
// Returns false when the speaker cannot play more notes this tick.
func (s *Speaker) PlayNote(ctx context.Context, instrument string, volume, pitch int) (bool, error) {
	res, err := s.Call(ctx, "playNote", instrument, volume, pitch)
	if err != nil {
		return false, err
	}
	return res.Bool()
}

// PlaySound plays a named sound. Volume ranges 0..3, pitch 0..2.
func (s *Speaker) PlaySound(ctx context.Context, sound string, volume, pitch int) (bool, error) {
	res, err := s.Call(ctx, "playSound", sound, volume, pitch)
	if err != nil {
		return false, err
	}
	return res.Bool()
}
