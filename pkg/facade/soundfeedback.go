package facade

import (
	"github.com/hermesvox/hermesvox/pkg/topic"
	"github.com/hermesvox/hermesvox/pkg/transport"
)

// SoundFeedbackClient is the consumer-side view of the sound-feedback
// component (§4.2 `hermes/feedback/sound/...`): it is toggle-only, no
// other operations.
type SoundFeedbackClient = ToggleableClient

// SoundFeedbackBackend is the dual of [SoundFeedbackClient].
type SoundFeedbackBackend = ToggleableBackend

// SoundFeedback is the single concrete type satisfying both
// [SoundFeedbackClient] and [SoundFeedbackBackend].
type SoundFeedback struct {
	*Base
	toggleable
}

// NewSoundFeedback constructs a [SoundFeedback] facade over t.
func NewSoundFeedback(t transport.Transport, opts ...Option) *SoundFeedback {
	b := NewBase(t, opts...)
	return &SoundFeedback{
		Base:       b,
		toggleable: newToggleable(b, topic.KindFeedbackSoundToggleOn, topic.KindFeedbackSoundToggleOff),
	}
}

var (
	_ SoundFeedbackClient  = (*SoundFeedback)(nil)
	_ SoundFeedbackBackend = (*SoundFeedback)(nil)
)
