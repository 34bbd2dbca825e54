package ontology

import (
	"fmt"
)

// Component names one of the components that exchange messages over the
// bus (§3.2).
type Component string

const (
	ComponentVoiceActivity   Component = "voiceActivity"
	ComponentHotword         Component = "hotword"
	ComponentASR             Component = "asr"
	ComponentTTS             Component = "tts"
	ComponentNLU             Component = "nlu"
	ComponentDialogueManager Component = "dialogueManager"
	ComponentAudioServer     Component = "audioServer"
	ComponentInjection       Component = "injection"
)

// HermesComponent extends Component with clientApp, for origin reporting in
// session-termination payloads (§3.2).
type HermesComponent string

const (
	HermesComponentVoiceActivity   HermesComponent = "voiceActivity"
	HermesComponentHotword         HermesComponent = "hotword"
	HermesComponentASR             HermesComponent = "asr"
	HermesComponentTTS             HermesComponent = "tts"
	HermesComponentNLU             HermesComponent = "nlu"
	HermesComponentDialogueManager HermesComponent = "dialogueManager"
	HermesComponentAudioServer     HermesComponent = "audioServer"
	HermesComponentInjection       HermesComponent = "injection"
	HermesComponentClientApp       HermesComponent = "clientApp"
)

// InjectionKind distinguishes injecting new entity values from replacing the
// vanilla (baseline) vocabulary (§3.2).
type InjectionKind string

const (
	InjectionKindAdd            InjectionKind = "add"
	InjectionKindAddFromVanilla InjectionKind = "addFromVanilla"
)

// HotwordModelType distinguishes a shared universal model from a
// speaker-personalized one (§3.2).
type HotwordModelType string

const (
	HotwordModelUniversal HotwordModelType = "universal"
	HotwordModelPersonal  HotwordModelType = "personal"
)

// SessionTerminationReasonKind is the discriminant of SessionTerminationReason.
type SessionTerminationReasonKind string

const (
	TerminationNominal             SessionTerminationReasonKind = "nominal"
	TerminationSiteUnavailable     SessionTerminationReasonKind = "siteUnavailable"
	TerminationAbortedByUser       SessionTerminationReasonKind = "abortedByUser"
	TerminationIntentNotRecognized SessionTerminationReasonKind = "intentNotRecognized"
	TerminationTimeout             SessionTerminationReasonKind = "timeout"
	TerminationError               SessionTerminationReasonKind = "error"
)

// SessionTerminationReason is a tagged union describing why a session ended
// (§3.2). Every kind other than Error may optionally carry the originating
// component (typically Timeout); Error carries the error string. Exactly one payload field is
// meaningful, selected by Kind.
type SessionTerminationReason struct {
	Kind SessionTerminationReasonKind

	// Component may be set for any kind other than Error; it names the
	// component that originated the termination.
	Component *HermesComponent

	// Error holds the error string for the Error kind.
	Error string
}

type terminationWire struct {
	Reason    SessionTerminationReasonKind `json:"reason"`
	Component *HermesComponent             `json:"component,omitempty"`
	Error     string                       `json:"error,omitempty"`
}

// MarshalJSON implements [json.Marshaler].
func (r SessionTerminationReason) MarshalJSON() ([]byte, error) {
	w := terminationWire{Reason: r.Kind}
	switch r.Kind {
	case TerminationTimeout, TerminationNominal, TerminationSiteUnavailable,
		TerminationAbortedByUser, TerminationIntentNotRecognized:
		w.Component = r.Component
	case TerminationError:
		w.Error = r.Error
	}
	return Encode(w)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (r *SessionTerminationReason) UnmarshalJSON(data []byte) error {
	w, err := Decode[terminationWire](data)
	if err != nil {
		return err
	}
	switch w.Reason {
	case TerminationNominal, TerminationSiteUnavailable, TerminationAbortedByUser,
		TerminationIntentNotRecognized, TerminationTimeout:
		*r = SessionTerminationReason{Kind: w.Reason, Component: w.Component}
	case TerminationError:
		*r = SessionTerminationReason{Kind: w.Reason, Error: w.Error}
	default:
		return fmt.Errorf("ontology: unknown termination reason %q: %w", w.Reason, ErrMalformedPayload)
	}
	return nil
}

// SessionInitKind is the discriminant of SessionInit.
type SessionInitKind string

const (
	SessionInitAction       SessionInitKind = "action"
	SessionInitNotification SessionInitKind = "notification"
)

// SessionInit is a tagged union describing how a dialogue session should be
// opened (§3.2). Action sessions may optionally prompt, filter recognized
// intents, and control enqueueing/notification-on-failure behavior;
// Notification sessions always carry a prompt.
type SessionInit struct {
	Kind SessionInitKind

	// Text is the prompt spoken to the user. Mandatory for Notification;
	// optional for Action.
	Text *string

	// IntentFilter restricts NLU resolution to the named intents. Action
	// only; nil means unrestricted.
	IntentFilter []string

	// CanBeEnqueued controls whether the session may be queued behind an
	// active one. Action only; defaults to true.
	CanBeEnqueued bool

	// SendIntentNotRecognized requests an explicit notification when NLU
	// fails to resolve an intent. Action only; defaults to false.
	SendIntentNotRecognized bool
}

type sessionInitWire struct {
	Type                    SessionInitKind `json:"type"`
	Text                    *string         `json:"text,omitempty"`
	IntentFilter            []string        `json:"intentFilter,omitempty"`
	CanBeEnqueued           *bool           `json:"canBeEnqueued,omitempty"`
	SendIntentNotRecognized *bool           `json:"sendIntentNotRecognized,omitempty"`
}

// NewActionSessionInit returns an Action SessionInit with
// CanBeEnqueued defaulting to true, per §3.2.
func NewActionSessionInit() SessionInit {
	return SessionInit{Kind: SessionInitAction, CanBeEnqueued: true}
}

// NewNotificationSessionInit returns a Notification SessionInit with the
// mandatory prompt text.
func NewNotificationSessionInit(text string) SessionInit {
	return SessionInit{Kind: SessionInitNotification, Text: &text}
}

// MarshalJSON implements [json.Marshaler].
func (s SessionInit) MarshalJSON() ([]byte, error) {
	w := sessionInitWire{Type: s.Kind, Text: s.Text}
	if s.Kind == SessionInitAction {
		w.IntentFilter = s.IntentFilter
		canBeEnqueued := s.CanBeEnqueued
		w.CanBeEnqueued = &canBeEnqueued
		sendINR := s.SendIntentNotRecognized
		w.SendIntentNotRecognized = &sendINR
	}
	return Encode(w)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (s *SessionInit) UnmarshalJSON(data []byte) error {
	w, err := Decode[sessionInitWire](data)
	if err != nil {
		return err
	}
	switch w.Type {
	case SessionInitAction:
		*s = SessionInit{
			Kind:          SessionInitAction,
			Text:          w.Text,
			IntentFilter:  w.IntentFilter,
			CanBeEnqueued: true,
		}
		if w.CanBeEnqueued != nil {
			s.CanBeEnqueued = *w.CanBeEnqueued
		}
		if w.SendIntentNotRecognized != nil {
			s.SendIntentNotRecognized = *w.SendIntentNotRecognized
		}
	case SessionInitNotification:
		if w.Text == nil {
			return fmt.Errorf("ontology: notification session init missing text: %w", ErrMalformedPayload)
		}
		*s = SessionInit{Kind: SessionInitNotification, Text: w.Text}
	default:
		return fmt.Errorf("ontology: unknown session init type %q: %w", w.Type, ErrMalformedPayload)
	}
	return nil
}
