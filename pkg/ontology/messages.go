package ontology

import (
	"encoding/json"
	"fmt"
)

// --- Voice activity (§3.3) ---

// VadUp reports the start of voice activity at a site.
type VadUp struct {
	SiteId   SiteId `json:"siteId"`
	SignalMs *int64 `json:"signalMs,omitempty"`
}

// VadDown reports the end of voice activity at a site.
type VadDown struct {
	SiteId   SiteId `json:"siteId"`
	SignalMs *int64 `json:"signalMs,omitempty"`
}

// --- Hotword (§3.3) ---

// HotwordDetected reports that a wake-word model fired at a site.
type HotwordDetected struct {
	SiteId             SiteId            `json:"siteId"`
	ModelId            string            `json:"modelId"`
	ModelVersion       *string           `json:"modelVersion,omitempty"`
	ModelType          *HotwordModelType `json:"modelType,omitempty"`
	CurrentSensitivity *float64          `json:"currentSensitivity,omitempty"`
	DetectionSignalMs  *int64            `json:"detectionSignalMs,omitempty"`
	EndSignalMs        *int64            `json:"endSignalMs,omitempty"`
}

// --- ASR (§3.3) ---

// AsrStartListening requests that the ASR component start capturing audio
// for a site, optionally scoped to an already-open session.
type AsrStartListening struct {
	SiteId        SiteId      `json:"siteId"`
	SessionId     *SessionId  `json:"sessionId,omitempty"`
	StartSignalMs *int64      `json:"startSignalMs,omitempty"`
}

// TokenTiming marks the start and end offsets (in seconds) of a token
// within the audio stream it was transcribed from.
type TokenTiming struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// AsrToken is a single transcribed token with its confidence and
// character/time range.
type AsrToken struct {
	Value      string      `json:"value"`
	Confidence float64     `json:"confidence"`
	RangeStart int         `json:"rangeStart"`
	RangeEnd   int         `json:"rangeEnd"`
	Time       TokenTiming `json:"time"`
}

type asrTokenWire AsrToken

// MarshalJSON implements [json.Marshaler].
func (t AsrToken) MarshalJSON() ([]byte, error) {
	return Encode(asrTokenWire(t))
}

// UnmarshalJSON implements [json.Unmarshaler], validating that Confidence
// lies in [0,1] (§3.4: a required confidence-like field has no "none" to
// fall back to, so an out-of-range value is malformed).
func (t *AsrToken) UnmarshalJSON(data []byte) error {
	w, err := Decode[asrTokenWire](data)
	if err != nil {
		return err
	}
	if err := requireUnit(w.Confidence, "confidence"); err != nil {
		return err
	}
	*t = AsrToken(w)
	return nil
}

// TextCaptured reports a transcription; the same record carries both the
// final result (textCaptured) and partial results (partialTextCaptured).
type TextCaptured struct {
	Text       string     `json:"text"`
	Likelihood float64    `json:"likelihood"`
	Tokens     []AsrToken `json:"tokens,omitempty"`
	Seconds    float64    `json:"seconds"`
	SiteId     SiteId     `json:"siteId"`
	SessionId  *SessionId `json:"sessionId,omitempty"`
}

type textCapturedWire TextCaptured

// MarshalJSON implements [json.Marshaler].
func (t TextCaptured) MarshalJSON() ([]byte, error) {
	return Encode(textCapturedWire(t))
}

// UnmarshalJSON implements [json.Unmarshaler].
func (t *TextCaptured) UnmarshalJSON(data []byte) error {
	w, err := Decode[textCapturedWire](data)
	if err != nil {
		return err
	}
	if err := requireUnit(w.Likelihood, "likelihood"); err != nil {
		return err
	}
	*t = TextCaptured(w)
	return nil
}

// --- NLU (§3.3) ---

// NluQuery asks the NLU to resolve an intent from input text, optionally
// constrained to a known ASR tokenization and/or a set of candidate
// intents.
type NluQuery struct {
	Input        string       `json:"input"`
	AsrTokens    [][]AsrToken `json:"asrTokens,omitempty"`
	IntentFilter []string     `json:"intentFilter,omitempty"`
	Id           *string      `json:"id,omitempty"`
	SessionId    *SessionId   `json:"sessionId,omitempty"`
}

// NluSlotQuery asks the NLU to resolve a single named slot from input text
// for a known intent.
type NluSlotQuery struct {
	Input     string       `json:"input"`
	AsrTokens [][]AsrToken `json:"asrTokens,omitempty"`
	IntentName string      `json:"intentName"`
	SlotName   string      `json:"slotName"`
	Id         *string     `json:"id,omitempty"`
	SessionId  *SessionId  `json:"sessionId,omitempty"`
}

// NluIntentClassifierResult names the intent the classifier resolved and
// its confidence.
type NluIntentClassifierResult struct {
	IntentName      string  `json:"intentName"`
	ConfidenceScore float64 `json:"confidenceScore"`
}

type nluIntentClassifierResultWire NluIntentClassifierResult

// MarshalJSON implements [json.Marshaler].
func (r NluIntentClassifierResult) MarshalJSON() ([]byte, error) {
	return Encode(nluIntentClassifierResultWire(r))
}

// UnmarshalJSON implements [json.Unmarshaler].
func (r *NluIntentClassifierResult) UnmarshalJSON(data []byte) error {
	w, err := Decode[nluIntentClassifierResultWire](data)
	if err != nil {
		return err
	}
	if err := requireUnit(w.ConfidenceScore, "confidenceScore"); err != nil {
		return err
	}
	*r = NluIntentClassifierResult(w)
	return nil
}

// NluIntentMessage is the NLU's resolved intent for one query, carried
// internally between NLU and the dialogue manager before being re-shaped
// into the public IntentMessage (§3.3's newer, authoritative definition —
// see §9 open question).
type NluIntentMessage struct {
	Id        *string                    `json:"id,omitempty"`
	Input     string                     `json:"input"`
	Intent    NluIntentClassifierResult  `json:"intent"`
	Slots     []NluSlot                  `json:"slots,omitempty"`
	SessionId *SessionId                 `json:"sessionId,omitempty"`
}

// NluIntentNotRecognized reports that the NLU could not resolve any intent
// for the given input.
type NluIntentNotRecognized struct {
	Id        *string    `json:"id,omitempty"`
	Input     string     `json:"input"`
	SessionId *SessionId `json:"sessionId,omitempty"`
}

// --- TTS / audio (§3.3) ---

// Say requests that text be synthesized and played at a site.
type Say struct {
	Text      string     `json:"text"`
	Lang      *string    `json:"lang,omitempty"`
	Id        *string    `json:"id,omitempty"`
	SiteId    SiteId     `json:"siteId"`
	SessionId *SessionId `json:"sessionId,omitempty"`
}

// SayFinished reports that a previously requested Say has finished playing.
type SayFinished struct {
	Id        *string    `json:"id,omitempty"`
	SessionId *SessionId `json:"sessionId,omitempty"`
}

// RegisterSound registers a named sound effect's raw WAV bytes with the
// audio server.
type RegisterSound struct {
	SoundId  string `json:"soundId"`
	WavSound []byte `json:"wavSound,omitempty"`
}

// PlayBytes requests playback of a raw WAV payload at a site, correlated
// by id so a PlayFinished can be matched to it.
type PlayBytes struct {
	Id       string `json:"id"`
	WavBytes []byte `json:"wavBytes,omitempty"`
	SiteId   SiteId `json:"siteId"`
}

// AudioFrame carries one raw PCM/WAV frame captured at a site.
type AudioFrame struct {
	WavFrame []byte `json:"wavFrame,omitempty"`
	SiteId   SiteId `json:"siteId"`
}

// ReplayRequest asks the audio server to re-emit previously captured audio
// frames starting at a relative offset.
type ReplayRequest struct {
	RequestId  RequestId `json:"requestId"`
	StartAtMs  int64     `json:"startAtMs"`
	SiteId     SiteId    `json:"siteId"`
}

// PlayFinished reports that a previously requested PlayBytes has finished
// playing at a site.
type PlayFinished struct {
	Id     string `json:"id"`
	SiteId SiteId `json:"siteId"`
}

// StreamBytes carries one chunk of a chunked audio stream.
type StreamBytes struct {
	SiteId      SiteId `json:"siteId"`
	StreamId    string `json:"streamId"`
	ChunkNumber int    `json:"chunkNumber"`
	IsLastChunk bool   `json:"isLastChunk"`
	Bytes       []byte `json:"bytes,omitempty"`
}

// StreamFinished reports that a chunked audio stream has been fully played.
type StreamFinished struct {
	Id     string `json:"id"`
	SiteId SiteId `json:"siteId"`
}

// --- Dialogue (§3.3) ---

// StartSession requests that the dialogue manager open a new session.
type StartSession struct {
	Init       SessionInit     `json:"init"`
	CustomData *string         `json:"customData,omitempty"`
	SiteId     *SiteId         `json:"siteId,omitempty"`
}

// SessionStarted reports that a session was opened, possibly reactivating
// a previously queued one.
type SessionStarted struct {
	SessionId               SessionId  `json:"sessionId"`
	CustomData              *string    `json:"customData,omitempty"`
	SiteId                  SiteId     `json:"siteId"`
	ReactivatedFromSessionId *SessionId `json:"reactivatedFromSessionId,omitempty"`
}

// SessionQueued reports that a session was queued behind an already-active
// one at the same site.
type SessionQueued struct {
	SessionId  SessionId `json:"sessionId"`
	CustomData *string   `json:"customData,omitempty"`
	SiteId     SiteId    `json:"siteId"`
}

// ContinueSession requests that an open session be continued with a new
// prompt and/or intent filter.
type ContinueSession struct {
	SessionId               SessionId  `json:"sessionId"`
	Text                     string     `json:"text"`
	IntentFilter             []string   `json:"intentFilter,omitempty"`
	CustomData               *string    `json:"customData,omitempty"`
	Slot                     *string    `json:"slot,omitempty"`
	SendIntentNotRecognized  bool       `json:"sendIntentNotRecognized"`
}

// EndSession requests that a session be closed, optionally speaking a
// final prompt first.
type EndSession struct {
	SessionId SessionId `json:"sessionId"`
	Text      *string   `json:"text,omitempty"`
}

// SessionEnded reports that a session has closed and why.
type SessionEnded struct {
	SessionId   SessionId                 `json:"sessionId"`
	CustomData  *string                   `json:"customData,omitempty"`
	Termination SessionTerminationReason  `json:"termination"`
	SiteId      SiteId                    `json:"siteId"`
}

// IntentAlternative is a lower-ranked candidate intent resolution carried
// alongside the primary result in IntentMessage/IntentNotRecognizedMessage
// (recovered detail, see DESIGN.md).
type IntentAlternative struct {
	IntentName      *string   `json:"intentName,omitempty"`
	ConfidenceScore float64   `json:"confidenceScore"`
	Slots           []NluSlot `json:"slots,omitempty"`
}

// IntentMessage is the authoritative, newer-definition intent payload
// published once NLU resolves an intent within a session (§3.3, §9 open
// question resolved in favor of this shape).
type IntentMessage struct {
	SessionId     SessionId                 `json:"sessionId"`
	CustomData    *string                   `json:"customData,omitempty"`
	SiteId        SiteId                    `json:"siteId"`
	Input         string                    `json:"input"`
	Intent        NluIntentClassifierResult `json:"intent"`
	Slots         []NluSlot                 `json:"slots"`
	Alternatives  []IntentAlternative       `json:"alternatives,omitempty"`
	AsrTokens     []AsrToken                `json:"asrTokens,omitempty"`
	AsrConfidence *float64                  `json:"asrConfidence,omitempty"`
}

type intentMessageWire IntentMessage

// MarshalJSON implements [json.Marshaler].
func (m IntentMessage) MarshalJSON() ([]byte, error) {
	if m.Slots == nil {
		m.Slots = []NluSlot{}
	}
	return Encode(intentMessageWire(m))
}

// UnmarshalJSON implements [json.Unmarshaler].
func (m *IntentMessage) UnmarshalJSON(data []byte) error {
	w, err := Decode[intentMessageWire](data)
	if err != nil {
		return err
	}
	clampUnit(&w.AsrConfidence)
	*m = IntentMessage(w)
	return nil
}

// IntentNotRecognizedMessage reports that no intent could be resolved for
// a session's input.
type IntentNotRecognizedMessage struct {
	SessionId       SessionId           `json:"sessionId"`
	CustomData      *string             `json:"customData,omitempty"`
	SiteId          SiteId              `json:"siteId"`
	Input           *string             `json:"input,omitempty"`
	Alternatives    []IntentAlternative `json:"alternatives,omitempty"`
	ConfidenceScore float64             `json:"confidenceScore"`
}

type intentNotRecognizedMessageWire IntentNotRecognizedMessage

// MarshalJSON implements [json.Marshaler].
func (m IntentNotRecognizedMessage) MarshalJSON() ([]byte, error) {
	return Encode(intentNotRecognizedMessageWire(m))
}

// UnmarshalJSON implements [json.Unmarshaler].
func (m *IntentNotRecognizedMessage) UnmarshalJSON(data []byte) error {
	w, err := Decode[intentNotRecognizedMessageWire](data)
	if err != nil {
		return err
	}
	if err := requireUnit(w.ConfidenceScore, "confidenceScore"); err != nil {
		return err
	}
	*m = IntentNotRecognizedMessage(w)
	return nil
}

// DialogueConfigureIntent toggles a single intent's eligibility for
// resolution.
type DialogueConfigureIntent struct {
	IntentId string `json:"intentId"`
	Enable   *bool  `json:"enable,omitempty"`
}

// DialogueConfigure reconfigures the dialogue manager's intent allow-list,
// globally or for one site.
type DialogueConfigure struct {
	SiteId  *SiteId                   `json:"siteId,omitempty"`
	Intents []DialogueConfigureIntent `json:"intents,omitempty"`
}

// --- Injection (§3.3) ---

// InjectionOperation pairs an injection kind with the entity values to
// inject for each named entity. It encodes as a two-element array
// `[kind, {entity: [values]}]`, matching the wire form shown in §8
// scenario 4.
type InjectionOperation struct {
	Kind   InjectionKind
	Values map[string][]EntityValue
}

// MarshalJSON implements [json.Marshaler].
func (o InjectionOperation) MarshalJSON() ([]byte, error) {
	values := o.Values
	if values == nil {
		values = map[string][]EntityValue{}
	}
	return json.Marshal([2]any{o.Kind, values})
}

// UnmarshalJSON implements [json.Unmarshaler].
func (o *InjectionOperation) UnmarshalJSON(data []byte) error {
	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("ontology: decode injection operation: %w", ErrMalformedPayload)
	}
	var kind InjectionKind
	if err := json.Unmarshal(pair[0], &kind); err != nil {
		return fmt.Errorf("ontology: decode injection operation kind: %w", ErrMalformedPayload)
	}
	if kind != InjectionKindAdd && kind != InjectionKindAddFromVanilla {
		return fmt.Errorf("ontology: unknown injection kind %q: %w", kind, ErrMalformedPayload)
	}
	values, err := Decode[map[string][]EntityValue](pair[1])
	if err != nil {
		return err
	}
	*o = InjectionOperation{Kind: kind, Values: values}
	return nil
}

// InjectionRequest asks the injection service to add vocabulary and
// pronunciations at runtime.
type InjectionRequest struct {
	Operations    []InjectionOperation `json:"operations"`
	Lexicon       map[string][]string  `json:"lexicon"`
	CrossLanguage *string              `json:"crossLanguage,omitempty"`
	Id            *string              `json:"id,omitempty"`
}

// InjectionStatus reports when the last injection completed, if ever.
type InjectionStatus struct {
	LastInjectionDate *Timestamp `json:"lastInjectionDate,omitempty"`
}

// InjectionComplete reports that a requested injection finished.
type InjectionComplete struct {
	RequestId *string `json:"requestId,omitempty"`
}

// InjectionResetRequest asks the injection service to discard all injected
// vocabulary and revert to the vanilla baseline.
type InjectionResetRequest struct {
	RequestId *string `json:"requestId,omitempty"`
}

// InjectionResetComplete reports that a requested reset finished.
type InjectionResetComplete struct {
	RequestId *string `json:"requestId,omitempty"`
}

// --- Generic (§3.3) ---

// SiteMessage is the minimal site-scoped envelope shared by several toggle
// and query operations.
type SiteMessage struct {
	SiteId    SiteId     `json:"siteId"`
	SessionId *SessionId `json:"sessionId,omitempty"`
}

// VersionMessage reports a component's semantic version in response to a
// versionRequest.
type VersionMessage struct {
	Version Version `json:"version"`
}

// ErrorMessage reports a component-level failure, optionally scoped to a
// session and annotated with free-form context.
type ErrorMessage struct {
	SessionId *SessionId `json:"sessionId,omitempty"`
	Error     string     `json:"error"`
	Context   *string    `json:"context,omitempty"`
}

// ComponentLoadedOnSite reports that a component has finished loading its
// resources for a site.
type ComponentLoadedOnSite struct {
	SiteId    SiteId    `json:"siteId"`
	Component Component `json:"component"`
	LoadId    *string   `json:"loadId,omitempty"`
}
