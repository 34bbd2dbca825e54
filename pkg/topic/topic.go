package topic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hermesvox/hermesvox/pkg/ontology"
)

// Kind discriminates every shape in the hermesvox topic grammar (§4.2).
type Kind string

const (
	KindHotwordToggleOn  Kind = "hotwordToggleOn"
	KindHotwordToggleOff Kind = "hotwordToggleOff"
	KindHotwordDetected  Kind = "hotwordDetected"

	KindVadUp   Kind = "vadUp"
	KindVadDown Kind = "vadDown"

	KindAsrToggleOn           Kind = "asrToggleOn"
	KindAsrToggleOff          Kind = "asrToggleOff"
	KindAsrStartListening     Kind = "asrStartListening"
	KindAsrStopListening      Kind = "asrStopListening"
	KindAsrTextCaptured       Kind = "asrTextCaptured"
	KindAsrPartialTextCaptured Kind = "asrPartialTextCaptured"
	KindAsrReload             Kind = "asrReload"

	KindTtsSay           Kind = "ttsSay"
	KindTtsSayFinished   Kind = "ttsSayFinished"
	KindTtsRegisterSound Kind = "ttsRegisterSound"

	KindNluQuery               Kind = "nluQuery"
	KindNluPartialQuery        Kind = "nluPartialQuery"
	KindNluSlotParsed          Kind = "nluSlotParsed"
	KindNluIntentParsed        Kind = "nluIntentParsed"
	KindNluIntentNotRecognized Kind = "nluIntentNotRecognized"
	KindNluReload              Kind = "nluReload"

	KindAudioServerToggleOn      Kind = "audioServerToggleOn"
	KindAudioServerToggleOff     Kind = "audioServerToggleOff"
	KindAudioServerAudioFrame    Kind = "audioServerAudioFrame"
	KindAudioServerReplayRequest Kind = "audioServerReplayRequest"
	KindAudioServerReplayResponse Kind = "audioServerReplayResponse"
	KindAudioServerPlayFinished  Kind = "audioServerPlayFinished"
	KindAudioServerStreamFinished Kind = "audioServerStreamFinished"
	KindAudioServerPlayBytes     Kind = "audioServerPlayBytes"
	KindAudioServerStreamBytes   Kind = "audioServerStreamBytes"

	KindDialogueToggleOn            Kind = "dialogueToggleOn"
	KindDialogueToggleOff           Kind = "dialogueToggleOff"
	KindDialogueStartSession        Kind = "dialogueStartSession"
	KindDialogueContinueSession     Kind = "dialogueContinueSession"
	KindDialogueEndSession          Kind = "dialogueEndSession"
	KindDialogueSessionQueued       Kind = "dialogueSessionQueued"
	KindDialogueSessionStarted      Kind = "dialogueSessionStarted"
	KindDialogueSessionEnded        Kind = "dialogueSessionEnded"
	KindDialogueIntentNotRecognized Kind = "dialogueIntentNotRecognized"
	KindDialogueConfigure           Kind = "dialogueConfigure"

	KindIntent Kind = "intent"

	KindInjectionPerform       Kind = "injectionPerform"
	KindInjectionStatus        Kind = "injectionStatus"
	KindInjectionStatusRequest Kind = "injectionStatusRequest"
	KindInjectionResetRequest  Kind = "injectionResetRequest"
	KindInjectionResetComplete Kind = "injectionResetComplete"
	KindInjectionComplete      Kind = "injectionComplete"

	KindFeedbackSoundToggleOn  Kind = "feedbackSoundToggleOn"
	KindFeedbackSoundToggleOff Kind = "feedbackSoundToggleOff"

	KindComponentVersionRequest Kind = "componentVersionRequest"
	KindComponentVersion        Kind = "componentVersion"
	KindComponentError          Kind = "componentError"
	KindComponentLoaded         Kind = "componentLoaded"
)

// HermesTopic is the tagged-variant value every concrete topic string maps
// to and from. Only the fields relevant to Kind are meaningful; the rest
// are zero.
type HermesTopic struct {
	Kind Kind

	SiteId      string
	ModelId     string
	SoundId     string
	RequestId   string
	StreamId    string
	ChunkNumber int
	IsLastChunk bool
	IntentName  string
	Component   ontology.Component
}

const root = "hermes"

var metaSuffixes = map[string]Kind{
	"versionRequest": KindComponentVersionRequest,
	"version":        KindComponentVersion,
	"error":          KindComponentError,
	"loaded":         KindComponentLoaded,
}

var metaKindSuffix = map[Kind]string{
	KindComponentVersionRequest: "versionRequest",
	KindComponentVersion:        "version",
	KindComponentError:          "error",
	KindComponentLoaded:         "loaded",
}

var validComponents = map[ontology.Component]struct{}{
	ontology.ComponentVoiceActivity:   {},
	ontology.ComponentHotword:         {},
	ontology.ComponentASR:             {},
	ontology.ComponentTTS:             {},
	ontology.ComponentNLU:             {},
	ontology.ComponentDialogueManager: {},
	ontology.ComponentAudioServer:     {},
	ontology.ComponentInjection:       {},
}

// Encode is total: every valid [HermesTopic] value produces a topic
// string. Encoding a HermesTopic with an unrecognized Kind panics, since
// that represents a programming error (a Kind this package did not itself
// produce), not a data error.
func Encode(t HermesTopic) string {
	switch t.Kind {
	case KindHotwordToggleOn:
		return join(root, "hotword", "toggleOn")
	case KindHotwordToggleOff:
		return join(root, "hotword", "toggleOff")
	case KindHotwordDetected:
		return join(root, "hotword", t.ModelId, "detected")

	case KindVadUp:
		return join(root, "voiceActivity", t.SiteId, "vadUp")
	case KindVadDown:
		return join(root, "voiceActivity", t.SiteId, "vadDown")

	case KindAsrToggleOn:
		return join(root, "asr", "toggleOn")
	case KindAsrToggleOff:
		return join(root, "asr", "toggleOff")
	case KindAsrStartListening:
		return join(root, "asr", "startListening")
	case KindAsrStopListening:
		return join(root, "asr", "stopListening")
	case KindAsrTextCaptured:
		return join(root, "asr", "textCaptured")
	case KindAsrPartialTextCaptured:
		return join(root, "asr", "partialTextCaptured")
	case KindAsrReload:
		return join(root, "asr", "reload")

	case KindTtsSay:
		return join(root, "tts", "say")
	case KindTtsSayFinished:
		return join(root, "tts", "sayFinished")
	case KindTtsRegisterSound:
		return join(root, "tts", "registerSound", t.SoundId)

	case KindNluQuery:
		return join(root, "nlu", "query")
	case KindNluPartialQuery:
		return join(root, "nlu", "partialQuery")
	case KindNluSlotParsed:
		return join(root, "nlu", "slotParsed")
	case KindNluIntentParsed:
		return join(root, "nlu", "intentParsed")
	case KindNluIntentNotRecognized:
		return join(root, "nlu", "intentNotRecognized")
	case KindNluReload:
		return join(root, "nlu", "reload")

	case KindAudioServerToggleOn:
		return join(root, "audioServer", "toggleOn")
	case KindAudioServerToggleOff:
		return join(root, "audioServer", "toggleOff")
	case KindAudioServerAudioFrame:
		return join(root, "audioServer", t.SiteId, "audioFrame")
	case KindAudioServerReplayRequest:
		return join(root, "audioServer", t.SiteId, "replayRequest")
	case KindAudioServerReplayResponse:
		return join(root, "audioServer", t.SiteId, "replayResponse")
	case KindAudioServerPlayFinished:
		return join(root, "audioServer", t.SiteId, "playFinished")
	case KindAudioServerStreamFinished:
		return join(root, "audioServer", t.SiteId, "streamFinished")
	case KindAudioServerPlayBytes:
		return join(root, "audioServer", t.SiteId, "playBytes", t.RequestId)
	case KindAudioServerStreamBytes:
		return join(root, "audioServer", t.SiteId, "streamBytes", t.StreamId,
			strconv.Itoa(t.ChunkNumber), strconv.FormatBool(t.IsLastChunk))

	case KindDialogueToggleOn:
		return join(root, "dialogueManager", "toggleOn")
	case KindDialogueToggleOff:
		return join(root, "dialogueManager", "toggleOff")
	case KindDialogueStartSession:
		return join(root, "dialogueManager", "startSession")
	case KindDialogueContinueSession:
		return join(root, "dialogueManager", "continueSession")
	case KindDialogueEndSession:
		return join(root, "dialogueManager", "endSession")
	case KindDialogueSessionQueued:
		return join(root, "dialogueManager", "sessionQueued")
	case KindDialogueSessionStarted:
		return join(root, "dialogueManager", "sessionStarted")
	case KindDialogueSessionEnded:
		return join(root, "dialogueManager", "sessionEnded")
	case KindDialogueIntentNotRecognized:
		return join(root, "dialogueManager", "intentNotRecognized")
	case KindDialogueConfigure:
		return join(root, "dialogueManager", "configure")

	case KindIntent:
		return join(root, "intent", t.IntentName)

	case KindInjectionPerform:
		return join(root, "injection", "perform")
	case KindInjectionStatus:
		return join(root, "injection", "status")
	case KindInjectionStatusRequest:
		return join(root, "injection", "statusRequest")
	case KindInjectionResetRequest:
		return join(root, "injection", "resetRequest")
	case KindInjectionResetComplete:
		return join(root, "injection", "resetComplete")
	case KindInjectionComplete:
		return join(root, "injection", "complete")

	case KindFeedbackSoundToggleOn:
		return join(root, "feedback", "sound", "toggleOn")
	case KindFeedbackSoundToggleOff:
		return join(root, "feedback", "sound", "toggleOff")

	case KindComponentVersionRequest, KindComponentVersion, KindComponentError, KindComponentLoaded:
		suffix := metaKindSuffix[t.Kind]
		if t.SiteId != "" {
			return join(root, string(t.Component), t.SiteId, suffix)
		}
		return join(root, string(t.Component), suffix)
	}
	panic(fmt.Sprintf("topic: Encode: unknown kind %q", t.Kind))
}

// Parse is the partial inverse of [Encode]: it reproduces the original
// value for every string Encode can produce, and returns ok=false for any
// string outside the grammar.
func Parse(s string) (HermesTopic, bool) {
	segs := strings.Split(s, "/")
	if len(segs) < 2 || segs[0] != root {
		return HermesTopic{}, false
	}
	rest := segs[1:]

	switch rest[0] {
	case "hotword":
		if t, ok := parseHotword(rest[1:]); ok {
			return t, true
		}
	case "voiceActivity":
		if t, ok := parseVoiceActivity(rest[1:]); ok {
			return t, true
		}
	case "asr":
		if t, ok := parseAsr(rest[1:]); ok {
			return t, true
		}
	case "tts":
		if t, ok := parseTts(rest[1:]); ok {
			return t, true
		}
	case "nlu":
		if t, ok := parseNlu(rest[1:]); ok {
			return t, true
		}
	case "audioServer":
		if t, ok := parseAudioServer(rest[1:]); ok {
			return t, true
		}
	case "dialogueManager":
		if t, ok := parseDialogue(rest[1:]); ok {
			return t, true
		}
	case "intent":
		if len(rest) == 2 && rest[1] != "" {
			return HermesTopic{Kind: KindIntent, IntentName: rest[1]}, true
		}
	case "injection":
		if t, ok := parseInjection(rest[1:]); ok {
			return t, true
		}
	case "feedback":
		if t, ok := parseFeedback(rest[1:]); ok {
			return t, true
		}
	}

	// Per-component meta, applies to any valid Component (possibly
	// site-scoped), and is attempted last so component-specific subtrees
	// take priority.
	if t, ok := parseComponentMeta(rest); ok {
		return t, true
	}

	return HermesTopic{}, false
}

func parseHotword(rest []string) (HermesTopic, bool) {
	switch {
	case len(rest) == 1 && rest[0] == "toggleOn":
		return HermesTopic{Kind: KindHotwordToggleOn}, true
	case len(rest) == 1 && rest[0] == "toggleOff":
		return HermesTopic{Kind: KindHotwordToggleOff}, true
	case len(rest) == 2 && rest[1] == "detected" && rest[0] != "":
		return HermesTopic{Kind: KindHotwordDetected, ModelId: rest[0]}, true
	}
	return HermesTopic{}, false
}

func parseVoiceActivity(rest []string) (HermesTopic, bool) {
	if len(rest) != 2 || rest[0] == "" {
		return HermesTopic{}, false
	}
	switch rest[1] {
	case "vadUp":
		return HermesTopic{Kind: KindVadUp, SiteId: rest[0]}, true
	case "vadDown":
		return HermesTopic{Kind: KindVadDown, SiteId: rest[0]}, true
	}
	return HermesTopic{}, false
}

var asrLeaves = map[string]Kind{
	"toggleOn":            KindAsrToggleOn,
	"toggleOff":           KindAsrToggleOff,
	"startListening":      KindAsrStartListening,
	"stopListening":       KindAsrStopListening,
	"textCaptured":        KindAsrTextCaptured,
	"partialTextCaptured": KindAsrPartialTextCaptured,
	"reload":              KindAsrReload,
}

func parseAsr(rest []string) (HermesTopic, bool) {
	if len(rest) != 1 {
		return HermesTopic{}, false
	}
	if k, ok := asrLeaves[rest[0]]; ok {
		return HermesTopic{Kind: k}, true
	}
	return HermesTopic{}, false
}

func parseTts(rest []string) (HermesTopic, bool) {
	switch {
	case len(rest) == 1 && rest[0] == "say":
		return HermesTopic{Kind: KindTtsSay}, true
	case len(rest) == 1 && rest[0] == "sayFinished":
		return HermesTopic{Kind: KindTtsSayFinished}, true
	case len(rest) == 2 && rest[0] == "registerSound" && rest[1] != "":
		return HermesTopic{Kind: KindTtsRegisterSound, SoundId: rest[1]}, true
	}
	return HermesTopic{}, false
}

var nluLeaves = map[string]Kind{
	"query":               KindNluQuery,
	"partialQuery":        KindNluPartialQuery,
	"slotParsed":          KindNluSlotParsed,
	"intentParsed":        KindNluIntentParsed,
	"intentNotRecognized": KindNluIntentNotRecognized,
	"reload":              KindNluReload,
}

func parseNlu(rest []string) (HermesTopic, bool) {
	if len(rest) != 1 {
		return HermesTopic{}, false
	}
	if k, ok := nluLeaves[rest[0]]; ok {
		return HermesTopic{Kind: k}, true
	}
	return HermesTopic{}, false
}

var audioServerSiteLeaves = map[string]Kind{
	"audioFrame":     KindAudioServerAudioFrame,
	"replayRequest":  KindAudioServerReplayRequest,
	"replayResponse": KindAudioServerReplayResponse,
	"playFinished":   KindAudioServerPlayFinished,
	"streamFinished": KindAudioServerStreamFinished,
}

func parseAudioServer(rest []string) (HermesTopic, bool) {
	switch {
	case len(rest) == 1 && rest[0] == "toggleOn":
		return HermesTopic{Kind: KindAudioServerToggleOn}, true
	case len(rest) == 1 && rest[0] == "toggleOff":
		return HermesTopic{Kind: KindAudioServerToggleOff}, true
	case len(rest) == 3 && rest[0] != "" && rest[1] == "playBytes" && rest[2] != "":
		return HermesTopic{Kind: KindAudioServerPlayBytes, SiteId: rest[0], RequestId: rest[2]}, true
	case len(rest) == 5 && rest[0] != "" && rest[1] == "streamBytes" && rest[2] != "":
		n, err := strconv.Atoi(rest[3])
		if err != nil {
			return HermesTopic{}, false
		}
		last, err := strconv.ParseBool(rest[4])
		if err != nil {
			return HermesTopic{}, false
		}
		return HermesTopic{
			Kind: KindAudioServerStreamBytes, SiteId: rest[0], StreamId: rest[2],
			ChunkNumber: n, IsLastChunk: last,
		}, true
	case len(rest) == 2 && rest[0] != "":
		if k, ok := audioServerSiteLeaves[rest[1]]; ok {
			return HermesTopic{Kind: k, SiteId: rest[0]}, true
		}
	}
	return HermesTopic{}, false
}

var dialogueLeaves = map[string]Kind{
	"toggleOn":            KindDialogueToggleOn,
	"toggleOff":           KindDialogueToggleOff,
	"startSession":        KindDialogueStartSession,
	"continueSession":     KindDialogueContinueSession,
	"endSession":          KindDialogueEndSession,
	"sessionQueued":       KindDialogueSessionQueued,
	"sessionStarted":      KindDialogueSessionStarted,
	"sessionEnded":        KindDialogueSessionEnded,
	"intentNotRecognized": KindDialogueIntentNotRecognized,
	"configure":           KindDialogueConfigure,
}

func parseDialogue(rest []string) (HermesTopic, bool) {
	if len(rest) != 1 {
		return HermesTopic{}, false
	}
	if k, ok := dialogueLeaves[rest[0]]; ok {
		return HermesTopic{Kind: k}, true
	}
	return HermesTopic{}, false
}

var injectionLeaves = map[string]Kind{
	"perform":       KindInjectionPerform,
	"status":        KindInjectionStatus,
	"statusRequest": KindInjectionStatusRequest,
	"resetRequest":  KindInjectionResetRequest,
	"resetComplete": KindInjectionResetComplete,
	"complete":      KindInjectionComplete,
}

func parseInjection(rest []string) (HermesTopic, bool) {
	if len(rest) != 1 {
		return HermesTopic{}, false
	}
	if k, ok := injectionLeaves[rest[0]]; ok {
		return HermesTopic{Kind: k}, true
	}
	return HermesTopic{}, false
}

func parseFeedback(rest []string) (HermesTopic, bool) {
	if len(rest) != 2 || rest[0] != "sound" {
		return HermesTopic{}, false
	}
	switch rest[1] {
	case "toggleOn":
		return HermesTopic{Kind: KindFeedbackSoundToggleOn}, true
	case "toggleOff":
		return HermesTopic{Kind: KindFeedbackSoundToggleOff}, true
	}
	return HermesTopic{}, false
}

func parseComponentMeta(rest []string) (HermesTopic, bool) {
	if len(rest) < 2 {
		return HermesTopic{}, false
	}
	comp := ontology.Component(rest[0])
	if _, ok := validComponents[comp]; !ok {
		return HermesTopic{}, false
	}
	switch len(rest) {
	case 2:
		if k, ok := metaSuffixes[rest[1]]; ok {
			return HermesTopic{Kind: k, Component: comp}, true
		}
	case 3:
		if rest[1] == "" {
			return HermesTopic{}, false
		}
		if k, ok := metaSuffixes[rest[2]]; ok {
			return HermesTopic{Kind: k, Component: comp, SiteId: rest[1]}, true
		}
	}
	return HermesTopic{}, false
}

func join(segs ...string) string {
	return strings.Join(segs, "/")
}
