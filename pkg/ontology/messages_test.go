package ontology

import (
	"bytes"
	"crypto/rand"
	"testing"
)

func TestVadUpDown_RoundTrip(t *testing.T) {
	signal := int64(120)
	up := VadUp{SiteId: "kitchen", SignalMs: &signal}
	b, err := Encode(up)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode[VadUp](b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.SiteId != up.SiteId || got.SignalMs == nil || *got.SignalMs != signal {
		t.Errorf("got %+v", got)
	}

	down := VadDown{SiteId: "kitchen"}
	b, err = Encode(down)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	gotDown, err := Decode[VadDown](b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if gotDown.SignalMs != nil {
		t.Errorf("expected absent signalMs, got %v", *gotDown.SignalMs)
	}
}

func TestHotwordDetected_RoundTrip(t *testing.T) {
	modelType := HotwordModelPersonal
	hd := HotwordDetected{
		SiteId:    "kitchen",
		ModelId:   "hey_mycroft",
		ModelType: &modelType,
	}
	b, err := Encode(hd)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode[HotwordDetected](b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ModelId != hd.ModelId || got.ModelType == nil || *got.ModelType != modelType {
		t.Errorf("got %+v", got)
	}
}

func TestAsrToken_RejectsOutOfRangeConfidence(t *testing.T) {
	_, err := Decode[AsrToken]([]byte(`{"value":"x","confidence":1.1,"rangeStart":0,"rangeEnd":1,"time":{"start":0,"end":1}}`))
	if err == nil {
		t.Fatal("expected error for confidence > 1")
	}
}

func TestTextCaptured_RoundTrip(t *testing.T) {
	sess := SessionId("s1")
	tc := TextCaptured{
		Text:       "make me a coffee",
		Likelihood: 0.93,
		Seconds:    1.2,
		SiteId:     "kitchen",
		SessionId:  &sess,
		Tokens: []AsrToken{
			{Value: "make", Confidence: 0.99, RangeStart: 0, RangeEnd: 4, Time: TokenTiming{Start: 0, End: 0.3}},
		},
	}
	b, err := Encode(tc)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode[TextCaptured](b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Text != tc.Text || len(got.Tokens) != 1 || got.SessionId == nil || *got.SessionId != sess {
		t.Errorf("got %+v", got)
	}
}

func TestTextCaptured_RejectsOutOfRangeLikelihood(t *testing.T) {
	_, err := Decode[TextCaptured]([]byte(`{"text":"x","likelihood":-0.1,"seconds":1,"siteId":"a"}`))
	if err == nil {
		t.Fatal("expected error for negative likelihood")
	}
}

func TestIntentMessage_ScenarioOneRoundTrip(t *testing.T) {
	// §8 scenario 1: intent round-trip.
	msg := IntentMessage{
		SessionId: "s1",
		SiteId:    "kitchen",
		Input:     "make me a coffee",
		Intent:    NluIntentClassifierResult{IntentName: "MakeCoffee", ConfidenceScore: 0.98},
		Slots:     []NluSlot{},
	}
	b, err := Encode(msg)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode[IntentMessage](b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Intent.IntentName != "MakeCoffee" {
		t.Errorf("intent name = %q, want MakeCoffee", got.Intent.IntentName)
	}
}

func TestIntentMessage_OptionalAsrConfidenceClampedWhenOutOfRange(t *testing.T) {
	const input = `{"sessionId":"s","siteId":"a","input":"x","intent":{"intentName":"y","confidenceScore":0.5},"slots":[],"asrConfidence":2.0}`
	got, err := Decode[IntentMessage]([]byte(input))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.AsrConfidence != nil {
		t.Errorf("expected asrConfidence to clamp to absent, got %v", *got.AsrConfidence)
	}
}

func TestIntentNotRecognizedMessage_RejectsOutOfRangeConfidence(t *testing.T) {
	_, err := Decode[IntentNotRecognizedMessage]([]byte(`{"sessionId":"s","siteId":"a","confidenceScore":-1}`))
	if err == nil {
		t.Fatal("expected error for negative confidenceScore")
	}
}

func TestNluQuery_RoundTrip(t *testing.T) {
	id := "req-1"
	q := NluQuery{
		Input:        "turn off the lights",
		IntentFilter: []string{"TurnOffLights"},
		Id:           &id,
	}
	b, err := Encode(q)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode[NluQuery](b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Input != q.Input || got.Id == nil || *got.Id != id {
		t.Errorf("got %+v", got)
	}
}

func TestBinaryFidelity_PlayBytesScenarioFive(t *testing.T) {
	// §8 scenario 5: binary playback, byte-identical through the ontology
	// layer (raw-payload delivery through a transport is exercised by
	// pkg/facade's audio tests over the in-process bus).
	payload := make([]byte, 1<<20)
	if _, err := rand.Read(payload); err != nil {
		t.Fatalf("rand: %v", err)
	}
	pb := PlayBytes{Id: "r1", SiteId: "hall", WavBytes: payload}
	b, err := Encode(pb)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode[PlayBytes](b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got.WavBytes, payload) {
		t.Error("wavBytes not byte-identical after JSON round trip")
	}
}

func TestBinaryFidelity_AudioFrameAndRegisterSound(t *testing.T) {
	frame := []byte{0x01, 0x02, 0x03, 0x04}
	af := AudioFrame{WavFrame: frame, SiteId: "kitchen"}
	b, err := Encode(af)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode[AudioFrame](b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got.WavFrame, frame) {
		t.Error("wavFrame not byte-identical")
	}

	sound := []byte{0xFF, 0xEE, 0xDD}
	rs := RegisterSound{SoundId: "ding", WavSound: sound}
	b, err = Encode(rs)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	gotRs, err := Decode[RegisterSound](b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(gotRs.WavSound, sound) {
		t.Error("wavSound not byte-identical")
	}
}

func TestStreamBytes_RoundTrip(t *testing.T) {
	sb := StreamBytes{
		SiteId:      "kitchen",
		StreamId:    "stream-1",
		ChunkNumber: 3,
		IsLastChunk: true,
		Bytes:       []byte{1, 2, 3},
	}
	b, err := Encode(sb)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode[StreamBytes](b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.SiteId != sb.SiteId || got.StreamId != sb.StreamId || got.ChunkNumber != sb.ChunkNumber ||
		got.IsLastChunk != sb.IsLastChunk || !bytes.Equal(got.Bytes, sb.Bytes) {
		t.Errorf("got %+v, want %+v", got, sb)
	}
}

func TestErrorMessage_RoundTrip(t *testing.T) {
	ctx := "disk full while writing audio buffer"
	em := ErrorMessage{Error: "write failed", Context: &ctx}
	b, err := Encode(em)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode[ErrorMessage](b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Error != em.Error || got.Context == nil || *got.Context != ctx {
		t.Errorf("got %+v", got)
	}
}

func TestComponentLoadedOnSite_RoundTrip(t *testing.T) {
	cl := ComponentLoadedOnSite{SiteId: "kitchen", Component: ComponentASR}
	b, err := Encode(cl)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode[ComponentLoadedOnSite](b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Component != ComponentASR || got.SiteId != "kitchen" {
		t.Errorf("got %+v", got)
	}
}

func TestInjectionRequest_RoundTrip(t *testing.T) {
	req := InjectionRequest{
		Operations: []InjectionOperation{
			{Kind: InjectionKindAdd, Values: map[string][]EntityValue{"e": {NewEntityValue("a"), {Value: "b", Weight: 42}}}},
		},
		Lexicon: map[string][]string{"espresso": {"ɛsˈprɛsoʊ"}},
	}
	b, err := Encode(req)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := Decode[InjectionRequest](b)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Operations) != 1 || len(got.Operations[0].Values["e"]) != 2 {
		t.Errorf("got %+v", got)
	}
	if len(got.Lexicon["espresso"]) != 1 {
		t.Errorf("lexicon = %+v", got.Lexicon)
	}
}
