package ontology

import (
	"fmt"
)

// SlotValueKind is the discriminant of SlotValue, mirroring the variants of
// the original's slot_value.rs (recovered per SPEC_FULL.md — not named in
// the distilled spec's §3.3 but required for NluSlot round-trip).
type SlotValueKind string

const (
	SlotValueCustom        SlotValueKind = "custom"
	SlotValueNumber        SlotValueKind = "number"
	SlotValueOrdinal       SlotValueKind = "ordinal"
	SlotValueInstantTime   SlotValueKind = "instantTime"
	SlotValueTimeInterval  SlotValueKind = "timeInterval"
	SlotValueAmountOfMoney SlotValueKind = "amountOfMoney"
	SlotValueDuration      SlotValueKind = "duration"
	SlotValuePercentage    SlotValueKind = "percentage"
	SlotValueMusicArtist   SlotValueKind = "musicArtist"
	SlotValueMusicAlbum    SlotValueKind = "musicAlbum"
	SlotValueMusicTrack    SlotValueKind = "musicTrack"
)

// InstantTimeValue carries a single resolved point in time.
type InstantTimeValue struct {
	Value     string `json:"value"`
	Grain     string `json:"grain"`
	Precision string `json:"precision"`
}

// TimeIntervalValue carries a resolved time range.
type TimeIntervalValue struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// AmountOfMoneyValue carries a resolved currency amount.
type AmountOfMoneyValue struct {
	Value     float64 `json:"value"`
	Precision string  `json:"precision,omitempty"`
	Unit      string  `json:"unit,omitempty"`
}

// DurationValue carries a resolved calendar duration, decomposed into its
// constituent units as the original ontology does.
type DurationValue struct {
	Years     int    `json:"years"`
	Quarters  int    `json:"quarters"`
	Months    int    `json:"months"`
	Weeks     int    `json:"weeks"`
	Days      int    `json:"days"`
	Hours     int    `json:"hours"`
	Minutes   int    `json:"minutes"`
	Seconds   int    `json:"seconds"`
	Precision string `json:"precision,omitempty"`
}

// SlotValue is the tagged union of every resolved slot payload shape
// (§9 Supplemented features). Exactly one of the typed fields is populated,
// selected by Kind; Custom, MusicArtist, MusicAlbum and MusicTrack all
// carry a single string and differ only in Kind.
type SlotValue struct {
	Kind SlotValueKind

	StringValue   string
	Number        float64
	Ordinal       int
	InstantTime   *InstantTimeValue
	TimeInterval  *TimeIntervalValue
	AmountOfMoney *AmountOfMoneyValue
	Duration      *DurationValue
	Percentage    float64
}

// NewCustomSlotValue returns a Custom SlotValue wrapping value.
func NewCustomSlotValue(value string) SlotValue {
	return SlotValue{Kind: SlotValueCustom, StringValue: value}
}

type slotValueWire struct {
	Kind          SlotValueKind       `json:"kind"`
	Value         *string             `json:"value,omitempty"`
	NumberValue   *float64            `json:"numberValue,omitempty"`
	OrdinalValue  *int                `json:"ordinalValue,omitempty"`
	InstantTime   *InstantTimeValue   `json:"instantTimeValue,omitempty"`
	TimeInterval  *TimeIntervalValue  `json:"timeIntervalValue,omitempty"`
	AmountOfMoney *AmountOfMoneyValue `json:"amountOfMoneyValue,omitempty"`
	Duration      *DurationValue      `json:"durationValue,omitempty"`
	Percentage    *float64            `json:"percentageValue,omitempty"`
}

// MarshalJSON implements [json.Marshaler].
func (s SlotValue) MarshalJSON() ([]byte, error) {
	w := slotValueWire{Kind: s.Kind}
	switch s.Kind {
	case SlotValueCustom, SlotValueMusicArtist, SlotValueMusicAlbum, SlotValueMusicTrack:
		w.Value = &s.StringValue
	case SlotValueNumber:
		w.NumberValue = &s.Number
	case SlotValueOrdinal:
		w.OrdinalValue = &s.Ordinal
	case SlotValueInstantTime:
		w.InstantTime = s.InstantTime
	case SlotValueTimeInterval:
		w.TimeInterval = s.TimeInterval
	case SlotValueAmountOfMoney:
		w.AmountOfMoney = s.AmountOfMoney
	case SlotValueDuration:
		w.Duration = s.Duration
	case SlotValuePercentage:
		w.Percentage = &s.Percentage
	default:
		return nil, fmt.Errorf("ontology: unknown slot value kind %q: %w", s.Kind, ErrMalformedPayload)
	}
	return Encode(w)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (s *SlotValue) UnmarshalJSON(data []byte) error {
	w, err := Decode[slotValueWire](data)
	if err != nil {
		return err
	}
	out := SlotValue{Kind: w.Kind}
	switch w.Kind {
	case SlotValueCustom, SlotValueMusicArtist, SlotValueMusicAlbum, SlotValueMusicTrack:
		if w.Value == nil {
			return fmt.Errorf("ontology: slot value kind %q missing value: %w", w.Kind, ErrMalformedPayload)
		}
		out.StringValue = *w.Value
	case SlotValueNumber:
		if w.NumberValue == nil {
			return fmt.Errorf("ontology: slot value kind %q missing numberValue: %w", w.Kind, ErrMalformedPayload)
		}
		out.Number = *w.NumberValue
	case SlotValueOrdinal:
		if w.OrdinalValue == nil {
			return fmt.Errorf("ontology: slot value kind %q missing ordinalValue: %w", w.Kind, ErrMalformedPayload)
		}
		out.Ordinal = *w.OrdinalValue
	case SlotValueInstantTime:
		if w.InstantTime == nil {
			return fmt.Errorf("ontology: slot value kind %q missing instantTimeValue: %w", w.Kind, ErrMalformedPayload)
		}
		out.InstantTime = w.InstantTime
	case SlotValueTimeInterval:
		if w.TimeInterval == nil {
			return fmt.Errorf("ontology: slot value kind %q missing timeIntervalValue: %w", w.Kind, ErrMalformedPayload)
		}
		out.TimeInterval = w.TimeInterval
	case SlotValueAmountOfMoney:
		if w.AmountOfMoney == nil {
			return fmt.Errorf("ontology: slot value kind %q missing amountOfMoneyValue: %w", w.Kind, ErrMalformedPayload)
		}
		out.AmountOfMoney = w.AmountOfMoney
	case SlotValueDuration:
		if w.Duration == nil {
			return fmt.Errorf("ontology: slot value kind %q missing durationValue: %w", w.Kind, ErrMalformedPayload)
		}
		out.Duration = w.Duration
	case SlotValuePercentage:
		if w.Percentage == nil {
			return fmt.Errorf("ontology: slot value kind %q missing percentageValue: %w", w.Kind, ErrMalformedPayload)
		}
		out.Percentage = *w.Percentage
	default:
		return fmt.Errorf("ontology: unknown slot value kind %q: %w", w.Kind, ErrMalformedPayload)
	}
	*s = out
	return nil
}

// SlotRange marks the character offsets in the original input that the
// slot value was extracted from.
type SlotRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// NluSlot is a single resolved slot, as produced by the NLU from a parsed
// utterance (§3.3). §9 flags that the original implementation leaves the
// decode path for this record unimplemented; this package provides the
// missing round-trip in full, including every SlotValue variant.
type NluSlot struct {
	Confidence *float64 `json:"confidence,omitempty"`
	RawValue   string   `json:"rawValue"`
	Value      SlotValue `json:"value"`
	Range      SlotRange `json:"range"`
	Entity     string   `json:"entity"`
	SlotName   string   `json:"slotName"`
}

type nluSlotWire struct {
	Confidence *float64  `json:"confidence,omitempty"`
	NluSlot    nluSlotInner `json:"nluSlot"`
}

type nluSlotInner struct {
	RawValue string    `json:"rawValue"`
	Value    SlotValue `json:"value"`
	Range    SlotRange `json:"range"`
	Entity   string    `json:"entity"`
	SlotName string    `json:"slotName"`
}

// MarshalJSON implements [json.Marshaler]. The wire form nests the slot
// fields under an "nluSlot" key alongside a top-level optional confidence,
// per §3.3.
func (s NluSlot) MarshalJSON() ([]byte, error) {
	w := nluSlotWire{
		Confidence: s.Confidence,
		NluSlot: nluSlotInner{
			RawValue: s.RawValue,
			Value:    s.Value,
			Range:    s.Range,
			Entity:   s.Entity,
			SlotName: s.SlotName,
		},
	}
	return Encode(w)
}

// UnmarshalJSON implements [json.Unmarshaler].
func (s *NluSlot) UnmarshalJSON(data []byte) error {
	w, err := Decode[nluSlotWire](data)
	if err != nil {
		return err
	}
	clampUnit(&w.Confidence)
	*s = NluSlot{
		Confidence: w.Confidence,
		RawValue:   w.NluSlot.RawValue,
		Value:      w.NluSlot.Value,
		Range:      w.NluSlot.Range,
		Entity:     w.NluSlot.Entity,
		SlotName:   w.NluSlot.SlotName,
	}
	return nil
}
