package ontology

import (
	"encoding/json"
	"fmt"
)

// EntityValue pairs an injected vocabulary value with a relative weight
// (§3.3). Weights are always ≥ 1; a bare string on the wire decodes to
// weight 1.
type EntityValue struct {
	Value  string
	Weight int
}

// NewEntityValue returns an EntityValue with weight 1, the default used
// when the wire form is a bare string.
func NewEntityValue(value string) EntityValue {
	return EntityValue{Value: value, Weight: 1}
}

// MarshalJSON implements [json.Marshaler]. A weight of 1 is encoded as a
// bare string; any other weight is encoded as a two-element array
// `[value, weight]` (§6.2).
func (e EntityValue) MarshalJSON() ([]byte, error) {
	if e.Weight == 1 {
		return json.Marshal(e.Value)
	}
	return json.Marshal([2]any{e.Value, e.Weight})
}

// UnmarshalJSON implements [json.Unmarshaler], accepting either the bare
// string form (weight 1) or the `[value, weight]` array form.
func (e *EntityValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*e = EntityValue{Value: s, Weight: 1}
		return nil
	}

	var pair [2]json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return fmt.Errorf("ontology: decode entity value: %w", ErrMalformedPayload)
	}
	var value string
	if err := json.Unmarshal(pair[0], &value); err != nil {
		return fmt.Errorf("ontology: decode entity value: %w", ErrMalformedPayload)
	}
	var weight int
	if err := json.Unmarshal(pair[1], &weight); err != nil {
		return fmt.Errorf("ontology: decode entity value weight: %w", ErrMalformedPayload)
	}
	if weight < 1 {
		return fmt.Errorf("ontology: entity value weight %d < 1: %w", weight, ErrMalformedPayload)
	}
	*e = EntityValue{Value: value, Weight: weight}
	return nil
}
