package ontology

import (
	"encoding/json"
	"fmt"
)

// Encode serializes any record to its canonical JSON form. Field ordering
// follows Go struct declaration order; encoding the same value always
// produces byte-identical output.
func Encode[T any](record T) ([]byte, error) {
	b, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("ontology: encode: %w", err)
	}
	return b, nil
}

// Decode deserializes bytes into a record of type T. Returns
// [ErrMalformedPayload] (wrapped) when the bytes are not valid JSON or when
// the record's own UnmarshalJSON rejects them (an unknown discriminant or an
// out-of-range field, for the types that check one). Records without a
// custom UnmarshalJSON are not checked for absent fields: a missing key
// decodes to the field's zero value.
func Decode[T any](data []byte) (T, error) {
	var record T
	if err := json.Unmarshal(data, &record); err != nil {
		return record, fmt.Errorf("ontology: decode %T: %w: %v", record, ErrMalformedPayload, err)
	}
	return record, nil
}

// unquoteString extracts the Go string value of a JSON string literal. It
// is used by hand-written UnmarshalJSON implementations that need the raw
// string before further parsing (timestamps, tagged-union discriminants).
func unquoteString(data []byte) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	return s, nil
}

// clampUnit applies the optional confidence-field decode rule of §3.4: a
// pointer value outside [0,1] is treated as absent. p is mutated in place;
// a nil p is a no-op.
func clampUnit(p **float64) {
	if *p == nil {
		return
	}
	if v := **p; v < 0 || v > 1 {
		*p = nil
	}
}

// requireUnit validates a mandatory confidence-like field, returning
// [ErrMalformedPayload] (wrapped) when f lies outside [0,1].
func requireUnit(f float64, field string) error {
	if f < 0 || f > 1 {
		return fmt.Errorf("ontology: field %q = %v out of range [0,1]: %w", field, f, ErrMalformedPayload)
	}
	return nil
}
