// Package ontology defines the canonical message schema exchanged between
// the components of a voice assistant built on hermesvox: value types,
// payload records for every message family, and the JSON codec each record
// must satisfy.
//
// Every record here is a plain Go struct with JSON struct tags using
// camelCase field names, matching the wire convention of §6.2. Encoding is
// stable: encoding the same value twice produces byte-identical JSON, and
// decode(encode(m)) always reproduces m. Tagged unions (SessionInit,
// SessionTerminationReason, SlotValue) implement json.Marshaler and
// json.Unmarshaler directly rather than relying on struct-tag discriminants,
// since encoding/json has no native sum-type support.
package ontology
