package ontology

import "errors"

// ErrMalformedPayload is returned when JSON decoding fails, a required
// field is absent, a tagged-union discriminant is unrecognized, or a
// numeric field lies outside its declared range (§7).
var ErrMalformedPayload = errors.New("ontology: malformed payload")
