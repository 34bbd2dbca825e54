// Package topic implements the hermesvox topic grammar (§4.2): a
// bidirectional mapping between a structured [HermesTopic] value and the
// hierarchical, slash-separated MQTT topic strings the bus actually
// carries, plus the `+`/`#` wildcard filter matching used by subscribers.
//
// [Encode] is total over the Kinds this package defines: every such
// [HermesTopic] value produces a topic string (an unknown Kind panics).
// [Parse] is its partial inverse: it returns ok=false for any string
// outside the grammar, and reproduces the original value for every string
// [Encode] can produce.
package topic
