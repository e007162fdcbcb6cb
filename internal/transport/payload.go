package transport

import (
	"encoding/json"

	"github.com/experienceflow/domainmap/pkg/errors"
)

// Payload is the body of a successful API exchange. It is either decoded
// (carrying valid JSON) or empty (204, blank body, or a body that failed to
// parse as JSON). Empty payloads decode to zero values so callers do not
// have to special-case the tolerance policy.
type Payload struct {
	raw    json.RawMessage
	source string
	empty  bool
	err    error
}

// IsEmpty reports whether the exchange produced no usable JSON.
func (p Payload) IsEmpty() bool {
	return p.empty
}

// Decode unmarshals the payload into v. An empty payload leaves v at its
// zero value and returns nil.
func (p Payload) Decode(v any) error {
	if p.err != nil {
		return p.err
	}
	if p.empty {
		return nil
	}
	if err := json.Unmarshal(p.raw, v); err != nil {
		return errors.WrapParse("json", p.source, err)
	}
	return nil
}

// Key extracts the named field of an object payload, modelling the API's
// enveloped responses. An absent key, like an empty payload, yields an
// empty Payload; a payload that is not a JSON object yields one whose
// Decode reports the extraction failure.
func (p Payload) Key(name string) Payload {
	if p.empty || p.err != nil {
		return p
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(p.raw, &fields); err != nil {
		return Payload{source: p.source, err: errors.WrapParse("json", p.source, err)}
	}
	value, ok := fields[name]
	if !ok {
		return Payload{source: p.source, empty: true}
	}
	return Payload{source: p.source, raw: value}
}
