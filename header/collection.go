package header

import "strings"

// Pair is a single (field-name, field-value) entry in a response-shape
// collection. The order of pairs is the order the fields appear on the wire.
type Pair struct {
	Name  string
	Value string
}

// Collection is the storage an accessor reads from and writes into. Exactly
// two shapes implement it: Environ, the request-side environment, and
// *Fields, the response-side ordered field list. Accessors never keep a copy
// of a collection; every operation works in place on the one it is given.
type Collection interface {
	headerValues(h *Header) []string
	setHeader(h *Header, value string)
	deleteHeader(h *Header)
}

// Environ is the request-shape collection: a CGI-style environment mapping
// internal keys to field values. A field-name maps to its key by upper-casing,
// replacing dashes with underscores, and prefixing with "HTTP_", so the value
// of the User-Agent header lives under "HTTP_USER_AGENT".
//
// Content-Type and Content-Length are also reachable through the unprefixed
// legacy keys "CONTENT_TYPE" and "CONTENT_LENGTH"; their accessors fall back
// to those when the HTTP_ key is absent.
type Environ map[string]string

// EnvironKey returns the environment key for the given field-name, e.g.
// "User-Agent" becomes "HTTP_USER_AGENT".
func EnvironKey(name string) string {
	return "HTTP_" + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

func (e Environ) headerValues(h *Header) []string {
	v := e[h.envKey]
	if v == "" && h.legacyKey != "" {
		v = e[h.legacyKey]
	}
	if v == "" {
		return nil
	}
	return []string{v}
}

func (e Environ) setHeader(h *Header, value string) {
	e[h.envKey] = value
}

func (e Environ) deleteHeader(h *Header) {
	delete(e, h.envKey)
}
