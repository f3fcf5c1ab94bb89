// Package param handles parameterized HTTP header field-values of the form
// used by Content-Type and Content-Disposition: a primary value followed by
// semicolon-separated name=value parameters, e.g.
//
//	text/html; charset=utf-8
//	attachment; filename="report.pdf"
//
// A Value is immutable. To change one, apply Modifier functions with
// Modify, which returns a new Value.
package param

import (
	"mime"
	"strings"
)

// Names of well-known parameters.
const (
	// Charset is the character-set parameter of Content-Type.
	Charset = "charset"

	// Filename is the filename parameter of Content-Disposition.
	Filename = "filename"
)

// Value is a parsed parameterized field-value: the primary value plus its
// parameter map.
type Value struct {
	v  string
	ps map[string]string
}

// Parse parses a field body into a Value, or returns the parse error.
func Parse(v string) (*Value, error) {
	mt, ps, err := mime.ParseMediaType(v)
	if err != nil {
		return nil, err
	}
	return &Value{mt, ps}, nil
}

// New creates a Value with no parameters.
func New(v string) *Value {
	return &Value{v, map[string]string{}}
}

// NewWithParams creates a Value with the given parameters.
func NewWithParams(v string, ps map[string]string) *Value {
	return &Value{v, ps}
}

// Modifier is a modification applied to a Value by Modify.
type Modifier func(*Value)

// Change is a Modifier that replaces the primary value.
func Change(value string) Modifier {
	return func(pv *Value) {
		pv.v = value
	}
}

// Set is a Modifier that sets the named parameter.
func Set(name, value string) Modifier {
	return func(pv *Value) {
		pv.ps[name] = value
	}
}

// Delete is a Modifier that removes the named parameter.
func Delete(name string) Modifier {
	return func(pv *Value) {
		delete(pv.ps, name)
	}
}

// Modify clones a Value, applies the given modifications, and returns the
// new Value:
//
//	pv, _ := param.Parse("application/octet-stream")
//	npv := param.Modify(pv, param.Change("text/plain"), param.Set(param.Charset, "utf-8"))
func Modify(pv *Value, changes ...Modifier) *Value {
	npv := pv.Clone()
	for _, change := range changes {
		change(npv)
	}
	return npv
}

// Value returns the primary value: everything before the first semicolon.
func (pv *Value) Value() string {
	return pv.v
}

// Disposition is a synonym for Value for use with Content-Disposition,
// returning "inline" or "attachment".
func (pv *Value) Disposition() string {
	return pv.v
}

// MediaType is a synonym for Value for use with Content-Type, returning the
// media type, e.g. "text/html".
func (pv *Value) MediaType() string {
	return pv.v
}

// Type returns the part of the media type before the slash, or "" when the
// primary value has no slash.
func (pv *Value) Type() string {
	if ix := strings.IndexRune(pv.v, '/'); ix >= 0 {
		return pv.v[:ix]
	}
	return ""
}

// Subtype returns the part of the media type after the slash, or "" when
// the primary value has no slash.
func (pv *Value) Subtype() string {
	if ix := strings.IndexRune(pv.v, '/'); ix >= 0 {
		return pv.v[ix+1:]
	}
	return ""
}

// Parameters returns the parameter map. Treat it as read-only; copy it
// before modifying.
func (pv *Value) Parameters() map[string]string {
	return pv.ps
}

// Parameter returns the value of the named parameter.
func (pv *Value) Parameter(k string) string {
	return pv.ps[k]
}

// GetFilename returns the "filename" parameter, for Content-Disposition.
func (pv *Value) GetFilename() string {
	return pv.ps[Filename]
}

// GetCharset returns the "charset" parameter, for Content-Type.
func (pv *Value) GetCharset() string {
	return pv.ps[Charset]
}

// String serializes the Value with its parameters. Parameters are written
// in sorted order and quoted where the grammar requires it.
func (pv *Value) String() string {
	return mime.FormatMediaType(pv.v, pv.ps)
}

// Bytes serializes the Value the same way String does.
func (pv *Value) Bytes() []byte {
	return []byte(pv.String())
}

// Clone returns a deep copy of the Value.
func (pv *Value) Clone() *Value {
	npv := Value{v: pv.v, ps: make(map[string]string, len(pv.ps))}
	for k, v := range pv.ps {
		npv.ps[k] = v
	}
	return &npv
}
