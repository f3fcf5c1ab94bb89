package header

import (
	"bytes"
	"errors"
	"io"
	"strings"
)

var (
	// ErrIndexOutOfRange is returned when an attempt is made to access a
	// field index that is too large or too small.
	ErrIndexOutOfRange = errors.New("header field index is out of range")
)

// Fields is the response-shape collection: an ordered list of
// (field-name, field-value) pairs. The zero value is an empty list ready for
// use. Duplicate names are structurally permitted; whether they are legal
// for a given field-name is decided by that header's cardinality, which the
// accessors enforce.
type Fields struct {
	pairs []Pair
}

// NewFields builds a field list from the given pairs, in order.
func NewFields(pairs ...Pair) *Fields {
	f := &Fields{}
	f.Append(pairs...)
	return f
}

// Len returns the number of fields in the list.
func (f *Fields) Len() int {
	return len(f.pairs)
}

// Pair returns the nth field or the zero Pair with ErrIndexOutOfRange when n
// is out of range.
func (f *Fields) Pair(n int) (Pair, error) {
	if n < 0 || n >= len(f.pairs) {
		return Pair{}, ErrIndexOutOfRange
	}
	return f.pairs[n], nil
}

// Pairs returns a copy of the field list.
func (f *Fields) Pairs() []Pair {
	ps := make([]Pair, len(f.pairs))
	copy(ps, f.pairs)
	return ps
}

// Append adds the given pairs to the end of the list.
func (f *Fields) Append(pairs ...Pair) {
	f.pairs = append(f.pairs, pairs...)
}

// Add appends a single field to the end of the list.
func (f *Fields) Add(name, value string) {
	f.pairs = append(f.pairs, Pair{name, value})
}

// Values returns the values of every field whose name matches, compared
// case-insensitively, in list order.
func (f *Fields) Values(name string) []string {
	var vs []string
	for _, p := range f.pairs {
		if strings.EqualFold(p.Name, name) {
			vs = append(vs, p.Value)
		}
	}
	return vs
}

// Indexes returns the positions of every field whose name matches, compared
// case-insensitively.
func (f *Fields) Indexes(name string) []int {
	var is []int
	for i, p := range f.pairs {
		if strings.EqualFold(p.Name, name) {
			is = append(is, i)
		}
	}
	return is
}

// Delete removes the nth field from the list. Fails with ErrIndexOutOfRange
// when n is out of range.
func (f *Fields) Delete(n int) error {
	if n < 0 || n >= len(f.pairs) {
		return ErrIndexOutOfRange
	}
	copy(f.pairs[n:], f.pairs[n+1:])
	f.pairs = f.pairs[:len(f.pairs)-1]
	return nil
}

// Bytes renders the field list in wire style, one "Name: value" line per
// field, each terminated by CRLF.
func (f *Fields) Bytes() []byte {
	var buf bytes.Buffer
	for _, p := range f.pairs {
		buf.WriteString(p.Name)
		buf.WriteString(": ")
		buf.WriteString(p.Value)
		buf.WriteString("\r\n")
	}
	return buf.Bytes()
}

// String renders the field list the same way Bytes does.
func (f *Fields) String() string {
	return string(f.Bytes())
}

// WriteTo writes the rendered field list to w.
func (f *Fields) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Bytes())
	return int64(n), err
}

func (f *Fields) headerValues(h *Header) []string {
	return f.Values(h.name)
}

// setHeader overwrites the first matching field in place, removes any later
// duplicates, and appends when no field matched.
func (f *Fields) setHeader(h *Header, value string) {
	found := false
	i := 0
	for i < len(f.pairs) {
		if strings.EqualFold(f.pairs[i].Name, h.name) {
			if found {
				f.pairs = append(f.pairs[:i], f.pairs[i+1:]...)
				continue
			}
			f.pairs[i] = Pair{h.name, value}
			found = true
		}
		i++
	}
	if !found {
		f.pairs = append(f.pairs, Pair{h.name, value})
	}
}

func (f *Fields) deleteHeader(h *Header) {
	i := 0
	for i < len(f.pairs) {
		if strings.EqualFold(f.pairs[i].Name, h.name) {
			f.pairs = append(f.pairs[:i], f.pairs[i+1:]...)
			continue
		}
		i++
	}
}
