package header

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by accessor and registry operations.
var (
	// ErrUnknownHeader is returned by Registry.Lookup and strict
	// normalization when a field-name has not been registered.
	ErrUnknownHeader = errors.New("unknown header field")

	// ErrDuplicateRegistration is returned by Registry.Register when a
	// field-name is re-registered with a different capitalization, category,
	// or cardinality. Re-registering an identical declaration is not an
	// error; the existing accessor is returned instead.
	ErrDuplicateRegistration = errors.New("conflicting duplicate header registration")

	// ErrAmbiguousCall is returned when a value is requested from more than
	// one source at once, such as a collection together with literal values.
	ErrAmbiguousCall = errors.New("field-value requested from more than one source")

	// ErrInvalidValue is returned by composition when the supplied
	// parameters are mutually exclusive, out of range, or otherwise cannot
	// form a legal field-value.
	ErrInvalidValue = errors.New("invalid header field-value")

	// ErrManyValues is returned when a single-value header is observed with
	// more than one stored entry.
	ErrManyValues = errors.New("multiple values for single-value header")

	// ErrNotSupported is returned when an operation does not exist for the
	// header's cardinality, such as an in-place update of a multi-entry
	// header like Set-Cookie.
	ErrNotSupported = errors.New("operation not supported for this header")

	// ErrMalformedTime is returned by the date-family accessors when a
	// stored value cannot be parsed as a timestamp.
	ErrMalformedTime = errors.New("malformed timestamp")

	// ErrClockSkew is returned by If-Modified-Since when the stored
	// timestamp is in the future relative to the server clock.
	ErrClockSkew = errors.New("timestamp is in the future")

	// ErrUnknownExtension is returned by Cache-Control composition when an
	// extension token has not been registered with the accessor.
	ErrUnknownExtension = errors.New("unknown cache-control extension")

	// ErrMissingDefault is returned when a value is requested with no
	// arguments from a header that has no default composition.
	ErrMissingDefault = errors.New("header has no default field-value")
)

// Category classifies a header per RFC 2616 section 4.2 and fixes its sort
// precedence when a response's fields are normalized: general headers come
// first, then request, response, and entity headers.
type Category int

const (
	General Category = iota + 1
	Request
	Response
	Entity
)

// String returns the RFC 2616 name for the category.
func (c Category) String() string {
	switch c {
	case General:
		return "general"
	case Request:
		return "request"
	case Response:
		return "response"
	case Entity:
		return "entity"
	}
	return "unknown"
}

// Cardinality describes how many entries a header may legally have in a
// collection and how stored entries relate to the header's field-value.
type Cardinality int

const (
	// Single headers have no list production and may occur at most once.
	Single Cardinality = iota

	// Multi headers may occur many times; storing several entries is
	// semantically equivalent to storing one comma-joined entry.
	Multi

	// MultiEntry headers may occur many times but their entries must never
	// be comma-joined, because each entry carries its own attributes
	// (Set-Cookie) or because common user agents mishandle the combined
	// form (Warning, WWW-Authenticate).
	MultiEntry
)

// String returns a short name for the cardinality.
func (c Cardinality) String() string {
	switch c {
	case Single:
		return "single"
	case Multi:
		return "multi-value"
	case MultiEntry:
		return "multi-entry"
	}
	return "unknown"
}

// Accessor is the set of operations shared by every header kind. The
// registry stores and returns accessors through this interface; headers with
// composition logic are concrete types embedding *Header that add their own
// Compose and Apply methods on top.
type Accessor interface {
	// Name returns the canonical field-name, e.g. "Content-Type".
	Name() string

	// Category returns the RFC 2616 category the header belongs to.
	Category() Category

	// Version returns the HTTP version that introduced the header.
	Version() string

	// Cardinality returns the header's cardinality class.
	Cardinality() Cardinality

	// Format renders raw values into the single-string external form.
	Format(values ...string) (string, error)

	// FormatAll renders raw values into the sequence external form.
	FormatAll(values ...string) ([]string, error)

	// Get reads the header's field-value from a collection.
	Get(c Collection) (string, error)

	// Entries reads the header's values from a collection as a sequence.
	Entries(c Collection) ([]string, error)

	// Set replaces the header's value in a collection in place.
	Set(c Collection, values ...string) (string, error)

	// Delete removes every entry of the header from a collection.
	Delete(c Collection) *Header

	// Pairs produces (field-name, field-value) pairs for appending.
	Pairs(values ...string) ([]Pair, error)

	base() *Header
}

// Header is the accessor for one HTTP header field-name. It holds no field
// value itself; it operates on values stored in a caller-owned Collection.
// A Header is immutable once registered and safe for concurrent use.
//
// Header implements the shared contract for all three cardinality classes.
// Headers with real composition logic (the date family, Cache-Control,
// Content-Type, Content-Disposition, From) are separate types in this
// package that embed *Header.
type Header struct {
	name        string
	category    Category
	version     string
	cardinality Cardinality

	// envKey is the request-shape key, legacyKey the unprefixed CGI-style
	// fallback used only by Content-Type and Content-Length.
	envKey    string
	legacyKey string

	// defaultValue composes the field-value used when Set or Value is
	// called with no arguments. Headers without one have no default.
	defaultValue func() (string, error)
}

// New constructs a generic accessor for the given field-name. Most callers
// should not use this directly: build a Registry and use Lookup, so that the
// one-accessor-per-name invariant holds.
func New(name string, category Category, version string, cardinality Cardinality) *Header {
	return &Header{
		name:        name,
		category:    category,
		version:     version,
		cardinality: cardinality,
		envKey:      EnvironKey(name),
	}
}

// Name returns the canonical field-name.
func (h *Header) Name() string { return h.name }

// String returns the canonical field-name.
func (h *Header) String() string { return h.name }

// Category returns the RFC 2616 category the header belongs to.
func (h *Header) Category() Category { return h.category }

// Version returns the HTTP version that introduced the header.
func (h *Header) Version() string { return h.version }

// Cardinality returns the header's cardinality class.
func (h *Header) Cardinality() Cardinality { return h.cardinality }

func (h *Header) base() *Header { return h }

// Format renders raw values into the externally visible field-value. For a
// single-value header that is the one value; more than one raw value fails
// with ErrManyValues. For a multi-value header the values are joined with
// ", ". Multi-entry headers have no single-string form and fail with
// ErrNotSupported; use FormatAll. No values render as the empty string.
func (h *Header) Format(values ...string) (string, error) {
	switch h.cardinality {
	case MultiEntry:
		return "", fmt.Errorf("%s: single-string form: %w", h.name, ErrNotSupported)
	case Single:
		if len(values) > 1 {
			return "", fmt.Errorf("%s: %w", h.name, ErrManyValues)
		}
	}
	if len(values) == 0 {
		return "", nil
	}
	trimmed := make([]string, len(values))
	for i, v := range values {
		trimmed[i] = strings.TrimSpace(v)
	}
	return strings.Join(trimmed, ", "), nil
}

// FormatAll renders raw values into the sequence form: one trimmed string
// per value, never joined. A single-value header with more than one value
// fails with ErrManyValues. For a multi-value header each raw value is
// further split on commas, so the comma-joined and separate-value storage
// forms render the same sequence. Multi-entry values are never split. No
// values render as a nil sequence.
func (h *Header) FormatAll(values ...string) ([]string, error) {
	if h.cardinality == Single && len(values) > 1 {
		return nil, fmt.Errorf("%s: %w", h.name, ErrManyValues)
	}
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if h.cardinality == Multi {
			for _, piece := range strings.Split(v, ",") {
				piece = strings.TrimSpace(piece)
				if piece != "" {
					out = append(out, piece)
				}
			}
			continue
		}
		out = append(out, strings.TrimSpace(v))
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out, nil
}

// Get reads the header's field-value from the given collection and renders
// it with Format. An absent header reads as the empty string with no error.
func (h *Header) Get(c Collection) (string, error) {
	return h.Format(c.headerValues(h)...)
}

// Entries reads the header's values from the given collection as a
// sequence. This is the only read form for multi-entry headers, but is legal
// for every cardinality. An absent header reads as a nil sequence.
func (h *Header) Entries(c Collection) ([]string, error) {
	return h.FormatAll(c.headerValues(h)...)
}

// Value resolves the externally visible field-value from exactly one
// source: the collection when c is non-nil, the literal values otherwise.
// Supplying both fails with ErrAmbiguousCall. Supplying neither composes the
// header's default value, or fails with ErrMissingDefault when the header
// has none.
func (h *Header) Value(c Collection, values ...string) (string, error) {
	if c != nil && len(values) > 0 {
		return "", fmt.Errorf("%s: %w", h.name, ErrAmbiguousCall)
	}
	if c != nil {
		return h.Get(c)
	}
	if len(values) == 0 {
		if h.defaultValue == nil {
			return "", fmt.Errorf("%s: %w", h.name, ErrMissingDefault)
		}
		return h.defaultValue()
	}
	return h.Format(values...)
}

// Set replaces the header's value in the collection in place. In the
// request shape the mapped key is overwritten. In the response shape the
// first matching field is overwritten where it stands, later duplicates are
// removed, and a new field is appended when none matched. With no values the
// header's default composition is used, or ErrMissingDefault when there is
// none. An empty computed value degrades to Delete. Multi-entry headers
// cannot be updated in place and fail with ErrNotSupported; append their
// Pairs instead.
func (h *Header) Set(c Collection, values ...string) (string, error) {
	if h.cardinality == MultiEntry {
		return "", fmt.Errorf("%s: in-place update: %w", h.name, ErrNotSupported)
	}
	value, err := h.Value(nil, values...)
	if err != nil {
		return "", err
	}
	if value == "" {
		h.Delete(c)
		return "", nil
	}
	c.setHeader(h, value)
	return value, nil
}

// Delete removes every entry of the header from the collection. Deleting an
// absent header is a no-op. The accessor is returned for chaining.
func (h *Header) Delete(c Collection) *Header {
	c.deleteHeader(h)
	return h
}

// Pairs renders the values into (field-name, field-value) pairs suitable
// for appending to a Fields collection. Multi-entry headers produce one pair
// per value; all others produce zero or one pair holding the formatted
// field-value.
func (h *Header) Pairs(values ...string) ([]Pair, error) {
	if h.cardinality == MultiEntry {
		vs, err := h.FormatAll(values...)
		if err != nil {
			return nil, err
		}
		pairs := make([]Pair, len(vs))
		for i, v := range vs {
			pairs[i] = Pair{h.name, v}
		}
		return pairs, nil
	}
	value, err := h.Format(values...)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}
	return []Pair{{h.name, value}}, nil
}
