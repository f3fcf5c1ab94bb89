package header

import (
	"fmt"
	"sort"
	"strings"
)

// declaration is one row of the standard header table: the minimum needed
// to build a generic accessor.
type declaration struct {
	name        string
	category    Category
	version     string
	cardinality Cardinality
}

// The RFC 2616 headers (plus Cookie and Set-Cookie) that need no
// composition logic. The specialized headers are built separately in
// NewRegistry.
var standard = []declaration{
	{"Accept", Request, "1.1", Multi},
	{"Accept-Charset", Request, "1.1", Multi},
	{"Accept-Encoding", Request, "1.1", Multi},
	{"Accept-Language", Request, "1.1", Multi},
	{"Accept-Ranges", Response, "1.1", Multi},
	{"Age", Response, "1.1", Single},
	{"Allow", Entity, "1.0", Multi},
	{"Authorization", Request, "1.0", Single},
	{"Cookie", Request, "1.0", Multi},
	{"Connection", General, "1.1", Multi},
	{"Content-Encoding", Entity, "1.0", Multi},
	{"Content-Language", Entity, "1.1", Multi},
	{"Content-Location", Entity, "1.1", Single},
	{"Content-MD5", Entity, "1.1", Single},
	{"Content-Range", Entity, "1.1", Single},
	{"ETag", Response, "1.1", Single},
	{"Expect", Request, "1.1", Multi},
	{"Host", Request, "1.1", Single},
	{"If-Match", Request, "1.1", Multi},
	{"If-None-Match", Request, "1.1", Multi},
	{"If-Range", Request, "1.1", Single},
	{"Location", Response, "1.0", Single},
	{"Max-Forwards", Request, "1.1", Single},
	{"Pragma", General, "1.0", Multi},
	{"Proxy-Authenticate", Response, "1.1", Multi},
	{"Proxy-Authorization", Request, "1.1", Single},
	{"Range", Request, "1.1", Multi},
	{"Referer", Request, "1.0", Single},
	{"Server", Response, "1.0", Single},
	{"Set-Cookie", Response, "1.0", MultiEntry},
	{"TE", Request, "1.1", Multi},
	{"Trailer", General, "1.1", Multi},
	{"Transfer-Encoding", General, "1.1", Multi},
	{"Upgrade", General, "1.1", Multi},
	{"User-Agent", Request, "1.0", Single},
	{"Vary", Response, "1.1", Multi},
	{"Via", General, "1.1", Multi},
	{"Warning", General, "1.1", MultiEntry},
	{"WWW-Authenticate", Response, "1.0", MultiEntry},
}

// Registry is the process-wide table mapping canonical field-names to their
// accessors. Build one with NewRegistry during initialization; after that
// it is read-only and safe to share between concurrently handled requests.
//
// The headers with composition logic are exposed as typed fields so callers
// can reach Compose and Apply without type assertions.
type Registry struct {
	byName map[string]Accessor

	Date               *TimeHeader
	Expires            *TimeHeader
	LastModified       *TimeHeader
	IfModifiedSince    *TimeHeader
	IfUnmodifiedSince  *TimeHeader
	RetryAfter         *TimeHeader
	CacheControl       *CacheControlHeader
	ContentType        *MediaTypeHeader
	ContentLength      *Header
	ContentDisposition *DispositionHeader
	From               *FromHeader
}

// Option adjusts a Registry while NewRegistry builds it.
type Option func(*Registry)

// WithCacheControlExtensions registers the given cache-extension tokens as
// legal keys for CacheControlParams.Extensions. Tokens are normalized the
// way directives are rendered: lower-cased with underscores as dashes.
func WithCacheControlExtensions(names ...string) Option {
	return func(r *Registry) {
		for _, n := range names {
			token := strings.ReplaceAll(strings.ToLower(n), "_", "-")
			r.CacheControl.extensions[token] = struct{}{}
		}
	}
}

// NewRegistry builds the registry of standard RFC 2616 headers. A
// registration conflict fails with ErrDuplicateRegistration; that can only
// mean the declaration table itself is wrong, so callers normally use
// MustNewRegistry at startup.
func NewRegistry(opts ...Option) (*Registry, error) {
	r := &Registry{byName: make(map[string]Accessor, len(standard)+12)}

	for _, d := range standard {
		if _, err := r.Register(New(d.name, d.category, d.version, d.cardinality)); err != nil {
			return nil, err
		}
	}

	r.Date = newTimeHeader("Date", General, "1.0")
	r.Expires = newTimeHeader("Expires", Entity, "1.0")
	r.LastModified = newTimeHeader("Last-Modified", Entity, "1.0")
	r.IfModifiedSince = newTimeHeader("If-Modified-Since", Request, "1.0")
	r.IfModifiedSince.rejectFuture = true
	r.IfUnmodifiedSince = newTimeHeader("If-Unmodified-Since", Request, "1.1")
	r.RetryAfter = newTimeHeader("Retry-After", Response, "1.1")
	r.ContentType = newMediaTypeHeader()
	r.ContentLength = New("Content-Length", Entity, "1.0", Single)
	r.ContentLength.legacyKey = "CONTENT_LENGTH"
	r.CacheControl = newCacheControlHeader(r.Expires)
	r.ContentDisposition = newDispositionHeader(r.ContentType)
	r.From = newFromHeader()

	specialized := []Accessor{
		r.Date, r.Expires, r.LastModified, r.IfModifiedSince,
		r.IfUnmodifiedSince, r.RetryAfter, r.ContentType,
		r.ContentLength, r.CacheControl, r.ContentDisposition, r.From,
	}
	for _, a := range specialized {
		if _, err := r.Register(a); err != nil {
			return nil, err
		}
	}

	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// MustNewRegistry is NewRegistry but panics on error. Registration failures
// are programming errors in the declaration table and should be fatal at
// startup.
func MustNewRegistry(opts ...Option) *Registry {
	r, err := NewRegistry(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Register inserts the accessor under its lowercased canonical name.
// Registering the same declaration twice is idempotent and returns the
// accessor already present; a declaration that differs in capitalization,
// category, or cardinality fails with ErrDuplicateRegistration.
func (r *Registry) Register(a Accessor) (Accessor, error) {
	key := strings.ToLower(a.Name())
	if existing, ok := r.byName[key]; ok {
		e, n := existing.base(), a.base()
		if e.name != n.name || e.category != n.category || e.cardinality != n.cardinality {
			return nil, fmt.Errorf("%s: %w", a.Name(), ErrDuplicateRegistration)
		}
		return existing, nil
	}
	r.byName[key] = a
	return a, nil
}

// Lookup returns the accessor for the given field-name. The name is
// normalized first: surrounding space is stripped, the name is lower-cased,
// and underscores become dashes, so "user_agent" finds User-Agent. An
// unregistered name fails with ErrUnknownHeader.
func (r *Registry) Lookup(name string) (Accessor, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	a, ok := r.byName[key]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownHeader)
	}
	return a, nil
}

// Contains reports whether the given field-name is registered, applying the
// same normalization as Lookup.
func (r *Registry) Contains(name string) bool {
	_, err := r.Lookup(name)
	return err == nil
}

// List returns the accessors belonging to the given categories, sorted by
// category precedence and then by name. With no categories, every
// registered accessor is returned.
func (r *Registry) List(categories ...Category) []Accessor {
	want := func(Category) bool { return true }
	if len(categories) > 0 {
		set := make(map[Category]struct{}, len(categories))
		for _, c := range categories {
			set[c] = struct{}{}
		}
		want = func(c Category) bool {
			_, ok := set[c]
			return ok
		}
	}

	as := make([]Accessor, 0, len(r.byName))
	for _, a := range r.byName {
		if want(a.Category()) {
			as = append(as, a)
		}
	}
	sort.Slice(as, func(i, j int) bool {
		if as[i].Category() != as[j].Category() {
			return as[i].Category() < as[j].Category()
		}
		return as[i].Name() < as[j].Name()
	})
	return as
}
