// Package httpheaders provides typed accessors for HTTP/1.1 message headers
// as defined by RFC 2616. Rather than working with raw header strings,
// application code reads, constructs, validates, and mutates individual
// headers through per-field accessor objects that know the rules for that
// field: whether it may repeat, how repeated values combine, and which other
// headers it implies.
//
// Header values themselves live in one of two caller-owned collections: the
// request-side key/value environment (header.Environ) or the response-side
// ordered field list (header.Fields). The accessors never keep a copy; every
// operation reads from or writes into the collection it is given.
//
// The three-way header taxonomy from RFC 2616 section 4.2 is central to the
// design. Single-value headers such as Content-Type may occur at most once.
// Multi-value headers such as Accept may occur many times and storing several
// entries is equivalent to storing one comma-joined entry. Multi-entry
// headers such as Set-Cookie may occur many times but must never be combined,
// since joining them corrupts per-entry attributes.
//
// Accessors for all the standard RFC 2616 headers are built by
// header.NewRegistry, which also exposes typed handles for the headers with
// real composition logic: the date family (Date, Expires, Last-Modified,
// If-Modified-Since, If-Unmodified-Since), Cache-Control with its Expires
// side effect, Content-Type and Content-Length with their legacy environment
// fallback, and Content-Disposition with its Content-Type side effect. The
// registry is immutable once built and safe to share between concurrently
// handled requests.
//
// The param package handles parameterized field values of the kind used by
// Content-Type and Content-Disposition. The tools/normhdr command
// canonicalizes and sorts a header block the way header.Registry.Normalize
// does it for a response before it goes out on the wire.
package httpheaders
