// Package header implements per-field accessors for HTTP/1.1 message
// headers, the registry that holds one accessor per field-name, and the two
// collection shapes the field values live in.
//
// An Accessor does not hold a field value. It holds the rules for one
// field-name and operates on values stored in a caller-owned Collection,
// which is either an Environ (the request-side key/value environment) or a
// *Fields (the response-side ordered field list). All mutation is in place.
//
// Use NewRegistry or MustNewRegistry to build the table of standard RFC 2616
// headers, then reach accessors through Lookup or through the typed handles
// the Registry exposes for the headers with composition logic:
//
//	reg := header.MustNewRegistry()
//	fields := &header.Fields{}
//	offset, err := reg.CacheControl.Apply(fields, header.CacheControlParams{
//		MaxAge: header.Seconds(header.OneHour),
//	})
//
// The registry is read-only once built and may be shared freely between
// goroutines. Collections are scoped to a single request or response and
// must not be mutated concurrently.
package header
