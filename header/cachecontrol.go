package header

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Common max-age values, in seconds. Good-enough approximations.
const (
	OneHour  = 60 * 60
	OneDay   = OneHour * 24
	OneWeek  = OneDay * 7
	OneMonth = OneDay * 30
	OneYear  = OneWeek * 52
)

// Seconds is a convenience for building the optional integer fields of
// CacheControlParams, e.g. MaxAge: header.Seconds(header.OneHour).
func Seconds(n int) *int {
	return &n
}

// CacheControlParams constructs a Cache-Control value per RFC 2616 section
// 14.9. Public, Private, and NoCache are mutually exclusive; when none is
// set the response is treated as public. Private additionally excludes
// MaxAge and SMaxAge, and NoCache excludes MaxAge, since those directives
// contradict each other.
type CacheControlParams struct {
	// Public marks the response cacheable by any cache.
	Public bool

	// Private marks the response cacheable only for one user. Enumerating
	// private fields is not supported.
	Private bool

	// NoCache forbids serving the response from cache without revalidation.
	NoCache bool

	// NoStore forbids storing the response on durable media.
	NoStore bool

	// NoTransform forbids intermediaries from converting the content.
	NoTransform bool

	// MaxAge is the maximum freshness lifetime in seconds; nil means unset.
	MaxAge *int

	// SMaxAge is the shared-cache freshness lifetime in seconds; nil means
	// unset.
	SMaxAge *int

	// Extensions holds cache-extension tokens (RFC 2616 section 14.9.6),
	// such as community="UCI". Every key must have been registered on the
	// accessor or composition fails with ErrUnknownExtension.
	Extensions map[string]string
}

// CacheControlHeader is the accessor for Cache-Control. Beyond the
// multi-value contract it composes directive lists from CacheControlParams,
// and Apply keeps the Expires header consistent for HTTP/1.0 caches as RFC
// 2616 recommends.
type CacheControlHeader struct {
	*Header

	expires    *TimeHeader
	extensions map[string]struct{}
}

func newCacheControlHeader(expires *TimeHeader) *CacheControlHeader {
	h := &CacheControlHeader{
		Header:     New("Cache-Control", General, "1.1", Multi),
		expires:    expires,
		extensions: map[string]struct{}{},
	}
	h.defaultValue = func() (string, error) {
		directives, err := h.Compose(CacheControlParams{})
		if err != nil {
			return "", err
		}
		return h.Format(directives...)
	}
	return h
}

// compose builds the directive list and the Expires offset the parameters
// imply: the max-age for a public response that has one, zero for private
// and no-cache responses, nil when Expires should be left alone.
func (h *CacheControlHeader) compose(p CacheControlParams) ([]string, *int, error) {
	if p.MaxAge != nil && *p.MaxAge < 0 {
		return nil, nil, fmt.Errorf("%s: negative max-age %d: %w", h.name, *p.MaxAge, ErrInvalidValue)
	}
	if p.SMaxAge != nil && *p.SMaxAge < 0 {
		return nil, nil, fmt.Errorf("%s: negative s-maxage %d: %w", h.name, *p.SMaxAge, ErrInvalidValue)
	}

	var directives []string
	var expires *int
	zero := 0
	switch {
	case p.Private:
		if p.Public || p.NoCache {
			return nil, nil, fmt.Errorf("%s: private excludes public and no-cache: %w", h.name, ErrInvalidValue)
		}
		if p.MaxAge != nil || p.SMaxAge != nil {
			return nil, nil, fmt.Errorf("%s: private excludes max-age and s-maxage: %w", h.name, ErrInvalidValue)
		}
		directives = append(directives, "private")
		expires = &zero
	case p.NoCache:
		if p.Public {
			return nil, nil, fmt.Errorf("%s: no-cache excludes public: %w", h.name, ErrInvalidValue)
		}
		if p.MaxAge != nil {
			return nil, nil, fmt.Errorf("%s: no-cache excludes max-age: %w", h.name, ErrInvalidValue)
		}
		directives = append(directives, "no-cache")
		expires = &zero
	default:
		directives = append(directives, "public")
		expires = p.MaxAge
	}

	if p.NoStore {
		directives = append(directives, "no-store")
	}
	if p.NoTransform {
		directives = append(directives, "no-transform")
	}
	if p.MaxAge != nil {
		directives = append(directives, fmt.Sprintf("max-age=%d", *p.MaxAge))
	}
	if p.SMaxAge != nil {
		directives = append(directives, fmt.Sprintf("s-maxage=%d", *p.SMaxAge))
	}

	exts := make([]string, 0, len(p.Extensions))
	for k := range p.Extensions {
		exts = append(exts, k)
	}
	sort.Strings(exts)
	for _, k := range exts {
		token := strings.ReplaceAll(strings.ToLower(k), "_", "-")
		if _, ok := h.extensions[token]; !ok {
			return nil, nil, fmt.Errorf("%s: %q: %w", h.name, k, ErrUnknownExtension)
		}
		directives = append(directives, fmt.Sprintf("%s=%q", token, p.Extensions[k]))
	}

	return directives, expires, nil
}

// Compose builds the Cache-Control directive list described by p. With the
// zero params the response is simply "public".
func (h *CacheControlHeader) Compose(p CacheControlParams) ([]string, error) {
	directives, _, err := h.compose(p)
	return directives, err
}

// Apply writes the composed Cache-Control value into the collection and,
// when the parameters imply one, an Expires value for the benefit of
// HTTP/1.0 caches: now plus max-age for a bounded public response, now for
// private and no-cache responses so they are immediately stale. Any existing
// Expires entry is overwritten. The returned duration is the expiry offset
// that was written, zero when Expires was not touched.
func (h *CacheControlHeader) Apply(c Collection, p CacheControlParams) (time.Duration, error) {
	directives, expires, err := h.compose(p)
	if err != nil {
		return 0, err
	}

	var offset time.Duration
	if expires != nil {
		offset = time.Duration(*expires) * time.Second
		if _, err := h.expires.Apply(c, TimeParams{Delta: offset}); err != nil {
			return 0, err
		}
	}

	if _, err := h.Set(c, directives...); err != nil {
		return 0, err
	}
	return offset, nil
}

// Extensions returns the registered cache-extension tokens in sorted order.
func (h *CacheControlHeader) Extensions() []string {
	exts := make([]string, 0, len(h.extensions))
	for k := range h.extensions {
		exts = append(exts, k)
	}
	sort.Strings(exts)
	return exts
}
