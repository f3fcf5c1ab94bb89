package header

import (
	"fmt"
	"net/http"
	"time"

	"github.com/araddon/dateparse"
)

// TimeParams constructs the value of a date-family header.
type TimeParams struct {
	// Time is the moment the header should carry. The zero value means the
	// current time.
	Time time.Time

	// Delta is an offset added to Time, so an Expires one hour out is
	// TimeParams{Delta: time.Hour}.
	Delta time.Duration
}

// TimeHeader is the accessor for the date-family headers: Date, Expires,
// Last-Modified, If-Modified-Since, and If-Unmodified-Since. It composes
// RFC 1123 GMT values and parses stored values back into time.Time.
type TimeHeader struct {
	*Header

	// rejectFuture makes Time fail with ErrClockSkew for timestamps ahead
	// of the server clock. Only If-Modified-Since sets this.
	rejectFuture bool
}

func newTimeHeader(name string, category Category, version string) *TimeHeader {
	h := &TimeHeader{Header: New(name, category, version, Single)}
	h.defaultValue = func() (string, error) { return h.Compose(TimeParams{}) }
	return h
}

// ParseTime parses a header timestamp. The RFC-sanctioned formats that
// net/http knows are tried first, then dateparse handles the looser formats
// seen in the wild. Unparseable input fails with ErrMalformedTime.
func ParseTime(value string) (time.Time, error) {
	t, err := http.ParseTime(value)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(value)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("time string %q cannot be parsed: %w", value, ErrMalformedTime)
}

// Compose renders the moment described by p as an RFC 1123 GMT string.
func (h *TimeHeader) Compose(p TimeParams) (string, error) {
	t := p.Time
	if t.IsZero() {
		t = time.Now()
	}
	t = t.Add(p.Delta)
	return t.UTC().Format(http.TimeFormat), nil
}

// Apply composes the date value described by p and writes it into the
// collection, returning the written value.
func (h *TimeHeader) Apply(c Collection, p TimeParams) (string, error) {
	value, err := h.Compose(p)
	if err != nil {
		return "", err
	}
	return h.Set(c, value)
}

// Time reads the header from the collection and parses it. An absent header
// reads as the zero time with no error. For If-Modified-Since, a parsed time
// strictly ahead of the server clock fails with ErrClockSkew, since that can
// only mean the client's clock is wrong.
func (h *TimeHeader) Time(c Collection) (time.Time, error) {
	value, err := h.Get(c)
	if err != nil || value == "" {
		return time.Time{}, err
	}

	t, err := ParseTime(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", h.name, err)
	}

	if h.rejectFuture && t.After(time.Now()) {
		return time.Time{}, fmt.Errorf("%s: %q: %w", h.name, value, ErrClockSkew)
	}

	return t, nil
}

// TimeValue parses the given raw value directly, applying the same checks
// as Time. It is the literal-value counterpart for callers that already hold
// the string.
func (h *TimeHeader) TimeValue(value string) (time.Time, error) {
	t, err := ParseTime(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s: %w", h.name, err)
	}
	if h.rejectFuture && t.After(time.Now()) {
		return time.Time{}, fmt.Errorf("%s: %q: %w", h.name, value, ErrClockSkew)
	}
	return t, nil
}
