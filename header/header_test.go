package header_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-httpheaders/header"
)

var reg = header.MustNewRegistry()

func lookup(t *testing.T, name string) header.Accessor {
	t.Helper()
	a, err := reg.Lookup(name)
	require.NoError(t, err)
	return a
}

func TestSingleValue_Update(t *testing.T) {
	t.Parallel()

	host := lookup(t, "Host")
	fs := &header.Fields{}

	v, err := host.Set(fs, "example.com")
	require.NoError(t, err)
	assert.Equal(t, "example.com", v)

	got, err := host.Get(fs)
	require.NoError(t, err)
	assert.Equal(t, "example.com", got)
	assert.Len(t, fs.Indexes("Host"), 1)

	// a second update still leaves exactly one entry
	_, err = host.Set(fs, "other.example.com")
	require.NoError(t, err)
	assert.Len(t, fs.Indexes("Host"), 1)
}

func TestSingleValue_ManyValues(t *testing.T) {
	t.Parallel()

	host := lookup(t, "Host")
	fs := header.NewFields(
		header.Pair{Name: "Host", Value: "one.example.com"},
		header.Pair{Name: "host", Value: "two.example.com"},
	)

	_, err := host.Get(fs)
	assert.ErrorIs(t, err, header.ErrManyValues)

	_, err = host.Entries(fs)
	assert.ErrorIs(t, err, header.ErrManyValues)
}

func TestMultiValue_StorageFormsAreEquivalent(t *testing.T) {
	t.Parallel()

	accept := lookup(t, "Accept")

	separate := header.NewFields(
		header.Pair{Name: "Accept", Value: "text/html"},
		header.Pair{Name: "Accept", Value: "text/plain"},
		header.Pair{Name: "Accept", Value: "image/png"},
	)
	joined := header.NewFields(
		header.Pair{Name: "Accept", Value: "text/html, text/plain, image/png"},
	)

	v1, err := accept.Get(separate)
	require.NoError(t, err)
	v2, err := accept.Get(joined)
	require.NoError(t, err)
	assert.Equal(t, v1, v2)
	assert.Equal(t, "text/html, text/plain, image/png", v1)

	e1, err := accept.Entries(separate)
	require.NoError(t, err)
	e2, err := accept.Entries(joined)
	require.NoError(t, err)
	assert.Equal(t, e1, e2)
	assert.Equal(t, []string{"text/html", "text/plain", "image/png"}, e1)

	mixed := header.NewFields(
		header.Pair{Name: "Accept", Value: "text/html, text/plain"},
		header.Pair{Name: "Accept", Value: "image/png"},
	)
	e3, err := accept.Entries(mixed)
	require.NoError(t, err)
	assert.Equal(t, e1, e3)
}

func TestMultiValue_UpdateCollapses(t *testing.T) {
	t.Parallel()

	vary := lookup(t, "Vary")
	fs := header.NewFields(
		header.Pair{Name: "Vary", Value: "Accept"},
		header.Pair{Name: "Server", Value: "demo/1.0"},
		header.Pair{Name: "vary", Value: "User-Agent"},
	)

	v, err := vary.Set(fs, "Accept-Encoding", "Accept-Language")
	require.NoError(t, err)
	assert.Equal(t, "Accept-Encoding, Accept-Language", v)

	// overwrites the first entry in place, drops the duplicate
	assert.Equal(t, []header.Pair{
		{Name: "Vary", Value: "Accept-Encoding, Accept-Language"},
		{Name: "Server", Value: "demo/1.0"},
	}, fs.Pairs())
}

func TestMultiEntry_NeverJoined(t *testing.T) {
	t.Parallel()

	setCookie := lookup(t, "Set-Cookie")
	fs := &header.Fields{}

	_, err := setCookie.Set(fs, "a=1")
	assert.ErrorIs(t, err, header.ErrNotSupported)

	_, err = setCookie.Get(fs)
	assert.ErrorIs(t, err, header.ErrNotSupported)

	pairs, err := setCookie.Pairs("a=1; Path=/", "b=2; Secure")
	require.NoError(t, err)
	fs.Append(pairs...)

	got, err := setCookie.Entries(fs)
	require.NoError(t, err)
	assert.Equal(t, []string{"a=1; Path=/", "b=2; Secure"}, got)
}

func TestDelete(t *testing.T) {
	t.Parallel()

	warning := lookup(t, "Warning")
	fs := header.NewFields(
		header.Pair{Name: "Warning", Value: `110 - "Response is stale"`},
		header.Pair{Name: "Server", Value: "demo/1.0"},
		header.Pair{Name: "warning", Value: `112 - "Disconnected"`},
	)

	warning.Delete(fs)
	assert.Equal(t, []header.Pair{{Name: "Server", Value: "demo/1.0"}}, fs.Pairs())

	// deleting again is a no-op
	warning.Delete(fs)
	assert.Equal(t, 1, fs.Len())
}

func TestEnviron_KeyMapping(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "HTTP_USER_AGENT", header.EnvironKey("User-Agent"))
	assert.Equal(t, "HTTP_IF_MODIFIED_SINCE", header.EnvironKey("If-Modified-Since"))

	ua := lookup(t, "User-Agent")
	env := header.Environ{"HTTP_USER_AGENT": "curl/8.0"}

	got, err := ua.Get(env)
	require.NoError(t, err)
	assert.Equal(t, "curl/8.0", got)

	got, err = ua.Get(header.Environ{})
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestEnviron_Update(t *testing.T) {
	t.Parallel()

	ua := lookup(t, "User-Agent")
	env := header.Environ{}

	v, err := ua.Set(env, "curl/8.0")
	require.NoError(t, err)
	assert.Equal(t, "curl/8.0", v)
	assert.Equal(t, header.Environ{"HTTP_USER_AGENT": "curl/8.0"}, env)

	ua.Delete(env)
	assert.Empty(t, env)
}

func TestLegacyEnvironFallback(t *testing.T) {
	t.Parallel()

	env := header.Environ{
		"CONTENT_TYPE":   "text/html",
		"CONTENT_LENGTH": "42",
	}

	ct, err := reg.ContentType.Get(env)
	require.NoError(t, err)
	assert.Equal(t, "text/html", ct)

	cl, err := reg.ContentLength.Get(env)
	require.NoError(t, err)
	assert.Equal(t, "42", cl)

	// the prefixed key wins when present
	env["HTTP_CONTENT_TYPE"] = "application/json"
	ct, err = reg.ContentType.Get(env)
	require.NoError(t, err)
	assert.Equal(t, "application/json", ct)

	// other headers get no fallback
	ua := lookup(t, "User-Agent")
	got, err := ua.Get(header.Environ{"USER_AGENT": "curl/8.0"})
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestValue_SourceExclusivity(t *testing.T) {
	t.Parallel()

	host := lookup(t, "Host").(*header.Header)
	fs := header.NewFields(header.Pair{Name: "Host", Value: "example.com"})

	_, err := host.Value(fs, "other.example.com")
	assert.ErrorIs(t, err, header.ErrAmbiguousCall)

	v, err := host.Value(fs)
	require.NoError(t, err)
	assert.Equal(t, "example.com", v)

	v, err = host.Value(nil, "literal.example.com")
	require.NoError(t, err)
	assert.Equal(t, "literal.example.com", v)

	_, err = host.Value(nil)
	assert.ErrorIs(t, err, header.ErrMissingDefault)
}

func TestSet_NoValueNoDefault(t *testing.T) {
	t.Parallel()

	host := lookup(t, "Host")
	fs := &header.Fields{}

	_, err := host.Set(fs)
	assert.ErrorIs(t, err, header.ErrMissingDefault)
}

func TestPairs(t *testing.T) {
	t.Parallel()

	vary := lookup(t, "Vary")
	pairs, err := vary.Pairs("Accept", "Accept-Encoding")
	require.NoError(t, err)
	assert.Equal(t, []header.Pair{
		{Name: "Vary", Value: "Accept, Accept-Encoding"},
	}, pairs)

	pairs, err = vary.Pairs()
	require.NoError(t, err)
	assert.Nil(t, pairs)
}

func TestFormat_TrimsValues(t *testing.T) {
	t.Parallel()

	accept := lookup(t, "Accept")
	v, err := accept.Format(" text/html ", "  text/plain")
	require.NoError(t, err)
	assert.Equal(t, "text/html, text/plain", v)
}
