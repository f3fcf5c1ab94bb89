package header_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-httpheaders/header"
)

func TestFields_Basics(t *testing.T) {
	t.Parallel()

	fs := header.NewFields(
		header.Pair{Name: "Server", Value: "demo/1.0"},
		header.Pair{Name: "Vary", Value: "Accept-Encoding"},
	)
	fs.Add("vary", "User-Agent")

	assert.Equal(t, 3, fs.Len())

	p, err := fs.Pair(0)
	require.NoError(t, err)
	assert.Equal(t, header.Pair{Name: "Server", Value: "demo/1.0"}, p)

	_, err = fs.Pair(3)
	assert.ErrorIs(t, err, header.ErrIndexOutOfRange)

	assert.Equal(t, []string{"Accept-Encoding", "User-Agent"}, fs.Values("VARY"))
	assert.Equal(t, []int{1, 2}, fs.Indexes("vary"))
	assert.Nil(t, fs.Values("ETag"))
}

func TestFields_Delete(t *testing.T) {
	t.Parallel()

	fs := header.NewFields(
		header.Pair{Name: "A", Value: "1"},
		header.Pair{Name: "B", Value: "2"},
		header.Pair{Name: "C", Value: "3"},
	)

	require.NoError(t, fs.Delete(1))
	assert.Equal(t, []header.Pair{
		{Name: "A", Value: "1"},
		{Name: "C", Value: "3"},
	}, fs.Pairs())

	assert.ErrorIs(t, fs.Delete(2), header.ErrIndexOutOfRange)
	assert.ErrorIs(t, fs.Delete(-1), header.ErrIndexOutOfRange)
}

func TestFields_Render(t *testing.T) {
	t.Parallel()

	fs := header.NewFields(
		header.Pair{Name: "Server", Value: "demo/1.0"},
		header.Pair{Name: "Content-Type", Value: "text/plain"},
	)

	const expect = "Server: demo/1.0\r\nContent-Type: text/plain\r\n"
	assert.Equal(t, expect, fs.String())

	buf := &strings.Builder{}
	n, err := fs.WriteTo(buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(expect)), n)
	assert.Equal(t, expect, buf.String())
}

func TestFields_PairsIsACopy(t *testing.T) {
	t.Parallel()

	fs := header.NewFields(header.Pair{Name: "A", Value: "1"})
	ps := fs.Pairs()
	ps[0].Value = "changed"

	p, err := fs.Pair(0)
	require.NoError(t, err)
	assert.Equal(t, "1", p.Value)
}
