package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-httpheaders/param"
)

func TestParse(t *testing.T) {
	t.Parallel()

	pv, err := param.Parse("text/html; charset=UTF-8")
	require.NoError(t, err)

	assert.Equal(t, "text/html", pv.Value())
	assert.Equal(t, "text/html", pv.MediaType())
	assert.Equal(t, "text", pv.Type())
	assert.Equal(t, "html", pv.Subtype())
	assert.Equal(t, "UTF-8", pv.GetCharset())
	assert.Equal(t, "UTF-8", pv.Parameter(param.Charset))
}

func TestParse_Disposition(t *testing.T) {
	t.Parallel()

	pv, err := param.Parse(`attachment; filename="report.pdf"`)
	require.NoError(t, err)

	assert.Equal(t, "attachment", pv.Disposition())
	assert.Equal(t, "report.pdf", pv.GetFilename())
	assert.Equal(t, "", pv.Type())
	assert.Equal(t, "", pv.Subtype())
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	_, err := param.Parse("text/html; charset")
	assert.Error(t, err)
}

func TestModify(t *testing.T) {
	t.Parallel()

	pv := param.New("application/octet-stream")
	npv := param.Modify(pv,
		param.Change("text/plain"),
		param.Set(param.Charset, "utf-8"),
	)

	// the original is untouched
	assert.Equal(t, "application/octet-stream", pv.Value())
	assert.Empty(t, pv.Parameters())

	assert.Equal(t, "text/plain", npv.Value())
	assert.Equal(t, "utf-8", npv.GetCharset())

	npv = param.Modify(npv, param.Delete(param.Charset))
	assert.Equal(t, "", npv.GetCharset())
}

func TestString(t *testing.T) {
	t.Parallel()

	pv := param.NewWithParams("text/html", map[string]string{"charset": "utf-8"})
	assert.Equal(t, "text/html; charset=utf-8", pv.String())
	assert.Equal(t, []byte("text/html; charset=utf-8"), pv.Bytes())

	pv = param.New("inline")
	assert.Equal(t, "inline", pv.String())
}

func TestClone(t *testing.T) {
	t.Parallel()

	pv := param.NewWithParams("text/html", map[string]string{"charset": "utf-8"})
	npv := pv.Clone()

	npv = param.Modify(npv, param.Set("charset", "latin1"))
	assert.Equal(t, "utf-8", pv.GetCharset())
	assert.Equal(t, "latin1", npv.GetCharset())
}
