package header

import (
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/zostay/go-httpheaders/param"
)

// Common media types.
const (
	// Unknown is the generic binary media type used when nothing better is
	// known. Content-Disposition treats it as "absent" when deciding
	// whether to guess a better Content-Type from a filename.
	Unknown = "application/octet-stream"

	TextPlain = "text/plain"
	TextHTML  = "text/html"
	TextXML   = "text/xml"
)

// ContentTypeParams constructs a Content-Type value. A bare call with the
// zero params composes Unknown. When only the subtype is given and it is one
// of the common text subtypes (plain, html, xml), the type defaults to
// "text"; any other subtype requires an explicit type.
type ContentTypeParams struct {
	Type    string
	Subtype string
	Charset string
}

// MediaTypeHeader is the accessor for Content-Type. Beyond the single-value
// contract it composes media-type values from ContentTypeParams and parses
// stored values into param.Value objects. When read from the request shape
// it falls back to the legacy unprefixed environment key.
type MediaTypeHeader struct {
	*Header
}

func newMediaTypeHeader() *MediaTypeHeader {
	h := &MediaTypeHeader{Header: New("Content-Type", Entity, "1.0", Single)}
	h.legacyKey = "CONTENT_TYPE"
	h.defaultValue = func() (string, error) { return h.Compose(ContentTypeParams{}) }
	return h
}

// Compose renders the media type described by p.
func (h *MediaTypeHeader) Compose(p ContentTypeParams) (string, error) {
	if p.Type == "" {
		switch p.Subtype {
		case "plain", "html", "xml":
			p.Type = "text"
		case "":
			if p.Charset != "" {
				return "", fmt.Errorf("%s: charset requires a media type: %w", h.name, ErrInvalidValue)
			}
			return Unknown, nil
		default:
			return "", fmt.Errorf("%s: subtype %q requires a type: %w", h.name, p.Subtype, ErrInvalidValue)
		}
	}
	if p.Subtype == "" {
		p.Subtype = "*"
	}

	pv := param.New(p.Type + "/" + p.Subtype)
	if p.Charset != "" {
		pv = param.Modify(pv, param.Set(param.Charset, p.Charset))
	}

	// mime.FormatMediaType renders nothing when the type or subtype is not
	// a token, so an empty rendering means p cannot be represented.
	value := pv.String()
	if value == "" {
		return "", fmt.Errorf("%s: cannot represent %q/%q: %w", h.name, p.Type, p.Subtype, ErrInvalidValue)
	}
	return value, nil
}

// Apply composes the media type described by p and writes it into the
// collection, returning the written value.
func (h *MediaTypeHeader) Apply(c Collection, p ContentTypeParams) (string, error) {
	value, err := h.Compose(p)
	if err != nil {
		return "", err
	}
	return h.Set(c, value)
}

// ParamValue reads the stored Content-Type and parses it into a
// param.Value. An absent header reads as nil with no error.
func (h *MediaTypeHeader) ParamValue(c Collection) (*param.Value, error) {
	value, err := h.Get(c)
	if err != nil || value == "" {
		return nil, err
	}
	pv, err := param.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %q: %w", h.name, value, ErrInvalidValue)
	}
	return pv, nil
}

// DispositionParams constructs a Content-Disposition value per RFC 2183.
// Attachment and Inline are mutually exclusive; when neither is set the
// disposition is an attachment. Filename is reduced to its basename; a
// filename containing a quote character cannot be represented and fails
// composition.
type DispositionParams struct {
	Attachment bool
	Inline     bool
	Filename   string
}

// DispositionHeader is the accessor for Content-Disposition. Apply keeps
// Content-Type consistent with the filename being served: when the current
// type is absent or the generic Unknown, it is upgraded to the type guessed
// from the filename's extension.
type DispositionHeader struct {
	*Header

	contentType *MediaTypeHeader
}

func newDispositionHeader(contentType *MediaTypeHeader) *DispositionHeader {
	h := &DispositionHeader{
		Header:      New("Content-Disposition", Entity, "1.1", Single),
		contentType: contentType,
	}
	h.defaultValue = func() (string, error) { return h.Compose(DispositionParams{}) }
	return h
}

// compose builds the field-value and returns the cleaned filename alongside
// it for the Apply side effect.
func (h *DispositionHeader) compose(p DispositionParams) (string, string, error) {
	if p.Attachment && p.Inline {
		return "", "", fmt.Errorf("%s: attachment excludes inline: %w", h.name, ErrInvalidValue)
	}

	parts := []string{"attachment"}
	if p.Inline {
		parts[0] = "inline"
	}

	filename := p.Filename
	if filename != "" {
		if strings.ContainsRune(filename, '"') {
			return "", "", fmt.Errorf("%s: filename %q contains a quote: %w", h.name, filename, ErrInvalidValue)
		}
		// basename only, for either separator style
		if ix := strings.LastIndex(filename, "/"); ix >= 0 {
			filename = filename[ix+1:]
		}
		if ix := strings.LastIndex(filename, `\`); ix >= 0 {
			filename = filename[ix+1:]
		}
		parts = append(parts, fmt.Sprintf("filename=%q", filename))
	}

	return strings.Join(parts, "; "), filename, nil
}

// Compose renders the disposition described by p.
func (h *DispositionHeader) Compose(p DispositionParams) (string, error) {
	value, _, err := h.compose(p)
	return value, err
}

// Apply writes the composed Content-Disposition into the collection. When a
// filename was given and the current Content-Type is absent or the generic
// Unknown, the type guessed from the filename's extension is written as a
// side effect. The returned string is the effective media type after the
// call, or "" when none is known.
func (h *DispositionHeader) Apply(c Collection, p DispositionParams) (string, error) {
	value, filename, err := h.compose(p)
	if err != nil {
		return "", err
	}

	mediaType, err := h.contentType.Get(c)
	if err != nil {
		return "", err
	}
	if filename != "" && (mediaType == "" || mediaType == Unknown) {
		if guessed := guessMediaType(filename); guessed != "" && guessed != Unknown {
			if _, err := h.contentType.Set(c, guessed); err != nil {
				return "", err
			}
			mediaType = guessed
		}
	}

	if _, err := h.Set(c, value); err != nil {
		return "", err
	}
	return mediaType, nil
}

// ParamValue reads the stored Content-Disposition and parses it into a
// param.Value. An absent header reads as nil with no error.
func (h *DispositionHeader) ParamValue(c Collection) (*param.Value, error) {
	value, err := h.Get(c)
	if err != nil || value == "" {
		return nil, err
	}
	pv, err := param.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %q: %w", h.name, value, ErrInvalidValue)
	}
	return pv, nil
}

// guessMediaType maps a filename extension to a bare media type, without
// the charset parameter mime.TypeByExtension tacks onto text types.
func guessMediaType(filename string) string {
	guessed := mime.TypeByExtension(filepath.Ext(filename))
	if guessed == "" {
		return ""
	}
	if mt, _, err := mime.ParseMediaType(guessed); err == nil {
		return mt
	}
	return guessed
}
