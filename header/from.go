package header

import (
	"fmt"

	"github.com/zostay/go-addr/pkg/addr"
)

// FromParams constructs a From value. RFC 2616 section 14.22 defines From
// as an internet mailbox for the human user making the request.
type FromParams struct {
	// Address is the mailbox, e.g. "webmaster@example.org" or a full
	// display-name form like "Ops <ops@example.org>".
	Address string
}

// FromHeader is the accessor for From. Composition parses the mailbox so
// that a malformed address never makes it into a request.
type FromHeader struct {
	*Header
}

func newFromHeader() *FromHeader {
	return &FromHeader{Header: New("From", Request, "1.0", Single)}
}

// Compose validates and renders the mailbox described by p.
func (h *FromHeader) Compose(p FromParams) (string, error) {
	if p.Address == "" {
		return "", fmt.Errorf("%s: empty mailbox: %w", h.name, ErrInvalidValue)
	}
	a, err := addr.ParseEmailAddress(p.Address)
	if err != nil {
		return "", fmt.Errorf("%s: mailbox %q: %w", h.name, p.Address, ErrInvalidValue)
	}
	return addr.AddressList{a}.String(), nil
}

// Apply composes the mailbox described by p and writes it into the
// collection, returning the written value.
func (h *FromHeader) Apply(c Collection, p FromParams) (string, error) {
	value, err := h.Compose(p)
	if err != nil {
		return "", err
	}
	return h.Set(c, value)
}
