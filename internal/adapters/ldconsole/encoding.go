package ldconsole

import (
	"strings"

	"go.trai.ch/ldx/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// ResolveEncoding looks name up in the WHATWG index first and the IANA registry second.
// An empty name selects domain.DefaultEncoding.
func ResolveEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = domain.DefaultEncoding
	}
	if enc, err := htmlindex.Get(name); err == nil {
		return enc, nil
	}
	if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
		return enc, nil
	}
	return nil, zerr.With(zerr.Wrap(domain.ErrUnknownEncoding, "cannot resolve output encoding"), "encoding", name)
}
