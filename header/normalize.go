package header

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// unknownOrder sorts unknown headers after every known category.
const unknownOrder = int(Entity) + 1

// Normalize rewrites every field-name in the response collection to its
// canonical capitalization and sorts the collection in the order RFC 2616
// suggests: general headers first, then request, response, and entity
// headers, with unknown headers last. Fields in the same category sort by
// name; otherwise their relative order is preserved. The collection is
// mutated in place.
//
// Under strict an unregistered field-name fails with ErrUnknownHeader and
// the collection is left untouched. Otherwise unknown names are rewritten
// to dash-separated title case, so "x_powered_by" becomes "X-Powered-By".
func (r *Registry) Normalize(fs *Fields, strict bool) error {
	order := make(map[string]int, len(fs.pairs))
	names := make([]string, len(fs.pairs))
	for i, p := range fs.pairs {
		a, err := r.Lookup(p.Name)
		if err != nil {
			if strict {
				return err
			}
			name := canonicalName(p.Name)
			names[i] = name
			order[name] = unknownOrder
			continue
		}
		names[i] = a.Name()
		order[a.Name()] = int(a.Category())
	}

	for i := range fs.pairs {
		fs.pairs[i].Name = names[i]
	}
	sort.SliceStable(fs.pairs, func(i, j int) bool {
		oi, oj := order[fs.pairs[i].Name], order[fs.pairs[j].Name]
		if oi != oj {
			return oi < oj
		}
		return fs.pairs[i].Name < fs.pairs[j].Name
	})
	return nil
}

// canonicalName title-cases each dash-separated token of an unregistered
// field-name, after folding underscores to dashes.
func canonicalName(name string) string {
	caser := cases.Title(language.English)
	tokens := strings.Split(strings.ReplaceAll(name, "_", "-"), "-")
	for i, tok := range tokens {
		tokens[i] = caser.String(strings.ToLower(tok))
	}
	return strings.Join(tokens, "-")
}
