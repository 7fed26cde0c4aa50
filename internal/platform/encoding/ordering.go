package encoding

import (
	"cmp"
	"fmt"
	"unicode"
	"unicode/utf8"

	apperrors "github.com/louisbranch/rpgassist/internal/platform/errors"
)

// Ordering is a three-valued comparison result.
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Compare returns the Ordering of a relative to b.
func Compare[T cmp.Ordered](a, b T) Ordering {
	return Ordering(cmp.Compare(a, b))
}

// String returns "Less", "Equal", or "Greater".
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// ParseOrdering accepts any string whose lower-cased first character is l, e,
// or g, so "less", "EQ", and "GREATER" all decode.
func ParseOrdering(s string) (Ordering, error) {
	first, _ := utf8.DecodeRuneInString(s)
	switch unicode.ToLower(first) {
	case 'l':
		return Less, nil
	case 'e':
		return Equal, nil
	case 'g':
		return Greater, nil
	}
	return Equal, apperrors.WithMetadata(
		apperrors.CodeOrderingInvalid,
		fmt.Sprintf("unknown ordering variant %q", s),
		map[string]string{"value": s},
	)
}

// MarshalText encodes the canonical name.
func (o Ordering) MarshalText() ([]byte, error) {
	switch o {
	case Less, Equal, Greater:
		return []byte(o.String()), nil
	}
	return nil, apperrors.New(apperrors.CodeOrderingInvalid, fmt.Sprintf("cannot encode %s", o))
}

// UnmarshalText decodes with ParseOrdering.
func (o *Ordering) UnmarshalText(text []byte) error {
	v, err := ParseOrdering(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
