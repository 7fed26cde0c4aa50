package encoding

import (
	"fmt"
	"strings"

	apperrors "github.com/louisbranch/rpgassist/internal/platform/errors"
)

// Enum maps the values of a closed integer enumeration to tag names. The
// value v is named names[v]; an empty name marks a value outside the set
// (conventionally the zero value of enums that start at one).
type Enum[T ~int] struct {
	kind  string
	names []string
}

// NewEnum describes an enumeration called kind.
func NewEnum[T ~int](kind string, names ...string) Enum[T] {
	return Enum[T]{kind: kind, names: names}
}

// Kind returns the enumeration name used in error messages.
func (e Enum[T]) Kind() string {
	return e.kind
}

// Valid reports whether v is a member of the enumeration.
func (e Enum[T]) Valid(v T) bool {
	return int(v) >= 0 && int(v) < len(e.names) && e.names[v] != ""
}

// Name returns the tag for v, or Kind(n) for values outside the set.
func (e Enum[T]) Name(v T) string {
	if !e.Valid(v) {
		return fmt.Sprintf("%s(%d)", e.kind, int(v))
	}
	return e.names[v]
}

// Values lists every member in declaration order.
func (e Enum[T]) Values() []T {
	values := make([]T, 0, len(e.names))
	for i, name := range e.names {
		if name != "" {
			values = append(values, T(i))
		}
	}
	return values
}

// Parse resolves a tag. Exact matches win; otherwise the comparison is
// case-insensitive.
func (e Enum[T]) Parse(s string) (T, error) {
	s = strings.TrimSpace(s)
	if s != "" {
		for i, name := range e.names {
			if name != "" && name == s {
				return T(i), nil
			}
		}
		for i, name := range e.names {
			if name != "" && strings.EqualFold(name, s) {
				return T(i), nil
			}
		}
	}
	var zero T
	return zero, apperrors.WithMetadata(
		apperrors.CodeVariantUnknown,
		fmt.Sprintf("unknown %s %q", e.kind, s),
		map[string]string{"kind": e.kind, "value": s},
	)
}

// MarshalText encodes v by name and rejects values outside the set.
func (e Enum[T]) MarshalText(v T) ([]byte, error) {
	if !e.Valid(v) {
		return nil, apperrors.New(apperrors.CodeVariantUnknown, fmt.Sprintf("cannot encode %s", e.Name(v)))
	}
	return []byte(e.names[v]), nil
}

// UnmarshalText decodes a tag into dst.
func (e Enum[T]) UnmarshalText(dst *T, text []byte) error {
	v, err := e.Parse(string(text))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

// MarshalOptionalText is MarshalText for enums whose zero value means
// "absent": zero encodes as empty text.
func (e Enum[T]) MarshalOptionalText(v T) ([]byte, error) {
	if v == 0 {
		return []byte{}, nil
	}
	return e.MarshalText(v)
}

// UnmarshalOptionalText is UnmarshalText that decodes empty text as zero.
func (e Enum[T]) UnmarshalOptionalText(dst *T, text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*dst = 0
		return nil
	}
	return e.UnmarshalText(dst, text)
}
