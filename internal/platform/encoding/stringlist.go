package encoding

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// StringList decodes from either a single string or a list of strings and
// always holds the list form. It encodes as a list.
type StringList []string

// MarshalJSON encodes the list; a nil list encodes as [].
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// UnmarshalJSON accepts "a", ["a", "b"], or null.
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*l = nil
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var single string
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return fmt.Errorf("decode string list: %w", err)
		}
		*l = StringList{single}
		return nil
	}
	var list []string
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return fmt.Errorf("decode string list: %w", err)
	}
	*l = list
	return nil
}

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (l *StringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		if value.Tag == "!!null" {
			*l = nil
			return nil
		}
		var single string
		if err := value.Decode(&single); err != nil {
			return fmt.Errorf("decode string list: %w", err)
		}
		*l = StringList{single}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return fmt.Errorf("decode string list: %w", err)
		}
		*l = list
		return nil
	default:
		return fmt.Errorf("decode string list: line %d: expected string or list", value.Line)
	}
}

// MarshalYAML encodes the list form.
func (l StringList) MarshalYAML() (any, error) {
	if l == nil {
		return []string{}, nil
	}
	return []string(l), nil
}
