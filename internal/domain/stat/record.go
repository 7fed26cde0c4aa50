package stat

import (
	"fmt"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// record is the persisted form {"kind": "Str", "value": 12}.
type record struct {
	Kind  Kind `json:"kind" yaml:"kind"`
	Value int  `json:"value" yaml:"value"`
}

// MarshalJSON encodes the tagged record.
func (s Stat) MarshalJSON() ([]byte, error) {
	return json.Marshal(record{Kind: s.kind, Value: s.value})
}

// UnmarshalJSON decodes the tagged record.
func (s *Stat) UnmarshalJSON(data []byte) error {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return fmt.Errorf("decode stat: %w", err)
	}
	return s.fromRecord(r)
}

// MarshalYAML encodes the tagged record.
func (s Stat) MarshalYAML() (any, error) {
	return record{Kind: s.kind, Value: s.value}, nil
}

// UnmarshalYAML decodes the tagged record.
func (s *Stat) UnmarshalYAML(value *yaml.Node) error {
	var r record
	if err := value.Decode(&r); err != nil {
		return fmt.Errorf("decode stat: %w", err)
	}
	return s.fromRecord(r)
}

func (s *Stat) fromRecord(r record) error {
	if !kinds.Valid(r.Kind) {
		return fmt.Errorf("decode stat: missing kind")
	}
	*s = New(r.Kind, r.Value)
	return nil
}
