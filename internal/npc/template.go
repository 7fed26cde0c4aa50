package npc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/louisbranch/rpgassist/internal/domain/gender"
	"github.com/louisbranch/rpgassist/internal/domain/stat"
	"github.com/louisbranch/rpgassist/internal/platform/encoding"
	apperrors "github.com/louisbranch/rpgassist/internal/platform/errors"
)

// MaxBirthmarks bounds Template.Birthmarks.
const MaxBirthmarks = 8

// Template describes the NPCs to generate.
type Template struct {
	Name       string              `json:"name" yaml:"name"`
	Gender     string              `json:"gender,omitempty" yaml:"gender,omitempty"`
	Bias       gender.Bias         `json:"bias" yaml:"bias,omitempty"`
	Tags       encoding.StringList `json:"tags,omitempty" yaml:"tags,omitempty"`
	Skills     map[string]int      `json:"skills,omitempty" yaml:"skills,omitempty"`
	Birthmarks int                 `json:"birthmarks,omitempty" yaml:"birthmarks,omitempty"`
	Pet        bool                `json:"pet,omitempty" yaml:"pet,omitempty"`
	Modifiers  []stat.Modifier     `json:"modifiers,omitempty" yaml:"modifiers,omitempty"`
	Checks     []stat.Check        `json:"checks,omitempty" yaml:"checks,omitempty"`
}

// GenderBias returns the template bias.
func (t Template) GenderBias() gender.Bias {
	return t.Bias
}

// ParsedGender returns the starting gender named by the template.
func (t Template) ParsedGender() (gender.Gender, error) {
	return gender.Parse(t.Gender)
}

// Validate rejects templates the generator cannot use.
func (t Template) Validate() error {
	name := strings.TrimSpace(t.Name)
	if name == "" {
		return invalid(t.Name, "name is required", nil)
	}
	if _, err := t.ParsedGender(); err != nil {
		return invalid(name, "gender", err)
	}
	if t.Birthmarks < 0 || t.Birthmarks > MaxBirthmarks {
		return invalid(name, fmt.Sprintf("birthmarks must be between 0 and %d", MaxBirthmarks), nil)
	}
	for skill := range t.Skills {
		if strings.TrimSpace(skill) == "" {
			return invalid(name, "skill name is required", nil)
		}
	}
	for i, mod := range t.Modifiers {
		if !mod.Kind.Valid() {
			return invalid(name, fmt.Sprintf("modifier %d: stat kind is required", i), nil)
		}
	}
	for i, check := range t.Checks {
		if !check.Kind.Valid() {
			return invalid(name, fmt.Sprintf("check %d: stat kind is required", i), nil)
		}
	}
	return nil
}

var _ gender.HasBias = Template{}

func invalid(name, message string, cause error) error {
	msg := fmt.Sprintf("template %q: %s", name, message)
	if cause != nil {
		return apperrors.Wrap(apperrors.CodeTemplateInvalid, msg, cause)
	}
	return apperrors.WithMetadata(apperrors.CodeTemplateInvalid, msg, map[string]string{"template": name})
}

// Format is a template file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatForPath picks a format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", apperrors.New(apperrors.CodeTemplateInvalid, fmt.Sprintf("unsupported template file %q", path))
}

// LoadTemplates reads and validates a template list from path.
func LoadTemplates(path string) ([]Template, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read templates: %w", err)
	}
	templates, err := DecodeTemplates(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return templates, nil
}

// DecodeTemplates decodes and validates a template list.
func DecodeTemplates(data []byte, format Format) ([]Template, error) {
	var templates []Template
	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &templates); err != nil {
			return nil, apperrors.Wrap(apperrors.CodeTemplateInvalid, "decode json templates", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&templates); err != nil {
			return nil, apperrors.Wrap(apperrors.CodeTemplateInvalid, "decode yaml templates", err)
		}
	default:
		return nil, apperrors.New(apperrors.CodeTemplateInvalid, fmt.Sprintf("unknown template format %q", format))
	}
	if len(templates) == 0 {
		return nil, apperrors.New(apperrors.CodeTemplateInvalid, "no templates")
	}
	for _, t := range templates {
		if err := t.Validate(); err != nil {
			return nil, err
		}
	}
	return templates, nil
}
