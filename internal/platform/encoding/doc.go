// Package encoding holds the persisted field codecs shared by attribute
// records: closed enumerations encoded by tag name, the three-valued
// Ordering field, and the flexible string-or-list field.
//
// Every codec works with goccy/go-json (through encoding.TextMarshaler or
// json.Marshaler) and with gopkg.in/yaml.v3.
package encoding
