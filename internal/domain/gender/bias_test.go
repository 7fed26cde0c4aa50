package gender

import (
	"testing"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

func TestNewBias10Clamps(t *testing.T) {
	tests := map[int]Bias10{-5: 0, 0: 0, 3: 3, 10: 10, 11: 10, 1000: 10}
	for in, want := range tests {
		if got := NewBias10(in); got != want {
			t.Fatalf("NewBias10(%d) = %d, want %d", in, got, want)
		}
	}
}

type biasRecord struct {
	Magnitude Bias10 `json:"magnitude" yaml:"magnitude"`
}

func TestBias10DecodeClamps(t *testing.T) {
	tests := []struct {
		in   string
		want Bias10
	}{
		{`{"magnitude":4}`, 4},
		{`{"magnitude":42}`, 10},
		{`{"magnitude":-1}`, 0},
		{`{"magnitude":4294967296}`, 10},
		{`{"magnitude":99999999999999999999}`, 10},
		{`{"magnitude":-99999999999999999999}`, 0},
		{`{"magnitude":null}`, 0},
	}
	for _, tt := range tests {
		var rec biasRecord
		if err := json.Unmarshal([]byte(tt.in), &rec); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.in, err)
		}
		if rec.Magnitude != tt.want {
			t.Fatalf("magnitude = %d, want %d", rec.Magnitude, tt.want)
		}
	}

	yamlTests := []struct {
		in   string
		want Bias10
	}{
		{"magnitude: 99\n", MaxBias},
		{"magnitude: 3\n", 3},
		{"magnitude: 99999999999999999999\n", MaxBias},
		{"magnitude: -99999999999999999999\n", 0},
	}
	for _, tt := range yamlTests {
		var rec biasRecord
		if err := yaml.Unmarshal([]byte(tt.in), &rec); err != nil {
			t.Fatalf("unmarshal yaml %q: %v", tt.in, err)
		}
		if rec.Magnitude != tt.want {
			t.Fatalf("yaml %q magnitude = %d, want %d", tt.in, rec.Magnitude, tt.want)
		}
	}

	var rec biasRecord
	for _, in := range []string{`{"magnitude":"lots"}`, `{"magnitude":"4"}`, `{"magnitude":2.5}`} {
		if err := json.Unmarshal([]byte(in), &rec); err == nil {
			t.Fatalf("expected decode error for %s", in)
		}
	}
	for _, in := range []string{"magnitude: lots\n", "magnitude: [1]\n"} {
		if err := yaml.Unmarshal([]byte(in), &rec); err == nil {
			t.Fatalf("expected decode error for %q", in)
		}
	}
}

func TestBias10EncodesPlainInteger(t *testing.T) {
	data, err := json.Marshal(biasRecord{Magnitude: 7})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"magnitude":7}` {
		t.Fatalf("marshal = %s", data)
	}
}

func TestBiasOffsets(t *testing.T) {
	tests := []struct {
		bias Bias
		want int
	}{
		{NoBias, 0},
		{MostlyMale, -3},
		{MostlyFemale, 4},
		{FavorMale(6), -6},
		{FavorFemale(10), 10},
	}
	for _, tt := range tests {
		if got := tt.bias.Offset(); got != tt.want {
			t.Fatalf("%v.Offset() = %d, want %d", tt.bias, got, tt.want)
		}
	}
}

func TestParseBias(t *testing.T) {
	tests := []struct {
		in   string
		want Bias
	}{
		{"", NoBias},
		{"none", NoBias},
		{"male23", MostlyMale},
		{"Female23", MostlyFemale},
		{"male:3", FavorMale(3)},
		{"f:8", FavorFemale(8)},
		{"female:99", FavorFemale(10)},
		{"male:-4", FavorMale(0)},
		{"f:08", FavorFemale(8)},
		{"male:99999999999999999999", FavorMale(10)},
		{"male", FavorMale(5)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBias(tt.in)
			if err != nil {
				t.Fatalf("ParseBias(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("ParseBias(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseBiasRejectsGarbage(t *testing.T) {
	for _, in := range []string{"sideways", "male:lots", "none:3", "male23:2"} {
		if _, err := ParseBias(in); err == nil {
			t.Fatalf("ParseBias(%q) expected error", in)
		}
	}
}

func TestBiasTextRoundTrip(t *testing.T) {
	for _, b := range []Bias{NoBias, MostlyMale, MostlyFemale, FavorMale(2), FavorFemale(9)} {
		text, err := b.MarshalText()
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		var decoded Bias
		if err := decoded.UnmarshalText(text); err != nil {
			t.Fatalf("unmarshal %q: %v", text, err)
		}
		if decoded != b {
			t.Fatalf("round trip %q = %v, want %v", text, decoded, b)
		}
	}
}
