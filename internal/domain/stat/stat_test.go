package stat

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/louisbranch/rpgassist/internal/platform/dice/dicetest"
	"github.com/louisbranch/rpgassist/internal/platform/encoding"
	apperrors "github.com/louisbranch/rpgassist/internal/platform/errors"
)

func TestClampClasses(t *testing.T) {
	tests := []struct {
		kind Kind
		want ClampClass
	}{
		{Age, FloorZero},
		{App, Unclamped},
		{Cha, Unclamped},
		{Con, FloorOne},
		{Dex, FloorOne},
		{Int, FloorZero},
		{Mag, FloorZero},
		{Str, FloorOne},
		{Will, FloorZero},
	}
	for _, tt := range tests {
		if got := tt.kind.Clamp(); got != tt.want {
			t.Fatalf("%v.Clamp() = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestSubAppliesFloor(t *testing.T) {
	tests := []struct {
		name  string
		start Stat
		delta int
		want  int
	}{
		{"con floors at one", New(Con, 10), 13, 1},
		{"str floors at one", New(Str, 10), 13, 1},
		{"int floors at zero", New(Int, 3), 7, 0},
		{"age floors at zero", New(Age, 20), 21, 0},
		{"app goes negative", New(App, 0), 5, -5},
		{"cha goes negative", New(Cha, 2), 4, -2},
		{"dex within range", New(Dex, 12), 3, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Sub(tt.delta)
			if got.Value() != tt.want {
				t.Fatalf("%v - %d = %d, want %d", tt.start, tt.delta, got.Value(), tt.want)
			}
			if got.Kind() != tt.start.Kind() {
				t.Fatalf("kind = %v, want %v", got.Kind(), tt.start.Kind())
			}
		})
	}
}

func TestAddNegativeDeltaClamps(t *testing.T) {
	if got := New(Will, 2).Add(-5).Value(); got != 0 {
		t.Fatalf("Will 2 + -5 = %d, want 0", got)
	}
}

func TestNewDoesNotClamp(t *testing.T) {
	if got := New(Str, -4).Value(); got != -4 {
		t.Fatalf("New(Str, -4).Value() = %d, want -4", got)
	}
	if got := New(Str, -4).Add(0).Value(); got != 1 {
		t.Fatalf("first mutation = %d, want 1", got)
	}
}

func TestSameKindArithmetic(t *testing.T) {
	got := New(Str, 10).AddStat(New(Str, 3))
	if !got.Equal(New(Str, 13)) {
		t.Fatalf("Str 10 + Str 3 = %v, want Str 13", got)
	}
	got = New(Con, 10).SubStat(New(Con, 13))
	if !got.Equal(New(Con, 1)) {
		t.Fatalf("Con 10 - Con 13 = %v, want Con 1", got)
	}
}

func TestMismatchedKindsPanic(t *testing.T) {
	err := apperrors.Guard(func() {
		New(Str, 10).AddStat(New(Dex, 3))
	})
	if err == nil {
		t.Fatal("expected mismatch panic")
	}
	if code := apperrors.GetCode(err); code != apperrors.CodeStatKindMismatch {
		t.Fatalf("code = %s, want %s", code, apperrors.CodeStatKindMismatch)
	}

	err = apperrors.Guard(func() {
		New(App, 10).SubStat(New(Cha, 3))
	})
	if apperrors.GetCode(err) != apperrors.CodeStatKindMismatch {
		t.Fatalf("sub err = %v, want mismatch", err)
	}
}

func TestCheckedArithmetic(t *testing.T) {
	base := New(Mag, 4)
	got, err := base.CheckedAddStat(New(Will, 1))
	if !errors.Is(err, apperrors.New(apperrors.CodeStatKindMismatch, "")) {
		t.Fatalf("err = %v, want mismatch", err)
	}
	if !got.Equal(base) {
		t.Fatalf("stat changed on mismatch: %v", got)
	}

	got, err = base.CheckedSubStat(New(Mag, 9))
	if err != nil {
		t.Fatalf("CheckedSubStat: %v", err)
	}
	if got.Value() != 0 {
		t.Fatalf("Mag 4 - Mag 9 = %d, want 0", got.Value())
	}
}

func TestParseKind(t *testing.T) {
	got, err := ParseKind("str")
	if err != nil {
		t.Fatalf("ParseKind: %v", err)
	}
	if got != Str {
		t.Fatalf("ParseKind(str) = %v, want Str", got)
	}
	if _, err := ParseKind("Luck"); apperrors.GetCode(err) != apperrors.CodeStatUnknownKind {
		t.Fatalf("ParseKind(Luck) err = %v, want unknown kind", err)
	}
}

func TestStatJSON(t *testing.T) {
	data, err := json.Marshal(New(Dex, 14))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"kind":"Dex","value":14}` {
		t.Fatalf("json = %s", data)
	}

	var got Stat
	if err := json.Unmarshal([]byte(`{"kind":"App","value":-3}`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !got.Equal(New(App, -3)) {
		t.Fatalf("decoded = %v, want App -3", got)
	}

	if err := json.Unmarshal([]byte(`{"value":3}`), &got); err == nil {
		t.Fatal("expected error for missing kind")
	}
}

func TestStatYAML(t *testing.T) {
	var got []Stat
	src := "- kind: Will\n  value: 7\n- kind: Age\n  value: 31\n"
	if err := yaml.Unmarshal([]byte(src), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 || !got[0].Equal(New(Will, 7)) || !got[1].Equal(New(Age, 31)) {
		t.Fatalf("decoded = %v", got)
	}

	data, err := yaml.Marshal(New(Int, 11))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != "kind: Int\nvalue: 11\n" {
		t.Fatalf("yaml = %q", data)
	}
}

func TestRollSheet(t *testing.T) {
	// Age draws a d20, every other kind three d6.
	draws := []int{10}
	for range len(Kinds()) - 1 {
		draws = append(draws, 4, 4, 4)
	}
	sheet := RollSheet(dicetest.NewSequence(draws...))
	if len(sheet) != len(Kinds()) {
		t.Fatalf("sheet len = %d, want %d", len(sheet), len(Kinds()))
	}
	age, ok := sheet.Get(Age)
	if !ok || age.Value() != 25 {
		t.Fatalf("Age = %v, want 25", age)
	}
	str, ok := sheet.Get(Str)
	if !ok || str.Value() != 12 {
		t.Fatalf("Str = %v, want 12", str)
	}
}

func TestSheetApply(t *testing.T) {
	sheet := Sheet{New(Con, 3), New(App, 3)}
	if !sheet.Apply(Modifier{Kind: Con, Delta: -10}.Stat()) {
		t.Fatal("expected Con in sheet")
	}
	if got, _ := sheet.Get(Con); got.Value() != 1 {
		t.Fatalf("Con = %d, want 1", got.Value())
	}
	if !sheet.Apply(New(App, 4)) {
		t.Fatal("expected App in sheet")
	}
	if got, _ := sheet.Get(App); got.Value() != 7 {
		t.Fatalf("App = %d, want 7", got.Value())
	}
	if sheet.Apply(New(Str, 1)) {
		t.Fatal("Apply reported a missing kind")
	}
}

func TestModifierString(t *testing.T) {
	if got := (Modifier{Kind: Str, Delta: -2}).String(); got != "Str -2" {
		t.Fatalf("String() = %q, want %q", got, "Str -2")
	}
	if got := (Modifier{Kind: Dex, Delta: 3}).String(); got != "Dex +3" {
		t.Fatalf("String() = %q, want %q", got, "Dex +3")
	}
}

func TestCheck(t *testing.T) {
	sheet := Sheet{New(Str, 14), New(Int, 9)}
	tests := []struct {
		check Check
		want  bool
	}{
		{Check{Kind: Str, Ordering: encoding.Greater, Value: 12}, true},
		{Check{Kind: Str, Ordering: encoding.Less, Value: 12}, false},
		{Check{Kind: Int, Ordering: encoding.Equal, Value: 9}, true},
		{Check{Kind: Int, Ordering: encoding.Greater, Value: 9}, false},
	}
	for _, tt := range tests {
		got, err := tt.check.Evaluate(sheet)
		if err != nil {
			t.Fatalf("Evaluate(%v): %v", tt.check, err)
		}
		if got != tt.want {
			t.Fatalf("Evaluate(%v) = %v, want %v", tt.check, got, tt.want)
		}
	}

	_, err := Check{Kind: Mag, Ordering: encoding.Less, Value: 1}.Evaluate(sheet)
	if apperrors.GetCode(err) != apperrors.CodeNotFound {
		t.Fatalf("missing kind err = %v, want NOT_FOUND", err)
	}
}

func TestCheckYAML(t *testing.T) {
	var c Check
	if err := yaml.Unmarshal([]byte("kind: Dex\nordering: gt\nvalue: 10\n"), &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := Check{Kind: Dex, Ordering: encoding.Greater, Value: 10}
	if c != want {
		t.Fatalf("check = %+v, want %+v", c, want)
	}
	if c.String() != "Dex Greater 10" {
		t.Fatalf("String() = %q", c.String())
	}
}
