package animal

import (
	"testing"

	"github.com/goccy/go-json"

	"github.com/louisbranch/rpgassist/internal/platform/dice"
	"github.com/louisbranch/rpgassist/internal/platform/dice/dicetest"
)

func TestTableIsTotal(t *testing.T) {
	if err := Table().Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	for draw := 1; draw <= Table().Sides; draw++ {
		got := Table().Lookup(draw, dicetest.Constant(1))
		if got == 0 {
			t.Fatalf("draw %d resolved to no animal", draw)
		}
	}
}

func TestRandomBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		draws []int
		want  Animal
	}{
		{"lowest face is a dog", []int{1}, Dog},
		{"two is still a dog", []int{2}, Dog},
		{"three is a cat", []int{3}, Cat},
		{"four with heads is a cat", []int{4, 1}, Cat},
		{"four with tails is a kitten", []int{4, 2}, Kitten},
		{"nine with heads is a rat", []int{9, 1}, Rat},
		{"nine with tails is a mouse", []int{9, 2}, Mouse},
		{"fifteen with a one is a fish out of water", []int{15, 1}, FishOutOfWater},
		{"fifteen with a six is still a fish out of water", []int{15, 6}, FishOutOfWater},
		{"nineteen is a baby bear", []int{19}, BabyBear},
		{"twenty is something alien", []int{20}, SomethingAlien},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roller := dicetest.NewSequence(tt.draws...)
			if got := Random(roller); got != tt.want {
				t.Fatalf("Random = %v, want %v", got, tt.want)
			}
			if roller.Remaining() != 0 {
				t.Fatalf("expected every scripted draw to be used, %d left", roller.Remaining())
			}
		})
	}
}

func TestEveryAnimalButFishIsReachable(t *testing.T) {
	reachable := make(map[Animal]bool)
	for _, a := range Table().Values() {
		reachable[a] = true
	}
	for _, a := range Values() {
		if a == Fish {
			if reachable[a] {
				t.Fatal("fish should never be rolled")
			}
			continue
		}
		if !reachable[a] {
			t.Fatalf("%v is not reachable from the table", a)
		}
	}
}

func TestFifteenNeverYieldsFish(t *testing.T) {
	for face := 1; face <= 6; face++ {
		if got := Random(dicetest.NewSequence(15, face)); got != FishOutOfWater {
			t.Fatalf("15 then d6 %d = %v, want FishOutOfWater", face, got)
		}
	}
}

func TestRandomWithSeededRoller(t *testing.T) {
	roller := dice.New(42)
	for i := 0; i < 1000; i++ {
		if a := Random(roller); a == 0 {
			t.Fatalf("roll %d produced no animal", i)
		}
	}
}

func TestStringAndJSON(t *testing.T) {
	if MiniDragon.String() != "mini dragon" {
		t.Fatalf("String() = %q", MiniDragon.String())
	}
	data, err := json.Marshal(FishOutOfWater)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"FishOutOfWater"` {
		t.Fatalf("marshal = %s", data)
	}
	var a Animal
	if err := json.Unmarshal([]byte(`"dog"`), &a); err != nil || a != Dog {
		t.Fatalf("unmarshal = %v, %v", a, err)
	}
}
