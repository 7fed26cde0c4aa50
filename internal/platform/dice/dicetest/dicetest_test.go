package dicetest

import "testing"

func TestSequenceReturnsDrawsInOrder(t *testing.T) {
	seq := NewSequence(3, 1, 6)
	if got := seq.Roll(6); got != 3 {
		t.Fatalf("first draw = %d, want 3", got)
	}
	if got := seq.RollSum(2, 6); got != 7 {
		t.Fatalf("sum = %d, want 7", got)
	}
	if seq.Used() != 3 || seq.Remaining() != 0 {
		t.Fatalf("used/remaining = %d/%d, want 3/0", seq.Used(), seq.Remaining())
	}
	sides := seq.Sides()
	if len(sides) != 3 || sides[0] != 6 {
		t.Fatalf("sides = %v", sides)
	}
}

func TestSequencePanicsWhenExhausted(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewSequence().Roll(20)
}

func TestSequencePanicsOnOutOfRangeDraw(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewSequence(7).Roll(6)
}

func TestConstantCapsToSides(t *testing.T) {
	if got := Constant(20).Roll(6); got != 6 {
		t.Fatalf("Roll = %d, want 6", got)
	}
	if got := Constant(0).Roll(6); got != 1 {
		t.Fatalf("Roll = %d, want 1", got)
	}
	if got := Constant(4).RollSum(3, 6); got != 12 {
		t.Fatalf("RollSum = %d, want 12", got)
	}
}

func TestMax(t *testing.T) {
	if got := (Max{}).Roll(19); got != 19 {
		t.Fatalf("Roll = %d, want 19", got)
	}
	if got := (Max{}).RollSum(3, 6); got != 18 {
		t.Fatalf("RollSum = %d, want 18", got)
	}
}
