package round

import (
	"reflect"
	"testing"
)

func TestParseOperator(t *testing.T) {
	tests := []struct {
		in     string
		want   Operator
		wantOK bool
	}{
		{"less", LessThan, true},
		{"greater", GreaterThan, true},
		{"equal", Equal, true},
		{" Equal ", Equal, true},
		{"menor", LessThan, true},
		{"mayor", GreaterThan, true},
		{"igual", Equal, true},
		{">", GreaterThan, true},
		{"", LessThan, false},
		{"bigger", LessThan, false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseOperator(tc.in)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("ParseOperator(%q) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestOperatorCycle(t *testing.T) {
	if OperatorAt(0) != LessThan || OperatorAt(1) != GreaterThan || OperatorAt(2) != Equal {
		t.Error("operator cycle order should be less, greater, equal")
	}
	if OperatorAt(3) != LessThan || OperatorAt(-1) != Equal {
		t.Error("OperatorAt should wrap in both directions")
	}
	for i, op := range Operators {
		if op.Index() != i {
			t.Errorf("%v.Index() = %d, expected %d", op, op.Index(), i)
		}
	}
	if Equal.Label() != "EQUAL =" || GreaterThan.Symbol() != ">" {
		t.Error("unexpected operator label or symbol")
	}
}

func TestAliasesResolveBack(t *testing.T) {
	for _, op := range Operators {
		aliases := Aliases(op)
		if len(aliases) == 0 {
			t.Errorf("%v has no aliases", op)
		}
		for _, a := range aliases {
			if a == op.ID() {
				t.Errorf("Aliases(%v) should not repeat the ID", op)
			}
			if got, ok := ParseOperator(a); !ok || got != op {
				t.Errorf("alias %q resolves to (%v, %v), expected %v", a, got, ok, op)
			}
		}
	}
}

func TestGenerateShape(t *testing.T) {
	pool := NewNumberPool(7)
	for i := 0; i < 500; i++ {
		for _, op := range Operators {
			set := pool.Generate(op)
			if len(set.Values()) != SetSize {
				t.Fatalf("Generate(%v) returned %d values", op, len(set.Values()))
			}
			for _, v := range set {
				if v < MinValue || v > MaxValue {
					t.Fatalf("Generate(%v) value %d out of [%d, %d]", op, v, MinValue, MaxValue)
				}
			}
		}
	}
}

func TestGenerateEqualAlwaysHasDuplicate(t *testing.T) {
	pool := NewNumberPool(99)
	for i := 0; i < 1000; i++ {
		set := pool.Generate(Equal)
		if set[0] != set[1] {
			t.Fatalf("Equal round %v: first two values differ", set)
		}
		if len(Targets(set, Equal)) == 0 {
			t.Fatalf("Equal round %v has no targets", set)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := NewNumberPool(12345)
	b := NewNumberPool(12345)
	for i := 0; i < 20; i++ {
		op := OperatorAt(i)
		if a.Generate(op) != b.Generate(op) {
			t.Fatal("pools with the same seed should generate the same rounds")
		}
	}
}

func TestTargets(t *testing.T) {
	tests := []struct {
		name string
		set  NumberSet
		op   Operator
		want []int
	}{
		{"less picks minimum", NumberSet{7, 2, 9, 4, 1}, LessThan, []int{1}},
		{"less with tied minimum", NumberSet{3, 8, 3, 12, 5}, LessThan, []int{3}},
		{"greater picks maximum", NumberSet{7, 2, 9, 4, 1}, GreaterThan, []int{9}},
		{"greater with tied maximum", NumberSet{20, 1, 20, 4, 20}, GreaterThan, []int{20}},
		{"equal single pair", NumberSet{5, 3, 3, 9, 1}, Equal, []int{3}},
		{"equal counts incidental pairs", NumberSet{4, 4, 11, 7, 11}, Equal, []int{4, 11}},
		{"equal triple", NumberSet{6, 6, 6, 2, 1}, Equal, []int{6}},
		{"equal without duplicates", NumberSet{1, 2, 3, 4, 5}, Equal, []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Targets(tc.set, tc.op)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Targets(%v, %v) = %v, expected %v", tc.set, tc.op, got, tc.want)
			}
		})
	}
}

func TestTargetsMatchTrueExtremes(t *testing.T) {
	pool := NewNumberPool(3)
	for i := 0; i < 300; i++ {
		set := pool.Generate(LessThan)
		lo, hi := set[0], set[0]
		for _, v := range set {
			lo = min(lo, v)
			hi = max(hi, v)
		}
		if got := Targets(set, LessThan); len(got) != 1 || got[0] != lo {
			t.Fatalf("Targets(%v, less) = %v, expected [%d]", set, got, lo)
		}
		if got := Targets(set, GreaterThan); len(got) != 1 || got[0] != hi {
			t.Fatalf("Targets(%v, greater) = %v, expected [%d]", set, got, hi)
		}
	}
}

func TestIsCorrect(t *testing.T) {
	set := NumberSet{5, 3, 3, 9, 1}

	if !IsCorrect(3, set, Equal) || IsCorrect(9, set, Equal) {
		t.Error("equal: only repeated values are correct")
	}
	if !IsCorrect(1, set, LessThan) || IsCorrect(3, set, LessThan) {
		t.Error("less: only the minimum is correct")
	}
	if !IsCorrect(9, set, GreaterThan) || IsCorrect(5, set, GreaterThan) {
		t.Error("greater: only the maximum is correct")
	}

	// No duplicates: nothing is correct, and nothing panics.
	for _, v := range []int{1, 2, 3, 4, 5} {
		if IsCorrect(v, NumberSet{1, 2, 3, 4, 5}, Equal) {
			t.Errorf("IsCorrect(%d) should be false without duplicates", v)
		}
	}
}

func TestLifeTracker(t *testing.T) {
	l := NewLifeTracker()
	if l.Remaining() != MaxLives || l.IsExhausted() {
		t.Fatal("fresh tracker should have all lives")
	}

	for want := MaxLives - 1; want >= 0; want-- {
		if got := l.Damage(); got != want {
			t.Errorf("Damage() = %d, expected %d", got, want)
		}
	}
	if !l.IsExhausted() {
		t.Error("tracker should be exhausted after three hits")
	}

	if got := l.Damage(); got != 0 {
		t.Errorf("fourth Damage() = %d, expected 0", got)
	}

	l.Reset()
	if l.Remaining() != MaxLives || l.IsExhausted() {
		t.Error("Reset() should restore all lives")
	}
}
