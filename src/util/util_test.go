package util

import "testing"

func TestMax(t *testing.T) {
	if Max(-2, 5) != 5 {
		t.Error("Invalid result")
	}
}

func TestContrain(t *testing.T) {
	if Constrain(-3, -1, 3) != -1 {
		t.Error("Expected", -1)
	}
	if Constrain(2, -1, 3) != 2 {
		t.Error("Expected", 2)
	}

	if Constrain(5, -1, 3) != 3 {
		t.Error("Expected", 3)
	}
}

func TestCycle(t *testing.T) {
	for _, tc := range []struct{ idx, delta, n, want int }{
		{0, 1, 3, 1},
		{2, 1, 3, 0},
		{0, -1, 3, 2},
		{1, -7, 3, 0},
		{5, 1, 0, 0},
	} {
		if got := Cycle(tc.idx, tc.delta, tc.n); got != tc.want {
			t.Errorf("Cycle(%d, %d, %d) = %d, want %d", tc.idx, tc.delta, tc.n, got, tc.want)
		}
	}
}
