package components

import "testing"

func TestLayoutRowSumsToTotal(t *testing.T) {
	cases := []struct {
		total, n int
	}{
		{120, 3},
		{121, 3},
		{122, 3},
		{80, 1},
		{7, 5},
	}
	for _, c := range cases {
		widths := LayoutRow(c.total, c.n)
		if len(widths) != c.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", c.total, c.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != c.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", c.total, c.n, sum)
		}
	}
}

func TestLayoutRowZeroColumns(t *testing.T) {
	if got := LayoutRow(100, 0); got != nil {
		t.Fatalf("LayoutRow(100, 0) = %v, want nil", got)
	}
}

func TestTabIdxByKey(t *testing.T) {
	if idx := TabIdxByKey('c'); idx < 0 || Tabs[idx].Name != "Challenge" {
		t.Fatalf("key 'c' resolved to %d", idx)
	}
	if idx := TabIdxByKey('z'); idx != -1 {
		t.Fatalf("unknown key resolved to %d, want -1", idx)
	}
}
