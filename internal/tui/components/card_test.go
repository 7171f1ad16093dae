package components

import "testing"

func TestLayoutRow_SumsToTotal(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5} {
		widths := LayoutRow(100, n)
		if len(widths) != n {
			t.Fatalf("LayoutRow(100, %d) returned %d widths", n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != 100 {
			t.Errorf("LayoutRow(100, %d) sums to %d, want 100", n, sum)
		}
	}
}

func TestLayoutRow_RemainderGoesFirst(t *testing.T) {
	widths := LayoutRow(10, 3)
	if widths[0] != 4 || widths[1] != 3 || widths[2] != 3 {
		t.Fatalf("LayoutRow(10, 3) = %v, want [4 3 3]", widths)
	}
}

func TestLayoutRow_ZeroItems(t *testing.T) {
	if widths := LayoutRow(100, 0); widths != nil {
		t.Fatalf("LayoutRow(100, 0) = %v, want nil", widths)
	}
}

func TestCardInnerWidth_Floor(t *testing.T) {
	if got := CardInnerWidth(36); got != 32 {
		t.Errorf("CardInnerWidth(36) = %d, want 32", got)
	}
	if got := CardInnerWidth(5); got != 10 {
		t.Errorf("CardInnerWidth(5) = %d, want floor of 10", got)
	}
}
