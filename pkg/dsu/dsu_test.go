package dsu

import "testing"

func TestNewSingletons(t *testing.T) {
	d := New(5)
	if d.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", d.Len())
	}
	for i := 0; i < 5; i++ {
		if got := d.Find(i); got != i {
			t.Errorf("Find(%d) = %d, want %d", i, got, i)
		}
	}
}

func TestUnionReportsMerge(t *testing.T) {
	d := New(4)

	if !d.Union(0, 1) {
		t.Error("Union(0, 1) = false, want true for disjoint sets")
	}
	if d.Union(1, 0) {
		t.Error("Union(1, 0) = true, want false for already-merged sets")
	}
	if !d.Union(2, 3) {
		t.Error("Union(2, 3) = false, want true")
	}
	if !d.Union(0, 3) {
		t.Error("Union(0, 3) = false, want true")
	}
	if d.Union(1, 2) {
		t.Error("Union(1, 2) = true, want false once all four are joined")
	}
}

func TestUnionTieBreak(t *testing.T) {
	d := New(3)

	// Equal ranks: first root goes under the second.
	d.Union(0, 1)
	if d.parent[0] != 1 {
		t.Errorf("parent[0] = %d, want 1", d.parent[0])
	}
	if d.rank[1] != 2 {
		t.Errorf("rank[1] = %d, want 2", d.rank[1])
	}

	// Higher-rank root absorbs the lower one regardless of argument order.
	d.Union(1, 2)
	if d.parent[2] != 1 {
		t.Errorf("parent[2] = %d, want 1", d.parent[2])
	}
	if d.rank[1] != 2 {
		t.Errorf("rank[1] = %d, want 2 (no increment on unequal ranks)", d.rank[1])
	}
}

func TestFindIdempotentAndCompresses(t *testing.T) {
	d := New(6)
	for i := 0; i < 5; i++ {
		d.Union(i, i+1)
	}

	root := d.Find(0)
	if again := d.Find(0); again != root {
		t.Errorf("Find not idempotent: %d then %d", root, again)
	}
	for i := 0; i < 6; i++ {
		if d.Find(i) != root {
			t.Errorf("Find(%d) = %d, want %d", i, d.Find(i), root)
		}
		if d.parent[i] != root && i != root {
			t.Errorf("parent[%d] = %d, want compressed to %d", i, d.parent[i], root)
		}
	}
}

func TestConnected(t *testing.T) {
	d := New(4)
	d.Union(0, 2)

	tests := []struct {
		a, b int
		want bool
	}{
		{0, 2, true},
		{2, 0, true},
		{0, 1, false},
		{1, 3, false},
		{3, 3, true},
	}
	for _, tt := range tests {
		if got := d.Connected(tt.a, tt.b); got != tt.want {
			t.Errorf("Connected(%d, %d) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
