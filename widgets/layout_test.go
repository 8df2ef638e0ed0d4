package widgets

import (
	"reflect"
	"strings"
	"testing"
)

func TestShares(t *testing.T) {
	cases := []struct {
		total  int
		n      int
		ratios []float64
		want   []int
	}{
		{10, 3, nil, []int{4, 3, 3}},
		{10, 2, []float64{0.4, 0.6}, []int{4, 6}},
		{7, 2, []float64{1, 0}, []int{4, 3}},
		{9, 3, []float64{1, 1, 2}, []int{2, 2, 5}},
	}
	for _, tc := range cases {
		if got := shares(tc.total, tc.n, tc.ratios); !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("shares(%d, %d, %v) = %v, want %v", tc.total, tc.n, tc.ratios, got, tc.want)
		}
	}
}

func TestListMarksItem(t *testing.T) {
	out := List{Title: "State", Items: []string{"rest partial", "dragging"}, Marked: 1}.Render(20, 3)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	if !strings.HasPrefix(lines[2], "▸ dragging") {
		t.Fatalf("marked line = %q", lines[2])
	}
	if !strings.HasPrefix(lines[1], "  rest") {
		t.Fatalf("unmarked line = %q", lines[1])
	}
}

func TestHStackJoinsColumns(t *testing.T) {
	out := HStack{Widgets: []Widget{List{Title: "a", Marked: -1}, List{Title: "b", Marked: -1}}, Gap: 1}.Render(9, 1)
	if !strings.HasPrefix(out, "a") || !strings.Contains(out, "b") {
		t.Fatalf("hstack = %q", out)
	}
}

func TestVStackFillsExactRows(t *testing.T) {
	out := VStack{
		Ratios:  []float64{0.4, 0.6},
		Widgets: []Widget{List{Title: "top", Marked: -1}, List{Title: "bottom", Marked: -1}},
	}.Render(12, 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("lines = %d, want 10", len(lines))
	}
	if !strings.HasPrefix(lines[0], "top") || !strings.HasPrefix(lines[4], "bottom") {
		t.Fatalf("bands = %q", lines)
	}
	for i, l := range lines {
		if len(l) != 12 {
			t.Fatalf("line %d width = %d, want 12", i, len(l))
		}
	}
}

func TestBoxTitleInBorder(t *testing.T) {
	out := Box{Title: "Events", Content: "a\nb\nc\nd"}.Render(16, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("lines = %d, want 4", len(lines))
	}
	if !strings.HasPrefix(lines[0], "╭─ Events ") || !strings.HasSuffix(lines[0], "╮") {
		t.Fatalf("top = %q", lines[0])
	}
	if !strings.Contains(lines[2], "b") || strings.Contains(out, "c") {
		t.Fatalf("body not clipped to two rows: %q", out)
	}
}
