package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
)

// fixedItem renders as a block of exactly h rows at any width.
type fixedItem struct {
	name     string
	h        int
	measured int
}

func (f *fixedItem) Measure(int) int {
	f.measured++
	return f.h
}

func (f *fixedItem) View(int) string {
	return strings.TrimSuffix(strings.Repeat(f.name+"\n", f.h), "\n")
}

func items(heights ...int) []Renderable {
	out := make([]Renderable, len(heights))
	for i, h := range heights {
		out[i] = &fixedItem{name: string(rune('a' + i)), h: h}
	}
	return out
}

func newTestSurface(title string, padding int) *Surface {
	return NewSurface(title, 40, padding, 4, lipgloss.NewStyle())
}

func TestSurfaceFitsArithmetic(t *testing.T) {
	s := newTestSurface("", 1)

	if s.OccupiedHeight() != 0 {
		t.Fatalf("empty untitled surface should occupy 0 rows, got %d", s.OccupiedHeight())
	}

	// required = 3 + 1 = 4, space left = 10 - 0
	first := &fixedItem{name: "a", h: 3}
	if !s.Fits(first, 10) {
		t.Fatal("first item should fit")
	}
	s.Append(first)
	if s.OccupiedHeight() != 4 {
		t.Fatalf("occupied = %d, want 4", s.OccupiedHeight())
	}

	// required = 5 + 1 = 6, space left = 10 - 4 = 6; equal is not enough
	if s.Fits(&fixedItem{name: "b", h: 5}, 10) {
		t.Error("an item needing exactly the space left must not fit")
	}
	if !s.Fits(&fixedItem{name: "c", h: 4}, 10) {
		t.Error("an item needing less than the space left should fit")
	}
}

func TestSurfaceFillStopsAtFirstMisfit(t *testing.T) {
	s := newTestSurface("", 0)
	list := items(2, 8, 1)

	n := s.Fill(list, 10)
	if n != 1 {
		t.Fatalf("Fill attached %d items, want 1", n)
	}
	if s.Len() != 1 || s.Children()[0] != list[0] {
		t.Error("only the first item should be attached")
	}
	if got := list[2].(*fixedItem).measured; got != 0 {
		t.Errorf("items after the first misfit must not be measured, got %d probes", got)
	}
}

func TestSurfaceFillStartsBelowTitle(t *testing.T) {
	s := newTestSurface("Upcoming", 1)
	if s.OccupiedHeight() != 1 {
		t.Fatalf("titled surface should occupy 1 row, got %d", s.OccupiedHeight())
	}

	if n := s.Fill(items(1), 1); n != 0 {
		t.Errorf("viewport equal to the intrinsic height should fit nothing, got %d", n)
	}
	if n := s.Fill(items(1), 0); n != 0 {
		t.Errorf("viewport below the intrinsic height should fit nothing, got %d", n)
	}

	// title plus two items of height 2, each with a gap of 1: 7 rows
	if n := s.Fill(items(2, 2, 2), 8); n != 2 {
		t.Errorf("expected 2 items, got %d", n)
	}
	if s.OccupiedHeight() != 7 {
		t.Errorf("occupied = %d, want 7", s.OccupiedHeight())
	}
}

func TestSurfaceProbe(t *testing.T) {
	s := newTestSurface("", 2)
	if s.Probe(nil) != 4 {
		t.Errorf("nil probe should use the fallback height, got %d", s.Probe(nil))
	}
	if s.Fits(nil, 6) {
		t.Error("fallback 4 + gap 2 should not fit in 6 rows")
	}
	if !s.Fits(nil, 7) {
		t.Error("fallback 4 + gap 2 should fit in 7 rows")
	}

	item := &fixedItem{name: "x", h: 3}
	if s.Probe(item) != 3 {
		t.Errorf("Probe = %d, want 3", s.Probe(item))
	}
	if s.Len() != 0 || s.OccupiedHeight() != 0 {
		t.Error("probing must not attach anything")
	}
}

func TestSurfaceFillMonotonic(t *testing.T) {
	heights := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}

	prev := 0
	for viewport := 0; viewport <= 80; viewport++ {
		s := newTestSurface("Upcoming", 1)
		n := s.Fill(items(heights...), viewport)
		if n < prev {
			t.Fatalf("viewport %d shows %d items, fewer than %d at a smaller viewport", viewport, n, prev)
		}
		prev = n
	}
	if prev != len(heights) {
		t.Errorf("a large viewport should show every item, got %d", prev)
	}
}

func TestSurfaceClear(t *testing.T) {
	s := newTestSurface("Upcoming", 1)
	s.Fill(items(1, 1, 1), 20)
	s.Clear()
	if s.Len() != 0 {
		t.Errorf("Clear left %d children", s.Len())
	}
	if s.OccupiedHeight() != 1 {
		t.Errorf("cleared surface should keep only its title, occupied = %d", s.OccupiedHeight())
	}
}

func TestSurfaceItemAt(t *testing.T) {
	// row 0 title, row 1 gap, rows 2-3 item 0, row 4 gap, rows 5-7 item 1
	s := newTestSurface("Upcoming", 1)
	s.Fill(items(2, 3), 50)

	tests := map[int]int{0: -1, 1: -1, 2: 0, 3: 0, 4: -1, 5: 1, 7: 1, 8: -1, 30: -1}
	for y, want := range tests {
		if got := s.ItemAt(y); got != want {
			t.Errorf("ItemAt(%d) = %d, want %d", y, got, want)
		}
	}

	lines := strings.Split(s.View(), "\n")
	if len(lines) != 8 {
		t.Fatalf("view has %d rows, want 8", len(lines))
	}
	if strings.TrimSpace(lines[2]) != "a" || strings.TrimSpace(lines[5]) != "b" {
		t.Errorf("rows do not line up with ItemAt: %q", lines)
	}
}
