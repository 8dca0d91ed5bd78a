package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '@')
	if got := s.Get(3, 2); got != '@' {
		t.Errorf("Get(3,2) = %q, want '@'", got)
	}

	// Untouched cells are spaces
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0,0) = %q, want space", got)
	}

	// Out-of-bounds writes are ignored, reads return space
	s.Set(-1, 0, 'x')
	s.Set(10, 0, 'x')
	s.Set(0, 5, 'x')
	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want space", got)
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(4, 2)

	s.SetColored(1, 1, '#', ColorRed)
	cell := s.GetCell(1, 1)
	if cell.Rune != '#' || cell.Color != ColorRed {
		t.Errorf("GetCell = %+v, want '#' in red", cell)
	}

	// Clear resets colors to default
	s.Clear()
	cell = s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear GetCell = %+v, want default space", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if got := s.Row(1); got != "  hello   " {
		t.Errorf("Row(1) = %q", got)
	}

	// Text extending past the edge is clipped
	s.DrawText(7, 0, "world")
	if got := s.Row(0); got != "       wor" {
		t.Errorf("clipped Row(0) = %q", got)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")
	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, 'x')
	s.Set(5, 3, 'y')

	// Shrink: content inside the new bounds survives
	s.Resize(4, 3)
	if s.Width() != 4 || s.Height() != 3 {
		t.Fatalf("size after shrink = %dx%d", s.Width(), s.Height())
	}
	if got := s.Get(1, 1); got != 'x' {
		t.Errorf("Get(1,1) after shrink = %q, want 'x'", got)
	}

	// Grow: new cells are blank
	s.Resize(8, 5)
	if got := s.Get(1, 1); got != 'x' {
		t.Errorf("Get(1,1) after grow = %q, want 'x'", got)
	}
	if got := s.Get(7, 4); got != ' ' {
		t.Errorf("new cell = %q, want space", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	if got := s.Get(0, 0); got != '┌' {
		t.Errorf("top-left = %q", got)
	}
	if got := s.Get(5, 0); got != '┐' {
		t.Errorf("top-right = %q", got)
	}
	if got := s.Get(0, 3); got != '└' {
		t.Errorf("bottom-left = %q", got)
	}
	if got := s.Get(5, 3); got != '┘' {
		t.Errorf("bottom-right = %q", got)
	}
	if got := s.Get(2, 0); got != '─' {
		t.Errorf("top edge = %q", got)
	}
	if got := s.Get(0, 1); got != '│' {
		t.Errorf("left edge = %q", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	got := s.String()
	want := "a  \n  b"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("String() has %d newlines, want 1", strings.Count(got, "\n"))
	}
}
