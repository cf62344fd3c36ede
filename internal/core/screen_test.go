package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#')
	if got := s.Get(3, 2); got != '#' {
		t.Errorf("Get(3,2) = %q, want '#'", got)
	}

	// Untouched cells are spaces
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("Get(0,0) = %q, want ' '", got)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 4)

	// Should not panic
	s.Set(-1, 0, 'x')
	s.Set(0, -1, 'x')
	s.Set(4, 0, 'x')
	s.Set(0, 4, 'x')

	if got := s.Get(-1, 0); got != ' ' {
		t.Errorf("out-of-bounds Get = %q, want ' '", got)
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(4, 4)

	s.SetColored(1, 1, 'X', ColorBrightRed)
	cell := s.GetCell(1, 1)
	if cell.Rune != 'X' || cell.Color != ColorBrightRed {
		t.Errorf("GetCell(1,1) = %+v, want {X BrightRed}", cell)
	}

	// Clear resets colors
	s.Clear()
	cell = s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("after Clear, GetCell(1,1) = %+v, want default space", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)

	s.DrawText(2, 1, "hello")
	if got := s.Row(1); !strings.Contains(got, "hello") {
		t.Errorf("Row(1) = %q, want to contain %q", got, "hello")
	}

	// Clipped text does not panic
	s.DrawText(8, 0, "long text")
	if got := s.Get(9, 0); got != 'o' {
		t.Errorf("clipped Get(9,0) = %q, want 'o'", got)
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(1, 1, '@')

	s.Resize(10, 8)
	if got := s.Get(1, 1); got != '@' {
		t.Errorf("after grow, Get(1,1) = %q, want '@'", got)
	}

	s.Resize(2, 2)
	if got := s.Get(1, 1); got != '@' {
		t.Errorf("after shrink, Get(1,1) = %q, want '@'", got)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	want := "a  \n  b"
	if got := s.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 6, 4))

	if got := s.Get(0, 0); got != '┌' {
		t.Errorf("top-left = %q, want '┌'", got)
	}
	if got := s.Get(5, 3); got != '┘' {
		t.Errorf("bottom-right = %q, want '┘'", got)
	}
	if got := s.Get(3, 0); got != '─' {
		t.Errorf("top edge = %q, want '─'", got)
	}
	if got := s.Get(0, 2); got != '│' {
		t.Errorf("left edge = %q, want '│'", got)
	}
}
