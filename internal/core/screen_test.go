package core

import (
	"strings"
	"testing"
)

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, 'X')
	if s.Get(3, 2) != 'X' {
		t.Errorf("Get(3, 2) = %q, expected 'X'", s.Get(3, 2))
	}

	s.SetCell(4, 2, '#', ColorGreen)
	cell := s.GetCell(4, 2)
	if cell.Rune != '#' || cell.Color != ColorGreen {
		t.Errorf("GetCell(4, 2) = %+v, expected {#  ColorGreen}", cell)
	}

	// Out of bounds writes are ignored, reads return blanks
	s.Set(-1, 0, 'Y')
	s.Set(10, 0, 'Y')
	s.Set(0, 5, 'Y')
	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' || s.Get(0, 5) != ' ' {
		t.Error("out-of-bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.SetCell(1, 1, 'A', ColorRed)
	s.Clear()

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Color != ColorDefault {
		t.Errorf("Clear did not reset cell, got %+v", cell)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawText(2, 1, "hi")

	if s.Get(2, 1) != 'h' || s.Get(3, 1) != 'i' {
		t.Error("DrawText did not write text")
	}

	// Clipping at the right edge
	s.DrawText(8, 0, "long")
	if s.Get(8, 0) != 'l' || s.Get(9, 0) != 'o' {
		t.Error("DrawText should clip beyond screen bounds")
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(0, 0, "ok", ColorYellow)

	if s.GetCell(0, 0).Color != ColorYellow || s.GetCell(1, 0).Color != ColorYellow {
		t.Error("DrawTextColored should set color on every cell")
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(8, 8)

	s.DrawHLine(0, 7, 8, '═')
	for x := 0; x < 8; x++ {
		if s.Get(x, 7) != '═' {
			t.Fatalf("DrawHLine missing at x=%d", x)
		}
	}

	s.DrawVLine(3, 0, 5, '█', ColorGreen)
	for y := 0; y < 5; y++ {
		cell := s.GetCell(3, y)
		if cell.Rune != '█' || cell.Color != ColorGreen {
			t.Fatalf("DrawVLine missing at y=%d", y)
		}
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 6)
	s.DrawBox(NewRect(1, 1, 6, 4))

	if s.Get(1, 1) != '┌' || s.Get(6, 1) != '┐' {
		t.Error("box top corners wrong")
	}
	if s.Get(1, 4) != '└' || s.Get(6, 4) != '┘' {
		t.Error("box bottom corners wrong")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("box edges wrong")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(6, 4)
	s.Set(2, 2, 'Z')

	s.Resize(10, 8)
	if s.Width() != 10 || s.Height() != 8 {
		t.Errorf("Resize dimensions wrong: %dx%d", s.Width(), s.Height())
	}
	if s.Get(2, 2) != 'Z' {
		t.Error("Resize should preserve existing content")
	}

	s.Resize(3, 3)
	if s.Get(2, 2) != 'Z' {
		t.Error("shrinking should keep content inside new bounds")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.Set(0, 0, 'a')
	s.Set(2, 1, 'b')

	str := s.String()
	lines := strings.Split(str, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "a  " || lines[1] != "  b" {
		t.Errorf("String() = %q", str)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 1, "test")

	if s.Row(1) != "test" {
		t.Errorf("Row(1) = %q, expected \"test\"", s.Row(1))
	}
	if s.Row(5) != "    " {
		t.Error("out-of-bounds Row should return blank row")
	}
}
