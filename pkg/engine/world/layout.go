package world

import (
	"fmt"
	"strings"
)

// Layout glyphs
const (
	GlyphWall  = '#'
	GlyphFloor = '.'
	GlyphVoid  = ' '
)

// ParseLayout builds a grid from ASCII rows. '#' and ' ' are walls, '.' is floor,
// and any letter is a floor cell that also records a marker under that letter.
// Short rows are padded with walls.
func ParseLayout(lines []string) (*Grid, error) {
	rows := len(lines)
	if rows == 0 {
		return nil, fmt.Errorf("layout is empty")
	}

	cols := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > cols {
			cols = n
		}
	}
	if cols == 0 {
		return nil, fmt.Errorf("layout has no columns")
	}

	grid := NewGrid(cols, rows)
	for row, line := range lines {
		for col, r := range []rune(line) {
			p := Pos{Col: col, Row: row}
			switch {
			case r == GlyphWall || r == GlyphVoid:
				continue
			case r == GlyphFloor:
				grid.MarkWalkable(p)
			case isMarker(r):
				if prev, dup := grid.Marker(r); dup {
					return nil, fmt.Errorf("marker %q at %v already placed at %v", r, p, prev)
				}
				grid.MarkWalkable(p)
				grid.GetCell(p).Glyph = r
				grid.SetMarker(r, p)
			default:
				return nil, fmt.Errorf("unknown glyph %q at %v", r, p)
			}
		}
	}

	return grid, nil
}

// ParseLayoutString splits s on newlines, dropping a single leading and trailing blank line
func ParseLayoutString(s string) (*Grid, error) {
	s = strings.TrimPrefix(s, "\n")
	s = strings.TrimSuffix(s, "\n")
	return ParseLayout(strings.Split(s, "\n"))
}

func isMarker(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
