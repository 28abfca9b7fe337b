package program

import (
	"fmt"
	"sort"
)

// Position locates a node in a source file. Line and Column are 1-based.
type Position struct {
	File   string
	Line   int
	Column int
	Offset int
}

// IsValid reports whether the position carries line information.
func (p Position) IsValid() bool {
	return p.Line > 0
}

// String renders the position as file:line:col.
func (p Position) String() string {
	if !p.IsValid() {
		if p.File == "" {
			return "-"
		}
		return p.File
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// File maps byte offsets of a source file to positions.
type File struct {
	name  string
	lines []int // offsets of the first byte of every line
}

// NewFile indexes the line starts of src.
func NewFile(name string, src []byte) *File {
	lines := []int{0}
	for i, b := range src {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &File{name: name, lines: lines}
}

// Name returns the file name the positions refer to.
func (f *File) Name() string {
	return f.name
}

// Position converts a byte offset into a Position.
func (f *File) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	i := sort.Search(len(f.lines), func(i int) bool { return f.lines[i] > offset }) - 1
	return Position{
		File:   f.name,
		Line:   i + 1,
		Column: offset - f.lines[i] + 1,
		Offset: offset,
	}
}
