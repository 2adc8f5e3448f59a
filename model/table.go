package model

import "strings"

// Shading is a cell's direct fill. Only direct shading participates in
// formatting decisions; shading inherited from a table style is invisible
// to this model on purpose.
type Shading struct {
	Fill    string // background hex RGB without '#', "" or "auto" = none
	Color   string // pattern color
	Pattern string // "" or "clear" = solid fill only
}

// IsVisible reports whether the shading paints anything: a real fill color
// or a non-clear pattern.
func (s *Shading) IsVisible() bool {
	if s == nil {
		return false
	}
	if s.Fill != "" && !strings.EqualFold(s.Fill, "auto") {
		return true
	}
	return s.Pattern != "" && !strings.EqualFold(s.Pattern, "clear") &&
		!strings.EqualFold(s.Pattern, "nil")
}

// Border is a single edge line.
type Border struct {
	Style string // "single", "double", ...
	Size  int    // eighths of a point
	Color string // hex RGB without '#'
}

// Borders holds the six possible edges of a table or cell. Nil entries
// mean "not set" (inherit or absent).
type Borders struct {
	Top     *Border
	Bottom  *Border
	Left    *Border
	Right   *Border
	InsideH *Border
	InsideV *Border
}

// Margins holds cell padding for the four sides, in twips. Negative
// values mean "not set".
type Margins struct {
	Top    int
	Bottom int
	Left   int
	Right  int
}

// Cell is one table cell. Rows and cells are never created or destroyed
// by the formatting pipeline; only the paragraphs inside a cell change.
type Cell struct {
	Paragraphs []*Paragraph
	Shading    *Shading
	Margins    *Margins
	Borders    *Borders
	NoWrap     bool
	GridSpan   int      // columns spanned; 0 and 1 both mean no span
	Tables     []*Table // tables nested inside this cell
}

// NewCell returns a cell containing one paragraph per given text.
func NewCell(texts ...string) *Cell {
	c := &Cell{}
	for _, text := range texts {
		c.Paragraphs = append(c.Paragraphs, NewParagraph(text))
	}
	return c
}

// Text returns the cell's text with paragraphs joined by newlines.
func (c *Cell) Text() string {
	parts := make([]string, len(c.Paragraphs))
	for i, p := range c.Paragraphs {
		parts[i] = p.Text()
	}
	return strings.Join(parts, "\n")
}

// LineCount returns the number of visual lines the cell holds: one per
// paragraph plus any embedded line breaks.
func (c *Cell) LineCount() int {
	n := 0
	for _, p := range c.Paragraphs {
		n += 1 + p.LineBreaks()
	}
	return n
}

// HasDrawing reports whether any paragraph of the cell embeds an image.
func (c *Cell) HasDrawing() bool {
	for _, p := range c.Paragraphs {
		if p.HasDrawing() {
			return true
		}
	}
	return false
}

// Span returns the effective column span, never less than 1.
func (c *Cell) Span() int {
	if c.GridSpan < 1 {
		return 1
	}
	return c.GridSpan
}

// InsertParagraph inserts p before index i. An index at or beyond the end
// appends.
func (c *Cell) InsertParagraph(i int, p *Paragraph) {
	if i < 0 {
		i = 0
	}
	if i >= len(c.Paragraphs) {
		c.Paragraphs = append(c.Paragraphs, p)
		return
	}
	c.Paragraphs = append(c.Paragraphs, nil)
	copy(c.Paragraphs[i+1:], c.Paragraphs[i:])
	c.Paragraphs[i] = p
}

// Row is one table row.
type Row struct {
	Cells []*Cell
}

// Table is a top-level or nested table.
type Table struct {
	Rows     []*Row
	Borders  *Borders // table-level borders; nil = none set
	Floating bool     // absolutely positioned
	StyleID  string
}

// NewTable builds a table from cell texts, one inner slice per row.
func NewTable(rows ...[]string) *Table {
	t := &Table{}
	for _, texts := range rows {
		row := &Row{}
		for _, text := range texts {
			row.Cells = append(row.Cells, NewCell(text))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// HasNestedTables reports whether any cell of the table contains another
// table.
func (t *Table) HasNestedTables() bool {
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			if len(cell.Tables) > 0 {
				return true
			}
		}
	}
	return false
}

// Cell returns the cell at (row, col), or nil when out of range.
func (t *Table) Cell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	r := t.Rows[row]
	if col < 0 || col >= len(r.Cells) {
		return nil
	}
	return r.Cells[col]
}
