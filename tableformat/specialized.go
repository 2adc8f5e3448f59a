package tableformat

import (
	"github.com/ItMeDiaTech/tablekit/model"
)

// accentBorder returns a fresh single-line border in the accent color.
func accentBorder() *model.Border {
	return &model.Border{Style: "single", Size: 8, Color: AccentFill}
}

// formatSpecialized runs the full specialized sequence on one table:
// borders, header, tips shading, numbering repair and conversion, content
// formatting, separators.
func (e *engine) formatSpecialized(t *model.Table, cls Classification) error {
	if err := zeroCellRowError(t); err != nil {
		return err
	}
	if len(t.Rows) < 2 {
		// The cache guaranteed two rows at classification time; losing
		// rows since then means an upstream stage mangled the table.
		return errTableShrunk
	}

	e.applySpecializedBorders(t, cls)
	e.formatSpecializedHeader(t)
	if cls.Variant == VariantTwoColumn && cls.TipsColumn {
		e.shadeTipsColumn(t)
	}

	e.restoreNumbering(t)
	mainDef := e.discoverMainNumbering(t, cls)
	e.convertBulletLists(t, cls, mainDef)
	mainDef = e.ensureContentNumbering(t, cls, mainDef)
	e.ensureTipsNumbering(t, cls)

	e.formatSpecializedContent(t, cls, mainDef)
	e.insertSeparators(t, cls, mainDef)
	return nil
}

// applySpecializedBorders draws the accent outline. Single-column tables
// use table-level outer borders with no inner lines. Two-column tables
// clear table-level borders and instead border individual cells — left
// edge on the first column, right edge on the last, bottom edge across
// the last data row — so the outline is seamless without doubled
// interior lines.
func (e *engine) applySpecializedBorders(t *model.Table, cls Classification) {
	if cls.Variant == VariantSingleColumn {
		t.Borders = &model.Borders{
			Top:    accentBorder(),
			Bottom: accentBorder(),
			Left:   accentBorder(),
			Right:  accentBorder(),
		}
		return
	}

	t.Borders = nil
	for _, row := range t.Rows {
		for ci, cell := range row.Cells {
			if cell.Borders == nil {
				cell.Borders = &model.Borders{}
			}
			if ci == 0 {
				cell.Borders.Left = accentBorder()
			}
			if ci == len(row.Cells)-1 {
				cell.Borders.Right = accentBorder()
			}
		}
	}
	last := t.Rows[len(t.Rows)-1]
	for _, cell := range last.Cells {
		if cell.Borders == nil {
			cell.Borders = &model.Borders{}
		}
		cell.Borders.Bottom = accentBorder()
	}
}

// formatSpecializedHeader forces the header row to the secondary heading
// look: heading style, accent fill, left alignment (specialized headers
// are not centered, unlike generic ones), zero vertical padding.
func (e *engine) formatSpecializedHeader(t *model.Table) {
	for _, cell := range t.Rows[0].Cells {
		e.setFill(cell, AccentFill)
		cell.Margins = &model.Margins{
			Top:    0,
			Bottom: 0,
			Left:   e.cfg.SpecializedPadding.Left,
			Right:  e.cfg.SpecializedPadding.Right,
		}
		for _, p := range cell.Paragraphs {
			e.setStyle(p, e.cfg.HeadingStyle)
			p.Alignment = model.AlignLeft
			e.applySpacing(p)
			for _, r := range p.Runs() {
				e.setRunFont(p, r, e.cfg.HeadingFont, e.cfg.HeadingSize)
				r.Bold = true
			}
		}
	}
	e.stats.HeadersStyled++
}

// shadeTipsColumn shades the side-note cell of every two-column data row.
// Single-cell rows are merged full-width rows; column-merged last cells
// are not real tips cells. Both are skipped.
func (e *engine) shadeTipsColumn(t *model.Table) {
	for _, row := range t.Rows[1:] {
		if len(row.Cells) < 2 {
			continue
		}
		last := row.Cells[len(row.Cells)-1]
		if last.Span() > 1 {
			continue
		}
		e.setFill(last, SideNoteFill)
	}
}

// contentCells returns the content-column cells of the data rows: for
// single-column tables every data cell, for two-column tables the first
// cell of each row (merged full-width rows included).
func contentCells(t *model.Table, cls Classification) []*model.Cell {
	var cells []*model.Cell
	for _, row := range t.Rows[1:] {
		if len(row.Cells) == 0 {
			continue
		}
		if cls.Variant == VariantSingleColumn {
			cells = append(cells, row.Cells...)
			continue
		}
		cells = append(cells, row.Cells[0])
	}
	return cells
}

// tipsCells returns the side-note cells of a two-column table's data
// rows.
func tipsCells(t *model.Table) []*model.Cell {
	var cells []*model.Cell
	for _, row := range t.Rows[1:] {
		if len(row.Cells) < 2 {
			continue
		}
		cells = append(cells, row.Cells[len(row.Cells)-1])
	}
	return cells
}

// contentParagraphs flattens the paragraphs of all content cells in
// document order.
func contentParagraphs(t *model.Table, cls Classification) []*model.Paragraph {
	var paras []*model.Paragraph
	for _, cell := range contentCells(t, cls) {
		paras = append(paras, cell.Paragraphs...)
	}
	return paras
}

// isMainItem reports whether p is a main action item: a level-0 paragraph
// of the table's dominant numbering definition.
func (e *engine) isMainItem(p *model.Paragraph, mainDef int) bool {
	if mainDef == 0 || p.Numbering == nil || p.Numbering.Level != 0 {
		return false
	}
	return e.doc.Numbering.DefinitionID(p.Numbering.NumID) == mainDef
}

// formatSpecializedContent applies the content typography: main items
// bold (hyperlink runs included), sub-items indented per the configured
// ladder without forced bold, tips label bold with remaining tips
// paragraphs plain, everything left-aligned in the tips column.
func (e *engine) formatSpecializedContent(t *model.Table, cls Classification, mainDef int) {
	for _, cell := range contentCells(t, cls) {
		for _, p := range cell.Paragraphs {
			if p.IsBlank() {
				continue
			}
			switch {
			case e.isMainItem(p, mainDef):
				e.applySpacing(p)
				for _, r := range p.Runs() {
					e.setRunFont(p, r, e.cfg.BodyFont, e.cfg.BodySize)
					r.Bold = true
				}
			case p.Numbering != nil:
				// Sub-item: one visual level deeper than its own level.
				ind := e.cfg.indentFor(p.Numbering.Level + 1)
				p.Indent = &model.Indent{
					Left:    ind.Text,
					Hanging: ind.Text - ind.Symbol,
				}
				for _, r := range p.Runs() {
					e.setRunFont(p, r, e.cfg.BodyFont, e.cfg.BodySize)
				}
			default:
				for _, r := range p.Runs() {
					e.setRunFont(p, r, e.cfg.BodyFont, e.cfg.BodySize)
				}
			}
		}
	}

	if cls.Variant != VariantTwoColumn {
		return
	}
	for _, cell := range tipsCells(t) {
		label := true
		for _, p := range cell.Paragraphs {
			p.Alignment = model.AlignLeft
			for _, r := range p.Runs() {
				e.setRunFont(p, r, e.cfg.BodyFont, e.cfg.BodySize)
				r.Bold = label
			}
			if !p.IsBlank() {
				label = false
			}
		}
	}
}
