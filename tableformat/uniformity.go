package tableformat

import (
	"regexp"
	"strings"

	"github.com/ItMeDiaTech/tablekit/model"
)

// stepPattern matches the trimmed text of a numeric step cell: "3", "3.",
// "(3)", "c.".
var stepPattern = regexp.MustCompile(`^\(?([0-9]{1,3}|[a-z])\)?\.?$`)

// formatUniform applies the generic shading/font rules to a table that is
// neither floating, nested-table-bearing, nor specialized.
func (e *engine) formatUniform(t *model.Table) error {
	if err := zeroCellRowError(t); err != nil {
		return err
	}

	if t.RowCount() == 1 && len(t.Rows[0].Cells) == 1 {
		e.formatSingleCell(t.Rows[0].Cells[0])
		return nil
	}

	for ri, row := range t.Rows {
		for _, cell := range row.Cells {
			if ri == 0 {
				e.formatUniformHeaderCell(cell)
			} else {
				e.formatUniformDataCell(cell)
			}
		}
	}
	e.stats.HeadersStyled++
	return nil
}

// formatSingleCell handles 1×1 tables, used in the organization template
// as section callouts. Cells holding more than two lines of text are real
// content boxes and are left completely alone.
func (e *engine) formatSingleCell(cell *model.Cell) {
	if cell.LineCount() > 2 {
		return
	}

	hadShading := cell.Shading.IsVisible()
	isHeading := false
	for _, p := range cell.Paragraphs {
		if p.Style == e.cfg.HeadingStyle {
			isHeading = true
			break
		}
	}

	if hadShading || isHeading {
		e.setFill(cell, e.cfg.HeaderFill)
	}
	for _, p := range cell.Paragraphs {
		for _, r := range p.Runs() {
			e.setRunFont(p, r, e.cfg.HeadingFont, e.cfg.HeadingSize)
		}
	}
}

// formatUniformHeaderCell forces the header-row look: "other" fill,
// heading font, bold and centered except for list items.
func (e *engine) formatUniformHeaderCell(cell *model.Cell) {
	e.setFill(cell, e.cfg.OtherFill)
	cell.Margins = &model.Margins{
		Top:    e.cfg.GenericPadding.Top,
		Bottom: e.cfg.GenericPadding.Bottom,
		Left:   e.cfg.GenericPadding.Left,
		Right:  e.cfg.GenericPadding.Right,
	}
	for _, p := range cell.Paragraphs {
		list := e.isListItem(p)
		for _, r := range p.Runs() {
			e.setRunFont(p, r, e.cfg.HeadingFont, e.cfg.HeadingSize)
			if !list {
				r.Bold = true
			}
		}
		if !list {
			p.Alignment = model.AlignCenter
		}
	}
}

// formatUniformDataCell normalizes a data cell. Cells that already carry
// direct shading are treated as emphasized and get the full header
// treatment; unshaded cells only have their fonts normalized so author
// intent (bold, alignment) survives.
//
// Only the cell's own shading is consulted. Table-style conditional
// shading used to cause false positives that bolded and centered cells
// that should have been left alone.
func (e *engine) formatUniformDataCell(cell *model.Cell) {
	if cell.Shading.IsVisible() {
		// Fills matching the specialized palette are preserved: they
		// belong to a specialized table that escaped classification,
		// usually through nesting.
		fill := cell.Shading.Fill
		if !strings.EqualFold(fill, AccentFill) && !strings.EqualFold(fill, SideNoteFill) {
			e.setFill(cell, e.cfg.OtherFill)
		}
		for _, p := range cell.Paragraphs {
			list := e.isListItem(p)
			for _, r := range p.Runs() {
				e.setRunFont(p, r, e.cfg.HeadingFont, e.cfg.HeadingSize)
				if !list && !e.cfg.PreserveBold {
					r.Bold = true
				}
			}
			if !list && !e.cfg.PreserveCenter {
				p.Alignment = model.AlignCenter
			}
		}
		return
	}

	if cell.HasDrawing() {
		return
	}
	for _, p := range cell.Paragraphs {
		for _, r := range p.Runs() {
			e.setRunFont(p, r, e.cfg.BodyFont, e.cfg.BodySize)
		}
	}
	e.centerStepCell(cell)
}

// centerStepCell centers a cell whose sole paragraph is a bare step
// marker like "3." or "(c)". Multi-paragraph cells are never centered by
// this rule.
func (e *engine) centerStepCell(cell *model.Cell) {
	if len(cell.Paragraphs) != 1 {
		return
	}
	p := cell.Paragraphs[0]
	text := strings.TrimSpace(p.Text())
	if text == "" || !stepPattern.MatchString(text) {
		return
	}
	p.Alignment = model.AlignCenter
}
