package tableformat

import (
	"github.com/ItMeDiaTech/tablekit/model"
)

// insertSeparators inserts an empty body-text paragraph before every main
// item of the content column so numbered steps read as distinct blocks.
// The very first main item of the column gets no separator, and neither
// does an item already preceded by a blank paragraph — earlier stages
// sometimes normalize one into existence, and doubling it up would grow
// the document on every run.
func (e *engine) insertSeparators(t *model.Table, cls Classification, mainDef int) {
	first := true
	for _, cell := range contentCells(t, cls) {
		first = e.insertCellSeparators(cell, mainDef, first)
	}
}

func (e *engine) insertCellSeparators(cell *model.Cell, mainDef int, first bool) bool {
	for i := 0; i < len(cell.Paragraphs); i++ {
		if !e.startsGroup(cell, i, mainDef) {
			continue
		}
		if first {
			first = false
			continue
		}
		if i > 0 && cell.Paragraphs[i-1].IsBlank() {
			continue
		}
		sep := &model.Paragraph{
			Style:     e.cfg.BodyStyle,
			Alignment: e.cfg.BodyAlignment,
		}
		cell.InsertParagraph(i, sep)
		i++ // step over the inserted separator
	}
	return first
}

// startsGroup reports whether the paragraph at index i opens a new item
// group: a main item of the dominant list, or a level-0 item whose list
// differs from the numbered paragraph before it.
func (e *engine) startsGroup(cell *model.Cell, i, mainDef int) bool {
	p := cell.Paragraphs[i]
	ref := p.Numbering
	if ref == nil || ref.Level != 0 {
		return false
	}
	if e.isMainItem(p, mainDef) {
		return true
	}
	for j := i - 1; j >= 0; j-- {
		prev := cell.Paragraphs[j].Numbering
		if prev == nil {
			continue
		}
		return prev.NumID != ref.NumID
	}
	return true
}
