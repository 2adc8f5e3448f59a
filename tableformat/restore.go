package tableformat

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/ItMeDiaTech/tablekit/model"
)

// Sentinel NumID values in a SavedNumbering snapshot.
const (
	// SavedNone records a paragraph that must end up with no numbering.
	SavedNone = -1

	// SavedInherited records a paragraph whose numbering was not explicit
	// (it inherits from a style default); the converter decides what it
	// becomes.
	SavedInherited = -2
)

// SavedState is the numbering a paragraph carried before the pipeline
// ran.
type SavedState struct {
	NumID      int // instance id, or a sentinel
	Level      int
	LeftIndent int // twips
}

// SavedNumbering maps paragraphs to their pre-pipeline numbering state.
// Paragraph identity is pointer identity: the snapshot is only meaningful
// for the document tree it was captured from.
type SavedNumbering map[*model.Paragraph]SavedState

// CaptureNumbering snapshots the numbering state of every paragraph in
// doc. Paragraphs without explicit numbering are recorded as SavedNone,
// unless they carry one of the given list styles, in which case their
// numbering is style-inherited and recorded as SavedInherited.
//
// The surrounding pipeline calls this before any stage runs, then hands
// the snapshot to Format so numbering stripped by unrelated stages can be
// restored.
func CaptureNumbering(doc *model.Document, listStyles ...string) SavedNumbering {
	saved := make(SavedNumbering)
	for _, p := range doc.AllParagraphs() {
		st := SavedState{NumID: SavedNone}
		if p.Numbering != nil {
			st.NumID = p.Numbering.NumID
			st.Level = p.Numbering.Level
		} else {
			for _, style := range listStyles {
				if p.Style == style {
					st.NumID = SavedInherited
					break
				}
			}
		}
		if p.Indent != nil {
			st.LeftIndent = p.Indent.Left
		}
		saved[p] = st
	}
	return saved
}

// restoreNumbering repairs the numbering of every paragraph in the table
// from the snapshot. Earlier, independent pipeline stages (style
// normalization, generic list cleanup) strip or reassign numbering on
// paragraphs that must keep their specialized list assignment; this runs
// before discovery so the converter sees corrected state.
func (e *engine) restoreNumbering(t *model.Table) {
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			for _, p := range cell.Paragraphs {
				e.restoreParagraph(p)
			}
		}
	}
}

func (e *engine) restoreParagraph(p *model.Paragraph) {
	st, ok := e.saved[p]
	if !ok {
		// The paragraph was created or replaced after the snapshot, so
		// there is nothing to restore. One narrow heuristic remains:
		// note lines must never render numbered.
		if isNoteLine(p) && p.Numbering != nil {
			p.Numbering = nil
			e.setStyle(p, e.cfg.BodyStyle)
		}
		return
	}

	switch st.NumID {
	case SavedInherited:
		// Left for the converter to reassign.
	case SavedNone:
		// Must end up unnumbered. Only paragraphs that picked up
		// numbering since the snapshot need repair.
		if p.Numbering == nil {
			return
		}
		p.Numbering = nil
		e.setStyle(p, e.cfg.BodyStyle)
		if st.LeftIndent != 0 {
			if p.Indent == nil {
				p.Indent = &model.Indent{}
			}
			p.Indent.Left = st.LeftIndent
		} else if p.Indent != nil {
			p.Indent.Left = 0
		}
	default:
		cur := p.Numbering
		if cur != nil && cur.NumID == st.NumID && cur.Level == st.Level {
			return
		}
		p.Numbering = &model.NumberingRef{NumID: st.NumID, Level: st.Level}
	}
}

// isNoteLine reports whether the paragraph is a note annotation ("Note:
// ..."), matched case-insensitively.
func isNoteLine(p *model.Paragraph) bool {
	caser := cases.Fold()
	text := strings.TrimSpace(caser.String(p.Text()))
	return strings.HasPrefix(text, "note:")
}
