package tableformat

import (
	"strings"

	"github.com/ItMeDiaTech/tablekit/model"
)

// postTableWindow is how many body elements after a specialized table are
// inspected for numbering leakage.
const postTableWindow = 3

// fixAfterTable prevents paragraphs that follow a specialized table from
// visually continuing its numbering sequence. A paragraph styled with the
// generic list style but carrying no explicit numbering would inherit the
// style's default numbering reference, so its style is forced back to
// body text. The scan stops at the next table and at the first paragraph
// with real text.
func (e *engine) fixAfterTable(elemIdx int) {
	elems := e.doc.Elements
	end := elemIdx + postTableWindow
	for i := elemIdx + 1; i < len(elems) && i <= end; i++ {
		if elems[i].Kind == model.KindTable {
			return
		}
		p := elems[i].Paragraph
		if p.Style == e.cfg.ListStyle && p.Numbering == nil {
			e.setStyle(p, e.cfg.BodyStyle)
		}
		if strings.TrimSpace(p.Text()) != "" {
			return
		}
	}
}
