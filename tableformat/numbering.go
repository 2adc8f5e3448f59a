package tableformat

import (
	"fmt"

	"github.com/ItMeDiaTech/tablekit/model"
)

// Fixed typography for converted and synthesized list levels.
const (
	listLevelFont  = "Arial"
	listLevelSize  = 11.0
	listLevelColor = "000000"
)

// discoverMainNumbering finds the table's dominant top-level list: the
// definition of the first content-column level-0 paragraph whose level-0
// format is decimal. When no such paragraph exists it falls back to the
// most frequently referenced definition among all numbered content
// paragraphs — some tables consist entirely of lettered sub-items.
//
// Known limitation, kept deliberately: the frequency fallback can elect a
// sub-item definition when sub-items outnumber main items.
func (e *engine) discoverMainNumbering(t *model.Table, cls Classification) int {
	paras := contentParagraphs(t, cls)
	reg := e.doc.Numbering

	for _, p := range paras {
		if p.Numbering == nil || p.Numbering.Level != 0 {
			continue
		}
		def := reg.Definition(p.Numbering.NumID)
		if def == nil {
			continue
		}
		if lvl := def.Level(0); lvl != nil && lvl.Format == model.FormatDecimal {
			return def.ID
		}
	}

	// Frequency fallback. First-seen order breaks ties so discovery is
	// deterministic.
	counts := make(map[int]int)
	var order []int
	for _, p := range paras {
		if p.Numbering == nil {
			continue
		}
		id := reg.DefinitionID(p.Numbering.NumID)
		if id == 0 {
			continue
		}
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}
	best := 0
	for _, id := range order {
		if best == 0 || counts[id] > counts[best] {
			best = id
		}
	}
	return best
}

// convertBulletLists rewrites every bullet-formatted definition that
// content paragraphs reference at level 0, excluding the main decimal
// definition: level 0 becomes lower-letter, level 1 lower-roman, level 2
// upper-letter. Each definition is converted at most once per run even
// when many paragraphs reference it.
func (e *engine) convertBulletLists(t *model.Table, cls Classification, mainDef int) {
	reg := e.doc.Numbering
	for _, p := range contentParagraphs(t, cls) {
		if p.Numbering == nil || p.Numbering.Level != 0 {
			continue
		}
		def := reg.Definition(p.Numbering.NumID)
		if def == nil || def.ID == mainDef || e.converted[def.ID] {
			continue
		}
		lvl0 := def.Level(0)
		if lvl0 == nil || lvl0.Format != model.FormatBullet {
			continue
		}
		e.convertDefinition(def)
		e.converted[def.ID] = true
	}
}

// convertDefinition rewrites the first three levels of a bullet
// definition to the lettered sequence. The bold tri-state is set to an
// explicit Off: serializers must emit it, otherwise an inherited bold
// silently reappears. Indentation comes from the configured ladder
// shifted one level down — a sub-list's level 0 renders at visual
// level 1.
func (e *engine) convertDefinition(def *model.Definition) {
	targets := []model.NumberFormat{
		model.FormatLowerLetter,
		model.FormatLowerRoman,
		model.FormatUpperLetter,
	}
	for i, format := range targets {
		lvl := def.Level(i)
		if lvl == nil {
			continue
		}
		ind := e.cfg.indentFor(i + 1)
		lvl.Format = format
		lvl.Text = fmt.Sprintf("%%%d.", i+1)
		lvl.Font = listLevelFont
		lvl.Size = listLevelSize
		lvl.Color = listLevelColor
		lvl.Bold = model.TristateOff
		lvl.Left = ind.Text
		lvl.Hanging = ind.Text - ind.Symbol
	}
}

// ensureContentNumbering synthesizes a lower-letter definition when no
// explicit numbering survived in the content column at all, attaching it
// to paragraphs whose numbering was inherited rather than explicit. It
// returns the definition id that subsequent stages should treat as the
// main list.
func (e *engine) ensureContentNumbering(t *model.Table, cls Classification, mainDef int) int {
	paras := contentParagraphs(t, cls)
	for _, p := range paras {
		if p.Numbering != nil {
			return mainDef
		}
	}

	def := &model.Definition{
		Levels: []*model.Level{e.newLevel(0, model.FormatLowerLetter)},
	}
	defID := e.doc.Numbering.AddDefinition(def)
	numID := e.doc.Numbering.NewReference(defID)

	for _, p := range paras {
		if !e.inheritsNumbering(p) {
			continue
		}
		p.Numbering = &model.NumberingRef{NumID: numID, Level: 0}
	}

	if mainDef == 0 {
		return defID
	}
	return mainDef
}

// ensureTipsNumbering synthesizes a separate bullet list for tips-column
// paragraphs that render as list items without explicit numbering.
func (e *engine) ensureTipsNumbering(t *model.Table, cls Classification) {
	if cls.Variant != VariantTwoColumn {
		return
	}
	var pending []*model.Paragraph
	for _, cell := range tipsCells(t) {
		for _, p := range cell.Paragraphs {
			if e.inheritsNumbering(p) {
				pending = append(pending, p)
			}
		}
	}
	if len(pending) == 0 {
		return
	}

	def := &model.Definition{
		Levels: []*model.Level{e.newLevel(0, model.FormatBullet)},
	}
	defID := e.doc.Numbering.AddDefinition(def)
	numID := e.doc.Numbering.NewReference(defID)
	for _, p := range pending {
		p.Numbering = &model.NumberingRef{NumID: numID, Level: 0}
	}
}

// inheritsNumbering reports whether p has no explicit numbering but
// would render numbered anyway: its saved state says "inherits", or it
// carries the generic list style.
func (e *engine) inheritsNumbering(p *model.Paragraph) bool {
	if p.Numbering != nil {
		return false
	}
	if st, ok := e.saved[p]; ok && st.NumID == SavedInherited {
		return true
	}
	return p.Style == e.cfg.ListStyle
}

// newLevel builds a level with the fixed conversion typography.
func (e *engine) newLevel(index int, format model.NumberFormat) *model.Level {
	ind := e.cfg.indentFor(index + 1)
	text := fmt.Sprintf("%%%d.", index+1)
	if format == model.FormatBullet {
		text = "•"
	}
	return &model.Level{
		Index:   index,
		Format:  format,
		Text:    text,
		Font:    listLevelFont,
		Size:    listLevelSize,
		Color:   listLevelColor,
		Bold:    model.TristateOff,
		Left:    ind.Text,
		Hanging: ind.Text - ind.Symbol,
	}
}
