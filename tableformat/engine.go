package tableformat

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ItMeDiaTech/tablekit/model"
)

// errTableShrunk reports a specialized table that lost rows between the
// classification pass and formatting.
var errTableShrunk = errors.New("specialized table lost rows after classification")

// Stats are the per-run counters reported to the surrounding application.
// Mutation counters (recolored cells, styled paragraphs) only count actual
// changes, so a second run over the same document reports zeros for them.
type Stats struct {
	TablesProcessed   int
	TablesSkipped     int
	CellsRecolored    int
	HeadersStyled     int
	HeadingParagraphs int // paragraphs converted to the heading style
	SingleColumn      int
	TwoColumn         int
	Failures          int
}

// engine carries the state of one run. All state is threaded explicitly
// through Format; nothing survives between runs.
type engine struct {
	doc       *model.Document
	cfg       Config
	cache     *SnapshotCache
	saved     SavedNumbering
	stats     *Stats
	converted map[int]bool // definition ids already rewritten this run
}

// Format applies the organization table styles to every table in doc and
// returns aggregate counters.
//
// saved is the numbering snapshot captured before the surrounding
// pipeline ran (see CaptureNumbering); pass nil when no snapshot exists.
// The snapshot-cache pass always completes before any mutation — that
// ordering is a hard precondition of classification, not an optimization.
// Failures are isolated per table: a malformed table is logged, counted,
// and skipped, never fatal.
func Format(doc *model.Document, saved SavedNumbering, cfg Config) *Stats {
	stats := &Stats{}
	if doc == nil {
		return stats
	}

	e := &engine{
		doc:       doc,
		cfg:       cfg.normalized(),
		cache:     NewSnapshotCache(),
		saved:     saved,
		stats:     stats,
		converted: make(map[int]bool),
	}

	e.cache.CacheAll(doc)
	defer e.cache.Clear()

	tableIdx := -1
	for ei := range doc.Elements {
		if doc.Elements[ei].Kind != model.KindTable {
			continue
		}
		tableIdx++
		if err := e.formatTable(tableIdx, ei, doc.Elements[ei].Table); err != nil {
			stats.Failures++
			e.logf("table %d: %v", tableIdx, err)
		}
	}

	return stats
}

// formatTable runs the full per-table sequence. tableIdx is the table's
// position among top-level tables (the cache key); elemIdx its position
// in the document body.
func (e *engine) formatTable(tableIdx, elemIdx int, t *model.Table) error {
	if cls, ok := e.cache.Lookup(tableIdx); ok {
		if err := e.formatSpecialized(t, cls); err != nil {
			return err
		}
		switch cls.Variant {
		case VariantSingleColumn:
			e.stats.SingleColumn++
		case VariantTwoColumn:
			e.stats.TwoColumn++
		}
		e.stats.TablesProcessed++
		e.fixAfterTable(elemIdx)
		return nil
	}

	// Floating and nested-table-bearing tables pass through unmodified.
	if t.Floating || t.HasNestedTables() {
		e.stats.TablesSkipped++
		return nil
	}

	if err := e.formatUniform(t); err != nil {
		return err
	}
	e.stats.TablesProcessed++
	return nil
}

func (e *engine) logf(format string, args ...interface{}) {
	if e.cfg.Logger != nil {
		e.cfg.Logger.Printf(format, args...)
	}
}

// setFill forces a solid fill on the cell, counting only actual changes.
func (e *engine) setFill(c *model.Cell, fill string) {
	if c.Shading == nil {
		c.Shading = &model.Shading{}
	}
	if !strings.EqualFold(c.Shading.Fill, fill) {
		e.stats.CellsRecolored++
	}
	c.Shading.Fill = fill
	c.Shading.Pattern = "clear"
	c.Shading.Color = "auto"
}

// setStyle forces a paragraph style, counting heading conversions.
func (e *engine) setStyle(p *model.Paragraph, style string) {
	if p.Style == style {
		return
	}
	p.Style = style
	if style == e.cfg.HeadingStyle {
		e.stats.HeadingParagraphs++
	}
}

// applySpacing normalizes paragraph spacing from configuration.
func (e *engine) applySpacing(p *model.Paragraph) {
	p.Spacing = &model.Spacing{
		Before: e.cfg.SpacingBefore,
		After:  e.cfg.SpacingAfter,
		Line:   e.cfg.LineSpacing,
	}
}

// isListItem reports whether the paragraph renders as a list item: either
// explicit numbering or the generic list style.
func (e *engine) isListItem(p *model.Paragraph) bool {
	return p.Numbering != nil || p.Style == e.cfg.ListStyle
}

// isHyperlinkRun reports whether r should keep hyperlink coloring: it
// carries the hyperlink character style, already uses a known hyperlink
// color, or sits inside a hyperlink/revision wrapper instead of being a
// direct child of p.
func (e *engine) isHyperlinkRun(p *model.Paragraph, r *model.Run) bool {
	if r.Style == e.cfg.HyperlinkStyle {
		return true
	}
	if strings.EqualFold(r.Color, hyperlinkColor) || strings.EqualFold(r.Color, hyperlinkColorLegacy) {
		return true
	}
	return p.IsWrapped(r)
}

// setRunFont forces font and size on a run. Hyperlink runs get their
// color and underline reapplied afterward so the font change cannot
// clobber them.
func (e *engine) setRunFont(p *model.Paragraph, r *model.Run, font string, size float64) {
	hyperlink := e.isHyperlinkRun(p, r)
	r.Font = font
	r.Size = size
	if hyperlink {
		if r.Color == "" {
			r.Color = hyperlinkColor
		}
		if r.Underline == "" {
			r.Underline = "single"
		}
	}
}

// zeroCellRowError reports the first row of t without cells, if any. A
// row with zero cells is malformed input; the table is abandoned and the
// failure isolated by the caller.
func zeroCellRowError(t *model.Table) error {
	for i, row := range t.Rows {
		if len(row.Cells) == 0 {
			return fmt.Errorf("row %d has no cells", i)
		}
	}
	return nil
}
