package tableformat

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/ItMeDiaTech/tablekit/model"
)

// Variant is the structural layout assigned to a table by classification.
type Variant int

const (
	// VariantNone marks a table handled by the generic uniformity rules.
	VariantNone Variant = iota

	// VariantSingleColumn is a specialized table whose data rows are
	// single full-width cells.
	VariantSingleColumn

	// VariantTwoColumn is a specialized table with a content column and a
	// side-note column.
	VariantTwoColumn
)

func (v Variant) String() string {
	switch v {
	case VariantSingleColumn:
		return "single-column"
	case VariantTwoColumn:
		return "two-column"
	default:
		return "none"
	}
}

// Classification is the cached result of classifying one table. It is
// computed once from pristine shading, before any formatter runs, and is
// never recomputed: later stages would otherwise read shading the engine
// itself rewrote.
type Classification struct {
	Variant    Variant
	Columns    int
	RowCount   int
	TipsColumn bool
	HeaderText string
	HeaderSpan int
}

// Classify inspects a table and returns its classification. It is pure
// and read-only; it never mutates the table.
//
// A table is specialized only when all gates hold, in order: at least two
// rows (header plus data), the first cell of the first row filled with the
// header accent color, and that cell's trimmed text containing the marker
// phrase case-insensitively. Column count is read from the second row
// because header cells are often horizontally merged.
func Classify(t *model.Table) Classification {
	cls := Classification{Variant: VariantNone}
	if t == nil || len(t.Rows) < 2 {
		return cls
	}
	header := t.Rows[0]
	if len(header.Cells) == 0 {
		return cls
	}
	first := header.Cells[0]
	if first.Shading == nil || !strings.EqualFold(first.Shading.Fill, AccentFill) {
		return cls
	}
	headerText := strings.TrimSpace(first.Text())
	if !foldContains(headerText, markerPhrase) {
		return cls
	}

	cls.RowCount = len(t.Rows)
	cls.HeaderText = headerText
	cls.HeaderSpan = first.Span()
	cls.Columns = len(t.Rows[1].Cells)
	if cls.Columns <= 1 {
		cls.Variant = VariantSingleColumn
	} else {
		cls.Variant = VariantTwoColumn
	}

	// Tips detection: any data row with at least two cells whose last,
	// unmerged cell carries the side-note fill. Rows with fewer cells are
	// merged full-width rows, not two-column data rows.
	for _, row := range t.Rows[1:] {
		if len(row.Cells) < 2 {
			continue
		}
		last := row.Cells[len(row.Cells)-1]
		if last.Span() > 1 {
			continue
		}
		if last.Shading != nil && strings.EqualFold(last.Shading.Fill, SideNoteFill) {
			cls.TipsColumn = true
			break
		}
	}

	return cls
}

// foldContains reports whether s contains substr under Unicode case
// folding.
func foldContains(s, substr string) bool {
	caser := cases.Fold()
	return strings.Contains(caser.String(s), caser.String(substr))
}

// SnapshotCache holds classifications for the specialized tables of one
// document, keyed by top-level table position. The position is a stable
// handle for the duration of a run: the engine never adds or removes
// tables.
//
// Lifecycle: populate with CacheAll before any formatter mutates the
// document, then Clear when the run finishes. A lookup miss means "not
// specialized" regardless of what the table's live shading says by then.
type SnapshotCache struct {
	entries map[int]Classification
}

// NewSnapshotCache returns an empty cache.
func NewSnapshotCache() *SnapshotCache {
	return &SnapshotCache{entries: make(map[int]Classification)}
}

// CacheAll classifies every top-level table of doc and stores the
// positive matches. The floating/nested-table exclusions deliberately do
// not apply here: a specialized table may have structure that would
// otherwise exclude it, and the gate check is safe to run on anything.
func (c *SnapshotCache) CacheAll(doc *model.Document) {
	for i, t := range doc.Tables() {
		if cls := Classify(t); cls.Variant != VariantNone {
			c.entries[i] = cls
		}
	}
}

// Lookup returns the cached classification for the table at position i.
func (c *SnapshotCache) Lookup(i int) (Classification, bool) {
	cls, ok := c.entries[i]
	return cls, ok
}

// Len returns the number of cached specialized tables.
func (c *SnapshotCache) Len() int {
	return len(c.entries)
}

// Clear empties the cache. Stale entries must never leak into a later
// run over a different (or re-parsed) document.
func (c *SnapshotCache) Clear() {
	c.entries = make(map[int]Classification)
}
