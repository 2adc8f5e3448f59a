package tableformat

import (
	"testing"

	"github.com/ItMeDiaTech/tablekit/model"
)

// markerHeaderRow builds a specialized header row: one accent-shaded cell
// whose text contains the marker phrase.
func markerHeaderRow(span int) *model.Row {
	cell := model.NewCell("High Level Process - Step Overview")
	cell.Shading = &model.Shading{Fill: AccentFill}
	cell.GridSpan = span
	return &model.Row{Cells: []*model.Cell{cell}}
}

// newSpecializedTable builds a table with a marker header row and the
// given data rows, one inner slice of cell texts per row.
func newSpecializedTable(dataRows ...[]string) *model.Table {
	t := &model.Table{}
	t.Rows = append(t.Rows, markerHeaderRow(len(dataRows[0])))
	for _, texts := range dataRows {
		row := &model.Row{}
		for _, text := range texts {
			row.Cells = append(row.Cells, model.NewCell(text))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// newDoc builds a document containing the given tables in order.
func newDoc(tables ...*model.Table) *model.Document {
	doc := model.NewDocument()
	for _, t := range tables {
		doc.AppendTable(t)
	}
	return doc
}

// addDecimalList registers a decimal-at-level-0 definition and one
// instance, returning (definition id, NumID).
func addDecimalList(t *testing.T, doc *model.Document) (int, int) {
	t.Helper()
	defID := doc.Numbering.AddDefinition(&model.Definition{
		Levels: []*model.Level{
			{Index: 0, Format: model.FormatDecimal, Text: "%1."},
			{Index: 1, Format: model.FormatLowerLetter, Text: "%2."},
		},
	})
	return defID, doc.Numbering.NewReference(defID)
}

// addBulletList registers a three-level bullet definition and one
// instance, returning (definition id, NumID).
func addBulletList(t *testing.T, doc *model.Document) (int, int) {
	t.Helper()
	defID := doc.Numbering.AddDefinition(&model.Definition{
		Levels: []*model.Level{
			{Index: 0, Format: model.FormatBullet, Text: "•"},
			{Index: 1, Format: model.FormatBullet, Text: "◦"},
			{Index: 2, Format: model.FormatBullet, Text: "▪"},
		},
	})
	return defID, doc.Numbering.NewReference(defID)
}

// number assigns explicit numbering to a paragraph.
func number(p *model.Paragraph, numID, level int) *model.Paragraph {
	p.Numbering = &model.NumberingRef{NumID: numID, Level: level}
	return p
}

// runFormat runs the engine with defaults over doc.
func runFormat(doc *model.Document) *Stats {
	return Format(doc, nil, DefaultConfig())
}
