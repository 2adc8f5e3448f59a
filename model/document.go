package model

// BodyElementKind discriminates the members of the BodyElement union.
type BodyElementKind int

const (
	KindParagraph BodyElementKind = iota
	KindTable
)

func (k BodyElementKind) String() string {
	switch k {
	case KindParagraph:
		return "Paragraph"
	case KindTable:
		return "Table"
	default:
		return "Unknown"
	}
}

// BodyElement is one entry in the document body: a paragraph or a table.
// Exactly one of Paragraph/Table is non-nil, selected by Kind.
type BodyElement struct {
	Kind      BodyElementKind
	Paragraph *Paragraph
	Table     *Table
}

// Document is the root of the in-memory tree: the ordered body elements
// plus the numbering registry shared by all paragraphs.
type Document struct {
	Elements  []BodyElement
	Numbering *Numbering
}

// NewDocument returns an empty document with an initialized numbering
// registry.
func NewDocument() *Document {
	return &Document{
		Numbering: NewNumbering(),
	}
}

// AppendParagraph appends p to the document body.
func (d *Document) AppendParagraph(p *Paragraph) {
	d.Elements = append(d.Elements, BodyElement{Kind: KindParagraph, Paragraph: p})
}

// AppendTable appends t to the document body.
func (d *Document) AppendTable(t *Table) {
	d.Elements = append(d.Elements, BodyElement{Kind: KindTable, Table: t})
}

// Tables returns every top-level table in body order. Tables nested inside
// cells are not included; callers reach those through Cell.Tables.
func (d *Document) Tables() []*Table {
	var tables []*Table
	for i := range d.Elements {
		if d.Elements[i].Kind == KindTable {
			tables = append(tables, d.Elements[i].Table)
		}
	}
	return tables
}

// Paragraphs returns every top-level body paragraph in order. Paragraphs
// inside table cells are not included.
func (d *Document) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for i := range d.Elements {
		if d.Elements[i].Kind == KindParagraph {
			paras = append(paras, d.Elements[i].Paragraph)
		}
	}
	return paras
}

// AllParagraphs returns every paragraph in the document: body paragraphs
// and the paragraphs of every table cell, including nested tables, in
// document order.
func (d *Document) AllParagraphs() []*Paragraph {
	var paras []*Paragraph
	for i := range d.Elements {
		switch d.Elements[i].Kind {
		case KindParagraph:
			paras = append(paras, d.Elements[i].Paragraph)
		case KindTable:
			paras = append(paras, tableParagraphs(d.Elements[i].Table)...)
		}
	}
	return paras
}

func tableParagraphs(t *Table) []*Paragraph {
	var paras []*Paragraph
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			paras = append(paras, cell.Paragraphs...)
			for _, nested := range cell.Tables {
				paras = append(paras, tableParagraphs(nested)...)
			}
		}
	}
	return paras
}
