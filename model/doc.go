// Package model provides the mutable in-memory representation of a
// word-processing document that the formatting engine operates on.
//
// The surrounding application parses the on-disk format into this tree,
// hands it to the engine, and serializes the mutated tree back out. This
// package therefore carries no serialization logic of its own; it exposes
// exactly the accessors and mutators the formatting pipeline needs.
//
// # Document Structure
//
// A [Document] is an ordered sequence of body elements, each either a
// paragraph or a table:
//
//	doc := model.NewDocument()
//	doc.AppendParagraph(p)
//	doc.AppendTable(t)
//
// [BodyElement] is a tagged union: switch on its Kind field and read the
// matching pointer. There is no third case.
//
// # Tables
//
// A [Table] holds ordered [Row] values; each row holds ordered [Cell]
// values. Cells own paragraphs, a shading descriptor, margins, borders, and
// a column span. Tables may be floating (absolutely positioned) or nested
// inside another table's cell; both conditions are visible to callers via
// the Floating field and [Cell.Tables].
//
// # Paragraphs and Runs
//
// A [Paragraph] owns ordered [Inline] content: plain runs, hyperlink
// wrappers, or revision (tracked-change) wrappers. [Paragraph.Runs] flattens
// all three into a single run slice for formatting passes that treat
// wrapped and direct runs alike.
//
// # Numbering
//
// The [Numbering] registry holds reusable list templates ([Definition],
// one [Level] per list depth) and the instances ([Reference]) that bind
// paragraphs to them. Lookup misses resolve to nil rather than errors:
// a dangling numbering id means "no numbering" everywhere in the engine.
package model
