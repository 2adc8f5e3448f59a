// Package tableformat normalizes the visual formatting of tables in a
// word-processing document according to organization style rules.
//
// The engine runs as one synchronous pass inside a larger document
// pipeline. It classifies every table, then applies variant-specific
// shading, border, font, numbering, and spacing transforms while leaving
// unrelated content untouched.
//
// # Classification
//
// [Classify] inspects a table's shape, header shading, and header text and
// assigns a [Variant]: not a candidate, single-column, or two-column.
// Because later formatting rewrites the very shading classification reads,
// classification runs over all tables up front and the results are held in
// a [SnapshotCache] keyed by table position. All later stages consult the
// cache, never live shading. Running formatters before caching silently
// misclassifies every specialized table as generic, so [Format] always
// populates the cache before mutating anything.
//
// # Formatting
//
// Ordinary tables (and 1×1 callout tables) receive the generic uniformity
// rules: forced header shading, normalized fonts, bold and centered header
// cells. The two specialized layouts receive accent borders, heading-style
// header rows, side-note column shading, and list-aware content rules.
//
// # Numbering
//
// Specialized tables get their ordered lists repaired and reclassified:
// the dominant decimal list is discovered, bullet-formatted sub-lists are
// rewritten to lettered/roman/upper-letter sequences, and fallback
// definitions are synthesized when no explicit numbering survived earlier
// pipeline stages. A [SavedNumbering] snapshot taken before the whole
// pipeline (see [CaptureNumbering]) lets the engine restore numbering that
// unrelated stages stripped or reassigned.
//
// # Usage
//
//	saved := tableformat.CaptureNumbering(doc, "ListParagraph")
//	// ... unrelated pipeline stages run here ...
//	stats := tableformat.Format(doc, saved, tableformat.DefaultConfig())
//
// Every failure is isolated to the table being processed; the engine never
// aborts the surrounding pipeline and reports only aggregate [Stats].
package tableformat
