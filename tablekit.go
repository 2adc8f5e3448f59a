// Package tablekit normalizes the visual formatting of tables in
// word-processing documents according to organization style rules.
//
// The heavy lifting lives in the tableformat package; this package is the
// entry point the surrounding application calls:
//
//	saved := tableformat.CaptureNumbering(doc, "ListParagraph")
//	// ... other pipeline stages mutate doc ...
//	stats := tablekit.FormatTables(doc, tablekit.WithSnapshot(saved))
//
// The document tree itself is defined in the model package.
package tablekit

import (
	"log"

	"github.com/ItMeDiaTech/tablekit/model"
	"github.com/ItMeDiaTech/tablekit/tableformat"
)

// Option configures a FormatTables call.
type Option func(*settings)

type settings struct {
	cfg   tableformat.Config
	saved tableformat.SavedNumbering
}

// WithConfig replaces the default engine configuration.
func WithConfig(cfg tableformat.Config) Option {
	return func(s *settings) {
		s.cfg = cfg
	}
}

// WithSnapshot supplies the numbering snapshot captured before the
// surrounding pipeline ran, enabling numbering restoration.
func WithSnapshot(saved tableformat.SavedNumbering) Option {
	return func(s *settings) {
		s.saved = saved
	}
}

// WithLogger directs per-table failure reports to l.
func WithLogger(l *log.Logger) Option {
	return func(s *settings) {
		s.cfg.Logger = l
	}
}

// FormatTables applies the organization table styles to every table in
// doc, mutating the tree in place, and returns aggregate counters. It
// never fails: malformed tables are skipped and counted.
func FormatTables(doc *model.Document, opts ...Option) *tableformat.Stats {
	s := settings{cfg: tableformat.DefaultConfig()}
	for _, opt := range opts {
		opt(&s)
	}
	return tableformat.Format(doc, s.saved, s.cfg)
}
