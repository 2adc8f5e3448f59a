package tableformat

import (
	"log"

	"github.com/ItMeDiaTech/tablekit/model"
)

// Fixed fill colors that gate specialized-layout classification. These are
// part of the organization template, not configuration: a table is only
// specialized when it was authored with exactly these fills.
const (
	// AccentFill is the header accent color of specialized tables.
	AccentFill = "1F4E79"

	// SideNoteFill is the side-note (tips) column color.
	SideNoteFill = "FFF2CC"
)

// markerPhrase must appear (case-insensitively) in a specialized table's
// header cell.
const markerPhrase = "high level process"

// Known hyperlink text colors. A run carrying one of these is treated as a
// hyperlink even without the character style.
const (
	hyperlinkColor       = "0563C1"
	hyperlinkColorLegacy = "0000FF"
)

// IndentLevel describes one rung of the list indentation ladder, in twips
// from the margin: where the number/bullet symbol sits and where the text
// starts.
type IndentLevel struct {
	Level  int
	Symbol int
	Text   int
}

// Config holds the engine's named options.
type Config struct {
	// HeaderFill is applied to 1×1 tables that qualify as headers.
	HeaderFill string

	// OtherFill is applied to header rows and shaded data cells of
	// ordinary tables.
	OtherFill string

	// Heading font applied to header rows and 1×1 header tables.
	HeadingFont string
	HeadingSize float64

	// Body font applied to normalized data cells and list content.
	BodyFont string
	BodySize float64

	// BodyAlignment is the alignment given to paragraphs the engine
	// inserts or resets to body text.
	BodyAlignment model.Alignment

	// PreserveBold suppresses forced bold on shaded data cells.
	PreserveBold bool

	// PreserveCenter suppresses forced centering on shaded data cells.
	PreserveCenter bool

	// Paragraph spacing applied to formatted paragraphs, twips.
	SpacingBefore int
	SpacingAfter  int

	// LineSpacing is the line-spacing multiplier (1.0 = single).
	LineSpacing float64

	// Cell padding for the two table classes, twips.
	GenericPadding     model.Margins
	SpecializedPadding model.Margins

	// IndentLevels is the per-level indentation ladder for list items.
	IndentLevels []IndentLevel

	// Style names used by the surrounding document template.
	HeadingStyle   string // secondary heading, e.g. "Heading2"
	BodyStyle      string // plain body text
	ListStyle      string // generic list paragraph style
	HyperlinkStyle string // hyperlink character style

	// Logger receives per-table failure reports. Nil disables logging.
	Logger *log.Logger
}

// DefaultConfig returns the organization defaults. Callers adjust fields
// as needed before passing the result to Format.
func DefaultConfig() Config {
	return Config{
		HeaderFill:    "D9E2F3",
		OtherFill:     "F2F2F2",
		HeadingFont:   "Arial",
		HeadingSize:   12,
		BodyFont:      "Arial",
		BodySize:      11,
		BodyAlignment: model.AlignLeft,
		SpacingBefore: 0,
		SpacingAfter:  60,
		LineSpacing:   1.0,
		GenericPadding: model.Margins{
			Top: 40, Bottom: 40, Left: 115, Right: 115,
		},
		SpecializedPadding: model.Margins{
			Top: 0, Bottom: 0, Left: 115, Right: 115,
		},
		IndentLevels:   defaultIndentLevels(),
		HeadingStyle:   "Heading2",
		BodyStyle:      "BodyText",
		ListStyle:      "ListParagraph",
		HyperlinkStyle: "Hyperlink",
	}
}

func defaultIndentLevels() []IndentLevel {
	levels := make([]IndentLevel, 9)
	for i := range levels {
		levels[i] = IndentLevel{
			Level:  i,
			Symbol: 360 + 360*i,
			Text:   720 + 360*i,
		}
	}
	return levels
}

// clone creates a deep copy of the config so the engine never aliases
// caller-owned slices.
func (c Config) clone() Config {
	out := c
	if c.IndentLevels != nil {
		out.IndentLevels = make([]IndentLevel, len(c.IndentLevels))
		copy(out.IndentLevels, c.IndentLevels)
	}
	return out
}

// normalized fills in zero values that would otherwise break formatting,
// so a partially populated Config still behaves sensibly.
func (c Config) normalized() Config {
	def := DefaultConfig()
	out := c.clone()
	if out.HeaderFill == "" {
		out.HeaderFill = def.HeaderFill
	}
	if out.OtherFill == "" {
		out.OtherFill = def.OtherFill
	}
	if out.HeadingFont == "" {
		out.HeadingFont = def.HeadingFont
	}
	if out.HeadingSize == 0 {
		out.HeadingSize = def.HeadingSize
	}
	if out.BodyFont == "" {
		out.BodyFont = def.BodyFont
	}
	if out.BodySize == 0 {
		out.BodySize = def.BodySize
	}
	if out.LineSpacing == 0 {
		out.LineSpacing = def.LineSpacing
	}
	if len(out.IndentLevels) == 0 {
		out.IndentLevels = def.IndentLevels
	}
	if out.HeadingStyle == "" {
		out.HeadingStyle = def.HeadingStyle
	}
	if out.BodyStyle == "" {
		out.BodyStyle = def.BodyStyle
	}
	if out.ListStyle == "" {
		out.ListStyle = def.ListStyle
	}
	if out.HyperlinkStyle == "" {
		out.HyperlinkStyle = def.HyperlinkStyle
	}
	return out
}

// indentFor returns the indentation rung for a visual list level, clamped
// to the deepest configured level.
func (c *Config) indentFor(level int) IndentLevel {
	if len(c.IndentLevels) == 0 {
		return IndentLevel{Level: level, Symbol: 360, Text: 720}
	}
	for _, il := range c.IndentLevels {
		if il.Level == level {
			return il
		}
	}
	last := c.IndentLevels[len(c.IndentLevels)-1]
	if level < c.IndentLevels[0].Level {
		return c.IndentLevels[0]
	}
	return last
}
