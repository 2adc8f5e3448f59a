package model

import "strings"

// Alignment represents paragraph justification.
type Alignment int

const (
	AlignInherit Alignment = iota // no explicit justification set
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "both"
	default:
		return "inherit"
	}
}

// Spacing represents paragraph spacing in twips, with Line as a multiplier
// (1.0 = single spacing).
type Spacing struct {
	Before int
	After  int
	Line   float64
}

// Indent represents paragraph indentation in twips. Hanging takes
// precedence over FirstLine when both are set, as in the source format.
type Indent struct {
	Left      int
	FirstLine int
	Hanging   int
}

// NumberingRef binds a paragraph to a numbering instance and a depth
// within it.
type NumberingRef struct {
	NumID int
	Level int
}

// InlineKind discriminates the members of the Inline union.
type InlineKind int

const (
	InlineRun InlineKind = iota
	InlineHyperlink
	InlineRevision
)

// Inline is one entry of paragraph content: a direct run, a hyperlink
// wrapper, or a revision (tracked change) wrapper. Exactly one pointer is
// non-nil, selected by Kind.
type Inline struct {
	Kind      InlineKind
	Run       *Run
	Hyperlink *Hyperlink
	Revision  *Revision
}

// Run is a span of text with uniform character formatting.
type Run struct {
	Text       string
	LineBreaks int // embedded line breaks following the text

	Font      string
	Size      float64 // points; 0 = inherit
	Bold      bool
	Italic    bool
	Color     string // hex RGB without '#', "" = automatic
	Underline string // "" = none, "single", "double", ...
	Style     string // named character style, e.g. "Hyperlink"

	Drawing *Drawing // non-nil when the run embeds an image
}

// Drawing marks an embedded image. The engine never decodes image data; it
// only needs to know an image is present.
type Drawing struct {
	AltText string
}

// Hyperlink wraps the runs of a link. TargetID refers to a relationship
// owned by the surrounding application.
type Hyperlink struct {
	TargetID string
	Runs     []*Run
}

// Revision wraps runs inside a tracked change.
type Revision struct {
	Author string
	Date   string
	Runs   []*Run
}

// Paragraph is a block of inline content with paragraph-level formatting.
type Paragraph struct {
	Content   []Inline
	Style     string
	Numbering *NumberingRef
	Alignment Alignment
	Spacing   *Spacing
	Indent    *Indent
}

// NewParagraph returns a paragraph containing a single run with the given
// text. Empty text yields a paragraph with no content.
func NewParagraph(text string) *Paragraph {
	p := &Paragraph{}
	if text != "" {
		p.Content = []Inline{{Kind: InlineRun, Run: &Run{Text: text}}}
	}
	return p
}

// AddRun appends r as direct paragraph content.
func (p *Paragraph) AddRun(r *Run) {
	p.Content = append(p.Content, Inline{Kind: InlineRun, Run: r})
}

// AddHyperlink appends h as paragraph content.
func (p *Paragraph) AddHyperlink(h *Hyperlink) {
	p.Content = append(p.Content, Inline{Kind: InlineHyperlink, Hyperlink: h})
}

// AddRevision appends rev as paragraph content.
func (p *Paragraph) AddRevision(rev *Revision) {
	p.Content = append(p.Content, Inline{Kind: InlineRevision, Revision: rev})
}

// Runs returns every run of the paragraph in order, flattening hyperlink
// and revision wrappers.
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	for i := range p.Content {
		switch p.Content[i].Kind {
		case InlineRun:
			runs = append(runs, p.Content[i].Run)
		case InlineHyperlink:
			runs = append(runs, p.Content[i].Hyperlink.Runs...)
		case InlineRevision:
			runs = append(runs, p.Content[i].Revision.Runs...)
		}
	}
	return runs
}

// DirectRuns returns only the runs that are direct paragraph children,
// excluding runs inside hyperlink or revision wrappers.
func (p *Paragraph) DirectRuns() []*Run {
	var runs []*Run
	for i := range p.Content {
		if p.Content[i].Kind == InlineRun {
			runs = append(runs, p.Content[i].Run)
		}
	}
	return runs
}

// IsWrapped reports whether r belongs to one of p's hyperlink or revision
// wrappers rather than being a direct child.
func (p *Paragraph) IsWrapped(r *Run) bool {
	for i := range p.Content {
		var wrapped []*Run
		switch p.Content[i].Kind {
		case InlineHyperlink:
			wrapped = p.Content[i].Hyperlink.Runs
		case InlineRevision:
			wrapped = p.Content[i].Revision.Runs
		default:
			continue
		}
		for _, wr := range wrapped {
			if wr == r {
				return true
			}
		}
	}
	return false
}

// Text returns the concatenated text of every run, wrappers included.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs() {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// LineBreaks returns the total count of embedded line breaks across all
// runs.
func (p *Paragraph) LineBreaks() int {
	n := 0
	for _, r := range p.Runs() {
		n += r.LineBreaks
	}
	return n
}

// IsBlank reports whether the paragraph has no text, no image, and no
// numbering. Blank paragraphs act as visual separators.
func (p *Paragraph) IsBlank() bool {
	if p.Numbering != nil {
		return false
	}
	for _, r := range p.Runs() {
		if strings.TrimSpace(r.Text) != "" || r.Drawing != nil {
			return false
		}
	}
	return true
}

// HasDrawing reports whether any run of the paragraph embeds an image.
func (p *Paragraph) HasDrawing() bool {
	for _, r := range p.Runs() {
		if r.Drawing != nil {
			return true
		}
	}
	return false
}
