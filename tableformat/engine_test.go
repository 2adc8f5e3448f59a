package tableformat

import (
	"bytes"
	"log"
	"reflect"
	"strings"
	"testing"

	"github.com/ItMeDiaTech/tablekit/model"
)

// buildScenarioDoc builds the reference document: a single-column
// specialized table with three data rows, each a full-width cell holding
// one level-0 decimal item, surrounded by ordinary content.
func buildScenarioDoc(t *testing.T) (*model.Document, *model.Table) {
	t.Helper()

	tbl := &model.Table{}
	hdr := model.NewCell("High Level Process - Step Overview")
	hdr.Shading = &model.Shading{Fill: AccentFill}
	tbl.Rows = append(tbl.Rows, &model.Row{Cells: []*model.Cell{hdr}})

	doc := model.NewDocument()
	doc.AppendParagraph(model.NewParagraph("Introduction."))
	doc.AppendTable(tbl)

	_, numID := addDecimalList(t, doc)
	for _, text := range []string{"Open the panel", "Adjust the values", "Save the result"} {
		cell := model.NewCell(text)
		number(cell.Paragraphs[0], numID, 0)
		tbl.Rows = append(tbl.Rows, &model.Row{Cells: []*model.Cell{cell}})
	}
	return doc, tbl
}

func TestScenarioSingleColumnTable(t *testing.T) {
	cfg := DefaultConfig()
	doc, tbl := buildScenarioDoc(t)

	stats := Format(doc, nil, cfg)

	if stats.SingleColumn != 1 || stats.TwoColumn != 0 {
		t.Errorf("variant counts = %d/%d, want 1 single-column", stats.SingleColumn, stats.TwoColumn)
	}

	// Outer four-side accent border, no inner lines.
	b := tbl.Borders
	if b == nil || b.Top == nil || b.Bottom == nil || b.Left == nil || b.Right == nil {
		t.Fatal("outer borders incomplete")
	}
	if b.Top.Color != AccentFill {
		t.Errorf("border color = %q, want accent", b.Top.Color)
	}
	if b.InsideH != nil || b.InsideV != nil {
		t.Error("inner borders must be absent")
	}

	// Header: secondary heading style, left aligned.
	hp := tbl.Rows[0].Cells[0].Paragraphs[0]
	if hp.Style != cfg.HeadingStyle || hp.Alignment != model.AlignLeft {
		t.Errorf("header paragraph style=%q align=%v", hp.Style, hp.Alignment)
	}

	// Every main item bold; separator before items 2 and 3, not item 1.
	for ri := 1; ri <= 3; ri++ {
		cell := tbl.Rows[ri].Cells[0]
		var item *model.Paragraph
		for _, p := range cell.Paragraphs {
			if !p.IsBlank() {
				item = p
			}
		}
		if item == nil {
			t.Fatalf("row %d lost its item", ri)
		}
		if !item.Runs()[0].Bold {
			t.Errorf("row %d main item not bold", ri)
		}

		wantSep := ri > 1
		hasSep := len(cell.Paragraphs) > 1 && cell.Paragraphs[0].IsBlank()
		if hasSep != wantSep {
			t.Errorf("row %d separator = %v, want %v", ri, hasSep, wantSep)
		}
	}
}

func TestIdempotence(t *testing.T) {
	cfg := DefaultConfig()

	build := func(t *testing.T) *model.Document {
		doc, tbl := buildScenarioDoc(t)

		// A two-column specialized table with tips and a bullet sub-list.
		two := newSpecializedTable([]string{"", "tip body"})
		_, decNum := addDecimalList(t, doc)
		_, bulNum := addBulletList(t, doc)
		content := two.Rows[1].Cells[0]
		content.Paragraphs = []*model.Paragraph{
			number(model.NewParagraph("Main step"), decNum, 0),
			number(model.NewParagraph("sub"), bulNum, 0),
		}
		two.Rows[1].Cells[1].Shading = &model.Shading{Fill: SideNoteFill}
		doc.AppendTable(two)

		// An ordinary table with mixed shading plus a 1×1 callout.
		plain := model.NewTable([]string{"Key", "Value"}, []string{"3.", "does things"})
		plain.Rows[1].Cells[1].Shading = &model.Shading{Fill: "CCFFCC"}
		doc.AppendTable(plain)
		doc.AppendTable(model.NewTable([]string{"Callout"}))

		leak := model.NewParagraph("")
		leak.Style = cfg.ListStyle
		doc.AppendParagraph(leak)

		_ = tbl
		return doc
	}

	doc := build(t)
	Format(doc, nil, cfg)

	second := Format(doc, nil, cfg)

	if second.CellsRecolored != 0 {
		t.Errorf("second run recolored %d cells, want 0", second.CellsRecolored)
	}
	if second.HeadingParagraphs != 0 {
		t.Errorf("second run converted %d heading paragraphs, want 0", second.HeadingParagraphs)
	}
	if second.Failures != 0 {
		t.Errorf("second run failures = %d", second.Failures)
	}

	// Full structural stability: a third run sees exactly what the second
	// run left behind.
	snapshot := snapshotDoc(doc)
	Format(doc, nil, cfg)
	if !reflect.DeepEqual(snapshot, snapshotDoc(doc)) {
		t.Error("document changed on a repeat run")
	}
}

// snapshotDoc captures the formatting-relevant state of a document for
// stability comparison.
type paraState struct {
	Style     string
	Align     model.Alignment
	Numbering model.NumberingRef
	Indent    model.Indent
	Runs      []model.Run
}

func snapshotDoc(doc *model.Document) []paraState {
	var out []paraState
	for _, p := range doc.AllParagraphs() {
		st := paraState{Style: p.Style, Align: p.Alignment}
		if p.Numbering != nil {
			st.Numbering = *p.Numbering
		}
		if p.Indent != nil {
			st.Indent = *p.Indent
		}
		for _, r := range p.Runs() {
			st.Runs = append(st.Runs, *r)
		}
		out = append(out, st)
	}
	return out
}

func TestPerTableFailureIsolation(t *testing.T) {
	cfg := DefaultConfig()
	var buf bytes.Buffer
	cfg.Logger = log.New(&buf, "", 0)

	broken := model.NewTable([]string{"a", "b"}, []string{"c", "d"})
	broken.Rows = append(broken.Rows, &model.Row{}) // zero-cell row
	healthy := model.NewTable([]string{"x", "y"}, []string{"1", "2"})

	stats := Format(newDoc(broken, healthy), nil, cfg)

	if stats.Failures != 1 {
		t.Errorf("Failures = %d, want 1", stats.Failures)
	}
	if stats.TablesProcessed != 1 {
		t.Errorf("TablesProcessed = %d, want 1 (healthy table still runs)", stats.TablesProcessed)
	}
	if !strings.Contains(buf.String(), "no cells") {
		t.Errorf("failure not logged: %q", buf.String())
	}
	if healthy.Rows[0].Cells[0].Shading == nil {
		t.Error("healthy table left unformatted")
	}
}

func TestFormatNilDocument(t *testing.T) {
	stats := Format(nil, nil, DefaultConfig())
	if stats == nil || stats.TablesProcessed != 0 {
		t.Errorf("nil document stats = %+v", stats)
	}
}

func TestStatsCounting(t *testing.T) {
	doc, _ := buildScenarioDoc(t)
	plain := model.NewTable([]string{"h1", "h2"}, []string{"a", "b"})
	doc.AppendTable(plain)
	floating := model.NewTable([]string{"f"}, []string{"g"})
	floating.Floating = true
	doc.AppendTable(floating)

	stats := runFormat(doc)

	if stats.TablesProcessed != 2 {
		t.Errorf("TablesProcessed = %d, want 2", stats.TablesProcessed)
	}
	if stats.TablesSkipped != 1 {
		t.Errorf("TablesSkipped = %d, want 1", stats.TablesSkipped)
	}
	if stats.SingleColumn != 1 {
		t.Errorf("SingleColumn = %d, want 1", stats.SingleColumn)
	}
	if stats.HeadersStyled != 2 {
		t.Errorf("HeadersStyled = %d, want 2", stats.HeadersStyled)
	}
	if stats.CellsRecolored == 0 {
		t.Error("CellsRecolored = 0, want > 0")
	}
}
