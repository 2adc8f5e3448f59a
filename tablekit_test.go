package tablekit

import (
	"testing"

	"github.com/ItMeDiaTech/tablekit/model"
	"github.com/ItMeDiaTech/tablekit/tableformat"
)

func TestFormatTablesDefaults(t *testing.T) {
	doc := model.NewDocument()
	doc.AppendTable(model.NewTable([]string{"Name", "Value"}, []string{"a", "1"}))

	stats := FormatTables(doc)

	if stats.TablesProcessed != 1 {
		t.Fatalf("TablesProcessed = %d, want 1", stats.TablesProcessed)
	}
	cell := doc.Tables()[0].Rows[0].Cells[0]
	if cell.Shading == nil || cell.Shading.Fill != tableformat.DefaultConfig().OtherFill {
		t.Errorf("header cell fill = %v, want default other fill", cell.Shading)
	}
}

func TestFormatTablesWithOptions(t *testing.T) {
	doc := model.NewDocument()
	doc.AppendTable(model.NewTable([]string{"Name"}, []string{"a"}))

	cfg := tableformat.DefaultConfig()
	cfg.OtherFill = "EEEEEE"
	saved := tableformat.CaptureNumbering(doc, cfg.ListStyle)

	stats := FormatTables(doc, WithConfig(cfg), WithSnapshot(saved))

	if stats.TablesProcessed != 1 {
		t.Fatalf("TablesProcessed = %d, want 1", stats.TablesProcessed)
	}
	cell := doc.Tables()[0].Rows[0].Cells[0]
	if cell.Shading.Fill != "EEEEEE" {
		t.Errorf("header fill = %q, want configured override", cell.Shading.Fill)
	}
}
