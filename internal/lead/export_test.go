package lead

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"gorm.io/gorm"

	"luxrealty_backend/internal/model"
)

func TestExportCSV_RowCountAndQuoting(t *testing.T) {
	clients := []model.Client{
		{FullName: "John Doe", Email: "john@example.com", Phone: "+1234567890", Language: "en", ProjectSelected: "david-residence", Message: "Interested in a 3-bedroom apartment", Status: "new"},
		{FullName: "Marie Dupont", Email: "marie@example.com", Phone: "+33123456789", Language: "fr", Status: "contacted"},
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, clients); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != len(clients)+1 {
		t.Fatalf("expected %d lines, got %d", len(clients)+1, len(lines))
	}

	if lines[0] != `"Name","Email","Phone","Language","Project","Status","Message","Created"` {
		t.Fatalf("unexpected header: %s", lines[0])
	}

	for i, line := range lines {
		cells := strings.Split(line, ",")
		if len(cells) != len(CSVHeader) {
			t.Fatalf("line %d: expected %d cells, got %d", i, len(CSVHeader), len(cells))
		}
		for j, cell := range cells {
			if !strings.HasPrefix(cell, `"`) || !strings.HasSuffix(cell, `"`) {
				t.Fatalf("line %d cell %d not quoted: %s", i, j, cell)
			}
		}
	}
}

func TestExportCSV_EscapesQuotesAndCommas(t *testing.T) {
	clients := []model.Client{
		{FullName: `Bob "The Builder" Stone`, Email: "bob@example.com", Phone: "+1", Language: "en", Message: "Needs 3 rooms, garden, and parking", Status: "new"},
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, clients); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"Bob ""The Builder"" Stone"`) {
		t.Fatalf("embedded quotes not doubled: %s", out)
	}
	if !strings.Contains(out, `"Needs 3 rooms, garden, and parking"`) {
		t.Fatalf("comma-bearing message not kept in one cell: %s", out)
	}
}

func TestExportCSV_EmptyView(t *testing.T) {
	var buf bytes.Buffer
	if err := ExportCSV(&buf, nil); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected header only, got %d lines", len(lines))
	}
}

func TestExportCSV_CreatedColumn(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	clients := []model.Client{
		{Model: gorm.Model{CreatedAt: created}, FullName: "John Doe", Email: "j@e.com", Phone: "+1", Language: "en", Status: "new"},
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, clients); err != nil {
		t.Fatalf("ExportCSV failed: %v", err)
	}
	if !strings.Contains(buf.String(), `"2024-01-15 10:30:00"`) {
		t.Fatalf("created timestamp missing: %s", buf.String())
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 3, 7, 18, 45, 0, 0, time.UTC)
	if got := ExportFilename(now); got != "clients_2024-03-07.csv" {
		t.Fatalf("expected clients_2024-03-07.csv, got %s", got)
	}
}
