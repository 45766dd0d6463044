package core

import (
	"bytes"
	"strings"
	"testing"
)

func sampleView() RegistrationsView {
	return RegistrationsView{
		Headers: []string{"Name", "Phone", "Email"},
		Rows: [][]string{
			{"Sam", "01012345678", "sam@x.com"},
			{"Lee, Jr.", "01098765432", "lee@x.com"},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleView()); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("csv has %d lines, want 3", len(lines))
	}
	if lines[0] != "Name,Phone,Email" {
		t.Errorf("csv header = %q", lines[0])
	}
	// Cells containing commas must be quoted.
	if !strings.Contains(lines[2], `"Lee, Jr."`) {
		t.Errorf("csv row = %q, want quoted name", lines[2])
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleView()); err != nil {
		t.Fatalf("WriteXLSX() error = %v", err)
	}
	// XLSX files are zip archives; checking the magic bytes is enough here.
	if buf.Len() < 4 || buf.Bytes()[0] != 'P' || buf.Bytes()[1] != 'K' {
		t.Error("output is not a zip archive")
	}
}
