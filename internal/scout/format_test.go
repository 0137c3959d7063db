package scout

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pdiddy/paper-scout/pkg/types"
)

func sampleRecords() []types.PaperRecord {
	return []types.PaperRecord{
		{
			ID: "a1", Title: "A Very Long Paper Title About Transformer Architectures And Beyond",
			Authors: []string{"Alice Author", "Bob Builder"}, Year: 2021,
			Abstract: "Abs.", CitationCount: 42, TLDR: "Tl.",
		},
		{
			ID: "b2", Title: "Short Title", Authors: []string{"Carol"}, Year: 1999,
			Abstract: "Abs.", CitationCount: 0, TLDR: "Tl.",
		},
	}
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(sampleRecords(), &buf)
	out := buf.String()

	if !strings.Contains(out, "Short Title") {
		t.Error("table missing title")
	}
	if !strings.Contains(out, "Alice Author et al.") && !strings.Contains(out, "et al.") {
		t.Error("table missing multi-author abbreviation")
	}
	if !strings.Contains(out, "2 papers") {
		t.Error("table missing summary line")
	}
	if strings.Contains(out, "A Very Long Paper Title About Transformer Architectures And Beyond") {
		t.Error("long title was not truncated")
	}
}

func TestFormatTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(nil, &buf)
	if !strings.Contains(buf.String(), "No papers found.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestFormatJSONRoundTrip(t *testing.T) {
	records := sampleRecords()

	var buf bytes.Buffer
	if err := FormatJSON(records, &buf); err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var decoded []types.PaperRecord
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if len(decoded) != len(records) {
		t.Fatalf("got %d records, want %d", len(decoded), len(records))
	}
	for i := range records {
		if decoded[i].ID != records[i].ID || decoded[i].Title != records[i].Title ||
			decoded[i].CitationCount != records[i].CitationCount {
			t.Errorf("record %d mismatch: %+v", i, decoded[i])
		}
	}
}
