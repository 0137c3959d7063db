// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scout

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// FormatTable writes records as a human-readable table to w.
func FormatTable(records []types.PaperRecord, w io.Writer) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No papers found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-56s  %-22s  %-4s  %s\n",
		"Rank", "Title", "Authors", "Year", "Cites")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for i, r := range records {
		title := truncate(r.Title, 56)
		fmt.Fprintf(w, "%-4d  %-56s  %-22s  %-4d  %d\n",
			i+1, title, formatAuthors(r.Authors), r.Year, r.CitationCount)
	}

	fmt.Fprintf(w, "\n%d papers\n", len(records))
}

// FormatJSON writes records as indented JSON to w.
func FormatJSON(records []types.PaperRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

func formatAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return truncate(authors[0], 22)
	default:
		return truncate(authors[0], 16) + " et al."
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
