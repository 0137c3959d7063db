// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scout

import (
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/pdiddy/paper-scout/pkg/types"
)

// Placeholder values substituted when the source text omits a field. The
// same rules are spelled out in the structuring prompt; applying them again
// here guarantees the record invariants even when the model ignores them.
const (
	placeholderAuthor   = "Unknown Author"
	placeholderAbstract = "No abstract available."
)

// paperPayload mirrors the JSON shape stage 2 asks the model for.
type paperPayload struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	Year          int      `json:"year"`
	Abstract      string   `json:"abstract"`
	CitationCount int      `json:"citationCount"`
	TLDR          string   `json:"tldr"`
}

// toRecord converts a payload into a PaperRecord with defaults applied:
// authors never empty, year a plausible four-digit value, citation count
// non-negative, tldr falling back to the abstract's first sentence, and a
// stable derived ID when the model supplied none.
func (p paperPayload) toRecord() types.PaperRecord {
	rec := types.PaperRecord{
		ID:            strings.TrimSpace(p.ID),
		Title:         strings.TrimSpace(p.Title),
		Authors:       trimAll(p.Authors),
		Year:          p.Year,
		Abstract:      strings.TrimSpace(p.Abstract),
		CitationCount: p.CitationCount,
		TLDR:          strings.TrimSpace(p.TLDR),
	}

	if len(rec.Authors) == 0 {
		rec.Authors = []string{placeholderAuthor}
	}
	if rec.Year < 1000 || rec.Year > 9999 {
		rec.Year = time.Now().Year()
	}
	if rec.Abstract == "" {
		rec.Abstract = placeholderAbstract
	}
	if rec.CitationCount < 0 {
		rec.CitationCount = 0
	}
	if rec.TLDR == "" {
		rec.TLDR = firstSentence(rec.Abstract)
	}
	if rec.ID == "" {
		rec.ID = stableID(rec.Title, rec.Authors)
	}
	return rec
}

// trimAll trims each author and drops empty entries.
func trimAll(authors []string) []string {
	var out []string
	for _, a := range authors {
		if t := strings.TrimSpace(a); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// firstSentence returns the text up to and including the first period, or
// the whole text when no sentence boundary is found.
func firstSentence(text string) string {
	if i := strings.Index(text, ". "); i >= 0 {
		return text[:i+1]
	}
	return text
}

// stableID derives a deterministic ID from title and authors. The ID is the
// first 12 hex characters of SHA-256 over both.
func stableID(title string, authors []string) string {
	h := sha256.New()
	h.Write([]byte(title))
	for _, a := range authors {
		h.Write([]byte(a))
	}
	return fmt.Sprintf("%x", h.Sum(nil))[:12]
}
