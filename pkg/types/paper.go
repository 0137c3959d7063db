// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the paper-scout pipeline.
package types

// PaperRecord holds the structured metadata for one candidate paper. Records
// are constructed only by the structuring stage of the search pipeline and
// are immutable after creation; the caller owns the returned slice.
type PaperRecord struct {
	// ID uniquely identifies the paper within one search result set.
	ID string `json:"id" yaml:"id"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists the paper authors in source order. Never empty: a
	// placeholder author is substituted when the source text names none.
	Authors []string `json:"authors" yaml:"authors"`

	// Year is the four-digit publication year. Defaults to the current
	// year when the source text gives none.
	Year int `json:"year" yaml:"year"`

	// Abstract is the paper abstract, or a placeholder sentence.
	Abstract string `json:"abstract" yaml:"abstract"`

	// CitationCount is the citation count, never negative.
	CitationCount int `json:"citationCount" yaml:"citation_count"`

	// TLDR is a one-sentence summary. Defaults to the first sentence of
	// the abstract.
	TLDR string `json:"tldr" yaml:"tldr"`
}
