// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scout

import (
	"bytes"
	"text/template"
	"time"

	"github.com/pdiddy/paper-scout/internal/gateway"
)

// retrievalPromptTmpl is the stage-1 prompt. It deliberately asks for plain
// prose rather than JSON: retrieval recall matters more than format
// compliance at this point, and the structuring stage handles the coercion.
var retrievalPromptTmpl = template.Must(template.New("retrieval").Parse(`You are an academic research assistant with live web search available. Find up to {{.Max}} real, published academic papers relevant to the research query below.

For each paper, write one short plain-prose block with these labeled lines:
Title: the full paper title
Authors: comma-separated author names
Year: four-digit publication year
Abstract: one or two sentences summarizing the paper
Citations: approximate citation count as a number

Separate papers with a blank line. Respond in plain prose only; do NOT use JSON, Markdown tables, or code formatting. If you find no relevant papers, respond with nothing at all.

Research query: {{.Query}}
`))

// structuringPromptTmpl is the stage-2 prompt. The raw retrieval text is
// embedded verbatim and the default-substitution rules are spelled out so
// the model fills gaps instead of dropping papers.
var structuringPromptTmpl = template.Must(template.New("structuring").Parse(`Convert the following research notes into a JSON array. Each element describes one paper and must contain ALL of these fields:

- "id": a short unique identifier; if the notes give none, derive a lowercase slug from the title
- "title": the paper title
- "authors": an array of author name strings; if no authors are named, use ["Unknown Author"]
- "year": the four-digit publication year as an integer; if unknown, use {{.Year}}
- "abstract": the abstract text; if none is given, use "No abstract available."
- "citationCount": the citation count as a non-negative integer; if unknown, use 0
- "tldr": a one-sentence summary; if none is given, use the first sentence of the abstract

Respond with ONLY the JSON array. No surrounding text, no code fences. If the notes describe no papers, respond with [].

Research notes:
{{.Raw}}
`))

// paperListSchema is the stage-2 response schema: an array of objects with
// all seven record fields mandatory.
var paperListSchema = &gateway.Schema{
	Type: "array",
	Items: &gateway.Schema{
		Type: "object",
		Properties: map[string]*gateway.Schema{
			"id":            {Type: "string"},
			"title":         {Type: "string"},
			"authors":       {Type: "array", Items: &gateway.Schema{Type: "string"}},
			"year":          {Type: "integer"},
			"abstract":      {Type: "string"},
			"citationCount": {Type: "integer"},
			"tldr":          {Type: "string"},
		},
		Required: []string{"id", "title", "authors", "year", "abstract", "citationCount", "tldr"},
	},
}

func renderRetrievalPrompt(query string, max int) (string, error) {
	var buf bytes.Buffer
	err := retrievalPromptTmpl.Execute(&buf, struct {
		Query string
		Max   int
	}{Query: query, Max: max})
	return buf.String(), err
}

func renderStructuringPrompt(raw string) (string, error) {
	var buf bytes.Buffer
	err := structuringPromptTmpl.Execute(&buf, struct {
		Raw  string
		Year int
	}{Raw: raw, Year: time.Now().Year()})
	return buf.String(), err
}
