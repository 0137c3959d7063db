// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/pdiddy/paper-scout/internal/gateway"
	"github.com/pdiddy/paper-scout/pkg/types"
)

var suggestionsPromptTmpl = template.Must(template.New("suggestions").Parse(`Suggest 5 related research queries a researcher exploring the topic below might search for next. Keep each suggestion under ten words.

Respond with ONLY a JSON array of strings. No surrounding text, no code fences.

Topic: {{.Query}}
`))

var comparisonPromptTmpl = template.Must(template.New("comparison").Parse(`You are an expert research analyst. Compare the academic papers listed below.

Respond with ONLY a JSON object with these fields, all required:
- "summary": a prose overview of how the papers relate
- "comparison": an object with string fields "methodology", "keyFindings", "contributions", "contradictions", and "researchGaps"

No surrounding text, no code fences.

Papers:
{{.Papers}}
`))

var graphPromptTmpl = template.Must(template.New("graph").Parse(`Build a knowledge graph connecting the academic papers listed below through their shared methods, concepts, and findings.

Respond with ONLY a JSON object with:
- "nodes": an array of {"id", "label", "group"} objects; "group" is a category such as "paper", "method", or "concept"; every "id" must be unique
- "links": an array of {"source", "target", "label"} objects; "source" and "target" must reference node ids from "nodes"

No surrounding text, no code fences.

Papers:
{{.Papers}}
`))

var analysisPromptTmpl = template.Must(template.New("analysis").Parse(`You are an expert research analyst. Analyze the academic paper below in depth.

Respond with ONLY a JSON object with string fields "summary", "keyConcepts", "methodology", "contributions", and "futureWork", all required. No surrounding text, no code fences.

Paper:
{{.Paper}}
`))

var suggestionsSchema = &gateway.Schema{
	Type:  "array",
	Items: &gateway.Schema{Type: "string"},
}

var comparisonSchema = &gateway.Schema{
	Type: "object",
	Properties: map[string]*gateway.Schema{
		"summary": {Type: "string"},
		"comparison": {
			Type: "object",
			Properties: map[string]*gateway.Schema{
				"methodology":    {Type: "string"},
				"keyFindings":    {Type: "string"},
				"contributions":  {Type: "string"},
				"contradictions": {Type: "string"},
				"researchGaps":   {Type: "string"},
			},
			Required: []string{"methodology", "keyFindings", "contributions", "contradictions", "researchGaps"},
		},
	},
	Required: []string{"summary", "comparison"},
}

var graphSchema = &gateway.Schema{
	Type: "object",
	Properties: map[string]*gateway.Schema{
		"nodes": {
			Type: "array",
			Items: &gateway.Schema{
				Type: "object",
				Properties: map[string]*gateway.Schema{
					"id":    {Type: "string"},
					"label": {Type: "string"},
					"group": {Type: "string"},
				},
				Required: []string{"id", "label", "group"},
			},
		},
		"links": {
			Type: "array",
			Items: &gateway.Schema{
				Type: "object",
				Properties: map[string]*gateway.Schema{
					"source": {Type: "string"},
					"target": {Type: "string"},
					"label":  {Type: "string"},
				},
				Required: []string{"source", "target", "label"},
			},
		},
	},
	Required: []string{"nodes", "links"},
}

var analysisSchema = &gateway.Schema{
	Type: "object",
	Properties: map[string]*gateway.Schema{
		"summary":       {Type: "string"},
		"keyConcepts":   {Type: "string"},
		"methodology":   {Type: "string"},
		"contributions": {Type: "string"},
		"futureWork":    {Type: "string"},
	},
	Required: []string{"summary", "keyConcepts", "methodology", "contributions", "futureWork"},
}

func renderSuggestionsPrompt(query string) (string, error) {
	var buf bytes.Buffer
	err := suggestionsPromptTmpl.Execute(&buf, struct{ Query string }{Query: query})
	return buf.String(), err
}

func renderComparisonPrompt(papers []types.PaperRecord) (string, error) {
	var buf bytes.Buffer
	err := comparisonPromptTmpl.Execute(&buf, struct{ Papers string }{Papers: formatPapers(papers)})
	return buf.String(), err
}

func renderGraphPrompt(papers []types.PaperRecord) (string, error) {
	var buf bytes.Buffer
	err := graphPromptTmpl.Execute(&buf, struct{ Papers string }{Papers: formatPapers(papers)})
	return buf.String(), err
}

func renderAnalysisPrompt(paper types.PaperRecord) (string, error) {
	var buf bytes.Buffer
	err := analysisPromptTmpl.Execute(&buf, struct{ Paper string }{Paper: formatPaper(paper, 0)})
	return buf.String(), err
}

// formatPapers renders paper metadata as a numbered plain-text list for
// embedding in prompts.
func formatPapers(papers []types.PaperRecord) string {
	var b strings.Builder
	for i, p := range papers {
		b.WriteString(formatPaper(p, i+1))
		b.WriteString("\n")
	}
	return b.String()
}

func formatPaper(p types.PaperRecord, num int) string {
	var b strings.Builder
	if num > 0 {
		fmt.Fprintf(&b, "%d. ", num)
	}
	fmt.Fprintf(&b, "%q (%d) by %s\n", p.Title, p.Year, strings.Join(p.Authors, ", "))
	fmt.Fprintf(&b, "   Citations: %d\n", p.CitationCount)
	fmt.Fprintf(&b, "   Abstract: %s\n", p.Abstract)
	return b.String()
}
