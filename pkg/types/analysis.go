// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ComparisonResult holds a comparative analysis across several papers.
// Every field is required; a response missing any of them is rejected.
type ComparisonResult struct {
	// Summary is a prose overview of how the papers relate.
	Summary string `json:"summary" yaml:"summary"`

	// Comparison breaks the analysis down by aspect.
	Comparison ComparisonAspects `json:"comparison" yaml:"comparison"`
}

// ComparisonAspects holds the per-aspect comparison text.
type ComparisonAspects struct {
	Methodology    string `json:"methodology" yaml:"methodology"`
	KeyFindings    string `json:"keyFindings" yaml:"key_findings"`
	Contributions  string `json:"contributions" yaml:"contributions"`
	Contradictions string `json:"contradictions" yaml:"contradictions"`
	ResearchGaps   string `json:"researchGaps" yaml:"research_gaps"`
}

// GraphNode is one concept or paper in a knowledge graph.
type GraphNode struct {
	// ID uniquely identifies the node within the graph.
	ID string `json:"id" yaml:"id"`

	// Label is the display name.
	Label string `json:"label" yaml:"label"`

	// Group is a category string (e.g. "paper", "method", "concept").
	Group string `json:"group" yaml:"group"`
}

// GraphLink is a directed, labeled edge between two graph nodes. Source and
// Target reference GraphNode IDs; links whose endpoints name no existing node
// are dropped during validation rather than failing the whole graph.
type GraphLink struct {
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	Label  string `json:"label" yaml:"label"`
}

// KnowledgeGraphData holds the nodes and links of a paper knowledge graph.
type KnowledgeGraphData struct {
	Nodes []GraphNode `json:"nodes" yaml:"nodes"`
	Links []GraphLink `json:"links" yaml:"links"`
}

// SinglePaperAnalysisResult holds a structured deep-dive on one paper.
type SinglePaperAnalysisResult struct {
	Summary       string `json:"summary" yaml:"summary"`
	KeyConcepts   string `json:"keyConcepts" yaml:"key_concepts"`
	Methodology   string `json:"methodology" yaml:"methodology"`
	Contributions string `json:"contributions" yaml:"contributions"`
	FutureWork    string `json:"futureWork" yaml:"future_work"`
}
