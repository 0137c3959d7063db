// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze provides the single-shot model transforms: query
// suggestions, multi-paper comparison, knowledge-graph construction, and
// single-paper analysis. Each transform is one prompt, one gateway call,
// one JSON parse; there is no staging or retry.
package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/paper-scout/internal/gateway"
	"github.com/pdiddy/paper-scout/internal/normalize"
	"github.com/pdiddy/paper-scout/pkg/types"
)

// Transform-specific fatal errors. The original cause is logged, never
// returned: callers see one stable, human-readable message per transform.
var (
	ErrComparisonFailed = errors.New("failed to generate comparison analysis")
	ErrGraphFailed      = errors.New("failed to generate knowledge graph")
	ErrAnalysisFailed   = errors.New("failed to analyze paper")
)

// Service runs the single-shot transforms on top of an injected gateway.
type Service struct {
	gw     gateway.Invoker
	cfg    types.GatewayConfig
	logger *zap.Logger
}

// New builds a Service. A nil logger disables cause logging.
func New(gw gateway.Invoker, cfg types.GatewayConfig, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{gw: gw, cfg: cfg, logger: logger}
}

// Suggestions returns related query suggestions for a research query. The
// transform is decorative: every failure (network, safety block, parse,
// empty output) is swallowed into an empty slice after logging the cause.
func (s *Service) Suggestions(ctx context.Context, query string) []string {
	suggestions, err := s.suggest(ctx, query)
	if err != nil {
		s.logger.Warn("suggestions failed", zap.String("query", query), zap.Error(err))
		return []string{}
	}
	return suggestions
}

func (s *Service) suggest(ctx context.Context, query string) ([]string, error) {
	prompt, err := renderSuggestionsPrompt(query)
	if err != nil {
		return nil, err
	}

	text, err := s.invokeText(ctx, prompt, s.cfg.FastModel, suggestionsSchema)
	if err != nil {
		return nil, err
	}

	var suggestions []string
	if err := json.Unmarshal([]byte(normalize.StripCodeFence(text)), &suggestions); err != nil {
		return nil, fmt.Errorf("parsing suggestions JSON: %w", err)
	}
	return suggestions, nil
}

// Comparison produces a comparative analysis across papers. Any failure is
// converted into ErrComparisonFailed; partial or default data is never
// returned.
func (s *Service) Comparison(ctx context.Context, papers []types.PaperRecord) (*types.ComparisonResult, error) {
	if len(papers) < 2 {
		return nil, fmt.Errorf("comparison requires at least two papers")
	}

	result, err := s.compare(ctx, papers)
	if err != nil {
		s.logger.Error("comparison failed", zap.Int("papers", len(papers)), zap.Error(err))
		return nil, ErrComparisonFailed
	}
	return result, nil
}

func (s *Service) compare(ctx context.Context, papers []types.PaperRecord) (*types.ComparisonResult, error) {
	prompt, err := renderComparisonPrompt(papers)
	if err != nil {
		return nil, err
	}

	text, err := s.invokeText(ctx, prompt, s.cfg.ProModel, comparisonSchema)
	if err != nil {
		return nil, err
	}

	var result types.ComparisonResult
	if err := json.Unmarshal([]byte(normalize.StripCodeFence(text)), &result); err != nil {
		return nil, fmt.Errorf("parsing comparison JSON: %w", err)
	}
	if err := validateComparison(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// KnowledgeGraph builds a node/link graph over papers and their concepts.
// Links whose endpoints reference no returned node are dropped rather than
// failing the graph. Any other failure converts to ErrGraphFailed.
func (s *Service) KnowledgeGraph(ctx context.Context, papers []types.PaperRecord) (*types.KnowledgeGraphData, error) {
	if len(papers) == 0 {
		return nil, fmt.Errorf("knowledge graph requires at least one paper")
	}

	graph, err := s.buildGraph(ctx, papers)
	if err != nil {
		s.logger.Error("knowledge graph failed", zap.Int("papers", len(papers)), zap.Error(err))
		return nil, ErrGraphFailed
	}
	return graph, nil
}

func (s *Service) buildGraph(ctx context.Context, papers []types.PaperRecord) (*types.KnowledgeGraphData, error) {
	prompt, err := renderGraphPrompt(papers)
	if err != nil {
		return nil, err
	}

	text, err := s.invokeText(ctx, prompt, s.cfg.ProModel, graphSchema)
	if err != nil {
		return nil, err
	}

	var graph types.KnowledgeGraphData
	if err := json.Unmarshal([]byte(normalize.StripCodeFence(text)), &graph); err != nil {
		return nil, fmt.Errorf("parsing graph JSON: %w", err)
	}
	if len(graph.Nodes) == 0 {
		return nil, fmt.Errorf("graph has no nodes")
	}

	pruneDanglingLinks(&graph)
	return &graph, nil
}

// SinglePaperAnalysis produces a structured deep-dive on one paper. Any
// failure converts to ErrAnalysisFailed.
func (s *Service) SinglePaperAnalysis(ctx context.Context, paper types.PaperRecord) (*types.SinglePaperAnalysisResult, error) {
	result, err := s.analyzePaper(ctx, paper)
	if err != nil {
		s.logger.Error("paper analysis failed", zap.String("paper", paper.ID), zap.Error(err))
		return nil, ErrAnalysisFailed
	}
	return result, nil
}

func (s *Service) analyzePaper(ctx context.Context, paper types.PaperRecord) (*types.SinglePaperAnalysisResult, error) {
	prompt, err := renderAnalysisPrompt(paper)
	if err != nil {
		return nil, err
	}

	text, err := s.invokeText(ctx, prompt, s.cfg.ProModel, analysisSchema)
	if err != nil {
		return nil, err
	}

	var result types.SinglePaperAnalysisResult
	if err := json.Unmarshal([]byte(normalize.StripCodeFence(text)), &result); err != nil {
		return nil, fmt.Errorf("parsing analysis JSON: %w", err)
	}
	if result.Summary == "" || result.KeyConcepts == "" || result.Methodology == "" ||
		result.Contributions == "" || result.FutureWork == "" {
		return nil, fmt.Errorf("analysis response is missing required fields")
	}
	return &result, nil
}

// invokeText runs one gateway call and normalizes the response to text.
func (s *Service) invokeText(ctx context.Context, prompt, model string, schema *gateway.Schema) (string, error) {
	env, err := s.gw.Invoke(ctx, gateway.Request{
		Prompt:         prompt,
		Model:          model,
		ResponseSchema: schema,
	})
	if err != nil {
		return "", err
	}
	return normalize.ExtractText(env)
}

// validateComparison rejects results with any absent field.
func validateComparison(r *types.ComparisonResult) error {
	missing := func(name, v string) error {
		if v == "" {
			return fmt.Errorf("comparison response is missing %s", name)
		}
		return nil
	}
	checks := []error{
		missing("summary", r.Summary),
		missing("methodology", r.Comparison.Methodology),
		missing("keyFindings", r.Comparison.KeyFindings),
		missing("contributions", r.Comparison.Contributions),
		missing("contradictions", r.Comparison.Contradictions),
		missing("researchGaps", r.Comparison.ResearchGaps),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

// pruneDanglingLinks drops links whose source or target names no node. The
// backend is not trusted to enforce referential integrity.
func pruneDanglingLinks(graph *types.KnowledgeGraphData) {
	ids := make(map[string]bool, len(graph.Nodes))
	for _, n := range graph.Nodes {
		ids[n.ID] = true
	}

	kept := graph.Links[:0]
	for _, l := range graph.Links {
		if ids[l.Source] && ids[l.Target] {
			kept = append(kept, l)
		}
	}
	graph.Links = kept
}
