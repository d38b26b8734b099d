package validate

import (
	"fmt"

	"github.com/yaklabco/specvalidate/pkg/config"
)

// RecommendationKind identifies which rule produced a recommendation.
type RecommendationKind string

// Recommendation kinds, in evaluation order.
const (
	RecommendMoreCriteria  RecommendationKind = "more_criteria"
	RecommendMoreCode      RecommendationKind = "more_code"
	RecommendTables        RecommendationKind = "tables"
	RecommendMoreDetail    RecommendationKind = "more_detail"
	RecommendSplitDocument RecommendationKind = "split_document"
)

// Recommendation is an advisory note. It never changes the verdict.
type Recommendation struct {
	Kind    RecommendationKind
	Message string
}

// Thresholds are the limits the recommendation rules compare against.
type Thresholds struct {
	MinCriteria   int
	MinCodeBlocks int
	MinTableRows  int
	MinLines      int
	MaxLines      int
}

// DefaultThresholds returns the built-in recommendation limits.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinCriteria:   3,
		MinCodeBlocks: 2,
		MinTableRows:  3,
		MinLines:      100,
		MaxLines:      500,
	}
}

// ThresholdsFromConfig applies configured overrides to the defaults.
func ThresholdsFromConfig(cfg *config.Config) Thresholds {
	th := DefaultThresholds()
	if cfg == nil {
		return th
	}

	override := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}
	override(&th.MinCriteria, cfg.Thresholds.MinCriteria)
	override(&th.MinCodeBlocks, cfg.Thresholds.MinCodeBlocks)
	override(&th.MinTableRows, cfg.Thresholds.MinTableRows)
	override(&th.MinLines, cfg.Thresholds.MinLines)
	override(&th.MaxLines, cfg.Thresholds.MaxLines)

	return th
}

// Recommend evaluates every recommendation rule independently.
// Code, table and brevity rules only apply in full mode.
func Recommend(stats Stats, mode config.Mode, th Thresholds) []Recommendation {
	var recs []Recommendation
	full := mode != config.ModeQuick

	if stats.Criteria < th.MinCriteria {
		recs = append(recs, Recommendation{
			Kind:    RecommendMoreCriteria,
			Message: fmt.Sprintf("Add more acceptance criteria (currently %d)", stats.Criteria),
		})
	}

	if full && stats.CodeBlocks < th.MinCodeBlocks {
		recs = append(recs, Recommendation{
			Kind:    RecommendMoreCode,
			Message: fmt.Sprintf("Add more code examples (currently %d)", stats.CodeBlocks),
		})
	}

	if full && stats.TableRows < th.MinTableRows {
		recs = append(recs, Recommendation{
			Kind:    RecommendTables,
			Message: "Consider using tables for structured data",
		})
	}

	if full && stats.Lines < th.MinLines {
		recs = append(recs, Recommendation{
			Kind:    RecommendMoreDetail,
			Message: fmt.Sprintf("Spec seems brief (%d lines) - consider adding more detail", stats.Lines),
		})
	}

	if stats.Lines > th.MaxLines {
		recs = append(recs, Recommendation{
			Kind:    RecommendSplitDocument,
			Message: fmt.Sprintf("Spec is long (%d lines) - consider splitting", stats.Lines),
		})
	}

	return recs
}
