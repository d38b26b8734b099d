package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/specvalidate/pkg/config"
	"github.com/yaklabco/specvalidate/pkg/patterns"
	"github.com/yaklabco/specvalidate/pkg/validate"
)

const quickSpec = `# Login button

## What
A login button on the landing page.

## Why
Returning users cannot find the sign-in form.

## How
Add the button to the header component.

## Acceptance Criteria
- [x] Button is visible on the landing page
- [x] Clicking it opens the sign-in form
- [x] Button is keyboard accessible
`

const fullSpecAllSections = `# Search

## 1. Overview
## 2. User Stories
## 3. Technical
## 4. UI/UX
## 5. Edge Cases
## 6. Security
## 7. Performance
## 8. Implementation
`

func TestValidate_QuickSpecPasses(t *testing.T) {
	t.Parallel()

	res := validate.Validate(quickSpec, validate.Options{Mode: config.ModeQuick})

	assert.Equal(t, validate.VerdictPassed, res.Verdict)
	assert.Empty(t, res.Missing)
	assert.Equal(t, patterns.QuickSections(), res.Found)
	assert.Empty(t, res.Issues)
	assert.Equal(t, 3, res.Stats.Criteria)
	assert.Empty(t, res.Recommendations)
}

func TestValidate_DefaultsToFullMode(t *testing.T) {
	t.Parallel()

	res := validate.Validate(quickSpec, validate.Options{})

	assert.Equal(t, config.ModeFull, res.Mode)
	assert.Equal(t, patterns.FullSections(), res.Required)
	assert.Equal(t, validate.VerdictFailed, res.Verdict)
}

func TestValidate_AllSectionsWithWarnings(t *testing.T) {
	t.Parallel()

	content := fullSpecAllSections + "\nThis could probably work.\n"
	res := validate.Validate(content, validate.Options{Mode: config.ModeFull})

	assert.Empty(t, res.Missing)
	assert.Equal(t, validate.VerdictPassedWithWarnings, res.Verdict)
	assert.True(t, res.Verdict.Passed())
	assert.Equal(t, 2, res.Issues.Count(patterns.VagueLanguage))
}

func TestValidate_PlaceholderFailsEvenWithAllSections(t *testing.T) {
	t.Parallel()

	res := validate.Validate(fullSpecAllSections+"\n[TODO]\n", validate.Options{Mode: config.ModeFull})

	assert.Empty(t, res.Missing)
	assert.Equal(t, 1, res.Issues.Count(patterns.UnresolvedPlaceholders))
	assert.Equal(t, validate.VerdictFailed, res.Verdict)
}

func TestValidate_MissingSectionsFailRegardlessOfQuality(t *testing.T) {
	t.Parallel()

	res := validate.Validate("## Overview\n", validate.Options{Mode: config.ModeFull})

	assert.Equal(t, validate.VerdictFailed, res.Verdict)
	assert.Len(t, res.Missing, 7)
}

func TestValidate_RunsAllChecksOnFailure(t *testing.T) {
	t.Parallel()

	res := validate.Validate("[FIXME]\n| | |\n```\n```\n", validate.Options{Mode: config.ModeFull})

	require.Equal(t, validate.VerdictFailed, res.Verdict)
	assert.Len(t, res.Missing, 8)
	assert.Equal(t, 1, res.Issues.Count(patterns.EmptyTables))
	assert.Equal(t, 1, res.Stats.CodeBlocks)
	assert.NotEmpty(t, res.Recommendations)
}

func TestValidate_CustomSectionsAndThresholds(t *testing.T) {
	t.Parallel()

	res := validate.Validate("## Goal\n## Plan\n", validate.Options{
		Mode:     config.ModeFull,
		Required: []string{"Goal", "Plan", "Risks"},
		Thresholds: &validate.Thresholds{
			MinCriteria: 0, MinCodeBlocks: 0, MinTableRows: 0, MinLines: 0, MaxLines: 1,
		},
	})

	assert.Equal(t, []string{"Goal", "Plan"}, res.Found)
	assert.Equal(t, []string{"Risks"}, res.Missing)
	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, validate.RecommendSplitDocument, res.Recommendations[0].Kind)
}

func TestValidate_Idempotent(t *testing.T) {
	t.Parallel()

	opts := validate.Options{Mode: config.ModeFull}
	content := fullSpecAllSections + "maybe\n| | |\n"

	assert.Equal(t, validate.Validate(content, opts), validate.Validate(content, opts))
}

func TestOptionsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Sections.Quick = []string{"Goal"}
	cfg.Thresholds.MinCriteria = config.IntPtr(1)

	opts := validate.OptionsFromConfig(cfg, config.ModeQuick)
	assert.Equal(t, config.ModeQuick, opts.Mode)
	assert.Equal(t, []string{"Goal"}, opts.Required)
	require.NotNil(t, opts.Thresholds)
	assert.Equal(t, 1, opts.Thresholds.MinCriteria)
}

func TestValidate_ZeroThresholdsFromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	cfg.Thresholds = config.ThresholdsConfig{
		MinCriteria:   config.IntPtr(0),
		MinCodeBlocks: config.IntPtr(0),
		MinTableRows:  config.IntPtr(0),
		MinLines:      config.IntPtr(0),
		MaxLines:      config.IntPtr(0),
	}

	res := validate.Validate("## Overview\n", validate.OptionsFromConfig(cfg, config.ModeFull))

	require.Len(t, res.Recommendations, 1)
	assert.Equal(t, validate.RecommendSplitDocument, res.Recommendations[0].Kind)
	assert.Equal(t, "Spec is long (2 lines) - consider splitting", res.Recommendations[0].Message)
}

func TestValidate_NilThresholdsUseDefaults(t *testing.T) {
	t.Parallel()

	res := validate.Validate("## Overview\n", validate.Options{Mode: config.ModeFull})

	kinds := make([]validate.RecommendationKind, 0, len(res.Recommendations))
	for _, rec := range res.Recommendations {
		kinds = append(kinds, rec.Kind)
	}
	assert.Equal(t, []validate.RecommendationKind{
		validate.RecommendMoreCriteria,
		validate.RecommendMoreCode,
		validate.RecommendTables,
		validate.RecommendMoreDetail,
	}, kinds)
}
