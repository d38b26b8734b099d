package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/specvalidate/internal/ui/pretty"
	"github.com/yaklabco/specvalidate/pkg/patterns"
	"github.com/yaklabco/specvalidate/pkg/runner"
	"github.com/yaklabco/specvalidate/pkg/validate"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// ReportFile implements Reporter. Output is flushed before returning.
func (r *TextReporter) ReportFile(_ context.Context, outcome runner.FileOutcome) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if outcome.Error != nil {
		r.writeReadError(outcome)
		return nil
	}

	if outcome.Result == nil {
		return nil
	}

	res := outcome.Result

	fmt.Fprintln(r.bw)
	fmt.Fprintln(r.bw, r.styles.FormatFileHeader(outcome.Path))

	r.writeSections(res)
	r.writeIssues(res.Issues)
	r.writeStats(res.Stats)
	r.writeRecommendations(res.Recommendations)

	fmt.Fprintln(r.bw)
	fmt.Fprintln(r.bw, r.styles.FormatSeparator())
	fmt.Fprintln(r.bw, r.styles.FormatVerdict(res.Verdict))

	return nil
}

// ReportSummary implements Reporter.
func (r *TextReporter) ReportSummary(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if !r.opts.ShowSummary || result == nil || result.Stats.FilesTotal < 2 {
		return nil
	}

	fmt.Fprintln(r.bw)
	fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))

	return nil
}

func (r *TextReporter) writeReadError(outcome runner.FileOutcome) {
	fmt.Fprintln(r.bw)
	if outcome.NotFound() {
		fmt.Fprintln(r.bw, r.styles.FormatFail("File not found: "+outcome.Path))
		return
	}
	fmt.Fprintln(r.bw, r.styles.FormatFail(fmt.Sprintf("Cannot read %s: %v", outcome.Path, outcome.Error)))
}

func (r *TextReporter) writeSections(res *validate.Result) {
	fmt.Fprintln(r.bw)
	if len(res.Missing) == 0 {
		fmt.Fprintln(r.bw, r.styles.FormatPass(fmt.Sprintf("All %d required sections present", len(res.Required))))
		return
	}

	fmt.Fprintln(r.bw, r.styles.FormatFail(fmt.Sprintf("Missing sections (%d):", len(res.Missing))))
	for _, name := range res.Missing {
		fmt.Fprintln(r.bw, r.styles.FormatBullet(name))
	}
}

func (r *TextReporter) writeIssues(issues validate.Issues) {
	fmt.Fprintln(r.bw)
	if len(issues) == 0 {
		fmt.Fprintln(r.bw, r.styles.FormatPass("No quality issues detected"))
		return
	}

	fmt.Fprintln(r.bw, r.styles.FormatWarn("Quality issues found:"))
	for _, issue := range issues {
		fmt.Fprintln(r.bw, r.styles.FormatBullet(fmt.Sprintf("%s: %s instance(s)",
			patterns.DisplayName(issue.Name),
			r.styles.Value.Render(fmt.Sprint(issue.Count)),
		)))
	}
}

func (r *TextReporter) writeStats(stats validate.Stats) {
	fmt.Fprintln(r.bw)
	fmt.Fprintln(r.bw, r.styles.FormatHeading("Statistics:"))

	rows := []struct {
		label string
		value int
	}{
		{"Lines", stats.Lines},
		{"Acceptance criteria", stats.Criteria},
		{"Code blocks", stats.CodeBlocks},
		{"Table rows", stats.TableRows},
	}
	for _, row := range rows {
		fmt.Fprintln(r.bw, r.styles.FormatBullet(row.label+": "+r.styles.Value.Render(fmt.Sprint(row.value))))
	}
}

func (r *TextReporter) writeRecommendations(recs []validate.Recommendation) {
	fmt.Fprintln(r.bw)
	fmt.Fprintln(r.bw, r.styles.FormatHeading("Recommendations:"))

	if len(recs) == 0 {
		fmt.Fprintln(r.bw, r.styles.FormatBullet(r.styles.Dim.Render("None")))
		return
	}
	for _, rec := range recs {
		fmt.Fprintln(r.bw, r.styles.FormatBullet(rec.Message))
	}
}
