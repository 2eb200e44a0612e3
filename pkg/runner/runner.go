package runner

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/quallab/rustqual/pkg/analyzer"
	"github.com/quallab/rustqual/pkg/fsutil"
	"github.com/quallab/rustqual/pkg/langdetect"
	"github.com/quallab/rustqual/pkg/report"
	"github.com/quallab/rustqual/pkg/rustast"
)

// Runner orchestrates multi-file analysis with a worker pool.
type Runner struct {
	analyzers []analyzer.Analyzer
}

// New creates a Runner that applies the given analyzers to every file.
func New(analyzers []analyzer.Analyzer) *Runner {
	return &Runner{analyzers: analyzers}
}

// Run discovers files under opts.Paths and analyzes them concurrently.
// A file that fails to read or parse is recorded as errored and the run
// continues; outcomes come back in path order regardless of which
// worker finished first.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	files, err := Discover(ctx, opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	if jobs > len(files) {
		jobs = len(files)
	}

	workCh := make(chan string)
	outCh := make(chan FileOutcome)

	var wg sync.WaitGroup
	for range jobs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.worker(ctx, workCh, outCh)
		}()
	}

	go func() {
		defer close(workCh)
		for _, path := range files {
			select {
			case <-ctx.Done():
				return
			case workCh <- path:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(outCh)
	}()

	// Workers complete out of order; index by path, then rebuild in
	// discovery order.
	outcomes := make(map[string]FileOutcome, len(files))
	for outcome := range outCh {
		outcomes[outcome.Path] = outcome
	}
	for _, path := range files {
		if outcome, ok := outcomes[path]; ok {
			result.accumulate(outcome)
		}
	}

	if ctx.Err() != nil {
		return result, fmt.Errorf("run cancelled: %w", ctx.Err())
	}
	return result, nil
}

func (r *Runner) worker(ctx context.Context, workCh <-chan string, outCh chan<- FileOutcome) {
	for path := range workCh {
		select {
		case <-ctx.Done():
			return
		default:
		}

		outcome := r.analyzeFile(ctx, path)

		select {
		case <-ctx.Done():
			return
		case outCh <- outcome:
		}
	}
}

// analyzeFile runs every analyzer over a single file.
func (r *Runner) analyzeFile(ctx context.Context, path string) FileOutcome {
	outcome := FileOutcome{Path: path}

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	if !langdetect.IsRust(path, content) {
		outcome.Skipped = true
		return outcome
	}

	file, err := rustast.Parse(ctx, path, content)
	if err != nil {
		outcome.Error = err
		return outcome
	}
	defer file.Close()

	rep := report.NewReport(path)
	for _, a := range r.analyzers {
		if err := ctx.Err(); err != nil {
			outcome.Error = fmt.Errorf("analysis cancelled: %w", err)
			return outcome
		}

		issues, err := a.Analyze(ctx, file)
		if err != nil {
			outcome.Error = fmt.Errorf("analyzer %s: %w", a.Name(), err)
			return outcome
		}
		rep.AddResult(analyzer.AnalysisResult{
			Analyzer: a.Name(),
			Path:     path,
			Issues:   issues,
		})
	}

	outcome.Report = rep
	return outcome
}

// IsParseError reports whether a file outcome failed due to invalid
// Rust syntax rather than an IO problem.
func IsParseError(err error) bool {
	return errors.Is(err, rustast.ErrParse)
}
