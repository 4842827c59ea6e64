package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"github.com/maxvaer/pather/internal/config"
	"github.com/maxvaer/pather/internal/filter"
	"github.com/maxvaer/pather/internal/hook"
	"github.com/maxvaer/pather/internal/output"
	"github.com/maxvaer/pather/internal/scanner"
	"github.com/maxvaer/pather/internal/target"
	"github.com/maxvaer/pather/internal/wordlist"
	"github.com/maxvaer/pather/pkg/version"
)

// ErrInterrupted is returned by Run when ctx was cancelled before every
// word was probed.
var ErrInterrupted = errors.New("run interrupted")

// Run executes the full pipeline: validate the template, load the wordlist,
// probe every word and write the results that pass the status filters.
// Startup failures are returned before any request is sent.
func Run(ctx context.Context, opts *config.Options) error {
	log := NewLogger(opts, os.Stderr)

	tmpl, err := target.New(opts.URL)
	if err != nil {
		return err
	}

	words, err := wordlist.Load(opts.WordlistPath)
	if err != nil {
		return fmt.Errorf("loading wordlist: %w", err)
	}

	out, err := createWriter(opts, os.Stdout)
	if err != nil {
		return fmt.Errorf("creating output writer: %w", err)
	}
	defer out.Close()

	if err := out.WriteHeader(); err != nil {
		return err
	}

	if !opts.Quiet {
		printBanner(os.Stderr, opts, tmpl, len(words))
	}

	pauser, restore := startStdinToggle(log)
	defer restore()

	var hookRunner *hook.Runner
	if opts.OnResultCmd != "" {
		hookRunner = hook.NewRunner(opts.OnResultCmd, log)
	}

	progress := output.NewProgress(os.Stderr, len(words), !opts.Quiet && !opts.NoProgress)

	job := &Job{
		Template: tmpl,
		Words:    words,
		Prober:   scanner.NewHTTPProber(scanner.NewRequester(opts)),
		Chain:    filter.NewStatusChain(opts.MatchCodes, opts.FilterCodes),
		Threads:  opts.Threads,
		Pauser:   pauser,
		Progress: progress,
		Log:      log,
		Emit: func(ctx context.Context, r output.Record) error {
			if err := out.WriteResult(r); err != nil {
				return err
			}
			if hookRunner != nil {
				hookRunner.Run(ctx, r)
			}
			return nil
		},
	}

	stats, runErr := job.Run(ctx)
	progress.Stop(stats.Interrupted)

	if err := out.WriteFooter(stats); err != nil && runErr == nil {
		runErr = err
	}
	logSummary(log, stats)
	return runErr
}

// Job is one scan of a word list against a template.
type Job struct {
	Template target.Template
	Words    []string
	Prober   scanner.Prober
	Chain    *filter.Chain
	Threads  int

	Pauser   *scanner.Pauser    // optional
	Progress *output.Progress   // optional
	Log      logrus.FieldLogger // optional

	// Emit receives every record that passes the filter chain, in
	// completion order. Required. ctx is cancelled when the job is
	// interrupted. An error aborts the job.
	Emit func(ctx context.Context, r output.Record) error
}

// Run probes every word and aggregates outcomes as they complete.
// Unreachable outcomes are dropped; the rest pass through the filter
// chain before being emitted. When ctx is cancelled Run returns
// ErrInterrupted at once, without waiting for in-flight probes.
func (j *Job) Run(ctx context.Context) (output.Stats, error) {
	log := j.Log
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	progress := j.Progress
	if progress == nil {
		progress = &output.Progress{}
	}
	chain := j.Chain
	if chain == nil {
		chain = filter.NewChain()
	}

	stats := output.Stats{TotalWords: len(j.Words)}
	start := time.Now()
	// Time spent paused does not count towards the run duration.
	elapsed := func() time.Duration {
		d := time.Since(start)
		if j.Pauser != nil {
			d -= j.Pauser.PausedDuration()
		}
		return max(d, 0)
	}
	log.WithFields(logrus.Fields{
		"words":   len(j.Words),
		"threads": j.Threads,
		"filters": chain.Len(),
	}).Debug("Starting scan")

	items := make([]scanner.WorkItem, len(j.Words))
	for i, w := range j.Words {
		items[i] = scanner.WorkItem{Word: w, URL: j.Template.Build(w)}
	}

	// Cancelling runCtx on return stops the producer and releases workers
	// blocked on delivery when Emit fails.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := scanner.RunWorkerPool(runCtx, j.Prober, items, scanner.WorkerConfig{
		Threads: j.Threads,
		Pauser:  j.Pauser,
		OnProbe: func(scanner.Outcome) { progress.Increment() },
	})

	interrupted := func() (output.Stats, error) {
		stats.Interrupted = true
		stats.Duration = elapsed()
		log.WithField("pending", stats.TotalWords-stats.Completed).
			Warn("Interrupted, abandoning outstanding probes")
		return stats, ErrInterrupted
	}

	for {
		select {
		case <-ctx.Done():
			return interrupted()
		case outcome, ok := <-results:
			if !ok {
				if ctx.Err() != nil {
					return interrupted()
				}
				stats.Duration = elapsed()
				return stats, nil
			}
			stats.Completed++

			if outcome.Downgraded {
				log.WithField("url", outcome.URL).Debug("TLS failed, retried over http")
			}
			if outcome.Class == scanner.Unreachable {
				stats.Unreachable++
				log.WithError(outcome.Err).WithField("url", outcome.URL).Debug("unreachable")
				continue
			}
			if filtered, reason := chain.Apply(&outcome); filtered {
				stats.Filtered++
				log.WithFields(logrus.Fields{
					"url":    outcome.URL,
					"status": outcome.StatusCode,
					"reason": reason,
				}).Debug("filtered")
				continue
			}

			stats.Emitted++
			progress.ClearLine()
			err := j.Emit(runCtx, output.FromOutcome(&outcome))
			progress.Redraw()
			if ctx.Err() != nil {
				return interrupted()
			}
			if err != nil {
				stats.Duration = elapsed()
				return stats, fmt.Errorf("writing result: %w", err)
			}
		}
	}
}

func createWriter(opts *config.Options, stdout io.Writer) (output.Writer, error) {
	styles := output.DefaultStyles()
	console := output.NewTextWriter(stdout, styles, !opts.NoColor && !color.NoColor)
	writers := []output.Writer{console}

	if opts.OutputFile != "" {
		f, existed, err := output.OpenAppend(opts.OutputFile)
		if err != nil {
			return nil, err
		}
		switch opts.OutputFormat {
		case "json":
			writers = append(writers, output.NewJSONWriter(f))
		case "csv":
			writers = append(writers, output.NewCSVWriter(f, existed))
		default:
			writers = append(writers, output.NewTextWriter(f, styles, false))
		}
	}

	var w output.Writer = output.NewMultiWriter(writers...)
	if opts.SortBy != "" {
		w = output.NewSortedWriter(w, opts.SortBy)
	}
	return w, nil
}

func logSummary(log logrus.FieldLogger, stats output.Stats) {
	rate := 0.0
	if secs := stats.Duration.Seconds(); secs > 0 {
		rate = float64(stats.Completed) / secs
	}
	log.WithFields(logrus.Fields{
		"words":       stats.TotalWords,
		"completed":   stats.Completed,
		"emitted":     stats.Emitted,
		"filtered":    stats.Filtered,
		"unreachable": stats.Unreachable,
		"duration":    stats.Duration.Round(time.Millisecond).String(),
		"req/s":       fmt.Sprintf("%.1f", rate),
	}).Info("Done")
}

func printBanner(w io.Writer, opts *config.Options, tmpl target.Template, wordCount int) {
	cyan := color.New(color.FgCyan)
	dim := color.New(color.Faint)
	white := color.New(color.FgHiWhite)
	yellow := color.New(color.FgYellow)
	for _, c := range []*color.Color{cyan, dim, white, yellow} {
		if opts.NoColor {
			c.DisableColor()
		}
	}

	cyan.Fprintf(w, `
                 __  __
    ____  ____ _/ /_/ /_  ___  _____
   / __ \/ __ `+"`"+`/ __/ __ \/ _ \/ ___/
  / /_/ / /_/ / /_/ / / /  __/ /
 / .___/\__,_/\__/_/ /_/\___/_/   `)
	dim.Fprintf(w, "v%s\n", version.Version)
	cyan.Fprint(w, "/_/\n\n")

	row := func(label string, value any, c *color.Color) {
		dim.Fprintf(w, "  %-13s", label+":")
		c.Fprintf(w, "%v\n", value)
	}
	dim.Fprintln(w, "  ──────────────────────────────────────")
	row("Target", tmpl, white)
	row("Wordlist", fmt.Sprintf("%d words", wordCount), white)
	row("Threads", opts.Threads, yellow)
	row("Timeout", opts.Timeout, yellow)
	if len(opts.MatchCodes) > 0 {
		row("Match codes", fmt.Sprint(opts.MatchCodes), white)
	}
	if len(opts.FilterCodes) > 0 {
		row("Filter codes", fmt.Sprint(opts.FilterCodes), white)
	}
	if opts.OutputFile != "" {
		row("Output", fmt.Sprintf("%s (%s)", opts.OutputFile, opts.OutputFormat), white)
	}
	dim.Fprintln(w, "  ──────────────────────────────────────")
	fmt.Fprintln(w)
}
