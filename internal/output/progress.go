package output

import (
	"io"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Progress renders a progress bar of completed probes. A Progress created
// with enabled=false is a no-op, so callers never need nil checks.
type Progress struct {
	bar *progressbar.ProgressBar
}

// NewProgress creates a progress bar for total probes, drawn on w.
func NewProgress(w io.Writer, total int, enabled bool) *Progress {
	if !enabled || total <= 0 {
		return &Progress{}
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("[cyan]Probing[reset]"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("req"),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	return &Progress{bar: bar}
}

// Increment records a completed probe. Safe for concurrent use.
func (p *Progress) Increment() {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

// ClearLine erases the bar so a result line can be printed cleanly.
func (p *Progress) ClearLine() {
	if p.bar != nil {
		_ = p.bar.Clear()
	}
}

// Redraw paints the bar again after ClearLine.
func (p *Progress) Redraw() {
	if p.bar != nil {
		_ = p.bar.RenderBlank()
	}
}

// Stop finishes the bar. When interrupted the bar is left where it is.
func (p *Progress) Stop(interrupted bool) {
	if p.bar == nil {
		return
	}
	if interrupted {
		_ = p.bar.Exit()
		return
	}
	_ = p.bar.Finish()
}
