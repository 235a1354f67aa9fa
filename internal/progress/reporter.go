package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides byte-level feedback while a payload is transferred.
type Reporter interface {
	Start(total int64)
	Add(n int)
	Finish()
}

// NewReporter returns a TerminalReporter if running in an interactive terminal,
// or a CIReporter if the CI environment variable is set.
func NewReporter(description string) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{Out: os.Stderr}
	}
	return &TerminalReporter{Description: description}
}

// TerminalReporter displays a byte progress bar in the terminal. An unknown
// total (-1) renders a spinner.
type TerminalReporter struct {
	Description string
	bar         *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int64) {
	r.bar = progressbar.NewOptions64(total,
		progressbar.OptionSetDescription(r.Description),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowBytes(true),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Add(n int) {
	if r.bar != nil {
		_ = r.bar.Add(n)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints a start and finish line suitable for CI logs.
type CIReporter struct {
	Out   io.Writer
	total int64
	done  int64
}

func (r *CIReporter) Start(total int64) {
	r.total = total
	if total < 0 {
		fmt.Fprintln(r.Out, "Starting download (size unknown)")
		return
	}
	fmt.Fprintf(r.Out, "Starting download of %d bytes\n", total)
}

func (r *CIReporter) Add(n int) {
	r.done += int64(n)
}

func (r *CIReporter) Finish() {
	fmt.Fprintf(r.Out, "Download complete (%d bytes)\n", r.done)
}
