// Package linear provides a synchronous, line-oriented renderer for pair progress and test reports.
package linear

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
	"go.trai.ch/multinode/internal/core/domain"
	"go.trai.ch/multinode/internal/ui/output"
	"go.trai.ch/multinode/internal/ui/style"
)

// Renderer implements ports.Renderer.
// Progress lines go to stderr and only when verbose; the summary goes to stdout.
type Renderer struct {
	stdout  io.Writer
	stderr  io.Writer
	output  *termenv.Output
	verbose bool

	mu    sync.Mutex
	pairs map[string]pairState // spanID -> pair state
}

type pairState struct {
	name      string
	startTime time.Time
}

// NewRenderer creates a new Renderer. Nil writers default to the process streams.
func NewRenderer(stdout, stderr io.Writer, verbose bool) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		output:  output.NewWithProfile(stderr, output.ColorProfileANSI),
		verbose: verbose,
		pairs:   make(map[string]pairState),
	}
}

// OnPairStart prints a start line for the pair.
func (r *Renderer) OnPairStart(spanID, name string, startTime time.Time) {
	if !r.verbose {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.pairs[spanID] = pairState{name: name, startTime: startTime}

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", prefix)
}

// OnPairComplete prints the completion status and elapsed time of the pair.
func (r *Renderer) OnPairComplete(spanID string, endTime time.Time, err error) {
	if !r.verbose {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pairs[spanID]
	if !ok {
		return
	}
	delete(r.pairs, spanID)

	duration := endTime.Sub(p.startTime)
	prefix := fmt.Sprintf("[%s]", p.name)

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n", prefix, symbol, duration, err)
		return
	}
	symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n", prefix, symbol, duration)
}

// Summary prints the results of a test run as a table followed by a totals line.
func (r *Renderer) Summary(report *domain.RunReport) error {
	rows := make([][]string, 0, len(report.Results))
	for _, res := range report.Results {
		rows = append(rows, []string{
			res.Version,
			res.Platform,
			res.Arch,
			resultLabel(res.Outcome),
			res.Duration.Round(time.Millisecond).String(),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(style.Border).
		Headers("VERSION", "PLATFORM", "ARCH", "RESULT", "DURATION").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return style.Header
			case col == resultColumn && report.Results[row].Outcome == domain.OutcomeFail:
				return style.Fail
			case col == resultColumn:
				return style.Pass
			default:
				return style.Cell
			}
		})

	passed := len(report.Results) - report.Failures
	if _, err := fmt.Fprintln(r.stdout, t.Render()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(r.stdout, strconv.Itoa(passed)+" passed, "+strconv.Itoa(report.Failures)+" failed")
	return err
}

const resultColumn = 3

func resultLabel(o domain.Outcome) string {
	if o == domain.OutcomeFail {
		return style.Cross + " fail"
	}
	return style.Check + " pass"
}
