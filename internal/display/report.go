// Package display renders user-facing scan output: the final totals report
// and structured warnings.
package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/harrison/kubesum/internal/models"
	"github.com/mattn/go-isatty"
)

// Report renders the aggregated scan result for one directory tree.
type Report struct {
	Directory string
	FilesRead int
	Totals    models.ResourceTotals
}

// Display writes the totals report to out. Labels are colorized when out is
// a terminal. Memory is printed as raw integers, CPU with milli-core
// precision.
func (r Report) Display(out io.Writer) {
	label := func(s string) string { return s }
	if useColor(out) {
		cyan := color.New(color.FgCyan)
		label = func(s string) string { return cyan.Sprint(s) }
	}

	fmt.Fprintf(out, "Analyzing kubernetes configs in %s\n", r.Directory)
	fmt.Fprintf(out, "\nTotal resources (%d file(s)):\n", r.FilesRead)
	fmt.Fprintf(out, "  %s: %d\n", label("memory requested"), r.Totals.MemoryRequested)
	fmt.Fprintf(out, "  %s: %d\n", label("memory limit"), r.Totals.MemoryLimit)
	fmt.Fprintf(out, "  %s: %.3f\n", label("cpu requested"), r.Totals.CPURequested)
	fmt.Fprintf(out, "  %s: %.3f\n", label("cpu limit"), r.Totals.CPULimit)
}

// useColor reports whether out is a TTY that should receive ANSI colors.
func useColor(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
