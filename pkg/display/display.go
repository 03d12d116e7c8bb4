// Package display prints every planned action before the engine
// attempts it, so a failure mid-run leaves a clear record of what
// succeeded and what was about to happen next.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/dotsync/pkg/style"
)

// Printer renders planned actions and results to one writer
type Printer struct {
	out   io.Writer
	color bool
}

// New creates a Printer. With color disabled all output is plain
// text, which is also what tests assert against.
func New(out io.Writer, color bool) *Printer {
	return &Printer{out: out, color: color}
}

// Category prints the section header for a category
func (p *Printer) Category(name string) {
	if p.color {
		pterm.DefaultSection.WithWriter(p.out).Println(name)
		return
	}
	fmt.Fprintf(p.out, "\n%s\n%s\n", name, strings.Repeat("=", len(name)))
}

// Run prints a hook invocation before it is attempted
func (p *Printer) Run(argv []string) {
	fmt.Fprintf(p.out, "\nrun(%s)\n", strings.Join(argv, " "))
}

// HookOutput prints the captured output of a completed hook
func (p *Printer) HookOutput(out string) {
	if out == "" {
		return
	}
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	fmt.Fprint(p.out, out)
}

// Pair prints a planned materialization, e.g.
// symlink(src='/repo/git/config', dst='/home/amy/.gitconfig')
func (p *Printer) Pair(verb, src, dst string) {
	if p.color {
		src = style.PathStyle.Render(src)
		dst = style.PathStyle.Render(dst)
	}
	fmt.Fprintf(p.out, "\n%s(src='%s', dst='%s')\n", verb, src, dst)
}

// SameFile reports a tolerated no-op: source and destination are the
// identical file already
func (p *Printer) SameFile(dst string) {
	line := fmt.Sprintf("same file, skipping '%s'", dst)
	if p.color {
		line = style.SuccessStyle.Render(line)
	}
	fmt.Fprintln(p.out, line)
}

// Diff prints a unified diff, coloring added/removed lines when the
// terminal supports it
func (p *Printer) Diff(text string) {
	if !p.color {
		fmt.Fprint(p.out, "\n"+text)
		return
	}

	fmt.Fprintln(p.out)
	for _, line := range strings.SplitAfter(text, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			fmt.Fprint(p.out, style.MutedStyle.Render(strings.TrimSuffix(line, "\n"))+"\n")
		case strings.HasPrefix(line, "@@"):
			fmt.Fprint(p.out, style.DiffMetaStyle.Render(strings.TrimSuffix(line, "\n"))+"\n")
		case strings.HasPrefix(line, "+"):
			fmt.Fprint(p.out, style.DiffAddStyle.Render(strings.TrimSuffix(line, "\n"))+"\n")
		case strings.HasPrefix(line, "-"):
			fmt.Fprint(p.out, style.DiffDelStyle.Render(strings.TrimSuffix(line, "\n"))+"\n")
		default:
			fmt.Fprint(p.out, line)
		}
	}
}
