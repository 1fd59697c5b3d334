package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type styles struct {
	info   lipgloss.Style
	err    lipgloss.Style
	ok     lipgloss.Style
	banner lipgloss.Style
	dim    lipgloss.Style
}

func newStyles(w io.Writer, colorEnabled bool) styles {
	if !colorEnabled {
		plain := lipgloss.NewStyle()
		return styles{info: plain, err: plain, ok: plain, banner: plain, dim: plain}
	}

	r := lipgloss.NewRenderer(w)
	return styles{
		info:   r.NewStyle().Foreground(lipgloss.Color("#5f5fd7")).Bold(true), // Purple/Blue
		err:    r.NewStyle().Foreground(lipgloss.Color("#ff5f5f")).Bold(true), // Soft red
		ok:     r.NewStyle().Foreground(lipgloss.Color("#22aa22")).Bold(true), // Green
		banner: r.NewStyle().Foreground(lipgloss.Color("#ffdf87")),            // Amber
		dim:    r.NewStyle().Foreground(lipgloss.Color("#767676")),            // Dimmed Gray
	}
}
