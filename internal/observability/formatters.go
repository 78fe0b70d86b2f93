// Package observability provides service metrics and formatted output for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/posesug/internal/types"
)

const (
	// boxWidth is the width of a printed box in runes
	boxWidth = 60
	// maxTipsToShow is the number of tips listed per pose
	maxTipsToShow = 3
)

// Printer writes human-readable summaries for CLI commands.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(truncate(line, boxWidth-4), boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSuggestion outputs the poses in priority order followed by the composition advice.
func (p *Printer) PrintSuggestion(result *types.SuggestionResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Poses: %d\n", len(result.PoseSuggestions))
	for _, c := range result.PoseSuggestions {
		priority := "?"
		if c.Priority != nil {
			priority = fmt.Sprintf("%d", *c.Priority)
		}
		fmt.Fprintf(&sb, "\n%s  %s  (priority %s)\n", c.ID, c.Name, priority)

		count := min(len(c.Tips), maxTipsToShow)
		for i := 0; i < count; i++ {
			fmt.Fprintf(&sb, "    • %s\n", c.Tips[i])
		}
		if len(c.Tips) > maxTipsToShow {
			fmt.Fprintf(&sb, "    ... and %d more\n", len(c.Tips)-maxTipsToShow)
		}
	}

	g := result.CompositionGuide
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Framing:    %s\n", g.Framing)
	fmt.Fprintf(&sb, "Angle:      %s\n", g.Angle)
	fmt.Fprintf(&sb, "Background: %s\n", g.Background)
	fmt.Fprintf(&sb, "Balance:    %s\n", g.Symmetry)
	if result.VoiceGuide != "" {
		fmt.Fprintf(&sb, "\nVoice: %s", result.VoiceGuide)
	}

	p.printBox("POSE SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSelectedPose outputs the chosen candidate and its rendered description.
func (p *Printer) PrintSelectedPose(c types.PoseCandidate, description string) {
	title := "SELECTED POSE"
	if c.ID != "" {
		title += " " + c.ID
	}
	p.printBox(title, description)
}

// PrintDiagram outputs the generated diagram URL unboxed so it can be copied.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintDiagram(url string) {
	fmt.Fprintf(p.out, "Diagram: %s\n", url)
}

func truncate(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	r := []rune(s)
	return string(r[:width-3]) + "..."
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
