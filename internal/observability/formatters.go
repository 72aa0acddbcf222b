// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/arash/credly-sync/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines on rune boundaries
		if runes := []rune(line); len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintGroupedBadges outputs a human-readable summary of the grouped badges
// in display order.
func (p *Printer) PrintGroupedBadges(grouped types.GroupedBadges) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Issuers:  %d\n", len(grouped)))
	sb.WriteString(fmt.Sprintf("Badges:   %d\n", grouped.TotalBadges()))

	for _, group := range grouped {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s (%d)\n", group.Issuer, len(group.Badges)))
		count := min(len(group.Badges), maxItemsToShow)
		for i := 0; i < count; i++ {
			badge := group.Badges[i]
			sb.WriteString(fmt.Sprintf("  • %s", badge.Name()))
			if badge.IssuedAtDate != "" {
				sb.WriteString(fmt.Sprintf(" (%s)", badge.IssuedAtDate))
			}
			sb.WriteString("\n")
		}
		if len(group.Badges) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(group.Badges)-maxItemsToShow))
		}
	}

	p.printBox("Fetched Badges", strings.TrimSuffix(sb.String(), "\n"))
}
