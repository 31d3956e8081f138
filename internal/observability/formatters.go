// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/outreach-agent/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 3
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

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResearch outputs a human-readable summary of the research result.
func (p *Printer) PrintResearch(research *types.ResearchResult) {
	if research == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Company:   %s\n", research.Company.CompanyName))
	if research.Company.Website != "" {
		sb.WriteString(fmt.Sprintf("Website:   %s\n", research.Company.Website))
	}
	sb.WriteString(fmt.Sprintf("Key facts: %d found\n", len(research.Company.KeyInfo)))
	for i, fact := range research.Company.KeyInfo {
		if i >= maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(research.Company.KeyInfo)-maxItemsToShow))
			break
		}
		sb.WriteString(fmt.Sprintf("  - %s\n", fact))
	}
	sb.WriteString(fmt.Sprintf("News:      %d found\n", len(research.Company.RecentNews)))

	sb.WriteString(fmt.Sprintf("\nRecruiter: %s\n", research.Recruiter.Name))
	if research.Recruiter.Title != "" {
		sb.WriteString(fmt.Sprintf("Title:     %s\n", research.Recruiter.Title))
	}
	if research.Recruiter.LinkedIn != "" {
		sb.WriteString(fmt.Sprintf("LinkedIn:  %s\n", research.Recruiter.LinkedIn))
	}

	p.printBox("RESEARCH", strings.TrimRight(sb.String(), "\n"))
}

// PrintEmail outputs a human-readable summary of the generated email.
func (p *Printer) PrintEmail(email *types.GeneratedEmail) {
	if email == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Subject: %s\n", email.Subject))
	if email.Fallback {
		sb.WriteString("Source:  fallback template\n")
	} else {
		sb.WriteString("Source:  LLM\n")
	}
	sb.WriteString("\n")
	sb.WriteString(email.Body)
	sb.WriteString("\n\nSuggested actions:\n")
	for _, action := range email.SuggestedActions {
		sb.WriteString(fmt.Sprintf("  - %s\n", action))
	}

	p.printBox("GENERATED EMAIL", strings.TrimRight(sb.String(), "\n"))
}
