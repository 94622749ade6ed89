package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"dataquality/internal/domain"
)

var (
	accent  = lipgloss.Color("#2563EB")
	dim     = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#22C55E")
	danger  = lipgloss.Color("#EF4444")
	warning = lipgloss.Color("#F59E0B")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	idStyle       = lipgloss.NewStyle().Width(34)
	fieldStyle    = lipgloss.NewStyle().Width(8)
	scopeStyle    = lipgloss.NewStyle().Width(5)
	kindStyle     = lipgloss.NewStyle().Width(14)
	severityStyle = lipgloss.NewStyle().Width(9)
	separator     = dimStyle.Render(strings.Repeat("─", 80))
)

func renderReport(report *domain.BatchReport) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Validation report"))
	b.WriteString("\n")
	b.WriteString(separator)
	b.WriteString("\n")

	for i := range report.Results {
		entry := &report.Results[i]
		cli := entry.CLI
		if cli == "" {
			cli = fmt.Sprintf("#%d", i+1)
		}
		switch {
		case entry.Failed():
			fmt.Fprintf(&b, "%s %s  %s\n", failStyle.Render("✗"), cli, dimStyle.Render(entry.Error))
			continue
		case entry.Validation.IsValid:
			fmt.Fprintf(&b, "%s %s\n", passStyle.Render("✓"), cli)
		default:
			fmt.Fprintf(&b, "%s %s\n", failStyle.Render("✗"), cli)
		}
		for _, issue := range entry.Validation.Errors {
			fmt.Fprintf(&b, "    %s %s  %s\n", errorTagStyle.Render("error"), issue.RuleID, dimStyle.Render(issue.Message))
		}
		for _, issue := range entry.Validation.Warnings {
			fmt.Fprintf(&b, "    %s %s  %s\n", warnTagStyle.Render("warn "), issue.RuleID, dimStyle.Render(issue.Message))
		}
	}

	s := report.Summary
	b.WriteString(separator)
	b.WriteString("\n")
	fmt.Fprintf(&b, "%d records  %s  %s  %s  %s\n",
		s.Total,
		passStyle.Render(fmt.Sprintf("%d valid", s.Valid)),
		failStyle.Render(fmt.Sprintf("%d invalid", s.Invalid)),
		dimStyle.Render(fmt.Sprintf("%d failed", s.Failed)),
		warnStyle.Render(fmt.Sprintf("%d warnings", s.TotalWarnings)),
	)
	return b.String()
}

func renderRules(rules []domain.ValidationRule, version uint64) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Rule table v%d", version)))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %d rules", len(rules))))
	b.WriteString("\n")
	b.WriteString(separator)
	b.WriteString("\n")

	for _, r := range rules {
		severity := errorTagStyle.Render(string(r.Severity))
		if r.Severity == domain.ValidationSeverityWarning {
			severity = warnTagStyle.Render(string(r.Severity))
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			idStyle.Render(r.ID),
			fieldStyle.Render(r.Field),
			scopeStyle.Render(string(r.Scope)),
			kindStyle.Render(string(r.Kind)),
			severityStyle.Render(severity),
		)
		if !r.Enabled {
			line = dimStyle.Render(line + "disabled")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
