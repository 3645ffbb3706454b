package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nsd23387/campaign-governance/pkg/governance"
	"github.com/nsd23387/campaign-governance/pkg/readiness"
)

var (
	successColor = lipgloss.Color("42")  // Green
	warningColor = lipgloss.Color("226") // Yellow
	errorColor   = lipgloss.Color("196") // Red
	mutedColor   = lipgloss.Color("245") // Gray

	readyStyle    = lipgloss.NewStyle().Foreground(successColor).Bold(true)
	notReadyStyle = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	warnStyle     = lipgloss.NewStyle().Foreground(warningColor)
	mutedStyle    = lipgloss.NewStyle().Foreground(mutedColor)
)

// stateBadge renders a campaign state label, using the state's badge
// palette when colors are enabled.
func stateBadge(state governance.State, colors bool) string {
	label := state.Label()
	if !colors {
		return label
	}
	style := state.Style()
	return lipgloss.NewStyle().
		Foreground(style.Foreground).
		Background(style.Background).
		Padding(0, 1).
		Render(label)
}

// RenderTable writes the compact per-campaign table followed by a summary
// block.
func RenderTable(w io.Writer, report *Report, colors bool) {
	fmt.Fprintln(w, "\nCampaign Evaluation:")
	fmt.Fprintln(w, strings.Repeat("=", 100))
	fmt.Fprintf(w, "%-34s %-22s %-10s %-22s %s\n", "Campaign", "State", "Readiness", "Primary Action", "Blocking Reasons")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, campaign := range report.Campaigns {
		fmt.Fprintf(w, "%-34s %-22s %-10s %-22s %s\n",
			truncateString(campaignLabel(campaign), 34),
			fmt.Sprintf("%s %s", campaign.State.Icon(), campaign.StateLabel),
			string(campaign.Readiness.State),
			truncateString(campaign.Action.Label, 22),
			truncateString(strings.Join(campaign.Readiness.BlockingReasons, "; "), 40),
		)
	}

	fmt.Fprintln(w, strings.Repeat("=", 100))
	fmt.Fprintf(w, "\nSummary:\n")
	fmt.Fprintf(w, "  Total:       %d\n", len(report.Campaigns))
	fmt.Fprintf(w, "  ✔ Ready:     %d\n", report.ReadyCount)
	fmt.Fprintf(w, "  ✖ Not Ready: %d\n", report.NotReadyCount)
	fmt.Fprintf(w, "  🚫 Blocked:  %d\n", report.BlockedCount)

	verdict := "✅ All campaigns ready"
	style := readyStyle
	if report.ExitCode() != 0 {
		verdict = "❌ Attention needed before sending can proceed"
		style = notReadyStyle
	}
	if colors {
		verdict = style.Render(verdict)
	}
	fmt.Fprintf(w, "\n%s\n", verdict)
}

// RenderVerbose writes the table plus per-campaign check, metric, and
// missing-field details.
func RenderVerbose(w io.Writer, report *Report, colors bool) {
	RenderTable(w, report, colors)

	for _, campaign := range report.Campaigns {
		fmt.Fprintf(w, "\n--- Campaign: %s ---\n", campaignLabel(campaign))
		fmt.Fprintf(w, "State:   %s (%s, from %s)\n", stateBadge(campaign.State, colors), campaign.State, campaign.LegacyStatus)
		fmt.Fprintf(w, "Action:  %s%s\n", campaign.Action.Label, disabledSuffix(campaign.Action))
		fmt.Fprintf(w, "         %s\n", campaign.Action.Explanation)

		fmt.Fprintln(w, "Checks:")
		for _, check := range campaign.Readiness.Checks {
			line := fmt.Sprintf("  %s %-15s %-16s %s", checkSymbol(check), check.ID, check.Status, check.Message)
			fmt.Fprintln(w, styleCheckLine(line, check, colors))
		}

		if len(campaign.Readiness.BlockingReasons) > 0 {
			fmt.Fprintf(w, "Blocking: %s\n", strings.Join(campaign.Readiness.BlockingReasons, "; "))
		}
		if campaign.Readiness.HasIncompleteData {
			fmt.Fprintf(w, "Incomplete data: %s\n", strings.Join(campaign.Readiness.MissingFields, ", "))
		}

		if len(campaign.Metrics) > 0 {
			fmt.Fprintln(w, "Metrics:")
			for _, metric := range campaign.Metrics {
				fmt.Fprintf(w, "  %-24s %-16s (%s)  %-12s (%s)\n",
					truncateString(metric.Name, 24),
					string(metric.Provenance), metric.ProvenanceRule,
					string(metric.Confidence), metric.ConfidenceRule,
				)
			}
		}
	}
}

// RenderJSON writes the full report as indented JSON.
func RenderJSON(w io.Writer, report *Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// RenderRecords writes the classification table for standalone metric
// records.
func RenderRecords(w io.Writer, records []MetricReport) {
	fmt.Fprintln(w, "\nRecord Classification:")
	fmt.Fprintln(w, strings.Repeat("=", 100))
	fmt.Fprintf(w, "%-28s %-16s %-26s %-13s %s\n", "Metric", "Provenance", "Rule", "Confidence", "Rule")
	fmt.Fprintln(w, strings.Repeat("-", 100))

	for _, record := range records {
		fmt.Fprintf(w, "%-28s %-16s %-26s %-13s %s\n",
			truncateString(record.Name, 28),
			string(record.Provenance),
			record.ProvenanceRule,
			string(record.Confidence),
			record.ConfidenceRule,
		)
	}
	fmt.Fprintln(w, strings.Repeat("=", 100))
}

// RenderRecordsJSON writes standalone record classifications as indented
// JSON.
func RenderRecordsJSON(w io.Writer, records []MetricReport) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(records)
}

func campaignLabel(campaign CampaignReport) string {
	if campaign.Name == "" {
		return campaign.CampaignID
	}
	return fmt.Sprintf("%s (%s)", campaign.CampaignID, campaign.Name)
}

func disabledSuffix(action governance.Action) string {
	if action.Disabled {
		return " (disabled)"
	}
	return ""
}

func checkSymbol(check readiness.CheckResult) string {
	switch {
	case !check.Passed:
		return "✖"
	case check.Severity == readiness.SeverityWarning:
		return "⚠"
	default:
		return "✔"
	}
}

func styleCheckLine(line string, check readiness.CheckResult, colors bool) string {
	if !colors {
		return line
	}
	switch {
	case !check.Passed && check.Severity == readiness.SeverityError:
		return notReadyStyle.Render(line)
	case check.Severity == readiness.SeverityWarning:
		return warnStyle.Render(line)
	case check.Passed:
		return readyStyle.Render(line)
	default:
		return mutedStyle.Render(line)
	}
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
