package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/the-credit-must-flow/internal/engine"
	"github.com/Veraticus/the-credit-must-flow/internal/loan"
	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/Veraticus/the-credit-must-flow/internal/scoring"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 20

// RenderReport writes the full score report for snap to w.
func RenderReport(w io.Writer, snap engine.Snapshot) error {
	sections := []string{
		FormatTitle("Credit Score"),
		renderHeadline(snap),
		renderBreakdown(snap.Breakdown),
		renderOffers(snap.Offers),
		renderInsights(snap.Insights),
	}

	if _, err := fmt.Fprintln(w, strings.Join(sections, "\n\n")); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// RenderComparison writes how a change moved the score from before to after.
func RenderComparison(w io.Writer, before, after engine.Snapshot) error {
	var b strings.Builder

	b.WriteString(FormatTitle("Simulated Change"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s  %d → %d (%s)\n",
		BoldStyle.Render(fmt.Sprintf("%-24s", "Overall")),
		before.Score.Overall, after.Score.Overall,
		formatDelta(after.Score.Overall-before.Score.Overall))

	for _, key := range model.CategoryKeys {
		was, now := before.Score.Categories.Get(key), after.Score.Categories.Get(key)
		fmt.Fprintf(&b, "%-24s  %d → %d (%s)\n", scoring.CategoryName(key), was, now, formatDelta(now-was))
	}

	beforeEligible, afterEligible := len(loan.Eligible(before.Offers)), len(loan.Eligible(after.Offers))
	if afterEligible != beforeEligible {
		b.WriteString("\n")
		b.WriteString(FormatInfo(fmt.Sprintf("Eligible offers: %d → %d", beforeEligible, afterEligible)))
		b.WriteString("\n")
	}

	if _, err := fmt.Fprint(w, b.String()); err != nil {
		return fmt.Errorf("failed to write comparison: %w", err)
	}
	return nil
}

func renderHeadline(snap engine.Snapshot) string {
	score := BandStyle(snap.Band).Render(fmt.Sprintf("%d / 100  %s", snap.Score.Overall, snap.Band))
	basis := SubtleStyle.Render(fmt.Sprintf("%d of %d transactions in the last 30 days, as of %s",
		snap.WindowCount, snap.TransactionCount, snap.ComputedAt.Format("2006-01-02")))
	return lipgloss.JoinVertical(lipgloss.Left, score, basis)
}

func renderBreakdown(rows []model.CategoryBreakdown) string {
	lines := []string{
		TableHeaderStyle.Render(fmt.Sprintf("%-24s %5s  %-*s %7s", "Category", "Score", barWidth, "", "Points")),
	}

	for _, row := range rows {
		style := WarningStyle
		if row.Good {
			style = SuccessStyle
		}
		line := fmt.Sprintf("%-24s %5d  %s %3d/%-3d",
			row.Name, row.Score, style.Render(bar(row.Score)), row.Points, row.MaxPoints)
		lines = append(lines, line)
		if !row.Good {
			lines = append(lines, SubtleStyle.Render("  "+TipIcon+" "+row.Tip))
		}
	}

	return RenderBox(ChartIcon+" Score Breakdown", strings.Join(lines, "\n"))
}

func renderOffers(offers []model.LoanOffer) string {
	lines := make([]string, 0, len(offers))
	for _, offer := range offers {
		terms := fmt.Sprintf("%-8s %10s  %4.1f%%  %2d months  %s/month",
			offer.Tier, offer.Amount.StringFixed(0), offer.InterestRate, offer.TermMonths, offer.MonthlyPayment.StringFixed(0))

		if !offer.Eligible {
			lines = append(lines, ErrorStyle.Render(LockIcon+" "+terms)+"  "+SubtleStyle.Render(offer.LockReason))
			continue
		}

		amortized := loan.AmortizedPayment(offer.Amount, offer.InterestRate, offer.TermMonths)
		lines = append(lines, SuccessStyle.Render(SuccessIcon+" "+terms)+"  "+
			SubtleStyle.Render(fmt.Sprintf("(amortized %s)", amortized.StringFixed(2))))
	}

	return RenderBox("Loan Offers", strings.Join(lines, "\n"))
}

func renderInsights(insights []model.Insight) string {
	if len(insights) == 0 {
		return SubtleStyle.Render("No insights yet. Record more transactions to get tailored advice.")
	}

	lines := make([]string, 0, len(insights))
	for _, in := range insights {
		style, icon := InsightStyle(in.Kind)
		text := in.Message
		if in.Category != "" {
			text = in.Category + ": " + text
		}
		lines = append(lines, style.Render(icon+" "+text))
	}
	return RenderBox("Insights", strings.Join(lines, "\n"))
}

func bar(score int) string {
	filled := score * barWidth / 100
	if filled < 0 {
		filled = 0
	}
	if filled > barWidth {
		filled = barWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

func formatDelta(d int) string {
	switch {
	case d > 0:
		return SuccessStyle.Render(fmt.Sprintf("+%d", d))
	case d < 0:
		return ErrorStyle.Render(fmt.Sprintf("%d", d))
	default:
		return SubtleStyle.Render("±0")
	}
}
