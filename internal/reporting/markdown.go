package reporting

import (
	"fmt"
	"strings"
)

// Interpretation lines printed under the comparison table.
var Interpretation = []string{
	"1. RUL_RMSE (prediction error) should stay consistently low across all scenarios to show the model is ROBUST.",
	"2. Savings_Pct should be HIGHEST in the EXTREME_HIGH_HARSH scenario, where digital RBM is most effective at preventing costly failures.",
}

// RenderTable renders the comparison rows as a Markdown table, two decimals per float.
func RenderTable(rows []ScenarioRow) string {
	var sb strings.Builder

	sb.WriteString("| Scenario | Beta_Weibull | RUL_RMSE | R2_Score | Savings_IDR_Mn | Savings_Pct | Availability_Gain_Pct |\n")
	sb.WriteString("|----------|-------------:|---------:|---------:|---------------:|------------:|----------------------:|\n")
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("| %s | %.2f | %.2f | %.2f | %.2f | %.2f | %.2f |\n",
			r.Scenario, r.BetaWeibull, r.RULRMSE, r.R2Score,
			r.SavingsIDRMn, r.SavingsPct, r.AvailabilityGainPct))
	}

	return sb.String()
}

// RenderMarkdown renders report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	sb.WriteString("========================================================\n")
	sb.WriteString("         >>> ROBUSTNESS SIMULATION FINAL REPORT <<<     \n")
	sb.WriteString("========================================================\n\n")

	if len(r.Rows) > 0 {
		sb.WriteString(RenderTable(r.Rows))
	} else {
		sb.WriteString("No scenario produced enough labeled data.\n")
	}

	if len(r.Skipped) > 0 {
		sb.WriteString(fmt.Sprintf("\nSkipped (%d of %d): %s\n",
			len(r.Skipped), r.ScenarioCount, strings.Join(r.Skipped, ", ")))
	}

	sb.WriteString("\n[INTERPRETATION]:\n")
	for _, line := range Interpretation {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	return sb.String()
}
