package reporting

import (
	"fmt"
	"strings"
)

// RenderCSV renders comparison rows as CSV string.
func RenderCSV(rows []ScenarioRow) string {
	var sb strings.Builder

	// Header
	sb.WriteString("scenario,beta_weibull,rul_rmse,r2_score,savings_idr_mn,savings_pct,availability_gain_pct,")
	sb.WriteString("seed,failure_events,labeled_readings,mean_risk_score_idr\n")

	// Rows
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%s,%.6f,%.6f,%.6f,%.6f,%.6f,%.6f,%d,%d,%d,%.2f\n",
			r.Scenario,
			r.BetaWeibull,
			r.RULRMSE,
			r.R2Score,
			r.SavingsIDRMn,
			r.SavingsPct,
			r.AvailabilityGainPct,
			r.Seed,
			r.FailureEvents,
			r.LabeledReadings,
			r.MeanRiskScoreIDR,
		))
	}

	return sb.String()
}
