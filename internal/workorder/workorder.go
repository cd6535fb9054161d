// Package workorder issues mock maintenance work orders from a degradation
// assessment. Nothing is sent to an external system.
package workorder

import (
	"fmt"
	"sync"
	"time"

	"cip-engine/internal/degradation"
	"cip-engine/internal/idhash"
)

// Fixed strategic and downstream values.
const (
	Priority        = "HIGH (RANK 1)"
	DataSource      = "NASA IMS Ref."
	AHPScore        = 0.89
	RiskMatrix      = "CRITICAL"
	RepairSLA       = "< 48h"
	ERPStatus       = "SYNCED"
	Notification    = "SENT TO MOBILE"
	numberPrefix    = "WO/CIP-ENG"
	numberSeqDigits = 3
)

// TechnicalSnapshot is the first pillar.
type TechnicalSnapshot struct {
	VibrationRMS      float64 `json:"vibration_rms"`
	RemainingLifeDays int     `json:"remaining_life_days"`
	DataSource        string  `json:"data_source"`
}

// StrategicVerification is the second pillar.
type StrategicVerification struct {
	AHPScore   float64 `json:"ahp_score"`
	RiskMatrix string  `json:"risk_matrix"`
	RepairSLA  string  `json:"repair_sla"`
}

// DownstreamConnectivity is the third pillar.
type DownstreamConnectivity struct {
	Number       string `json:"number"`
	ERPStatus    string `json:"erp_status"`
	Notification string `json:"notification"`
}

// WorkOrder is an issued mock work order.
type WorkOrder struct {
	Number        string                 `json:"number"`
	Ref           string                 `json:"ref"`
	Terminal      string                 `json:"terminal"`
	TerminalCode  string                 `json:"terminal_code"`
	Priority      string                 `json:"priority"`
	RiskCostMnIDR float64                `json:"risk_cost_mn_idr"`
	IssuedAt      time.Time              `json:"issued_at"`
	Technical     TechnicalSnapshot      `json:"technical"`
	Strategic     StrategicVerification  `json:"strategic"`
	Downstream    DownstreamConnectivity `json:"downstream"`
}

// Issuer numbers work orders sequentially within a calendar year.
// Safe for concurrent use.
type Issuer struct {
	now func() time.Time

	mu   sync.Mutex
	year int
	seq  int
}

// NewIssuer creates an issuer. now defaults to time.Now.
func NewIssuer(now func() time.Time) *Issuer {
	if now == nil {
		now = time.Now
	}
	return &Issuer{now: now}
}

// Issue builds a work order for a.
func (i *Issuer) Issue(a *degradation.Assessment) *WorkOrder {
	issuedAt := i.now().UTC()
	number := i.nextNumber(issuedAt.Year())
	terminal := a.Input.Terminal.DisplayName()

	return &WorkOrder{
		Number:        number,
		Ref:           idhash.ComputeWorkOrderRef(number, string(a.Input.Terminal), a.FailureDay, a.Input.Beta),
		Terminal:      terminal,
		TerminalCode:  string(a.Input.Terminal),
		Priority:      Priority,
		RiskCostMnIDR: a.RiskCostMnIDR,
		IssuedAt:      issuedAt,
		Technical: TechnicalSnapshot{
			VibrationRMS:      a.LastVibrationRMS,
			RemainingLifeDays: a.RemainingLifeDays,
			DataSource:        DataSource,
		},
		Strategic: StrategicVerification{
			AHPScore:   AHPScore,
			RiskMatrix: RiskMatrix,
			RepairSLA:  RepairSLA,
		},
		Downstream: DownstreamConnectivity{
			Number:       number,
			ERPStatus:    ERPStatus,
			Notification: Notification,
		},
	}
}

func (i *Issuer) nextNumber(year int) string {
	i.mu.Lock()
	defer i.mu.Unlock()

	if year != i.year {
		i.year = year
		i.seq = 0
	}
	i.seq++
	return fmt.Sprintf("%s/%d/%0*d", numberPrefix, year, numberSeqDigits, i.seq)
}
