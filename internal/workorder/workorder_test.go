package workorder

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cip-engine/internal/degradation"
)

func testAssessment() *degradation.Assessment {
	return &degradation.Assessment{
		Input: degradation.Input{
			Beta:              2.5,
			DowntimeCostMnIDR: 100,
			Terminal:          degradation.TerminalSurabaya,
		},
		FailureDay:        200,
		RemainingLifeDays: 165,
		RiskCostMnIDR:     16500,
		LastVibrationRMS:  12.34,
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssuer_Issue(t *testing.T) {
	issuedAt := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	i := NewIssuer(fixedClock(issuedAt))

	wo := i.Issue(testAssessment())

	assert.Equal(t, "WO/CIP-ENG/2026/001", wo.Number)
	assert.Equal(t, wo.Number, wo.Downstream.Number)
	assert.Equal(t, "Terminal Surabaya (T2)", wo.Terminal)
	assert.Equal(t, Priority, wo.Priority)
	assert.Equal(t, issuedAt, wo.IssuedAt)
	assert.Equal(t, 16500.0, wo.RiskCostMnIDR)

	assert.Equal(t, 12.34, wo.Technical.VibrationRMS)
	assert.Equal(t, 165, wo.Technical.RemainingLifeDays)
	assert.Equal(t, "NASA IMS Ref.", wo.Technical.DataSource)

	assert.Equal(t, 0.89, wo.Strategic.AHPScore)
	assert.Equal(t, "CRITICAL", wo.Strategic.RiskMatrix)
	assert.Equal(t, "< 48h", wo.Strategic.RepairSLA)

	assert.Equal(t, "SYNCED", wo.Downstream.ERPStatus)
	assert.Equal(t, "SENT TO MOBILE", wo.Downstream.Notification)
	assert.NotEmpty(t, wo.Ref)
}

func TestIssuer_SequenceAndYearRollover(t *testing.T) {
	now := time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC)
	i := NewIssuer(func() time.Time { return now })

	assert.Equal(t, "WO/CIP-ENG/2026/001", i.Issue(testAssessment()).Number)
	assert.Equal(t, "WO/CIP-ENG/2026/002", i.Issue(testAssessment()).Number)

	now = now.Add(2 * time.Hour)
	assert.Equal(t, "WO/CIP-ENG/2027/001", i.Issue(testAssessment()).Number)
}

func TestIssuer_RefsDifferPerNumber(t *testing.T) {
	i := NewIssuer(fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))

	a := i.Issue(testAssessment())
	b := i.Issue(testAssessment())
	assert.NotEqual(t, a.Ref, b.Ref)
}

func TestIssuer_ConcurrentNumbersUnique(t *testing.T) {
	i := NewIssuer(fixedClock(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)))

	const n = 50
	numbers := make([]string, n)
	var wg sync.WaitGroup
	for k := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			numbers[k] = i.Issue(testAssessment()).Number
		}()
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for _, num := range numbers {
		require.False(t, seen[num], "duplicate %s", num)
		seen[num] = true
	}
	assert.True(t, seen["WO/CIP-ENG/2026/050"])
}
