package notification

import (
	"testing"
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRender_ApprovedWithDeduction(t *testing.T) {
	text := Render(approvedOutcome(1))

	assert.Contains(t, text, "Your check-in on 2024-03-11 was approved.")
	assert.Contains(t, text, "Check-in: 09:10")
	assert.Contains(t, text, "Late: 10 min")
	assert.Contains(t, text, "Grace minutes used: 5 min")
	assert.Contains(t, text, "Deduction: 50.00 (0.5 day)")
	assert.Contains(t, text, "By: Manager")
}

func TestRender_EditShowsDelta(t *testing.T) {
	oldIn := time.Date(2024, 3, 11, 9, 40, 0, 0, time.UTC)
	newIn := time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC)
	text := Render(payroll.Outcome{
		Action:         payroll.ActionEditCheckIn,
		Date:           "2024-03-11",
		OldCheckIn:     &oldIn,
		NewCheckIn:     &newIn,
		OldLateMinutes: 40,
		DeductionDelta: decimal.NewFromInt(-100),
		BalanceAfter:   60,
	})

	assert.Contains(t, text, "Check-in: 09:40 → 09:00")
	assert.Contains(t, text, "Late: 40 → 0 min")
	assert.Contains(t, text, "Deduction change: -100.00")
	assert.NotContains(t, text, "By:")
}

func TestRender_Arabic(t *testing.T) {
	out := approvedOutcome(1)
	out.Language = "ar"

	text := Render(out)

	assert.Contains(t, text, "تمت الموافقة على تسجيل حضورك بتاريخ 2024-03-11.")
	assert.Contains(t, text, "بواسطة: Manager")
}

func TestRender_CheckoutEditAsksForReapproval(t *testing.T) {
	text := Render(payroll.Outcome{
		Action:   payroll.ActionEditCheckOut,
		Date:     "2024-03-11",
		OldBonus: decimal.RequireFromString("42.86"),
	})

	assert.Contains(t, text, "Check-out: - → -")
	assert.Contains(t, text, "Overtime bonus removed: 42.86")
	assert.Contains(t, text, "Overtime needs to be approved again.")
}
