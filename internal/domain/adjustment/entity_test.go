package adjustment

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthKey(t *testing.T) {
	got := MonthKey(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestTotals(t *testing.T) {
	rows := []SalaryAdjustment{
		{Bonus: decimal.NewFromInt(20)},
		{Deduction: decimal.NewFromInt(50)},
		{Deduction: decimal.RequireFromString("12.5"), Bonus: decimal.NewFromInt(5)},
	}
	bonus, deduction := Totals(rows)
	assert.True(t, bonus.Equal(decimal.NewFromInt(25)), bonus.String())
	assert.True(t, deduction.Equal(decimal.RequireFromString("62.5")), deduction.String())
}

func TestCategoryValid(t *testing.T) {
	assert.True(t, CategoryOvertimeBonus.Valid())
	assert.False(t, Category("overtime").Valid())
}
