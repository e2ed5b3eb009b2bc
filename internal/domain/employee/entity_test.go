package employee

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDailyRate(t *testing.T) {
	monthly := Employee{SalaryType: SalaryTypeMonthly, BaseSalary: decimal.NewFromInt(3000)}
	daily := Employee{SalaryType: SalaryTypeDaily, BaseSalary: decimal.NewFromInt(120)}
	freelance := Employee{SalaryType: SalaryTypeFreelance, HourlyRate: decimal.NewFromInt(15)}

	assert.True(t, monthly.DailyRate().Equal(decimal.NewFromInt(100)))
	assert.True(t, daily.DailyRate().Equal(decimal.NewFromInt(120)))
	assert.True(t, freelance.DailyRate().IsZero())
}

func TestHourlyValue(t *testing.T) {
	monthly := Employee{SalaryType: SalaryTypeMonthly, BaseSalary: decimal.NewFromInt(3000)}
	// 100 per day over 8 hours
	assert.True(t, monthly.HourlyValue(480).Equal(decimal.RequireFromString("12.5")))
	assert.True(t, monthly.HourlyValue(0).IsZero())

	freelance := Employee{SalaryType: SalaryTypeFreelance, HourlyRate: decimal.NewFromInt(15)}
	assert.True(t, freelance.HourlyValue(480).Equal(decimal.NewFromInt(15)))
}
