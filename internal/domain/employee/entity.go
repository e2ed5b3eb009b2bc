package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type SalaryType string

const (
	SalaryTypeMonthly   SalaryType = "monthly"
	SalaryTypeDaily     SalaryType = "daily"
	SalaryTypeFreelance SalaryType = "freelance"
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

type Employee struct {
	ID             string
	CompanyID      string
	FullName       string
	SalaryType     SalaryType
	BaseSalary     decimal.Decimal
	HourlyRate     decimal.Decimal
	TelegramChatID *int64
	Language       Language
	// MonthlyLateBalanceMinutes is nil until the first grace consumption or reset.
	MonthlyLateBalanceMinutes *int
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

var daysPerMonth = decimal.NewFromInt(30)

func (e Employee) IsFreelancer() bool {
	return e.SalaryType == SalaryTypeFreelance
}

// DailyRate converts the base salary into the value of one working day.
// Monthly salaries use a 30-day month; daily salaries are already a day rate.
func (e Employee) DailyRate() decimal.Decimal {
	switch e.SalaryType {
	case SalaryTypeDaily:
		return e.BaseSalary
	case SalaryTypeFreelance:
		return decimal.Zero
	default:
		return e.BaseSalary.Div(daysPerMonth)
	}
}

// HourlyValue is the pay of one hour of work for overtime purposes.
func (e Employee) HourlyValue(expectedDailyMinutes int) decimal.Decimal {
	if e.IsFreelancer() {
		return e.HourlyRate
	}
	if expectedDailyMinutes <= 0 {
		return decimal.Zero
	}
	return e.DailyRate().Mul(decimal.NewFromInt(60)).Div(decimal.NewFromInt(int64(expectedDailyMinutes)))
}
