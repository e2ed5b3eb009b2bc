package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/hadir-hr/hadir-backend-go/internal/domain/employee"
	"github.com/hadir-hr/hadir-backend-go/internal/domain/payroll"
)

type phrases struct {
	approved        string
	edited          string
	markedAbsent    string
	unmarkedAbsent  string
	checkoutEdited  string
	overtime        string
	checkIn         string
	checkOut        string
	lateMinutes     string
	graceUsed       string
	graceRestored   string
	balance         string
	deduction       string
	deductionChange string
	bonus           string
	bonusRemoved    string
	reapproval      string
	by              string
	minutes         string
	days            string
}

var english = phrases{
	approved:        "Your check-in on %s was approved.",
	edited:          "Your check-in time on %s was corrected.",
	markedAbsent:    "You were marked absent on %s.",
	unmarkedAbsent:  "Your absence on %s was removed.",
	checkoutEdited:  "Your check-out time on %s was changed.",
	overtime:        "Your overtime on %s was approved.",
	checkIn:         "Check-in",
	checkOut:        "Check-out",
	lateMinutes:     "Late",
	graceUsed:       "Grace minutes used",
	graceRestored:   "Grace minutes restored",
	balance:         "Remaining grace balance",
	deduction:       "Deduction",
	deductionChange: "Deduction change",
	bonus:           "Overtime bonus",
	bonusRemoved:    "Overtime bonus removed",
	reapproval:      "Overtime needs to be approved again.",
	by:              "By",
	minutes:         "min",
	days:            "day",
}

var arabic = phrases{
	approved:        "تمت الموافقة على تسجيل حضورك بتاريخ %s.",
	edited:          "تم تعديل وقت حضورك بتاريخ %s.",
	markedAbsent:    "تم تسجيلك غائباً بتاريخ %s.",
	unmarkedAbsent:  "تم إلغاء غيابك بتاريخ %s.",
	checkoutEdited:  "تم تعديل وقت انصرافك بتاريخ %s.",
	overtime:        "تمت الموافقة على العمل الإضافي بتاريخ %s.",
	checkIn:         "الحضور",
	checkOut:        "الانصراف",
	lateMinutes:     "التأخير",
	graceUsed:       "دقائق السماح المستخدمة",
	graceRestored:   "دقائق السماح المستردة",
	balance:         "رصيد السماح المتبقي",
	deduction:       "الخصم",
	deductionChange: "تغير الخصم",
	bonus:           "مكافأة العمل الإضافي",
	bonusRemoved:    "تم إلغاء مكافأة العمل الإضافي",
	reapproval:      "يجب اعتماد العمل الإضافي مرة أخرى.",
	by:              "بواسطة",
	minutes:         "دقيقة",
	days:            "يوم",
}

// Render builds the employee message for an outcome in the employee's language.
// It reads the same fields the HTTP response carries.
func Render(o payroll.Outcome) string {
	p := english
	if o.Language == string(employee.LanguageArabic) {
		p = arabic
	}

	loc := time.UTC
	if o.Timezone != "" {
		if l, err := time.LoadLocation(o.Timezone); err == nil {
			loc = l
		}
	}

	var b strings.Builder
	line := func(format string, args ...any) {
		b.WriteString(fmt.Sprintf(format, args...))
		b.WriteString("\n")
	}

	switch o.Action {
	case payroll.ActionApprove:
		line(p.approved, o.Date)
		line("%s: %s", p.checkIn, clockTime(o.NewCheckIn, loc))
		lateLines(line, p, o)
	case payroll.ActionEditCheckIn:
		line(p.edited, o.Date)
		line("%s: %s → %s", p.checkIn, clockTime(o.OldCheckIn, loc), clockTime(o.NewCheckIn, loc))
		line("%s: %d → %d %s", p.lateMinutes, o.OldLateMinutes, o.NewLateMinutes, p.minutes)
		if o.BalanceRestored > 0 {
			line("%s: %d %s", p.graceRestored, o.BalanceRestored, p.minutes)
		}
		if o.BalanceConsumed > 0 {
			line("%s: %d %s", p.graceUsed, o.BalanceConsumed, p.minutes)
		}
		if !o.DeductionDelta.IsZero() {
			line("%s: %s", p.deductionChange, signed(o.DeductionDelta.StringFixed(2)))
		}
		line("%s: %d %s", p.balance, o.BalanceAfter, p.minutes)
	case payroll.ActionMarkAbsent:
		line(p.markedAbsent, o.Date)
		if o.NewDeduction.IsPositive() {
			line("%s: %s (%s %s)", p.deduction, o.NewDeduction.StringFixed(2), o.DeductionDays.String(), p.days)
		}
		if o.BalanceRestored > 0 {
			line("%s: %d %s", p.graceRestored, o.BalanceRestored, p.minutes)
		}
	case payroll.ActionUnmarkAbsent:
		line(p.unmarkedAbsent, o.Date)
		if !o.DeductionDelta.IsZero() {
			line("%s: %s", p.deductionChange, signed(o.DeductionDelta.StringFixed(2)))
		}
	case payroll.ActionEditCheckOut:
		line(p.checkoutEdited, o.Date)
		line("%s: %s → %s", p.checkOut, clockTime(o.OldCheckOut, loc), clockTime(o.NewCheckOut, loc))
		if o.OldBonus.IsPositive() {
			line("%s: %s", p.bonusRemoved, o.OldBonus.StringFixed(2))
			line("%s", p.reapproval)
		}
	case payroll.ActionApproveOvertime:
		line(p.overtime, o.Date)
		line("%s: %s (%d %s)", p.bonus, o.NewBonus.StringFixed(2), o.OvertimeMinutes, p.minutes)
	}

	if o.Actor != "" {
		line("%s: %s", p.by, o.Actor)
	}
	return strings.TrimRight(b.String(), "\n")
}

func lateLines(line func(string, ...any), p phrases, o payroll.Outcome) {
	if o.NewLateMinutes == 0 {
		return
	}
	line("%s: %d %s", p.lateMinutes, o.NewLateMinutes, p.minutes)
	if o.BalanceConsumed > 0 {
		line("%s: %d %s", p.graceUsed, o.BalanceConsumed, p.minutes)
	}
	if o.NewDeduction.IsPositive() {
		line("%s: %s (%s %s)", p.deduction, o.NewDeduction.StringFixed(2), o.DeductionDays.String(), p.days)
	}
	line("%s: %d %s", p.balance, o.BalanceAfter, p.minutes)
}

func clockTime(t *time.Time, loc *time.Location) string {
	if t == nil {
		return "-"
	}
	return t.In(loc).Format("15:04")
}

func signed(amount string) string {
	if strings.HasPrefix(amount, "-") {
		return amount
	}
	return "+" + amount
}
