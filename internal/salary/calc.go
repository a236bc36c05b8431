package salary

import (
	"time"

	"github.com/shopspring/decimal"
)

// Breakdown is the result of a salary calculation over a closed date
// interval. TakeHomePay is exact decimal arithmetic; no floats anywhere.
type Breakdown struct {
	WorkingDaysCount int
	BirthdayBonus    int
	BirthdayDate     string // "May 14, 2024", empty when no birthday in range
	TotalDaysPaid    int
	TakeHomePay      decimal.Decimal
	WorkingDays      []time.Weekday
}

// Calculate walks the inclusive interval [start, end] day by day, counting
// dates whose weekday belongs to the working-day set, and grants a single
// birthday bonus for the first date matching the birth month and day.
// Both working days and the bonus are paid at double the daily rate.
// Callers guarantee start <= end.
func Calculate(
	workingDays []time.Weekday,
	dateOfBirth time.Time,
	dailyRate decimal.Decimal,
	start, end time.Time,
) Breakdown {
	workingSet := make(map[time.Weekday]bool, len(workingDays))
	for _, day := range workingDays {
		workingSet[day] = true
	}

	workingDaysCount := 0
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		if workingSet[date.Weekday()] {
			workingDaysCount++
		}
	}

	birthdayBonus := 0
	birthdayDate := ""
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		if date.Month() == dateOfBirth.Month() && date.Day() == dateOfBirth.Day() {
			birthdayBonus = 1
			birthdayDate = date.Format("Jan 02, 2006")
			break
		}
	}

	// working days * 2 * daily rate + birthday bonus * daily rate * 2
	takeHomePay := decimal.NewFromInt(int64(workingDaysCount * 2)).Mul(dailyRate).
		Add(decimal.NewFromInt(int64(birthdayBonus)).Mul(dailyRate).Mul(decimal.NewFromInt(2)))

	return Breakdown{
		WorkingDaysCount: workingDaysCount,
		BirthdayBonus:    birthdayBonus,
		BirthdayDate:     birthdayDate,
		TotalDaysPaid:    workingDaysCount + birthdayBonus,
		TakeHomePay:      takeHomePay,
		WorkingDays:      workingDays,
	}
}
