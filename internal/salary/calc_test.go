package salary_test

import (
	"testing"
	"time"

	"go-payroll/internal/salary"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculate_CountsWorkingDaysInInterval(t *testing.T) {
	// 2024-05-13 (Mon) .. 2024-05-15 (Wed); working Mon, Wed, Fri
	breakdown := salary.Calculate(
		[]time.Weekday{time.Monday, time.Wednesday, time.Friday},
		date(1994, time.June, 20),
		decimal.NewFromInt(100),
		date(2024, time.May, 13),
		date(2024, time.May, 15),
	)

	assert.Equal(t, 2, breakdown.WorkingDaysCount)
	assert.Equal(t, 0, breakdown.BirthdayBonus)
	assert.Empty(t, breakdown.BirthdayDate)
	assert.Equal(t, 2, breakdown.TotalDaysPaid)
	assert.True(t, breakdown.TakeHomePay.Equal(decimal.NewFromInt(400)),
		"expected 400, got %s", breakdown.TakeHomePay)
}

func TestCalculate_BirthdayBonusOnNonWorkingDay(t *testing.T) {
	// dob May 14; 2024-05-14 is a Tuesday, not a working day
	breakdown := salary.Calculate(
		[]time.Weekday{time.Monday, time.Wednesday, time.Friday},
		date(1994, time.May, 14),
		decimal.NewFromInt(100),
		date(2024, time.May, 13),
		date(2024, time.May, 15),
	)

	assert.Equal(t, 2, breakdown.WorkingDaysCount)
	assert.Equal(t, 1, breakdown.BirthdayBonus)
	assert.Equal(t, "May 14, 2024", breakdown.BirthdayDate)
	assert.Equal(t, 3, breakdown.TotalDaysPaid)
	// 2*2*100 + 1*2*100
	assert.True(t, breakdown.TakeHomePay.Equal(decimal.NewFromInt(600)),
		"expected 600, got %s", breakdown.TakeHomePay)
}

func TestCalculate_EmptyWorkingDaySet(t *testing.T) {
	breakdown := salary.Calculate(
		nil,
		date(1994, time.June, 20),
		decimal.NewFromInt(250),
		date(2024, time.January, 1),
		date(2024, time.January, 31),
	)

	assert.Equal(t, 0, breakdown.WorkingDaysCount)
	assert.Equal(t, 0, breakdown.TotalDaysPaid)
	assert.True(t, breakdown.TakeHomePay.IsZero())
}

func TestCalculate_SingleDayInterval(t *testing.T) {
	// 2024-05-13 is a Monday
	breakdown := salary.Calculate(
		[]time.Weekday{time.Monday},
		date(1994, time.May, 13),
		decimal.NewFromInt(100),
		date(2024, time.May, 13),
		date(2024, time.May, 13),
	)

	assert.Equal(t, 1, breakdown.WorkingDaysCount)
	assert.Equal(t, 1, breakdown.BirthdayBonus)
	assert.Equal(t, "May 13, 2024", breakdown.BirthdayDate)
	assert.True(t, breakdown.TakeHomePay.Equal(decimal.NewFromInt(400)))
}

func TestCalculate_MultiYearIntervalGrantsSingleBonus(t *testing.T) {
	// dob May 14; interval spans three May 14ths, only the first counts
	breakdown := salary.Calculate(
		nil,
		date(1994, time.May, 14),
		decimal.NewFromInt(100),
		date(2023, time.January, 1),
		date(2025, time.December, 31),
	)

	assert.Equal(t, 1, breakdown.BirthdayBonus)
	assert.Equal(t, "May 14, 2023", breakdown.BirthdayDate)
	assert.True(t, breakdown.TakeHomePay.Equal(decimal.NewFromInt(200)))
}

func TestCalculate_ExactDecimalArithmetic(t *testing.T) {
	// Full week Mon..Fri working, rate 123.45: 5*2*123.45 = 1234.50
	breakdown := salary.Calculate(
		[]time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		date(1990, time.December, 25),
		decimal.RequireFromString("123.45"),
		date(2024, time.May, 13),
		date(2024, time.May, 17),
	)

	assert.Equal(t, 5, breakdown.WorkingDaysCount)
	assert.True(t, breakdown.TakeHomePay.Equal(decimal.RequireFromString("1234.50")),
		"expected 1234.50, got %s", breakdown.TakeHomePay)
}

func TestCalculate_WorkingDaysPassedThroughForDisplay(t *testing.T) {
	workingDays := []time.Weekday{time.Sunday, time.Saturday}
	breakdown := salary.Calculate(
		workingDays,
		date(1994, time.June, 20),
		decimal.NewFromInt(100),
		date(2024, time.May, 13),
		date(2024, time.May, 15),
	)

	assert.Equal(t, workingDays, breakdown.WorkingDays)
	assert.Equal(t, 0, breakdown.WorkingDaysCount)
}
