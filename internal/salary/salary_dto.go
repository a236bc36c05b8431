package salary

import "github.com/shopspring/decimal"

type CalculateSalaryRequest struct {
	EmployeeNumber string `json:"employeeNumber" binding:"required"`
	StartDate      string `json:"startDate" binding:"required"`
	EndDate        string `json:"endDate" binding:"required"`
}

type CalculateSalaryResponse struct {
	EmployeeNumber   string          `json:"employeeNumber"`
	EmployeeName     string          `json:"employeeName"`
	StartDate        string          `json:"startDate"`
	EndDate          string          `json:"endDate"`
	DailyRate        decimal.Decimal `json:"dailyRate"`
	TotalWorkingDays int             `json:"totalWorkingDays"`
	BirthdayBonus    int             `json:"birthdayBonus"`
	TotalDaysPaid    int             `json:"totalDaysPaid"`
	TakeHomePay      decimal.Decimal `json:"takeHomePay"`
	WorkingDaysList  []string        `json:"workingDaysList"`
	BirthdayDate     *string         `json:"birthdayDate,omitempty"`
}
