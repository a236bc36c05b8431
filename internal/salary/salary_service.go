package salary

import (
	"context"
	"errors"
	"net/http"
	"time"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/shared/apperror"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Calculate(ctx context.Context, employeeNumber string, start, end time.Time) (CalculateSalaryResponse, error)
}

type service struct {
	employees employee.Repository
	logger    *zap.Logger
}

func NewService(employees employee.Repository) Service {
	return &service{
		employees: employees,
		logger:    zap.L().Named("salary.service"),
	}
}

// Calculate resolves the employee by number and runs the pure engine over
// their configured working days. Interval ordering is the caller's problem.
func (s *service) Calculate(
	ctx context.Context,
	employeeNumber string,
	start, end time.Time,
) (CalculateSalaryResponse, error) {
	empl, err := s.employees.FindByNumber(ctx, employeeNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CalculateSalaryResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		s.logger.Error("calculate salary lookup failed",
			zap.String("employee_number", employeeNumber),
			zap.Error(err),
		)
		return CalculateSalaryResponse{}, apperror.Wrap(
			err,
			apperror.CodeInternalError,
			"Could not calculate salary",
			http.StatusInternalServerError,
		)
	}

	workingDays := make([]time.Weekday, len(empl.WorkingDays))
	for i, day := range empl.WorkingDays {
		workingDays[i] = time.Weekday(day.DayOfWeek)
	}

	breakdown := Calculate(workingDays, empl.DateOfBirth, empl.DailyRate, start, end)

	s.logger.Debug("salary calculated",
		zap.String("employee_number", employeeNumber),
		zap.Int("working_days", breakdown.WorkingDaysCount),
		zap.Int("birthday_bonus", breakdown.BirthdayBonus),
	)

	return mapToResponse(empl, breakdown, start, end), nil
}

func mapToResponse(
	empl *employee.Employee,
	breakdown Breakdown,
	start, end time.Time,
) CalculateSalaryResponse {
	dayNames := make([]string, len(breakdown.WorkingDays))
	for i, day := range breakdown.WorkingDays {
		dayNames[i] = day.String()
	}

	resp := CalculateSalaryResponse{
		EmployeeNumber:   empl.EmployeeNumber,
		EmployeeName:     empl.EmployeeName,
		StartDate:        start.Format("2006-01-02"),
		EndDate:          end.Format("2006-01-02"),
		DailyRate:        empl.DailyRate,
		TotalWorkingDays: breakdown.WorkingDaysCount,
		BirthdayBonus:    breakdown.BirthdayBonus,
		TotalDaysPaid:    breakdown.TotalDaysPaid,
		TakeHomePay:      breakdown.TakeHomePay,
		WorkingDaysList:  dayNames,
	}
	if breakdown.BirthdayDate != "" {
		resp.BirthdayDate = &breakdown.BirthdayDate
	}
	return resp
}
