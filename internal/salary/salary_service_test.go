package salary_test

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"go-payroll/internal/employee"
	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/salary"
	"go-payroll/internal/shared/apperror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	findByNumberFn func(ctx context.Context, employeeNumber string) (*employee.Employee, error)
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, empl *employee.Employee) (uint64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, empl *employee.Employee) (bool, error) {
	return false, errors.New("not implemented")
}

func (f *fakeEmployeeRepository) Delete(ctx context.Context, id uint64) (bool, error) {
	return false, errors.New("not implemented")
}

func (f *fakeEmployeeRepository) SetArchived(ctx context.Context, id uint64, archived bool) (bool, error) {
	return false, errors.New("not implemented")
}

func (f *fakeEmployeeRepository) ReplaceSkillsets(ctx context.Context, employeeID uint64, skillsetIDs []uint64) error {
	return errors.New("not implemented")
}

func (f *fakeEmployeeRepository) ReplaceWorkingDays(ctx context.Context, employeeID uint64, days []int) error {
	return errors.New("not implemented")
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id uint64) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindByNumber(ctx context.Context, employeeNumber string) (*employee.Employee, error) {
	if f.findByNumberFn != nil {
		return f.findByNumberFn(ctx, employeeNumber)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context, includeArchived bool) ([]employee.Employee, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeEmployeeRepository) Search(ctx context.Context, term string, includeArchived bool) ([]employee.Employee, error) {
	return nil, errors.New("not implemented")
}

func TestSalaryService_Calculate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			findByNumberFn: func(ctx context.Context, employeeNumber string) (*employee.Employee, error) {
				assert.Equal(t, "RAZ-00042-14MAY1994", employeeNumber)
				return &employee.Employee{
					ID:             7,
					EmployeeNumber: employeeNumber,
					EmployeeName:   "Razak Ahmad",
					DateOfBirth:    time.Date(1994, time.May, 14, 0, 0, 0, 0, time.UTC),
					DailyRate:      decimal.NewFromInt(100),
					WorkingDays: []employee.EmployeeWorkingDay{
						{EmployeeID: 7, DayOfWeek: 1},
						{EmployeeID: 7, DayOfWeek: 3},
						{EmployeeID: 7, DayOfWeek: 5},
					},
				}, nil
			},
		}
		svc := salary.NewService(repo)

		start := time.Date(2024, time.May, 13, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)

		resp, err := svc.Calculate(ctx, "RAZ-00042-14MAY1994", start, end)

		assert.NoError(t, err)
		assert.Equal(t, "Razak Ahmad", resp.EmployeeName)
		assert.Equal(t, "2024-05-13", resp.StartDate)
		assert.Equal(t, "2024-05-15", resp.EndDate)
		assert.Equal(t, 2, resp.TotalWorkingDays)
		assert.Equal(t, 1, resp.BirthdayBonus)
		assert.Equal(t, 3, resp.TotalDaysPaid)
		assert.True(t, resp.TakeHomePay.Equal(decimal.NewFromInt(600)))
		if assert.NotNil(t, resp.BirthdayDate) {
			assert.Equal(t, "May 14, 2024", *resp.BirthdayDate)
		}
		assert.Equal(t, []string{"Monday", "Wednesday", "Friday"}, resp.WorkingDaysList)
	})

	t.Run("no birthday in interval", func(t *testing.T) {
		repo := &fakeEmployeeRepository{
			findByNumberFn: func(ctx context.Context, employeeNumber string) (*employee.Employee, error) {
				return &employee.Employee{
					EmployeeNumber: employeeNumber,
					EmployeeName:   "Razak Ahmad",
					DateOfBirth:    time.Date(1994, time.June, 20, 0, 0, 0, 0, time.UTC),
					DailyRate:      decimal.NewFromInt(100),
					WorkingDays: []employee.EmployeeWorkingDay{
						{DayOfWeek: 1},
						{DayOfWeek: 3},
						{DayOfWeek: 5},
					},
				}, nil
			},
		}
		svc := salary.NewService(repo)

		start := time.Date(2024, time.May, 13, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)

		resp, err := svc.Calculate(ctx, "RAZ-00042-14MAY1994", start, end)

		assert.NoError(t, err)
		assert.Equal(t, 2, resp.TotalWorkingDays)
		assert.Equal(t, 0, resp.BirthdayBonus)
		assert.Nil(t, resp.BirthdayDate)
		assert.True(t, resp.TakeHomePay.Equal(decimal.NewFromInt(400)))
	})

	t.Run("unknown employee number", func(t *testing.T) {
		svc := salary.NewService(&fakeEmployeeRepository{})

		start := time.Date(2024, time.May, 13, 0, 0, 0, 0, time.UTC)
		_, err := svc.Calculate(ctx, "NOP-00000-01JAN2000", start, start)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("repository failure wrapped as internal error", func(t *testing.T) {
		repoErr := errors.New("connection reset")
		repo := &fakeEmployeeRepository{
			findByNumberFn: func(ctx context.Context, employeeNumber string) (*employee.Employee, error) {
				return nil, repoErr
			},
		}
		svc := salary.NewService(repo)

		start := time.Date(2024, time.May, 13, 0, 0, 0, 0, time.UTC)
		_, err := svc.Calculate(ctx, "RAZ-00042-14MAY1994", start, start)

		assert.ErrorIs(t, err, repoErr)

		var appErr *apperror.AppError
		if assert.ErrorAs(t, err, &appErr) {
			assert.Equal(t, apperror.CodeInternalError, appErr.Code)
			assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
		}
	})
}
