package employee

import (
	"time"

	"go-payroll/internal/skillset"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                           uint64 `gorm:"primaryKey"`
	EmployeeNumber               string `gorm:"uniqueIndex"`
	EmployeeName                 string
	NationalIdentificationNumber string
	ContactNumber                string
	ResidenceAddress             string
	DateOfBirth                  time.Time       `gorm:"type:date"`
	DailyRate                    decimal.Decimal `gorm:"type:numeric(12,2)"`
	IsArchived                   bool
	CreatedAt                    time.Time
	UpdatedAt                    time.Time

	// Child rows, loaded separately by the repository.
	Skillsets   []skillset.Skillset  `gorm:"-"`
	WorkingDays []EmployeeWorkingDay `gorm:"-"`
}

type EmployeeSkillset struct {
	EmployeeID uint64 `gorm:"primaryKey"`
	SkillsetID uint64 `gorm:"primaryKey"`
	AssignedAt time.Time
}

type EmployeeWorkingDay struct {
	EmployeeID uint64 `gorm:"primaryKey"`
	DayOfWeek  int    `gorm:"primaryKey"` // 0 = Sunday .. 6 = Saturday
	CreatedAt  time.Time
}
