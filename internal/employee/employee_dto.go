package employee

import (
	"go-payroll/internal/skillset"

	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeName                 string          `json:"employeeName" binding:"required"`
	NationalIdentificationNumber string          `json:"nationalIdentificationNumber" binding:"required"`
	ContactNumber                string          `json:"contactNumber"`
	ResidenceAddress             string          `json:"residenceAddress"`
	DateOfBirth                  string          `json:"dateOfBirth" binding:"required"`
	DailyRate                    decimal.Decimal `json:"dailyRate" binding:"required"`
	SkillsetIDs                  []uint64        `json:"skillsetIds"`
	WorkingDays                  []int           `json:"workingDays" binding:"dive,min=0,max=6"`
}

type UpdateEmployeeRequest struct {
	ID                           uint64          `json:"id" binding:"required"`
	EmployeeName                 string          `json:"employeeName" binding:"required"`
	NationalIdentificationNumber string          `json:"nationalIdentificationNumber" binding:"required"`
	ContactNumber                string          `json:"contactNumber"`
	ResidenceAddress             string          `json:"residenceAddress"`
	DateOfBirth                  string          `json:"dateOfBirth" binding:"required"`
	DailyRate                    decimal.Decimal `json:"dailyRate" binding:"required"`
	SkillsetIDs                  []uint64        `json:"skillsetIds"`
	WorkingDays                  []int           `json:"workingDays" binding:"dive,min=0,max=6"`
}

type EmployeeResponse struct {
	ID                           uint64                      `json:"id"`
	EmployeeNumber               string                      `json:"employeeNumber"`
	EmployeeName                 string                      `json:"employeeName"`
	NationalIdentificationNumber string                      `json:"nationalIdentificationNumber"`
	ContactNumber                string                      `json:"contactNumber"`
	ResidenceAddress             string                      `json:"residenceAddress"`
	DateOfBirth                  string                      `json:"dateOfBirth"`
	DailyRate                    decimal.Decimal             `json:"dailyRate"`
	IsArchived                   bool                        `json:"isArchived"`
	Skillsets                    []skillset.SkillsetResponse `json:"skillsets"`
	WorkingDays                  []int                       `json:"workingDays"`
	CreatedAt                    string                      `json:"createdAt"`
	UpdatedAt                    string                      `json:"updatedAt"`
}
