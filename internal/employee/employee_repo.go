package employee

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/skillset"

	"gorm.io/gorm"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) (uint64, error)
	Update(ctx context.Context, empl *Employee) (bool, error)
	Delete(ctx context.Context, id uint64) (bool, error)
	SetArchived(ctx context.Context, id uint64, archived bool) (bool, error)
	ReplaceSkillsets(ctx context.Context, employeeID uint64, skillsetIDs []uint64) error
	ReplaceWorkingDays(ctx context.Context, employeeID uint64, days []int) error
	FindByID(ctx context.Context, id uint64) (*Employee, error)
	FindByNumber(ctx context.Context, employeeNumber string) (*Employee, error)
	FindAll(ctx context.Context, includeArchived bool) ([]Employee, error)
	Search(ctx context.Context, term string, includeArchived bool) ([]Employee, error)
}

type repository struct {
	db    *gorm.DB
	sqlDB *sql.DB
	tx    *sql.Tx
}

func NewRepository(db *gorm.DB, sqlDB *sql.DB) Repository {
	return &repository{db: db, sqlDB: sqlDB}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db:    r.db,
		sqlDB: r.sqlDB,
		tx:    tx,
	}
}

// Writes go through raw parameterized SQL on the execer so they ride the
// caller's transaction; reads go through gorm outside of it.

func (r *repository) Create(ctx context.Context, empl *Employee) (uint64, error) {
	now := time.Now().UTC()
	empl.CreatedAt = now
	empl.UpdatedAt = now

	query := `
INSERT INTO employees (
	employee_number, employee_name, national_identification_number,
	contact_number, residence_address, date_of_birth, daily_rate,
	is_archived, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING id
`

	var id uint64
	err := r.execer().QueryRowContext(
		ctx, query,
		empl.EmployeeNumber, empl.EmployeeName, empl.NationalIdentificationNumber,
		empl.ContactNumber, empl.ResidenceAddress, empl.DateOfBirth, empl.DailyRate,
		empl.IsArchived, empl.CreatedAt, empl.UpdatedAt,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	empl.ID = id
	return id, nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) (bool, error) {
	empl.UpdatedAt = time.Now().UTC()

	query := `
UPDATE employees
SET
	employee_name = $1,
	national_identification_number = $2,
	contact_number = $3,
	residence_address = $4,
	date_of_birth = $5,
	daily_rate = $6,
	updated_at = $7
WHERE id = $8
`

	res, err := r.execer().ExecContext(
		ctx, query,
		empl.EmployeeName, empl.NationalIdentificationNumber,
		empl.ContactNumber, empl.ResidenceAddress, empl.DateOfBirth,
		empl.DailyRate, empl.UpdatedAt, empl.ID,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *repository) Delete(ctx context.Context, id uint64) (bool, error) {
	res, err := r.execer().ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

func (r *repository) SetArchived(ctx context.Context, id uint64, archived bool) (bool, error) {
	query := `UPDATE employees SET is_archived = $1, updated_at = $2 WHERE id = $3`

	res, err := r.execer().ExecContext(ctx, query, archived, time.Now().UTC(), id)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	return affected > 0, err
}

// ReplaceSkillsets swaps the full assignment set: delete everything, then
// reinsert. Callers run this inside a transaction so readers never observe
// the empty intermediate state.
func (r *repository) ReplaceSkillsets(ctx context.Context, employeeID uint64, skillsetIDs []uint64) error {
	exec := r.execer()

	if _, err := exec.ExecContext(ctx,
		`DELETE FROM employee_skillsets WHERE employee_id = $1`, employeeID); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, skillsetID := range skillsetIDs {
		if _, err := exec.ExecContext(ctx,
			`INSERT INTO employee_skillsets (employee_id, skillset_id, assigned_at) VALUES ($1, $2, $3)`,
			employeeID, skillsetID, now); err != nil {
			return err
		}
	}

	return nil
}

func (r *repository) ReplaceWorkingDays(ctx context.Context, employeeID uint64, days []int) error {
	exec := r.execer()

	if _, err := exec.ExecContext(ctx,
		`DELETE FROM employee_working_days WHERE employee_id = $1`, employeeID); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, day := range days {
		if _, err := exec.ExecContext(ctx,
			`INSERT INTO employee_working_days (employee_id, day_of_week, created_at) VALUES ($1, $2, $3)`,
			employeeID, day, now); err != nil {
			return err
		}
	}

	return nil
}

func (r *repository) FindByID(ctx context.Context, id uint64) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}

	empls := []Employee{empl}
	if err := r.loadDetails(ctx, empls); err != nil {
		return nil, err
	}

	return &empls[0], nil
}

func (r *repository) FindByNumber(ctx context.Context, employeeNumber string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		First(&empl, "employee_number = ?", employeeNumber).Error
	if err != nil {
		return nil, err
	}

	empls := []Employee{empl}
	if err := r.loadDetails(ctx, empls); err != nil {
		return nil, err
	}

	return &empls[0], nil
}

func (r *repository) FindAll(ctx context.Context, includeArchived bool) ([]Employee, error) {
	query := r.db.WithContext(ctx).Order("id ASC")
	if !includeArchived {
		query = query.Where("is_archived = FALSE")
	}

	var empls []Employee
	if err := query.Find(&empls).Error; err != nil {
		return nil, err
	}

	if err := r.loadDetails(ctx, empls); err != nil {
		return nil, err
	}

	return empls, nil
}

func (r *repository) Search(ctx context.Context, term string, includeArchived bool) ([]Employee, error) {
	pattern := "%" + term + "%"

	query := r.db.WithContext(ctx).
		Where("(employee_number ILIKE ? OR employee_name ILIKE ?)", pattern, pattern).
		Order("id ASC")
	if !includeArchived {
		query = query.Where("is_archived = FALSE")
	}

	var empls []Employee
	if err := query.Find(&empls).Error; err != nil {
		return nil, err
	}

	if err := r.loadDetails(ctx, empls); err != nil {
		return nil, err
	}

	return empls, nil
}

type employeeSkillRow struct {
	EmployeeID  uint64
	ID          uint64
	Name        string
	Description *string
	CreatedAt   time.Time
}

// loadDetails attaches skillsets and working days for a whole result page
// with two grouped queries keyed by the id set, instead of 2N lookups.
func (r *repository) loadDetails(ctx context.Context, empls []Employee) error {
	if len(empls) == 0 {
		return nil
	}

	ids := make([]uint64, len(empls))
	for i, empl := range empls {
		ids[i] = empl.ID
	}

	var skillRows []employeeSkillRow
	err := r.db.WithContext(ctx).
		Table("skillsets").
		Select("employee_skillsets.employee_id, skillsets.id, skillsets.name, skillsets.description, skillsets.created_at").
		Joins("INNER JOIN employee_skillsets ON employee_skillsets.skillset_id = skillsets.id").
		Where("employee_skillsets.employee_id IN ?", ids).
		Order("skillsets.name ASC").
		Scan(&skillRows).Error
	if err != nil {
		return err
	}

	var dayRows []EmployeeWorkingDay
	err = r.db.WithContext(ctx).
		Where("employee_id IN ?", ids).
		Order("day_of_week ASC").
		Find(&dayRows).Error
	if err != nil {
		return err
	}

	skillsByEmployee := make(map[uint64][]skillset.Skillset, len(empls))
	for _, row := range skillRows {
		skillsByEmployee[row.EmployeeID] = append(skillsByEmployee[row.EmployeeID], skillset.Skillset{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			CreatedAt:   row.CreatedAt,
		})
	}

	daysByEmployee := make(map[uint64][]EmployeeWorkingDay, len(empls))
	for _, row := range dayRows {
		daysByEmployee[row.EmployeeID] = append(daysByEmployee[row.EmployeeID], row)
	}

	for i := range empls {
		empls[i].Skillsets = skillsByEmployee[empls[i].ID]
		empls[i].WorkingDays = daysByEmployee[empls[i].ID]
	}

	return nil
}

func (r *repository) execer() interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
} {
	if r.tx != nil {
		return r.tx
	}
	return r.sqlDB
}
