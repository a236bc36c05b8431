package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	employeeerrors "go-payroll/internal/employee/errors"
	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/shared/contextutil"
	"go-payroll/internal/skillset"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, includeArchived bool) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id uint64) (EmployeeResponse, error)
	GetByNumber(ctx context.Context, employeeNumber string) (EmployeeResponse, error)
	Search(ctx context.Context, term string, includeArchived bool) ([]EmployeeResponse, error)
	Update(ctx context.Context, id uint64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id uint64) error
	Archive(ctx context.Context, id uint64) error
	Unarchive(ctx context.Context, id uint64) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	numbers *NumberGenerator
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, numbers *NumberGenerator, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, numbers, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	numbers *NumberGenerator,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		numbers: numbers,
		outbox:  outboxRepo,
		logger:  l,
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_name", req.EmployeeName),
	)

	dateOfBirth, err := parseDate(req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateOfBirth
	}
	if req.DailyRate.Cmp(decimal.Zero) <= 0 {
		return EmployeeResponse{}, employeeerrors.ErrDailyRateNotPositive
	}
	if err := validateWorkingDays(req.WorkingDays); err != nil {
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		EmployeeNumber:               s.numbers.Generate(req.EmployeeName, dateOfBirth),
		EmployeeName:                 req.EmployeeName,
		NationalIdentificationNumber: req.NationalIdentificationNumber,
		ContactNumber:                req.ContactNumber,
		ResidenceAddress:             req.ResidenceAddress,
		DateOfBirth:                  dateOfBirth,
		DailyRate:                    req.DailyRate,
		IsArchived:                   false,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	id, err := qtx.Create(ctx, empl)
	if err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := qtx.ReplaceSkillsets(ctx, id, req.SkillsetIDs); err != nil {
		s.logger.Error("create employee attach skillsets failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := qtx.ReplaceWorkingDays(ctx, id, req.WorkingDays); err != nil {
		s.logger.Error("create employee attach working days failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, events.EmployeeCreated, empl); err != nil {
		s.logger.Error("create employee outbox persist failed",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	created, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create employee success",
		zap.Uint64("employee_id", id),
		zap.String("employee_number", empl.EmployeeNumber),
	)

	return mapToResponse(*created), nil
}

func (s *service) GetAll(
	ctx context.Context,
	includeArchived bool,
) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx, includeArchived)
	if err != nil {
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(
	ctx context.Context,
	id uint64,
) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetByNumber(
	ctx context.Context,
	employeeNumber string,
) (EmployeeResponse, error) {
	empl, err := s.repo.FindByNumber(ctx, employeeNumber)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Search(
	ctx context.Context,
	term string,
	includeArchived bool,
) ([]EmployeeResponse, error) {
	empls, err := s.repo.Search(ctx, term, includeArchived)
	if err != nil {
		s.logger.Error("search employees failed", zap.String("term", term), zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) Update(
	ctx context.Context,
	id uint64,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.Uint64("employee_id", id))

	dateOfBirth, err := parseDate(req.DateOfBirth)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidDateOfBirth
	}
	if req.DailyRate.Cmp(decimal.Zero) <= 0 {
		return EmployeeResponse{}, employeeerrors.ErrDailyRateNotPositive
	}
	if err := validateWorkingDays(req.WorkingDays); err != nil {
		return EmployeeResponse{}, err
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.EmployeeName = req.EmployeeName
	empl.NationalIdentificationNumber = req.NationalIdentificationNumber
	empl.ContactNumber = req.ContactNumber
	empl.ResidenceAddress = req.ResidenceAddress
	empl.DateOfBirth = dateOfBirth
	empl.DailyRate = req.DailyRate

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	found, err := qtx.Update(ctx, empl)
	if err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	if !found {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	// Full replacement, not a diff: the request's sets win.
	if err := qtx.ReplaceSkillsets(ctx, id, req.SkillsetIDs); err != nil {
		s.logger.Error("update employee replace skillsets failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := qtx.ReplaceWorkingDays(ctx, id, req.WorkingDays); err != nil {
		s.logger.Error("update employee replace working days failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success", zap.Uint64("employee_id", id))

	return mapToResponse(*updated), nil
}

func (s *service) Delete(ctx context.Context, id uint64) error {
	s.logger.Debug("delete employee requested", zap.Uint64("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	found, err := qtx.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if !found {
		return employeeerrors.ErrEmployeeNotFound
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success", zap.Uint64("employee_id", id))
	return nil
}

func (s *service) Archive(ctx context.Context, id uint64) error {
	return s.setArchived(ctx, id, true, events.EmployeeArchived)
}

func (s *service) Unarchive(ctx context.Context, id uint64) error {
	return s.setArchived(ctx, id, false, events.EmployeeUnarchived)
}

func (s *service) setArchived(ctx context.Context, id uint64, archived bool, eventType string) error {
	s.logger.Debug("set employee archived requested",
		zap.Uint64("employee_id", id),
		zap.Bool("archived", archived),
	)

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("set employee archived begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	found, err := qtx.SetArchived(ctx, id, archived)
	if err != nil {
		s.logger.Error("set employee archived failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if !found {
		return employeeerrors.ErrEmployeeNotFound
	}

	if err := s.enqueueLifecycleEvent(ctx, tx, eventType, empl); err != nil {
		s.logger.Error("set employee archived outbox persist failed", zap.Error(err))
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("set employee archived commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("set employee archived success",
		zap.Uint64("employee_id", id),
		zap.Bool("archived", archived),
	)
	return nil
}

func (s *service) enqueueLifecycleEvent(
	ctx context.Context,
	tx *sql.Tx,
	eventType string,
	empl *Employee,
) error {
	if s.outbox == nil {
		return nil
	}

	event := events.EmployeeLifecycleEvent{
		EventType:      eventType,
		RequestID:      contextutil.GetRequestID(ctx),
		EmployeeID:     empl.ID,
		EmployeeNumber: empl.EmployeeNumber,
		OccurredAt:     time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     event.RequestID,
		AggregateType: "employee",
		AggregateID:   empl.EmployeeNumber,
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func parseDate(v string) (time.Time, error) {
	return time.Parse("2006-01-02", v)
}

func validateWorkingDays(days []int) error {
	seen := make(map[int]bool, len(days))
	for _, day := range days {
		if seen[day] {
			return employeeerrors.ErrDuplicateWorkingDay
		}
		seen[day] = true
	}
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	skills := make([]skillset.SkillsetResponse, len(empl.Skillsets))
	for i, skill := range empl.Skillsets {
		skills[i] = skillset.MapToResponse(skill)
	}

	days := make([]int, len(empl.WorkingDays))
	for i, day := range empl.WorkingDays {
		days[i] = day.DayOfWeek
	}

	return EmployeeResponse{
		ID:                           empl.ID,
		EmployeeNumber:               empl.EmployeeNumber,
		EmployeeName:                 empl.EmployeeName,
		NationalIdentificationNumber: empl.NationalIdentificationNumber,
		ContactNumber:                empl.ContactNumber,
		ResidenceAddress:             empl.ResidenceAddress,
		DateOfBirth:                  empl.DateOfBirth.Format("2006-01-02"),
		DailyRate:                    empl.DailyRate,
		IsArchived:                   empl.IsArchived,
		Skillsets:                    skills,
		WorkingDays:                  days,
		CreatedAt:                    empl.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:                    empl.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, empl := range empls {
		res[i] = mapToResponse(empl)
	}
	return res
}
