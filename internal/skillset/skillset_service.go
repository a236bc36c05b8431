package skillset

import (
	"context"
	"errors"

	skillseterrors "go-payroll/internal/skillset/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	GetAll(ctx context.Context) ([]SkillsetResponse, error)
	GetByID(ctx context.Context, id uint64) (SkillsetResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo:   repo,
		logger: zap.L().Named("skillset.service"),
	}
}

func (s *service) GetAll(ctx context.Context) ([]SkillsetResponse, error) {
	skills, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("list skillsets failed", zap.Error(err))
		return nil, err
	}

	return mapToListResponse(skills), nil
}

func (s *service) GetByID(ctx context.Context, id uint64) (SkillsetResponse, error) {
	skill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SkillsetResponse{}, skillseterrors.ErrSkillsetNotFound
		}
		s.logger.Error("get skillset failed", zap.Uint64("skillset_id", id), zap.Error(err))
		return SkillsetResponse{}, err
	}

	return MapToResponse(*skill), nil
}

func MapToResponse(skill Skillset) SkillsetResponse {
	return SkillsetResponse{
		ID:          skill.ID,
		Name:        skill.Name,
		Description: skill.Description,
	}
}

func mapToListResponse(skills []Skillset) []SkillsetResponse {
	res := make([]SkillsetResponse, len(skills))
	for i, skill := range skills {
		res[i] = MapToResponse(skill)
	}
	return res
}
