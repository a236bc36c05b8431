package skillset_test

import (
	"context"
	"errors"
	"testing"

	"go-payroll/internal/skillset"
	skillseterrors "go-payroll/internal/skillset/errors"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeSkillsetRepository struct {
	findAllFn  func(ctx context.Context) ([]skillset.Skillset, error)
	findByIDFn func(ctx context.Context, id uint64) (*skillset.Skillset, error)
}

func (f *fakeSkillsetRepository) FindAll(ctx context.Context) ([]skillset.Skillset, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeSkillsetRepository) FindByID(ctx context.Context, id uint64) (*skillset.Skillset, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func TestSkillsetService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("maps entities", func(t *testing.T) {
		desc := "Pipe fitting and fixture installation"
		repo := &fakeSkillsetRepository{
			findAllFn: func(ctx context.Context) ([]skillset.Skillset, error) {
				return []skillset.Skillset{
					{ID: 1, Name: "Carpentry"},
					{ID: 2, Name: "Plumbing", Description: &desc},
				}, nil
			},
		}

		resp, err := skillset.NewService(repo).GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, "Carpentry", resp[0].Name)
		assert.Nil(t, resp[0].Description)
		if assert.NotNil(t, resp[1].Description) {
			assert.Equal(t, desc, *resp[1].Description)
		}
	})

	t.Run("repository failure is passed through", func(t *testing.T) {
		repoErr := errors.New("connection reset")
		repo := &fakeSkillsetRepository{
			findAllFn: func(ctx context.Context) ([]skillset.Skillset, error) {
				return nil, repoErr
			},
		}

		_, err := skillset.NewService(repo).GetAll(ctx)
		assert.ErrorIs(t, err, repoErr)
	})
}

func TestSkillsetService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		repo := &fakeSkillsetRepository{
			findByIDFn: func(ctx context.Context, id uint64) (*skillset.Skillset, error) {
				assert.Equal(t, uint64(3), id)
				return &skillset.Skillset{ID: 3, Name: "Welding"}, nil
			},
		}

		resp, err := skillset.NewService(repo).GetByID(ctx, 3)

		assert.NoError(t, err)
		assert.Equal(t, uint64(3), resp.ID)
		assert.Equal(t, "Welding", resp.Name)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := skillset.NewService(&fakeSkillsetRepository{}).GetByID(ctx, 99)
		assert.ErrorIs(t, err, skillseterrors.ErrSkillsetNotFound)
	})
}
