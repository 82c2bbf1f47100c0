package repository

import (
	"context"
	"fmt"

	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/repository/dao"
)

var (
	ErrFamilyNotFound    = dao.ErrFamilyNotFound
	ErrFamilyEmailExists = dao.ErrFamilyEmailExists
)

type FamilyDAO interface {
	Insert(ctx context.Context, family dao.Family) (dao.Family, error)
	FindByID(ctx context.Context, id uint) (dao.Family, error)
	FindAll(ctx context.Context) ([]dao.Family, error)
	Update(ctx context.Context, family dao.Family) (dao.Family, error)
	Delete(ctx context.Context, id uint) error
}

type FamilyRepository struct {
	dao FamilyDAO
}

func NewFamilyRepository(dao FamilyDAO) *FamilyRepository {
	return &FamilyRepository{
		dao: dao,
	}
}

func (r *FamilyRepository) Create(ctx context.Context, family domain.Family) (domain.Family, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(family))
	if err != nil {
		return domain.Family{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *FamilyRepository) FindByID(ctx context.Context, id uint) (domain.Family, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Family{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *FamilyRepository) FindAll(ctx context.Context) ([]domain.Family, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	families := make([]domain.Family, len(found))
	for i, f := range found {
		families[i] = r.daoToDomain(f)
	}

	return families, nil
}

func (r *FamilyRepository) Update(ctx context.Context, family domain.Family) (domain.Family, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(family))
	if err != nil {
		return domain.Family{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *FamilyRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *FamilyRepository) domainToDao(f domain.Family) dao.Family {
	return dao.Family{
		ID:    f.ID,
		Name:  f.Name,
		Email: f.Email,
		Phone: f.Phone,
		Notes: f.Notes,
	}
}

func (r *FamilyRepository) daoToDomain(f dao.Family) domain.Family {
	family := domain.Family{
		ID:        f.ID,
		Name:      f.Name,
		Email:     f.Email,
		Phone:     f.Phone,
		Notes:     f.Notes,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}

	for _, s := range f.Sheets {
		family.Sheets = append(family.Sheets, domain.Sheet{
			ID:             s.ID,
			Level:          domain.Level(s.Level),
			Year:           s.Year,
			PackSize:       domain.PackSize(s.PackSize),
			StartNumber:    s.StartNumber,
			EndNumber:      s.EndNumber,
			IsAssigned:     s.IsAssigned,
			FamilyID:       s.FamilyID,
			Downloads:      s.Downloads,
			GenerationDate: s.GenerationDate,
		})
	}

	return family
}
