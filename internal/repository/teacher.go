package repository

import (
	"context"
	"fmt"

	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/repository/dao"
)

var (
	ErrTeacherNotFound    = dao.ErrTeacherNotFound
	ErrTeacherEmailExists = dao.ErrTeacherEmailExists
)

type TeacherDAO interface {
	Insert(ctx context.Context, teacher dao.Teacher) (dao.Teacher, error)
	FindByID(ctx context.Context, id uint) (dao.Teacher, error)
	FindAll(ctx context.Context) ([]dao.Teacher, error)
	Update(ctx context.Context, teacher dao.Teacher) (dao.Teacher, error)
	Delete(ctx context.Context, id uint) error
}

type TeacherRepository struct {
	dao TeacherDAO
}

func NewTeacherRepository(dao TeacherDAO) *TeacherRepository {
	return &TeacherRepository{
		dao: dao,
	}
}

func (r *TeacherRepository) Create(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(teacher))
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *TeacherRepository) FindByID(ctx context.Context, id uint) (domain.Teacher, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *TeacherRepository) FindAll(ctx context.Context) ([]domain.Teacher, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	teachers := make([]domain.Teacher, len(found))
	for i, t := range found {
		teachers[i] = r.daoToDomain(t)
	}

	return teachers, nil
}

func (r *TeacherRepository) Update(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(teacher))
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *TeacherRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *TeacherRepository) domainToDao(t domain.Teacher) dao.Teacher {
	return dao.Teacher{
		ID:         t.ID,
		FirstName:  t.FirstName,
		LastName:   t.LastName,
		Email:      t.Email,
		Subject:    t.Subject,
		HourlyRate: t.HourlyRate,
	}
}

func (r *TeacherRepository) daoToDomain(t dao.Teacher) domain.Teacher {
	return domain.Teacher{
		ID:         t.ID,
		FirstName:  t.FirstName,
		LastName:   t.LastName,
		Email:      t.Email,
		Subject:    t.Subject,
		HourlyRate: t.HourlyRate,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}
