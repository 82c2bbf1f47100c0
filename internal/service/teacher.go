package service

import (
	"context"
	"fmt"

	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/repository"
)

var (
	ErrTeacherNotFound    = repository.ErrTeacherNotFound
	ErrTeacherEmailExists = repository.ErrTeacherEmailExists
)

type TeacherRepository interface {
	Create(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error)
	FindByID(ctx context.Context, id uint) (domain.Teacher, error)
	FindAll(ctx context.Context) ([]domain.Teacher, error)
	Update(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error)
	Delete(ctx context.Context, id uint) error
}

type TeacherService struct {
	repo TeacherRepository
}

func NewTeacherService(repo TeacherRepository) *TeacherService {
	return &TeacherService{
		repo: repo,
	}
}

func (s *TeacherService) Create(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error) {
	created, err := s.repo.Create(ctx, teacher)
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *TeacherService) Get(ctx context.Context, id uint) (domain.Teacher, error) {
	teacher, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return teacher, nil
}

func (s *TeacherService) List(ctx context.Context) ([]domain.Teacher, error) {
	teachers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return teachers, nil
}

func (s *TeacherService) Update(ctx context.Context, teacher domain.Teacher) (domain.Teacher, error) {
	updated, err := s.repo.Update(ctx, teacher)
	if err != nil {
		return domain.Teacher{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *TeacherService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
