package service

import (
	"context"
	"fmt"

	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/repository"
)

var (
	ErrFamilyNotFound    = repository.ErrFamilyNotFound
	ErrFamilyEmailExists = repository.ErrFamilyEmailExists
)

type FamilyRepository interface {
	Create(ctx context.Context, family domain.Family) (domain.Family, error)
	FindByID(ctx context.Context, id uint) (domain.Family, error)
	FindAll(ctx context.Context) ([]domain.Family, error)
	Update(ctx context.Context, family domain.Family) (domain.Family, error)
	Delete(ctx context.Context, id uint) error
}

type FamilyService struct {
	repo FamilyRepository
}

func NewFamilyService(repo FamilyRepository) *FamilyService {
	return &FamilyService{
		repo: repo,
	}
}

func (s *FamilyService) Create(ctx context.Context, family domain.Family) (domain.Family, error) {
	created, err := s.repo.Create(ctx, family)
	if err != nil {
		return domain.Family{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *FamilyService) Get(ctx context.Context, id uint) (domain.Family, error) {
	family, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Family{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return family, nil
}

func (s *FamilyService) List(ctx context.Context) ([]domain.Family, error) {
	families, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return families, nil
}

func (s *FamilyService) Update(ctx context.Context, family domain.Family) (domain.Family, error) {
	updated, err := s.repo.Update(ctx, family)
	if err != nil {
		return domain.Family{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// Delete removes the family, its tickets, and releases its sheets back
// to the unassigned pool.
func (s *FamilyService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
