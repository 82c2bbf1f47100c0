package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/repository"
)

var (
	ErrPaymentNotFound      = repository.ErrPaymentNotFound
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

type PaymentRepository interface {
	Create(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	FindByID(ctx context.Context, id uint) (domain.Payment, error)
	FindAll(ctx context.Context, familyID *uint) ([]domain.Payment, error)
	Update(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	Delete(ctx context.Context, id uint) error
}

type PaymentFamilyRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Family, error)
}

type PaymentService struct {
	repo       PaymentRepository
	familyRepo PaymentFamilyRepository
}

func NewPaymentService(repo PaymentRepository, familyRepo PaymentFamilyRepository) *PaymentService {
	return &PaymentService{
		repo:       repo,
		familyRepo: familyRepo,
	}
}

func (s *PaymentService) Record(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	if !payment.Method.IsValid() {
		return domain.Payment{}, ErrInvalidPaymentMethod
	}

	if _, err := s.familyRepo.FindByID(ctx, payment.FamilyID); err != nil {
		return domain.Payment{}, fmt.Errorf("s.familyRepo.FindByID -> %w", err)
	}

	created, err := s.repo.Create(ctx, payment)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *PaymentService) List(ctx context.Context, familyID *uint) ([]domain.Payment, error) {
	payments, err := s.repo.FindAll(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return payments, nil
}

func (s *PaymentService) Update(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	if !payment.Method.IsValid() {
		return domain.Payment{}, ErrInvalidPaymentMethod
	}

	updated, err := s.repo.Update(ctx, payment)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
