package repository

import (
	"context"
	"fmt"

	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/repository/dao"
)

var ErrPaymentNotFound = dao.ErrPaymentNotFound

type PaymentDAO interface {
	Insert(ctx context.Context, payment dao.Payment) (dao.Payment, error)
	FindByID(ctx context.Context, id uint) (dao.Payment, error)
	FindAll(ctx context.Context, familyID *uint) ([]dao.Payment, error)
	Update(ctx context.Context, payment dao.Payment) (dao.Payment, error)
	Delete(ctx context.Context, id uint) error
}

type PaymentRepository struct {
	dao PaymentDAO
}

func NewPaymentRepository(dao PaymentDAO) *PaymentRepository {
	return &PaymentRepository{
		dao: dao,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(payment))
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uint) (domain.Payment, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *PaymentRepository) FindAll(ctx context.Context, familyID *uint) ([]domain.Payment, error) {
	found, err := r.dao.FindAll(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	payments := make([]domain.Payment, len(found))
	for i, p := range found {
		payments[i] = r.daoToDomain(p)
	}

	return payments, nil
}

func (r *PaymentRepository) Update(ctx context.Context, payment domain.Payment) (domain.Payment, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(payment))
	if err != nil {
		return domain.Payment{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *PaymentRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *PaymentRepository) domainToDao(p domain.Payment) dao.Payment {
	return dao.Payment{
		ID:       p.ID,
		FamilyID: p.FamilyID,
		Amount:   p.Amount,
		Method:   string(p.Method),
		PaidAt:   p.PaidAt,
		Note:     p.Note,
	}
}

func (r *PaymentRepository) daoToDomain(p dao.Payment) domain.Payment {
	return domain.Payment{
		ID:        p.ID,
		FamilyID:  p.FamilyID,
		Amount:    p.Amount,
		Method:    domain.PaymentMethod(p.Method),
		PaidAt:    p.PaidAt,
		Note:      p.Note,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
