package repository

import (
	"context"
	"fmt"

	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/repository/dao"
)

var ErrTicketNotFound = dao.ErrTicketNotFound

type TicketDAO interface {
	InsertBatch(ctx context.Context, tickets []dao.Ticket) ([]dao.Ticket, error)
	FindByFamilyID(ctx context.Context, familyID uint) ([]dao.Ticket, error)
	CountByFamilyID(ctx context.Context, familyID uint) (int64, error)
	UpdateUsed(ctx context.Context, familyID uint, codes []string, used bool) (int64, error)
	AnyUsedBySheetID(ctx context.Context, sheetID uint) (bool, error)
}

type TicketRepository struct {
	dao TicketDAO
}

func NewTicketRepository(dao TicketDAO) *TicketRepository {
	return &TicketRepository{
		dao: dao,
	}
}

func (r *TicketRepository) CreateBatch(ctx context.Context, tickets []domain.Ticket) ([]domain.Ticket, error) {
	daoTickets := make([]dao.Ticket, len(tickets))
	for i, t := range tickets {
		daoTickets[i] = r.domainToDao(t)
	}

	inserted, err := r.dao.InsertBatch(ctx, daoTickets)
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertBatch -> %w", err)
	}

	return r.daosToDomain(inserted), nil
}

func (r *TicketRepository) FindByFamilyID(ctx context.Context, familyID uint) ([]domain.Ticket, error) {
	found, err := r.dao.FindByFamilyID(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByFamilyID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *TicketRepository) CountByFamilyID(ctx context.Context, familyID uint) (int64, error) {
	count, err := r.dao.CountByFamilyID(ctx, familyID)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CountByFamilyID -> %w", err)
	}

	return count, nil
}

func (r *TicketRepository) UpdateUsed(ctx context.Context, familyID uint, codes []string, used bool) (int64, error) {
	updated, err := r.dao.UpdateUsed(ctx, familyID, codes, used)
	if err != nil {
		return 0, fmt.Errorf("r.dao.UpdateUsed -> %w", err)
	}

	return updated, nil
}

func (r *TicketRepository) AnyUsedBySheetID(ctx context.Context, sheetID uint) (bool, error) {
	used, err := r.dao.AnyUsedBySheetID(ctx, sheetID)
	if err != nil {
		return false, fmt.Errorf("r.dao.AnyUsedBySheetID -> %w", err)
	}

	return used, nil
}

func (r *TicketRepository) domainToDao(t domain.Ticket) dao.Ticket {
	return dao.Ticket{
		Code:        t.Code,
		SheetID:     t.SheetID,
		FamilyID:    t.FamilyID,
		IsUsed:      t.IsUsed,
		ValidatedAt: t.ValidatedAt,
	}
}

func (r *TicketRepository) daoToDomain(t dao.Ticket) domain.Ticket {
	return domain.Ticket{
		Code:        t.Code,
		SheetID:     t.SheetID,
		FamilyID:    t.FamilyID,
		IsUsed:      t.IsUsed,
		ValidatedAt: t.ValidatedAt,
	}
}

func (r *TicketRepository) daosToDomain(tickets []dao.Ticket) []domain.Ticket {
	result := make([]domain.Ticket, len(tickets))
	for i, t := range tickets {
		result[i] = r.daoToDomain(t)
	}

	return result
}
