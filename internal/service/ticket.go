package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/repository"
)

var ErrTicketNotFound = repository.ErrTicketNotFound

type TicketRepository interface {
	CreateBatch(ctx context.Context, tickets []domain.Ticket) ([]domain.Ticket, error)
	FindByFamilyID(ctx context.Context, familyID uint) ([]domain.Ticket, error)
	CountByFamilyID(ctx context.Context, familyID uint) (int64, error)
	UpdateUsed(ctx context.Context, familyID uint, codes []string, used bool) (int64, error)
}

type TicketSheetRepository interface {
	FindByFamilyID(ctx context.Context, familyID uint) ([]domain.Sheet, error)
}

type TicketFamilyRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Family, error)
}

type TicketService struct {
	repo       TicketRepository
	sheetRepo  TicketSheetRepository
	familyRepo TicketFamilyRepository
}

func NewTicketService(repo TicketRepository, sheetRepo TicketSheetRepository, familyRepo TicketFamilyRepository) *TicketService {
	return &TicketService{
		repo:       repo,
		sheetRepo:  sheetRepo,
		familyRepo: familyRepo,
	}
}

// MaterializeTickets expands every sheet assigned to the family into
// one ticket per serial number, sorted by code. Codes take their year
// from the sheet's generation date, so they always match what is
// printed on the physical sheet. Pure; persistence and the
// run-once-per-family precondition live with the caller.
func MaterializeTickets(family domain.Family, sheets []domain.Sheet) []domain.Ticket {
	var tickets []domain.Ticket
	for _, sheet := range sheets {
		if sheet.FamilyID == nil || *sheet.FamilyID != family.ID {
			continue
		}
		for n := sheet.StartNumber; n <= sheet.EndNumber; n++ {
			tickets = append(tickets, domain.Ticket{
				Code:     domain.TicketCode(sheet.Level, sheet.Year, n),
				SheetID:  sheet.ID,
				FamilyID: family.ID,
			})
		}
	}

	sort.Slice(tickets, func(i, j int) bool {
		return tickets[i].Code < tickets[j].Code
	})

	return tickets
}

// ListByFamily returns the family's tickets, materializing them first
// if none exist yet. The empty-count check is what keeps
// materialization idempotent per family.
func (s *TicketService) ListByFamily(ctx context.Context, familyID uint) ([]domain.Ticket, error) {
	family, err := s.familyRepo.FindByID(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("s.familyRepo.FindByID -> %w", err)
	}

	count, err := s.repo.CountByFamilyID(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.CountByFamilyID -> %w", err)
	}

	if count == 0 {
		sheets, err := s.sheetRepo.FindByFamilyID(ctx, familyID)
		if err != nil {
			return nil, fmt.Errorf("s.sheetRepo.FindByFamilyID -> %w", err)
		}

		tickets := MaterializeTickets(family, sheets)
		if len(tickets) > 0 {
			if _, err := s.repo.CreateBatch(ctx, tickets); err != nil {
				return nil, fmt.Errorf("s.repo.CreateBatch -> %w", err)
			}

			zap.L().Info("materialized tickets",
				zap.Uint("family_id", familyID),
				zap.Int("count", len(tickets)),
			)
		}
	}

	tickets, err := s.repo.FindByFamilyID(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByFamilyID -> %w", err)
	}

	return tickets, nil
}

// Validate flips the usage flag on an existing set of the family's
// tickets. Unknown codes are never created; the returned count lets
// the caller report how many of the requested codes actually matched.
func (s *TicketService) Validate(ctx context.Context, familyID uint, codes []string, used bool) (int64, error) {
	if _, err := s.familyRepo.FindByID(ctx, familyID); err != nil {
		return 0, fmt.Errorf("s.familyRepo.FindByID -> %w", err)
	}

	updated, err := s.repo.UpdateUsed(ctx, familyID, codes, used)
	if err != nil {
		return 0, fmt.Errorf("s.repo.UpdateUsed -> %w", err)
	}

	return updated, nil
}
