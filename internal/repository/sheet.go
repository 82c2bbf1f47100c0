package repository

import (
	"context"
	"fmt"

	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/pkg/serial"
	"github.com/ticketwise/api/internal/repository/dao"
)

var (
	ErrSheetNotFound        = dao.ErrSheetNotFound
	ErrSheetAlreadyAssigned = dao.ErrSheetAlreadyAssigned
	ErrSheetNotAssigned     = dao.ErrSheetNotAssigned
)

type SheetDAO interface {
	InsertBatch(ctx context.Context, level string, year, count int, build func(r serial.Range) []dao.Sheet) ([]dao.Sheet, error)
	FindAll(ctx context.Context, filter dao.SheetFilter) ([]dao.Sheet, error)
	FindByID(ctx context.Context, id uint) (dao.Sheet, error)
	FindByFamilyID(ctx context.Context, familyID uint) ([]dao.Sheet, error)
	Assign(ctx context.Context, sheetID, familyID uint) (dao.Sheet, error)
	Unassign(ctx context.Context, sheetID uint) (dao.Sheet, error)
	IncrementDownloads(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type SheetRepository struct {
	dao SheetDAO
}

func NewSheetRepository(dao SheetDAO) *SheetRepository {
	return &SheetRepository{
		dao: dao,
	}
}

// CreateBatch allocates the next count serials of the (level, year)
// partition and persists the sheets built for them, atomically. The
// build callback receives the allocated block and carves it up; the
// allocation itself stays behind the DAO's partition lock.
func (r *SheetRepository) CreateBatch(ctx context.Context, level domain.Level, year, count int, build func(r serial.Range) []domain.Sheet) ([]domain.Sheet, error) {
	inserted, err := r.dao.InsertBatch(ctx, string(level), year, count, func(block serial.Range) []dao.Sheet {
		sheets := build(block)
		daoSheets := make([]dao.Sheet, len(sheets))
		for i, s := range sheets {
			daoSheets[i] = r.domainToDao(s)
		}

		return daoSheets
	})
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertBatch -> %w", err)
	}

	return r.daosToDomain(inserted), nil
}

func (r *SheetRepository) FindAll(ctx context.Context, assigned *bool, familyID *uint) ([]domain.Sheet, error) {
	found, err := r.dao.FindAll(ctx, dao.SheetFilter{Assigned: assigned, FamilyID: familyID})
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *SheetRepository) FindByID(ctx context.Context, id uint) (domain.Sheet, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Sheet{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *SheetRepository) FindByFamilyID(ctx context.Context, familyID uint) ([]domain.Sheet, error) {
	found, err := r.dao.FindByFamilyID(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByFamilyID -> %w", err)
	}

	return r.daosToDomain(found), nil
}

func (r *SheetRepository) Assign(ctx context.Context, sheetID, familyID uint) (domain.Sheet, error) {
	assigned, err := r.dao.Assign(ctx, sheetID, familyID)
	if err != nil {
		return domain.Sheet{}, fmt.Errorf("r.dao.Assign -> %w", err)
	}

	return r.daoToDomain(assigned), nil
}

func (r *SheetRepository) Unassign(ctx context.Context, sheetID uint) (domain.Sheet, error) {
	unassigned, err := r.dao.Unassign(ctx, sheetID)
	if err != nil {
		return domain.Sheet{}, fmt.Errorf("r.dao.Unassign -> %w", err)
	}

	return r.daoToDomain(unassigned), nil
}

func (r *SheetRepository) IncrementDownloads(ctx context.Context, id uint) error {
	if err := r.dao.IncrementDownloads(ctx, id); err != nil {
		return fmt.Errorf("r.dao.IncrementDownloads -> %w", err)
	}

	return nil
}

func (r *SheetRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *SheetRepository) domainToDao(s domain.Sheet) dao.Sheet {
	return dao.Sheet{
		ID:             s.ID,
		Level:          string(s.Level),
		Year:           s.Year,
		PackSize:       int(s.PackSize),
		StartNumber:    s.StartNumber,
		EndNumber:      s.EndNumber,
		IsAssigned:     s.IsAssigned,
		FamilyID:       s.FamilyID,
		Downloads:      s.Downloads,
		GenerationDate: s.GenerationDate,
	}
}

func (r *SheetRepository) daoToDomain(s dao.Sheet) domain.Sheet {
	return domain.Sheet{
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
	}
}

func (r *SheetRepository) daosToDomain(sheets []dao.Sheet) []domain.Sheet {
	result := make([]domain.Sheet, len(sheets))
	for i, s := range sheets {
		result[i] = r.daoToDomain(s)
	}

	return result
}
