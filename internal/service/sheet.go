package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/pkg/serial"
	"github.com/ticketwise/api/internal/render"
	"github.com/ticketwise/api/internal/repository"
)

var (
	ErrSheetNotFound        = repository.ErrSheetNotFound
	ErrSheetAlreadyAssigned = repository.ErrSheetAlreadyAssigned
	ErrSheetNotAssigned     = repository.ErrSheetNotAssigned
	ErrSerialSpaceExhausted = serial.ErrSpaceExhausted
	ErrSheetHasUsedTickets  = errors.New("sheet has used tickets")

	ErrInvalidLevel       = errors.New("invalid education level")
	ErrInvalidPackSize    = errors.New("invalid pack size")
	ErrInvalidGenerations = errors.New("number of sheets to generate must be positive")
)

type SheetRepository interface {
	CreateBatch(ctx context.Context, level domain.Level, year, count int, build func(r serial.Range) []domain.Sheet) ([]domain.Sheet, error)
	FindAll(ctx context.Context, assigned *bool, familyID *uint) ([]domain.Sheet, error)
	FindByID(ctx context.Context, id uint) (domain.Sheet, error)
	FindByFamilyID(ctx context.Context, familyID uint) ([]domain.Sheet, error)
	Assign(ctx context.Context, sheetID, familyID uint) (domain.Sheet, error)
	Unassign(ctx context.Context, sheetID uint) (domain.Sheet, error)
	IncrementDownloads(ctx context.Context, id uint) error
	Delete(ctx context.Context, id uint) error
}

type SheetTicketRepository interface {
	AnyUsedBySheetID(ctx context.Context, sheetID uint) (bool, error)
}

type SheetAssetRepository interface {
	FindByKey(ctx context.Context, key string) (domain.Asset, error)
}

type SheetFamilyRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Family, error)
}

type SheetService struct {
	repo       SheetRepository
	ticketRepo SheetTicketRepository
	assetRepo  SheetAssetRepository
	familyRepo SheetFamilyRepository
	now        func() time.Time
}

func NewSheetService(repo SheetRepository, ticketRepo SheetTicketRepository, assetRepo SheetAssetRepository, familyRepo SheetFamilyRepository) *SheetService {
	return &SheetService{
		repo:       repo,
		ticketRepo: ticketRepo,
		assetRepo:  assetRepo,
		familyRepo: familyRepo,
		now:        time.Now,
	}
}

// Generate produces `generations` sheets of packSize tickets for level,
// each stamped with a consecutive sub-range of one contiguous serial
// block. The whole batch allocates atomically: on overflow of the
// 4-digit serial space no sheets are created and the partition is left
// untouched.
func (s *SheetService) Generate(ctx context.Context, level domain.Level, packSize domain.PackSize, generations int) ([]domain.Sheet, error) {
	if !level.IsValid() {
		return nil, ErrInvalidLevel
	}
	if !packSize.IsValid() {
		return nil, ErrInvalidPackSize
	}
	if generations <= 0 {
		return nil, ErrInvalidGenerations
	}

	now := s.now()
	year := domain.YearOf(now)
	count := generations * int(packSize)

	sheets, err := s.repo.CreateBatch(ctx, level, year, count, func(block serial.Range) []domain.Sheet {
		ranges, splitErr := serial.Split(block, int(packSize))
		if splitErr != nil {
			// Cannot happen: count is generations*packSize by construction.
			panic(splitErr)
		}

		built := make([]domain.Sheet, len(ranges))
		for i, r := range ranges {
			built[i] = domain.Sheet{
				Level:          level,
				Year:           year,
				PackSize:       packSize,
				StartNumber:    r.Start,
				EndNumber:      r.End,
				GenerationDate: now,
			}
		}

		return built
	})
	if err != nil {
		if errors.Is(err, serial.ErrSpaceExhausted) {
			return nil, fmt.Errorf("level %s year %02d: %w", level, year, err)
		}

		return nil, fmt.Errorf("s.repo.CreateBatch -> %w", err)
	}

	zap.L().Info("generated ticket sheets",
		zap.String("level", string(level)),
		zap.Int("year", year),
		zap.Int("pack_size", int(packSize)),
		zap.Int("sheets", len(sheets)),
	)

	return sheets, nil
}

func (s *SheetService) List(ctx context.Context, assigned *bool, familyID *uint) ([]domain.Sheet, error) {
	sheets, err := s.repo.FindAll(ctx, assigned, familyID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return sheets, nil
}

func (s *SheetService) Get(ctx context.Context, id uint) (domain.Sheet, error) {
	sheet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Sheet{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return sheet, nil
}

// Export renders the sheet as a downloadable SVG and increments its
// download counter. A missing logo asset is not an error; the renderer
// substitutes its placeholder.
func (s *SheetService) Export(ctx context.Context, id uint, barcode bool) (domain.Sheet, []byte, error) {
	sheet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Sheet{}, nil, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	logo := ""
	asset, err := s.assetRepo.FindByKey(ctx, domain.AssetKeyLogo)
	if err == nil {
		logo = asset.Data
	} else if !errors.Is(err, repository.ErrAssetNotFound) {
		return domain.Sheet{}, nil, fmt.Errorf("s.assetRepo.FindByKey -> %w", err)
	}

	var buf bytes.Buffer
	render.Sheet(&buf, sheet, logo, render.Options{Barcode: barcode})

	if err := s.repo.IncrementDownloads(ctx, id); err != nil {
		return domain.Sheet{}, nil, fmt.Errorf("s.repo.IncrementDownloads -> %w", err)
	}
	sheet.Downloads++

	return sheet, buf.Bytes(), nil
}

func (s *SheetService) Assign(ctx context.Context, familyID, sheetID uint) (domain.Sheet, error) {
	if _, err := s.familyRepo.FindByID(ctx, familyID); err != nil {
		return domain.Sheet{}, fmt.Errorf("s.familyRepo.FindByID -> %w", err)
	}

	sheet, err := s.repo.Assign(ctx, sheetID, familyID)
	if err != nil {
		return domain.Sheet{}, fmt.Errorf("s.repo.Assign -> %w", err)
	}

	return sheet, nil
}

// Unassign returns a sheet to the unassigned pool and discards its
// materialized tickets. Refused once any of those tickets is used.
func (s *SheetService) Unassign(ctx context.Context, familyID, sheetID uint) (domain.Sheet, error) {
	sheet, err := s.repo.FindByID(ctx, sheetID)
	if err != nil {
		return domain.Sheet{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if sheet.FamilyID == nil || *sheet.FamilyID != familyID {
		return domain.Sheet{}, ErrSheetNotAssigned
	}

	used, err := s.ticketRepo.AnyUsedBySheetID(ctx, sheetID)
	if err != nil {
		return domain.Sheet{}, fmt.Errorf("s.ticketRepo.AnyUsedBySheetID -> %w", err)
	}
	if used {
		return domain.Sheet{}, ErrSheetHasUsedTickets
	}

	unassigned, err := s.repo.Unassign(ctx, sheetID)
	if err != nil {
		return domain.Sheet{}, fmt.Errorf("s.repo.Unassign -> %w", err)
	}

	return unassigned, nil
}

func (s *SheetService) Delete(ctx context.Context, id uint) error {
	sheet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}
	if sheet.IsAssigned {
		return ErrSheetAlreadyAssigned
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
