package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/ticketwise/api/internal/pkg/serial"
)

var (
	ErrSheetNotFound        = errors.New("sheet not found")
	ErrSheetAlreadyAssigned = errors.New("sheet is already assigned to a family")
	ErrSheetNotAssigned     = errors.New("sheet is not assigned to a family")
)

type Sheet struct {
	ID uint `gorm:"primaryKey"`

	Level    string `gorm:"not null;uniqueIndex:uniq_sheets_partition_start,priority:1"`
	Year     int    `gorm:"not null;uniqueIndex:uniq_sheets_partition_start,priority:2"`
	PackSize int    `gorm:"not null"`

	StartNumber int `gorm:"not null;uniqueIndex:uniq_sheets_partition_start,priority:3"`
	EndNumber   int `gorm:"not null"`

	IsAssigned bool  `gorm:"not null;default:false"`
	FamilyID   *uint `gorm:"index"`

	Downloads      int       `gorm:"not null;default:0"`
	GenerationDate time.Time `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type SheetFilter struct {
	Assigned *bool
	FamilyID *uint
}

type SheetDAO struct {
	db *gorm.DB
}

func NewSheetDAO(db *gorm.DB) *SheetDAO {
	return &SheetDAO{
		db: db,
	}
}

// allocLockNamespace distinguishes serial-allocation advisory locks
// from any other advisory-lock user of the same database.
const allocLockNamespace int64 = 0x5457 // "TW"

func partitionLockKey(level string, year int) int64 {
	var l byte
	if len(level) > 0 {
		l = level[0]
	}

	return allocLockNamespace<<32 | int64(l)<<8 | int64(year%100)
}

// InsertBatch allocates the next contiguous block of count serials for
// the (level, year) partition and inserts the sheets produced by build
// for that block, all in one transaction. A per-partition advisory lock
// serializes concurrent allocators, and MAX(end_number) over the stored
// sheets is the only source of truth for the high-water mark. On
// overflow nothing is written and serial.ErrSpaceExhausted is returned.
func (d *SheetDAO) InsertBatch(ctx context.Context, level string, year, count int, build func(r serial.Range) []Sheet) ([]Sheet, error) {
	var inserted []Sheet

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", partitionLockKey(level, year)).Error; err != nil {
			return err
		}

		var lastUsed int
		row := tx.Model(&Sheet{}).
			Select("COALESCE(MAX(end_number), 0)").
			Where("level = ? AND year = ?", level, year)
		if err := row.Scan(&lastUsed).Error; err != nil {
			return err
		}

		block, err := serial.Allocate(lastUsed, count)
		if err != nil {
			return err
		}

		inserted = build(block)
		if err := tx.Create(&inserted).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return inserted, nil
}

func (d *SheetDAO) FindAll(ctx context.Context, filter SheetFilter) ([]Sheet, error) {
	query := d.db.WithContext(ctx).Model(&Sheet{})
	if filter.Assigned != nil {
		query = query.Where("is_assigned = ?", *filter.Assigned)
	}
	if filter.FamilyID != nil {
		query = query.Where("family_id = ?", *filter.FamilyID)
	}

	var sheets []Sheet
	result := query.Order("level, year, start_number").Find(&sheets)
	if result.Error != nil {
		return nil, result.Error
	}

	return sheets, nil
}

func (d *SheetDAO) FindByID(ctx context.Context, id uint) (Sheet, error) {
	var sheet Sheet

	result := d.db.WithContext(ctx).First(&sheet, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Sheet{}, ErrSheetNotFound
		}

		return Sheet{}, result.Error
	}

	return sheet, nil
}

func (d *SheetDAO) FindByFamilyID(ctx context.Context, familyID uint) ([]Sheet, error) {
	var sheets []Sheet

	result := d.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("level, year, start_number").
		Find(&sheets)
	if result.Error != nil {
		return nil, result.Error
	}

	return sheets, nil
}

// Assign links a sheet to a family. The WHERE guard makes concurrent
// double-assignment lose instead of silently overwriting.
func (d *SheetDAO) Assign(ctx context.Context, sheetID, familyID uint) (Sheet, error) {
	var sheet Sheet

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sheet, sheetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSheetNotFound
			}

			return err
		}

		result := tx.Model(&Sheet{}).
			Where("id = ? AND is_assigned = false", sheetID).
			Updates(map[string]interface{}{"is_assigned": true, "family_id": familyID})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrSheetAlreadyAssigned
		}

		return tx.First(&sheet, sheetID).Error
	})
	if err != nil {
		return Sheet{}, err
	}

	return sheet, nil
}

// Unassign detaches a sheet from its family and removes the tickets
// that were materialized from it. The caller has already verified that
// none of those tickets are used.
func (d *SheetDAO) Unassign(ctx context.Context, sheetID uint) (Sheet, error) {
	var sheet Sheet

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&sheet, sheetID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSheetNotFound
			}

			return err
		}
		if !sheet.IsAssigned {
			return ErrSheetNotAssigned
		}

		if err := tx.Where("sheet_id = ?", sheetID).Delete(&Ticket{}).Error; err != nil {
			return err
		}

		result := tx.Model(&Sheet{}).
			Where("id = ?", sheetID).
			Updates(map[string]interface{}{"is_assigned": false, "family_id": nil})
		if result.Error != nil {
			return result.Error
		}

		return tx.First(&sheet, sheetID).Error
	})
	if err != nil {
		return Sheet{}, err
	}

	return sheet, nil
}

func (d *SheetDAO) IncrementDownloads(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Model(&Sheet{}).
		Where("id = ?", id).
		UpdateColumn("downloads", gorm.Expr("downloads + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSheetNotFound
	}

	return nil
}

func (d *SheetDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).
		Where("id = ? AND is_assigned = false", id).
		Delete(&Sheet{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSheetNotFound
	}

	return nil
}
