package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrTicketNotFound = errors.New("ticket not found")

type Ticket struct {
	Code string `gorm:"primaryKey"`

	SheetID  uint `gorm:"not null;index"`
	FamilyID uint `gorm:"not null;index"`

	IsUsed      bool `gorm:"not null;default:false"`
	ValidatedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type TicketDAO struct {
	db *gorm.DB
}

func NewTicketDAO(db *gorm.DB) *TicketDAO {
	return &TicketDAO{
		db: db,
	}
}

func (d *TicketDAO) InsertBatch(ctx context.Context, tickets []Ticket) ([]Ticket, error) {
	if len(tickets) == 0 {
		return nil, nil
	}

	result := d.db.WithContext(ctx).CreateInBatches(&tickets, 100)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

func (d *TicketDAO) FindByFamilyID(ctx context.Context, familyID uint) ([]Ticket, error) {
	var tickets []Ticket

	result := d.db.WithContext(ctx).
		Where("family_id = ?", familyID).
		Order("code").
		Find(&tickets)
	if result.Error != nil {
		return nil, result.Error
	}

	return tickets, nil
}

func (d *TicketDAO) CountByFamilyID(ctx context.Context, familyID uint) (int64, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Ticket{}).
		Where("family_id = ?", familyID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}

// UpdateUsed flips the usage flag on an existing set of a family's
// tickets. Codes that do not exist are not created; the returned count
// lets the caller detect them.
func (d *TicketDAO) UpdateUsed(ctx context.Context, familyID uint, codes []string, used bool) (int64, error) {
	if len(codes) == 0 {
		return 0, nil
	}

	updates := map[string]interface{}{"is_used": used}
	if used {
		now := time.Now()
		updates["validated_at"] = &now
	} else {
		updates["validated_at"] = nil
	}

	result := d.db.WithContext(ctx).Model(&Ticket{}).
		Where("family_id = ? AND code IN ?", familyID, codes).
		Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}

func (d *TicketDAO) AnyUsedBySheetID(ctx context.Context, sheetID uint) (bool, error) {
	var count int64

	result := d.db.WithContext(ctx).Model(&Ticket{}).
		Where("sheet_id = ? AND is_used = true", sheetID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}
