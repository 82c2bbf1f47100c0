package dao

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFamilyNotFound    = errors.New("family not found")
	ErrFamilyEmailExists = errors.New("family with this email already exists")
)

type Family struct {
	ID uint `gorm:"primaryKey"`

	Name  string `gorm:"not null"`
	Email string `gorm:"unique;not null"`
	Phone string
	Notes string

	Sheets []Sheet `gorm:"foreignKey:FamilyID"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type FamilyDAO struct {
	db *gorm.DB
}

func NewFamilyDAO(db *gorm.DB) *FamilyDAO {
	return &FamilyDAO{
		db: db,
	}
}

func (d *FamilyDAO) Insert(ctx context.Context, family Family) (Family, error) {
	result := d.db.WithContext(ctx).Create(&family)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_families_email"`) {
			return Family{}, ErrFamilyEmailExists
		}

		return Family{}, result.Error
	}

	return family, nil
}

func (d *FamilyDAO) FindByID(ctx context.Context, id uint) (Family, error) {
	var family Family

	result := d.db.WithContext(ctx).Preload("Sheets").First(&family, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Family{}, ErrFamilyNotFound
		}

		return Family{}, result.Error
	}

	return family, nil
}

func (d *FamilyDAO) FindAll(ctx context.Context) ([]Family, error) {
	var families []Family

	result := d.db.WithContext(ctx).Order("name").Find(&families)
	if result.Error != nil {
		return nil, result.Error
	}

	return families, nil
}

func (d *FamilyDAO) Update(ctx context.Context, family Family) (Family, error) {
	result := d.db.WithContext(ctx).Model(&Family{}).
		Where("id = ?", family.ID).
		Updates(map[string]interface{}{
			"name":  family.Name,
			"email": family.Email,
			"phone": family.Phone,
			"notes": family.Notes,
		})
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Family{}, ErrFamilyEmailExists
		}

		return Family{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Family{}, ErrFamilyNotFound
	}

	return d.FindByID(ctx, family.ID)
}

// Delete removes a family together with its tickets and detaches its
// sheets, which return to the unassigned pool.
func (d *FamilyDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var family Family
		if err := tx.First(&family, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrFamilyNotFound
			}

			return err
		}

		if err := tx.Where("family_id = ?", id).Delete(&Ticket{}).Error; err != nil {
			return err
		}

		err := tx.Model(&Sheet{}).
			Where("family_id = ?", id).
			Updates(map[string]interface{}{"is_assigned": false, "family_id": nil}).Error
		if err != nil {
			return err
		}

		return tx.Delete(&Family{}, id).Error
	})
}
