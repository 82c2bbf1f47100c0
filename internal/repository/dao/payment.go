package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

type Payment struct {
	ID uint `gorm:"primaryKey"`

	FamilyID uint   `gorm:"not null;index"`
	Family   Family `gorm:"foreignKey:FamilyID"`

	Amount int       `gorm:"not null"` // cents
	Method string    `gorm:"not null"` // "cash", "check", "transfer", "card"
	PaidAt time.Time `gorm:"not null"`
	Note   string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type PaymentDAO struct {
	db *gorm.DB
}

func NewPaymentDAO(db *gorm.DB) *PaymentDAO {
	return &PaymentDAO{
		db: db,
	}
}

func (d *PaymentDAO) Insert(ctx context.Context, payment Payment) (Payment, error) {
	result := d.db.WithContext(ctx).Create(&payment)
	if result.Error != nil {
		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *PaymentDAO) FindByID(ctx context.Context, id uint) (Payment, error) {
	var payment Payment

	result := d.db.WithContext(ctx).First(&payment, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Payment{}, ErrPaymentNotFound
		}

		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *PaymentDAO) FindAll(ctx context.Context, familyID *uint) ([]Payment, error) {
	query := d.db.WithContext(ctx).Model(&Payment{})
	if familyID != nil {
		query = query.Where("family_id = ?", *familyID)
	}

	var payments []Payment
	result := query.Order("paid_at DESC").Find(&payments)
	if result.Error != nil {
		return nil, result.Error
	}

	return payments, nil
}

func (d *PaymentDAO) Update(ctx context.Context, payment Payment) (Payment, error) {
	result := d.db.WithContext(ctx).Model(&Payment{}).
		Where("id = ?", payment.ID).
		Updates(map[string]interface{}{
			"amount":  payment.Amount,
			"method":  payment.Method,
			"paid_at": payment.PaidAt,
			"note":    payment.Note,
		})
	if result.Error != nil {
		return Payment{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Payment{}, ErrPaymentNotFound
	}

	return d.FindByID(ctx, payment.ID)
}

func (d *PaymentDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Payment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}
