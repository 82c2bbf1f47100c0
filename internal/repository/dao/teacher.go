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
	ErrTeacherNotFound    = errors.New("teacher not found")
	ErrTeacherEmailExists = errors.New("teacher with this email already exists")
)

type Teacher struct {
	ID uint `gorm:"primaryKey"`

	FirstName  string `gorm:"not null"`
	LastName   string `gorm:"not null"`
	Email      string `gorm:"unique;not null"`
	Subject    string `gorm:"not null"`
	HourlyRate int    `gorm:"not null;default:0"` // cents

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type TeacherDAO struct {
	db *gorm.DB
}

func NewTeacherDAO(db *gorm.DB) *TeacherDAO {
	return &TeacherDAO{
		db: db,
	}
}

func (d *TeacherDAO) Insert(ctx context.Context, teacher Teacher) (Teacher, error) {
	result := d.db.WithContext(ctx).Create(&teacher)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) &&
			err.Code == pgerrcode.UniqueViolation &&
			strings.Contains(err.Message, `unique constraint "uni_teachers_email"`) {
			return Teacher{}, ErrTeacherEmailExists
		}

		return Teacher{}, result.Error
	}

	return teacher, nil
}

func (d *TeacherDAO) FindByID(ctx context.Context, id uint) (Teacher, error) {
	var teacher Teacher

	result := d.db.WithContext(ctx).First(&teacher, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Teacher{}, ErrTeacherNotFound
		}

		return Teacher{}, result.Error
	}

	return teacher, nil
}

func (d *TeacherDAO) FindAll(ctx context.Context) ([]Teacher, error) {
	var teachers []Teacher

	result := d.db.WithContext(ctx).Order("last_name, first_name").Find(&teachers)
	if result.Error != nil {
		return nil, result.Error
	}

	return teachers, nil
}

func (d *TeacherDAO) Update(ctx context.Context, teacher Teacher) (Teacher, error) {
	result := d.db.WithContext(ctx).Model(&Teacher{}).
		Where("id = ?", teacher.ID).
		Updates(map[string]interface{}{
			"first_name":  teacher.FirstName,
			"last_name":   teacher.LastName,
			"email":       teacher.Email,
			"subject":     teacher.Subject,
			"hourly_rate": teacher.HourlyRate,
		})
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Teacher{}, ErrTeacherEmailExists
		}

		return Teacher{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Teacher{}, ErrTeacherNotFound
	}

	return d.FindByID(ctx, teacher.ID)
}

func (d *TeacherDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Teacher{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTeacherNotFound
	}

	return nil
}
