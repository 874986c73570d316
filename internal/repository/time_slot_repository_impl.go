package repository

import (
	"errors"
	"time"

	"go-hospital-booking/internal/domain/entity"
	domainRepo "go-hospital-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type timeSlotRepository struct{}

func NewTimeSlotRepository() domainRepo.TimeSlotRepository {
	return &timeSlotRepository{}
}

func (r *timeSlotRepository) Create(db *gorm.DB, slot *entity.AvailableTimeSlot) error {
	return db.Create(slot).Error
}

func (r *timeSlotRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.AvailableTimeSlot, error) {
	var slot entity.AvailableTimeSlot
	err := db.Preload("Doctor").Where("id = ?", id).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

// FindOverlapping applies the half-open interval predicate: two slots overlap
// iff each starts before the other ends.
func (r *timeSlotRepository) FindOverlapping(db *gorm.DB, doctorID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (*entity.AvailableTimeSlot, error) {
	query := db.Where("doctor_id = ? AND start_time < ? AND end_time > ?", doctorID, end, start)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}

	var slot entity.AvailableTimeSlot
	err := query.First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

func (r *timeSlotRepository) FindAll(db *gorm.DB, opts *entity.ListOptions) ([]entity.AvailableTimeSlot, int64, error) {
	var total int64
	if err := db.Model(&entity.AvailableTimeSlot{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at ASC"
	if opts.SortOrder == entity.SortDesc {
		order = "created_at DESC"
	}

	var slots []entity.AvailableTimeSlot
	err := db.
		Preload("Doctor").
		Order(order).
		Offset(opts.Skip).
		Limit(opts.Limit).
		Find(&slots).Error
	if err != nil {
		return nil, 0, err
	}
	return slots, total, nil
}

func (r *timeSlotRepository) Update(db *gorm.DB, slot *entity.AvailableTimeSlot) error {
	return db.Omit("Doctor", "Appointments").Save(slot).Error
}

func (r *timeSlotRepository) Delete(db *gorm.DB, id, doctorID uuid.UUID) (int64, error) {
	affected := db.Where("id = ? AND doctor_id = ?", id, doctorID).Delete(&entity.AvailableTimeSlot{})
	return affected.RowsAffected, affected.Error
}
