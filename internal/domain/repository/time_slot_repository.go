package repository

import (
	"time"

	"go-hospital-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TimeSlotRepository interface {
	Create(db *gorm.DB, slot *entity.AvailableTimeSlot) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.AvailableTimeSlot, error)
	// FindOverlapping returns any live slot of the doctor intersecting
	// [start, end). Pass excludeID = uuid.Nil when no slot is to be skipped.
	FindOverlapping(db *gorm.DB, doctorID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (*entity.AvailableTimeSlot, error)
	FindAll(db *gorm.DB, opts *entity.ListOptions) ([]entity.AvailableTimeSlot, int64, error)
	Update(db *gorm.DB, slot *entity.AvailableTimeSlot) error
	Delete(db *gorm.DB, id, doctorID uuid.UUID) (int64, error)
}
