package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailableTimeSlot is a doctor-declared open interval of availability.
// Slots of the same doctor must never overlap; the interval is half-open
// [StartTime, EndTime).
type AvailableTimeSlot struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`
	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctor       User          `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"doctor,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:AvailableTimeSlotID" json:"appointments,omitempty"`
}

func (AvailableTimeSlot) TableName() string {
	return "available_time_slots"
}

func (s *AvailableTimeSlot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Overlaps reports whether [s.StartTime, s.EndTime) intersects [start, end).
func (s *AvailableTimeSlot) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && start.Before(s.EndTime)
}
