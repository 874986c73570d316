package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCanceled  AppointmentStatus = "canceled"
)

// Appointment is a patient booking of a doctor's time slot. The only legal
// transitions are scheduled->completed and scheduled->canceled; completed and
// canceled are terminal. Party references are nullable because deleting a
// user sets them to NULL while the appointment row is kept as history.
type Appointment struct {
	ID                  uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	PatientID           *uuid.UUID        `gorm:"type:uuid;index" json:"patient_id"`
	DoctorID            *uuid.UUID        `gorm:"type:uuid;index" json:"doctor_id"`
	AvailableTimeSlotID *uuid.UUID        `gorm:"type:uuid;index" json:"available_time_slot_id"`
	Status              AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	CreatedAt           time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt           time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient           *User              `gorm:"foreignKey:PatientID;constraint:OnDelete:SET NULL" json:"patient,omitempty"`
	Doctor            *User              `gorm:"foreignKey:DoctorID;constraint:OnDelete:SET NULL" json:"doctor,omitempty"`
	AvailableTimeSlot *AvailableTimeSlot `gorm:"foreignKey:AvailableTimeSlotID;constraint:OnDelete:SET NULL" json:"available_time_slot,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// IsScheduled checks if the appointment is still active
func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}

// IsTerminal checks if the appointment reached a terminal status
func (a *Appointment) IsTerminal() bool {
	return a.Status == AppointmentStatusCompleted || a.Status == AppointmentStatusCanceled
}

// Complete transitions scheduled -> completed
func (a *Appointment) Complete() {
	a.Status = AppointmentStatusCompleted
}

// Cancel transitions scheduled -> canceled and releases the patient binding,
// freeing the slot while the row is retained as history.
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCanceled
	a.PatientID = nil
	a.Patient = nil
}
