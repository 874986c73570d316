package repository

import (
	"go-hospital-booking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindActiveBooking returns the scheduled, patient-bound appointment for
	// the (slot, doctor) pair, if one exists. This is the exclusivity probe.
	FindActiveBooking(db *gorm.DB, slotID, doctorID uuid.UUID) (*entity.Appointment, error)
	FindScheduledByIDAndDoctor(db *gorm.DB, id, doctorID uuid.UUID) (*entity.Appointment, error)
	FindScheduledByIDAndPatient(db *gorm.DB, id, patientID uuid.UUID) (*entity.Appointment, error)
	HasScheduledForSlot(db *gorm.DB, slotID uuid.UUID) (bool, error)
	FindAll(db *gorm.DB, opts *entity.ListOptions) ([]entity.Appointment, int64, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, opts *entity.ListOptions) ([]entity.Appointment, int64, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID, opts *entity.ListOptions) ([]entity.Appointment, int64, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
}
