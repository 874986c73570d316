package repository

import (
	"errors"

	"go-hospital-booking/internal/domain/entity"
	domainRepo "go-hospital-booking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Preload("Patient").
		Preload("Doctor").
		Preload("AvailableTimeSlot").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindActiveBooking(db *gorm.DB, slotID, doctorID uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Where("available_time_slot_id = ? AND doctor_id = ? AND status = ? AND patient_id IS NOT NULL",
			slotID, doctorID, entity.AppointmentStatusScheduled).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindScheduledByIDAndDoctor(db *gorm.DB, id, doctorID uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Preload("Patient").
		Preload("Doctor").
		Where("id = ? AND doctor_id = ? AND status = ?", id, doctorID, entity.AppointmentStatusScheduled).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindScheduledByIDAndPatient(db *gorm.DB, id, patientID uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.
		Preload("Patient").
		Preload("Doctor").
		Where("id = ? AND patient_id = ? AND status = ?", id, patientID, entity.AppointmentStatusScheduled).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) HasScheduledForSlot(db *gorm.DB, slotID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).
		Where("available_time_slot_id = ? AND status = ?", slotID, entity.AppointmentStatusScheduled).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, opts *entity.ListOptions) ([]entity.Appointment, int64, error) {
	return r.list(db.Model(&entity.Appointment{}), opts)
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID, opts *entity.ListOptions) ([]entity.Appointment, int64, error) {
	scope := db.Model(&entity.Appointment{}).Where("doctor_id = ?", doctorID)
	return r.list(scope, opts)
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID, opts *entity.ListOptions) ([]entity.Appointment, int64, error) {
	scope := db.Model(&entity.Appointment{}).Where("patient_id = ?", patientID)
	return r.list(scope, opts)
}

func (r *appointmentRepository) list(scope *gorm.DB, opts *entity.ListOptions) ([]entity.Appointment, int64, error) {
	var total int64
	if err := scope.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at ASC"
	if opts.SortOrder == entity.SortDesc {
		order = "created_at DESC"
	}

	var appointments []entity.Appointment
	err := scope.
		Preload("Patient").
		Preload("Doctor").
		Preload("AvailableTimeSlot").
		Order(order).
		Offset(opts.Skip).
		Limit(opts.Limit).
		Find(&appointments).Error
	if err != nil {
		return nil, 0, err
	}
	return appointments, total, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Patient", "Doctor", "AvailableTimeSlot").Save(appointment).Error
}
