package usecase

import (
	"context"
	"errors"

	"go-hospital-booking/internal/converter"
	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/domain/access"
	"go-hospital-booking/internal/domain/entity"
	"go-hospital-booking/internal/domain/repository"
	"go-hospital-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found or already completed/canceled")
	ErrSlotAlreadyBooked   = errors.New("this time slot is already booked by another patient")
)

// BookingUsecase owns the appointment lifecycle: scheduled is the initial
// status, completed and canceled are terminal, and the only legal transitions
// leave scheduled. At most one scheduled, patient-bound appointment may exist
// per (doctor, slot) pair.
type BookingUsecase interface {
	CreateAppointment(ctx context.Context, caller entity.Identity, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	CompleteAppointment(ctx context.Context, caller entity.Identity, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	CancelAppointment(ctx context.Context, caller entity.Identity, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	ListAppointments(ctx context.Context, caller entity.Identity, opts *entity.ListOptions) (*dto.AppointmentListResponse, error)
	GetAppointment(ctx context.Context, caller entity.Identity, appointmentID uuid.UUID) (*dto.AppointmentDetailResponse, error)
}

type bookingUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	slotRepo        repository.TimeSlotRepository
	auditService    service.AuditService
}

func NewBookingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	slotRepo repository.TimeSlotRepository,
	auditService service.AuditService,
) BookingUsecase {
	return &bookingUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		slotRepo:        slotRepo,
		auditService:    auditService,
	}
}

func (u *bookingUsecase) CreateAppointment(ctx context.Context, caller entity.Identity, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	if err := access.Require(caller, entity.RolePatient); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// The supplied pairing must be real: the slot has to exist and belong to
	// the named doctor.
	slot, err := u.slotRepo.FindByID(tx, req.AvailableTimeSlotID)
	if err != nil {
		u.log.Warnf("Failed to find time slot: %+v", err)
		return nil, err
	}
	if slot == nil || slot.DoctorID != req.DoctorID {
		return nil, ErrSlotNotFound
	}

	// Exclusivity probe inside the transaction; the partial unique index over
	// scheduled, patient-bound rows backstops any race that slips past it.
	existing, err := u.appointmentRepo.FindActiveBooking(tx, req.AvailableTimeSlotID, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to check existing booking: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrSlotAlreadyBooked
	}

	patientID := caller.ID
	doctorID := req.DoctorID
	slotID := req.AvailableTimeSlotID
	appointment := &entity.Appointment{
		PatientID:           &patientID,
		DoctorID:            &doctorID,
		AvailableTimeSlotID: &slotID,
		Status:              entity.AppointmentStatusScheduled,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		if isUniqueViolation(err, "uq_active_booking") {
			return nil, ErrSlotAlreadyBooked
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		if isUniqueViolation(err, "uq_active_booking") {
			return nil, ErrSlotAlreadyBooked
		}
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &patientID, entity.AuditActionAppointmentBook, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"doctor_id":      doctorID.String(),
		"slot_id":        slotID.String(),
	})

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(full), nil
}

func (u *bookingUsecase) CompleteAppointment(ctx context.Context, caller entity.Identity, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	if err := access.Require(caller, entity.RoleDoctor); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// One lookup covers missing, foreign and already-terminal appointments.
	appointment, err := u.appointmentRepo.FindScheduledByIDAndDoctor(tx, appointmentID, caller.ID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	appointment.Complete()
	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to complete appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &caller.ID, entity.AuditActionAppointmentComplete, entity.JSON{
		"appointment_id": appointment.ID.String(),
	})

	return converter.AppointmentToResponse(appointment), nil
}

func (u *bookingUsecase) CancelAppointment(ctx context.Context, caller entity.Identity, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	if err := access.Require(caller, entity.RolePatient, entity.RoleDoctor); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	var appointment *entity.Appointment
	var err error
	switch caller.Role {
	case entity.RolePatient:
		appointment, err = u.appointmentRepo.FindScheduledByIDAndPatient(tx, appointmentID, caller.ID)
	case entity.RoleDoctor:
		appointment, err = u.appointmentRepo.FindScheduledByIDAndDoctor(tx, appointmentID, caller.ID)
	}
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	appointment.Cancel()
	if err := u.appointmentRepo.Update(tx, appointment); err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &caller.ID, entity.AuditActionAppointmentCancel, entity.JSON{
		"appointment_id": appointment.ID.String(),
		"canceled_by":    caller.Role.String(),
	})

	return converter.AppointmentToResponse(appointment), nil
}

func (u *bookingUsecase) ListAppointments(ctx context.Context, caller entity.Identity, opts *entity.ListOptions) (*dto.AppointmentListResponse, error) {
	if err := access.Require(caller, entity.RoleAdmin, entity.RoleDoctor, entity.RolePatient); err != nil {
		return nil, err
	}

	db := u.db.WithContext(ctx)

	var appointments []entity.Appointment
	var total int64
	var err error
	switch caller.Role {
	case entity.RoleAdmin:
		appointments, total, err = u.appointmentRepo.FindAll(db, opts)
	case entity.RoleDoctor:
		appointments, total, err = u.appointmentRepo.FindByDoctorID(db, caller.ID, opts)
	case entity.RolePatient:
		appointments, total, err = u.appointmentRepo.FindByPatientID(db, caller.ID, opts)
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        total,
	}, nil
}

func (u *bookingUsecase) GetAppointment(ctx context.Context, caller entity.Identity, appointmentID uuid.UUID) (*dto.AppointmentDetailResponse, error) {
	if err := access.Require(caller, entity.RoleAdmin, entity.RoleDoctor, entity.RolePatient); err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	// Visibility mirrors ListAppointments: non-admin callers only see their
	// own appointments, and foreign ones look absent.
	switch caller.Role {
	case entity.RoleDoctor:
		if appointment.DoctorID == nil || *appointment.DoctorID != caller.ID {
			return nil, ErrAppointmentNotFound
		}
	case entity.RolePatient:
		if appointment.PatientID == nil || *appointment.PatientID != caller.ID {
			return nil, ErrAppointmentNotFound
		}
	}

	return converter.AppointmentToDetailResponse(appointment), nil
}
