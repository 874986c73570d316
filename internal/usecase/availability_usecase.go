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
	ErrSlotNotFound        = errors.New("time slot not found")
	ErrSlotOverlap         = errors.New("time slot already exists or overlaps with another slot")
	ErrSlotInterval        = errors.New("end_time must be greater than start_time")
	ErrSlotHasAppointments = errors.New("time slot has a scheduled appointment")
)

// AvailabilityUsecase owns the lifecycle of doctor time slots. Ownership
// failures are reported as not-found so non-owners cannot probe for slot
// existence.
type AvailabilityUsecase interface {
	CreateSlot(ctx context.Context, caller entity.Identity, req *dto.CreateTimeSlotRequest) (*dto.TimeSlotResponse, error)
	GetSlot(ctx context.Context, slotID uuid.UUID) (*dto.TimeSlotResponse, error)
	UpdateSlot(ctx context.Context, caller entity.Identity, slotID uuid.UUID, req *dto.UpdateTimeSlotRequest) (*dto.TimeSlotResponse, error)
	DeleteSlot(ctx context.Context, caller entity.Identity, slotID uuid.UUID) error
	ListSlots(ctx context.Context, opts *entity.ListOptions) (*dto.TimeSlotListResponse, error)
}

type availabilityUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	slotRepo        repository.TimeSlotRepository
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
}

func NewAvailabilityUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	slotRepo repository.TimeSlotRepository,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
) AvailabilityUsecase {
	return &availabilityUsecase{
		db:              db,
		log:             log,
		slotRepo:        slotRepo,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
	}
}

func (u *availabilityUsecase) CreateSlot(ctx context.Context, caller entity.Identity, req *dto.CreateTimeSlotRequest) (*dto.TimeSlotResponse, error) {
	if err := access.Require(caller, entity.RoleDoctor); err != nil {
		return nil, err
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrSlotInterval
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// The overlap probe and the insert share the transaction so a concurrent
	// create on the same doctor cannot slip between them.
	overlap, err := u.slotRepo.FindOverlapping(tx, caller.ID, req.StartTime, req.EndTime, uuid.Nil)
	if err != nil {
		u.log.Warnf("Failed to check slot overlap: %+v", err)
		return nil, err
	}
	if overlap != nil {
		return nil, ErrSlotOverlap
	}

	slot := &entity.AvailableTimeSlot{
		DoctorID:  caller.ID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := u.slotRepo.Create(tx, slot); err != nil {
		u.log.Warnf("Failed to create time slot: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &caller.ID, entity.AuditActionSlotCreate, entity.JSON{
		"slot_id":    slot.ID.String(),
		"start_time": slot.StartTime,
		"end_time":   slot.EndTime,
	})

	// Reload with the doctor association for the denormalized response.
	full, err := u.slotRepo.FindByID(u.db.WithContext(ctx), slot.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload time slot %s: %+v", slot.ID, err)
		return converter.TimeSlotToResponse(slot), nil
	}
	return converter.TimeSlotToResponse(full), nil
}

func (u *availabilityUsecase) GetSlot(ctx context.Context, slotID uuid.UUID) (*dto.TimeSlotResponse, error) {
	slot, err := u.slotRepo.FindByID(u.db.WithContext(ctx), slotID)
	if err != nil {
		u.log.Warnf("Failed to find time slot: %+v", err)
		return nil, err
	}
	if slot == nil {
		return nil, ErrSlotNotFound
	}
	return converter.TimeSlotToResponse(slot), nil
}

func (u *availabilityUsecase) UpdateSlot(ctx context.Context, caller entity.Identity, slotID uuid.UUID, req *dto.UpdateTimeSlotRequest) (*dto.TimeSlotResponse, error) {
	if err := access.Require(caller, entity.RoleDoctor); err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	slot, err := u.slotRepo.FindByID(tx, slotID)
	if err != nil {
		u.log.Warnf("Failed to find time slot: %+v", err)
		return nil, err
	}
	if slot == nil || slot.DoctorID != caller.ID {
		return nil, ErrSlotNotFound
	}

	// Partial update: only the supplied bounds move.
	if req.StartTime != nil {
		slot.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		slot.EndTime = *req.EndTime
	}
	if !slot.EndTime.After(slot.StartTime) {
		return nil, ErrSlotInterval
	}

	overlap, err := u.slotRepo.FindOverlapping(tx, caller.ID, slot.StartTime, slot.EndTime, slot.ID)
	if err != nil {
		u.log.Warnf("Failed to check slot overlap: %+v", err)
		return nil, err
	}
	if overlap != nil {
		return nil, ErrSlotOverlap
	}

	if err := u.slotRepo.Update(tx, slot); err != nil {
		u.log.Warnf("Failed to update time slot: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &caller.ID, entity.AuditActionSlotUpdate, entity.JSON{
		"slot_id":    slot.ID.String(),
		"start_time": slot.StartTime,
		"end_time":   slot.EndTime,
	})

	full, err := u.slotRepo.FindByID(u.db.WithContext(ctx), slot.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload time slot %s: %+v", slot.ID, err)
		return converter.TimeSlotToResponse(slot), nil
	}
	return converter.TimeSlotToResponse(full), nil
}

func (u *availabilityUsecase) DeleteSlot(ctx context.Context, caller entity.Identity, slotID uuid.UUID) error {
	if err := access.Require(caller, entity.RoleDoctor); err != nil {
		return err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	slot, err := u.slotRepo.FindByID(tx, slotID)
	if err != nil {
		u.log.Warnf("Failed to find time slot: %+v", err)
		return err
	}
	if slot == nil || slot.DoctorID != caller.ID {
		return ErrSlotNotFound
	}

	// A slot with an active booking cannot be removed; the booking must be
	// canceled or completed first.
	booked, err := u.appointmentRepo.HasScheduledForSlot(tx, slotID)
	if err != nil {
		u.log.Warnf("Failed to check slot bookings: %+v", err)
		return err
	}
	if booked {
		return ErrSlotHasAppointments
	}

	affected, err := u.slotRepo.Delete(tx, slotID, caller.ID)
	if err != nil {
		u.log.Warnf("Failed to delete time slot: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrSlotNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.auditService.Record(ctx, &caller.ID, entity.AuditActionSlotDelete, entity.JSON{
		"slot_id": slotID.String(),
	})

	return nil
}

func (u *availabilityUsecase) ListSlots(ctx context.Context, opts *entity.ListOptions) (*dto.TimeSlotListResponse, error) {
	slots, total, err := u.slotRepo.FindAll(u.db.WithContext(ctx), opts)
	if err != nil {
		u.log.Warnf("Failed to list time slots: %+v", err)
		return nil, err
	}

	return &dto.TimeSlotListResponse{
		TimeSlots: converter.TimeSlotsToResponses(slots),
		Total:     total,
	}, nil
}
