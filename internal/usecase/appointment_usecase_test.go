package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/domain/access"
	"go-hospital-booking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestBookAppointment(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestBookingUsecase(db)
	doctor := seedUser(t, db, "doc@example.com", "Dr. Chen", entity.RoleDoctor)
	patient := seedUser(t, db, "pat@example.com", "Pat Jones", entity.RolePatient)

	start := baseTime()
	slot := seedSlot(t, db, doctor, start, start.Add(time.Hour))

	resp, err := uc.CreateAppointment(context.Background(), patient.Identity(), &dto.BookAppointmentRequest{
		DoctorID:            doctor.ID,
		AvailableTimeSlotID: slot.ID,
	})
	require.NoError(t, err)
	require.Equal(t, string(entity.AppointmentStatusScheduled), resp.Status)
	require.Equal(t, patient.ID, *resp.PatientID)
	require.Equal(t, doctor.ID, *resp.DoctorID)
	require.Equal(t, "Pat Jones", resp.PatientName)
	require.Equal(t, "Dr. Chen", resp.DoctorName)
}

func TestBookAppointmentRequiresPatient(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestBookingUsecase(db)
	doctor := seedUser(t, db, "doc@example.com", "Dr. Chen", entity.RoleDoctor)

	start := baseTime()
	slot := seedSlot(t, db, doctor, start, start.Add(time.Hour))

	_, err := uc.CreateAppointment(context.Background(), doctor.Identity(), &dto.BookAppointmentRequest{
		DoctorID:            doctor.ID,
		AvailableTimeSlotID: slot.ID,
	})
	require.True(t, access.IsPermission(err))
}

func TestBookAppointmentSlotMustMatchDoctor(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestBookingUsecase(db)
	doctor := seedUser(t, db, "doc@example.com", "Dr. Chen", entity.RoleDoctor)
	other := seedUser(t, db, "doc2@example.com", "Dr. Roy", entity.RoleDoctor)
	patient := seedUser(t, db, "pat@example.com", "Pat", entity.RolePatient)

	start := baseTime()
	slot := seedSlot(t, db, doctor, start, start.Add(time.Hour))

	// Slot belongs to a different doctor than the one named in the request.
	_, err := uc.CreateAppointment(context.Background(), patient.Identity(), &dto.BookAppointmentRequest{
		DoctorID:            other.ID,
		AvailableTimeSlotID: slot.ID,
	})
	require.ErrorIs(t, err, ErrSlotNotFound)

	_, err = uc.CreateAppointment(context.Background(), patient.Identity(), &dto.BookAppointmentRequest{
		DoctorID:            doctor.ID,
		AvailableTimeSlotID: uuid.New(),
	})
	require.ErrorIs(t, err, ErrSlotNotFound)
}

func TestBookAppointmentExclusive(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestBookingUsecase(db)
	doctor := seedUser(t, db, "doc@example.com", "Dr. Chen", entity.RoleDoctor)

	start := baseTime()
	slot := seedSlot(t, db, doctor, start, start.Add(time.Hour))

	succeeded := 0
	for i := 0; i < 5; i++ {
		patient := seedUser(t, db, fmt.Sprintf("pat%d@example.com", i), "Pat", entity.RolePatient)
		_, err := uc.CreateAppointment(context.Background(), patient.Identity(), &dto.BookAppointmentRequest{
			DoctorID:            doctor.ID,
			AvailableTimeSlotID: slot.ID,
		})
		if err == nil {
			succeeded++
			continue
		}
		require.ErrorIs(t, err, ErrSlotAlreadyBooked)
	}
	require.Equal(t, 1, succeeded)
}

func TestBookAppointmentAfterCancelReopensSlot(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestBookingUsecase(db)
	doctor := seedUser(t, db, "doc@example.com", "Dr. Chen", entity.RoleDoctor)
	first := seedUser(t, db, "pat1@example.com", "Pat One", entity.RolePatient)
	second := seedUser(t, db, "pat2@example.com", "Pat Two", entity.RolePatient)

	start := baseTime()
	slot := seedSlot(t, db, doctor, start, start.Add(time.Hour))

	booked, err := uc.CreateAppointment(context.Background(), first.Identity(), &dto.BookAppointmentRequest{
		DoctorID:            doctor.ID,
		AvailableTimeSlotID: slot.ID,
	})
	require.NoError(t, err)

	_, err = uc.CancelAppointment(context.Background(), first.Identity(), booked.ID)
	require.NoError(t, err)

	_, err = uc.CreateAppointment(context.Background(), second.Identity(), &dto.BookAppointmentRequest{
		DoctorID:            doctor.ID,
		AvailableTimeSlotID: slot.ID,
	})
	require.NoError(t, err)
}

func TestCompleteAppointment(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestBookingUsecase(db)
	doctor := seedUser(t, db, "doc@example.com", "Dr. Chen", entity.RoleDoctor)
	other := seedUser(t, db, "doc2@example.com", "Dr. Roy", entity.RoleDoctor)
	patient := seedUser(t, db, "pat@example.com", "Pat", entity.RolePatient)

	start := baseTime()
	slot := seedSlot(t, db, doctor, start, start.Add(time.Hour))

	booked, err := uc.CreateAppointment(context.Background(), patient.Identity(), &dto.BookAppointmentRequest{
		DoctorID:            doctor.ID,
		AvailableTimeSlotID: slot.ID,
	})
	require.NoError(t, err)

	// Only the appointed doctor can complete, and only the caller role doctor.
	_, err = uc.CompleteAppointment(context.Background(), patient.Identity(), booked.ID)
	require.True(t, access.IsPermission(err))

	_, err = uc.CompleteAppointment(context.Background(), other.Identity(), booked.ID)
	require.ErrorIs(t, err, ErrAppointmentNotFound)

	resp, err := uc.CompleteAppointment(context.Background(), doctor.Identity(), booked.ID)
	require.NoError(t, err)
	require.Equal(t, string(entity.AppointmentStatusCompleted), resp.Status)
	require.Equal(t, patient.ID, *resp.PatientID)

	// Terminal states cannot transition again.
	_, err = uc.CompleteAppointment(context.Background(), doctor.Identity(), booked.ID)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
	_, err = uc.CancelAppointment(context.Background(), patient.Identity(), booked.ID)
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancelAppointmentReleasesPatient(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestBookingUsecase(db)
	doctor := seedUser(t, db, "doc@example.com", "Dr. Chen", entity.RoleDoctor)
	patient := seedUser(t, db, "pat@example.com", "Pat", entity.RolePatient)

	start := baseTime()
	slot := seedSlot(t, db, doctor, start, start.Add(time.Hour))

	booked, err := uc.CreateAppointment(context.Background(), patient.Identity(), &dto.BookAppointmentRequest{
		DoctorID:            doctor.ID,
		AvailableTimeSlotID: slot.ID,
	})
	require.NoError(t, err)

	resp, err := uc.CancelAppointment(context.Background(), patient.Identity(), booked.ID)
	require.NoError(t, err)
	require.Equal(t, string(entity.AppointmentStatusCanceled), resp.Status)
	require.Nil(t, resp.PatientID)
	require.Empty(t, resp.PatientName)

	var stored entity.Appointment
	require.NoError(t, db.First(&stored, "id = ?", booked.ID).Error)
	require.Nil(t, stored.PatientID)
	require.Equal(t, entity.AppointmentStatusCanceled, stored.Status)
}

func TestCancelAppointmentByDoctor(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestBookingUsecase(db)
	doctor := seedUser(t, db, "doc@example.com", "Dr. Chen", entity.RoleDoctor)
	patient := seedUser(t, db, "pat@example.com", "Pat", entity.RolePatient)
	stranger := seedUser(t, db, "pat2@example.com", "Other Pat", entity.RolePatient)

	start := baseTime()
	slot := seedSlot(t, db, doctor, start, start.Add(time.Hour))

	booked, err := uc.CreateAppointment(context.Background(), patient.Identity(), &dto.BookAppointmentRequest{
		DoctorID:            doctor.ID,
		AvailableTimeSlotID: slot.ID,
	})
	require.NoError(t, err)

	// A different patient cannot cancel someone else's booking.
	_, err = uc.CancelAppointment(context.Background(), stranger.Identity(), booked.ID)
	require.ErrorIs(t, err, ErrAppointmentNotFound)

	resp, err := uc.CancelAppointment(context.Background(), doctor.Identity(), booked.ID)
	require.NoError(t, err)
	require.Equal(t, string(entity.AppointmentStatusCanceled), resp.Status)
}

func TestListAppointmentsScopedByRole(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestBookingUsecase(db)
	admin := seedUser(t, db, "admin@example.com", "Admin", entity.RoleAdmin)
	docA := seedUser(t, db, "doca@example.com", "Dr. A", entity.RoleDoctor)
	docB := seedUser(t, db, "docb@example.com", "Dr. B", entity.RoleDoctor)
	patA := seedUser(t, db, "pata@example.com", "Pat A", entity.RolePatient)
	patB := seedUser(t, db, "patb@example.com", "Pat B", entity.RolePatient)

	start := baseTime()
	slotA := seedSlot(t, db, docA, start, start.Add(time.Hour))
	slotB := seedSlot(t, db, docB, start, start.Add(time.Hour))

	_, err := uc.CreateAppointment(context.Background(), patA.Identity(), &dto.BookAppointmentRequest{
		DoctorID: docA.ID, AvailableTimeSlotID: slotA.ID,
	})
	require.NoError(t, err)
	_, err = uc.CreateAppointment(context.Background(), patB.Identity(), &dto.BookAppointmentRequest{
		DoctorID: docB.ID, AvailableTimeSlotID: slotB.ID,
	})
	require.NoError(t, err)

	opts := &entity.ListOptions{Skip: 0, Limit: 10}

	all, err := uc.ListAppointments(context.Background(), admin.Identity(), opts)
	require.NoError(t, err)
	require.EqualValues(t, 2, all.Total)

	mine, err := uc.ListAppointments(context.Background(), docA.Identity(), opts)
	require.NoError(t, err)
	require.EqualValues(t, 1, mine.Total)
	require.Equal(t, docA.ID, *mine.Appointments[0].DoctorID)

	own, err := uc.ListAppointments(context.Background(), patB.Identity(), opts)
	require.NoError(t, err)
	require.EqualValues(t, 1, own.Total)
	require.Equal(t, patB.ID, *own.Appointments[0].PatientID)
}

func TestGetAppointmentVisibility(t *testing.T) {
	db := setupTestDB(t, t.Name())
	uc := newTestBookingUsecase(db)
	admin := seedUser(t, db, "admin@example.com", "Admin", entity.RoleAdmin)
	doctor := seedUser(t, db, "doc@example.com", "Dr. Chen", entity.RoleDoctor)
	patient := seedUser(t, db, "pat@example.com", "Pat", entity.RolePatient)
	stranger := seedUser(t, db, "pat2@example.com", "Other Pat", entity.RolePatient)

	start := baseTime()
	slot := seedSlot(t, db, doctor, start, start.Add(time.Hour))

	booked, err := uc.CreateAppointment(context.Background(), patient.Identity(), &dto.BookAppointmentRequest{
		DoctorID:            doctor.ID,
		AvailableTimeSlotID: slot.ID,
	})
	require.NoError(t, err)

	detail, err := uc.GetAppointment(context.Background(), patient.Identity(), booked.ID)
	require.NoError(t, err)
	require.NotNil(t, detail.Patient)
	require.NotNil(t, detail.Doctor)
	require.NotNil(t, detail.AvailableTimeSlot)
	require.Equal(t, slot.ID, detail.AvailableTimeSlot.ID)

	_, err = uc.GetAppointment(context.Background(), stranger.Identity(), booked.ID)
	require.ErrorIs(t, err, ErrAppointmentNotFound)

	_, err = uc.GetAppointment(context.Background(), admin.Identity(), booked.ID)
	require.NoError(t, err)

	_, err = uc.GetAppointment(context.Background(), admin.Identity(), uuid.New())
	require.ErrorIs(t, err, ErrAppointmentNotFound)
}
