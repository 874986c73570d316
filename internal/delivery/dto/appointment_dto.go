package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	DoctorID            uuid.UUID `json:"doctor_id" validate:"required"`
	AvailableTimeSlotID uuid.UUID `json:"available_time_slot_id" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                  uuid.UUID  `json:"id"`
	PatientID           *uuid.UUID `json:"patient_id"`
	DoctorID            *uuid.UUID `json:"doctor_id"`
	AvailableTimeSlotID *uuid.UUID `json:"available_time_slot_id"`
	Status              string     `json:"status"`
	PatientName         string     `json:"patient_name,omitempty"`
	DoctorName          string     `json:"doctor_name,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// AppointmentDetailResponse carries the nested party and slot records instead
// of the flat display names.
type AppointmentDetailResponse struct {
	ID                  uuid.UUID         `json:"id"`
	PatientID           *uuid.UUID        `json:"patient_id"`
	DoctorID            *uuid.UUID        `json:"doctor_id"`
	AvailableTimeSlotID *uuid.UUID        `json:"available_time_slot_id"`
	Status              string            `json:"status"`
	Patient             *UserResponse     `json:"patient,omitempty"`
	Doctor              *UserResponse     `json:"doctor,omitempty"`
	AvailableTimeSlot   *TimeSlotResponse `json:"available_time_slot,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int64                 `json:"total"`
}
