package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateTimeSlotRequest struct {
	StartTime time.Time `json:"start_time" validate:"required"`
	EndTime   time.Time `json:"end_time" validate:"required"`
}

type UpdateTimeSlotRequest struct {
	StartTime *time.Time `json:"start_time" validate:"omitempty"`
	EndTime   *time.Time `json:"end_time" validate:"omitempty"`
}

// Response DTOs

type TimeSlotResponse struct {
	ID         uuid.UUID `json:"id"`
	DoctorID   uuid.UUID `json:"doctor_id"`
	DoctorName string    `json:"doctor_name,omitempty"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type TimeSlotListResponse struct {
	TimeSlots []TimeSlotResponse `json:"time_slots"`
	Total     int64              `json:"total"`
}
