package converter

import (
	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/domain/entity"

	"github.com/google/uuid"
)

// TimeSlotToResponse converts an AvailableTimeSlot entity to its DTO,
// denormalized with the doctor's display name when the association is loaded.
func TimeSlotToResponse(slot *entity.AvailableTimeSlot) *dto.TimeSlotResponse {
	if slot == nil {
		return nil
	}

	response := &dto.TimeSlotResponse{
		ID:        slot.ID,
		DoctorID:  slot.DoctorID,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		CreatedAt: slot.CreatedAt,
		UpdatedAt: slot.UpdatedAt,
	}

	if slot.Doctor.ID != uuid.Nil {
		response.DoctorName = slot.Doctor.FullName
	}

	return response
}

// TimeSlotsToResponses converts a slice of AvailableTimeSlot entities
func TimeSlotsToResponses(slots []entity.AvailableTimeSlot) []dto.TimeSlotResponse {
	responses := make([]dto.TimeSlotResponse, len(slots))
	for i := range slots {
		responses[i] = *TimeSlotToResponse(&slots[i])
	}
	return responses
}
