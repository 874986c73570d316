package converter

import (
	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to its flat DTO,
// denormalized with both party names when the associations are loaded.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:                  appointment.ID,
		PatientID:           appointment.PatientID,
		DoctorID:            appointment.DoctorID,
		AvailableTimeSlotID: appointment.AvailableTimeSlotID,
		Status:              string(appointment.Status),
		CreatedAt:           appointment.CreatedAt,
		UpdatedAt:           appointment.UpdatedAt,
	}

	if appointment.Patient != nil {
		response.PatientName = appointment.Patient.FullName
	}
	if appointment.Doctor != nil {
		response.DoctorName = appointment.Doctor.FullName
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// AppointmentToDetailResponse converts an Appointment entity to its detail
// DTO with nested patient, doctor and slot records.
func AppointmentToDetailResponse(appointment *entity.Appointment) *dto.AppointmentDetailResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentDetailResponse{
		ID:                  appointment.ID,
		PatientID:           appointment.PatientID,
		DoctorID:            appointment.DoctorID,
		AvailableTimeSlotID: appointment.AvailableTimeSlotID,
		Status:              string(appointment.Status),
		Patient:             UserToResponse(appointment.Patient),
		Doctor:              UserToResponse(appointment.Doctor),
		AvailableTimeSlot:   TimeSlotToResponse(appointment.AvailableTimeSlot),
		CreatedAt:           appointment.CreatedAt,
		UpdatedAt:           appointment.UpdatedAt,
	}
}
