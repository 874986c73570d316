package converter

import (
	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/domain/entity"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Role:      user.Role.String(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if user.DoctorProfile != nil {
		response.DoctorProfile = DoctorProfileToResponse(user.DoctorProfile)
	}

	return response
}

// UsersToResponses converts a slice of User entities to UserResponse DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}

// DoctorProfileToResponse converts a DoctorProfile entity to its DTO. The
// doctor's display name is taken from the resolved User association when
// loaded; the entity itself never carries presentation fields.
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorProfileResponse{
		ID:              profile.ID,
		UserID:          profile.UserID,
		FullName:        profile.User.FullName,
		Specialization:  profile.Specialization,
		ExperienceYears: profile.ExperienceYears,
		AcademicHistory: profile.AcademicHistory,
		Bio:             profile.Bio,
		ConsultationFee: profile.ConsultationFee,
	}
}
