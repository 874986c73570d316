package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateDoctorProfileRequest struct {
	Specialization  string                 `json:"specialization" validate:"required,max=100"`
	ExperienceYears int                    `json:"experience_years" validate:"gte=0"`
	AcademicHistory map[string]interface{} `json:"academic_history" validate:"omitempty"`
	Bio             string                 `json:"bio" validate:"omitempty"`
	ConsultationFee decimal.Decimal        `json:"consultation_fee" validate:"omitempty"`
}

type UpdateDoctorProfileRequest struct {
	Specialization  *string                `json:"specialization" validate:"omitempty,max=100"`
	ExperienceYears *int                   `json:"experience_years" validate:"omitempty,gte=0"`
	AcademicHistory map[string]interface{} `json:"academic_history" validate:"omitempty"`
	Bio             *string                `json:"bio" validate:"omitempty"`
	ConsultationFee *decimal.Decimal       `json:"consultation_fee" validate:"omitempty"`
}

// Response DTOs

type DoctorProfileResponse struct {
	ID              uuid.UUID              `json:"id"`
	UserID          uuid.UUID              `json:"user_id"`
	FullName        string                 `json:"full_name,omitempty"`
	Specialization  string                 `json:"specialization"`
	ExperienceYears int                    `json:"experience_years"`
	AcademicHistory map[string]interface{} `json:"academic_history,omitempty"`
	Bio             string                 `json:"bio,omitempty"`
	ConsultationFee decimal.Decimal        `json:"consultation_fee"`
}
