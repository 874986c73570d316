package handler

import (
	"encoding/json"
	"net/http"

	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/delivery/http/middleware"
	"go-hospital-booking/internal/domain/access"
	"go-hospital-booking/internal/usecase"
	"go-hospital-booking/pkg/response"
	"go-hospital-booking/pkg/validator"
)

type DoctorProfileHandler struct {
	profileUsecase usecase.DoctorProfileUsecase
	validator      *validator.CustomValidator
}

func NewDoctorProfileHandler(profileUsecase usecase.DoctorProfileUsecase, validator *validator.CustomValidator) *DoctorProfileHandler {
	return &DoctorProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
	}
}

// CreateProfile handles creating the caller's doctor profile
// @Summary Create doctor profile
// @Description Create the professional profile for the authenticated doctor
// @Tags Doctor Profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateDoctorProfileRequest true "Create Doctor Profile Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /users/doctor_profile [post]
func (h *DoctorProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req dto.CreateDoctorProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.CreateProfile(r.Context(), identity, &req)
	if err != nil {
		switch {
		case access.IsPermission(err):
			response.Forbidden(w, err.Error())
		case err == usecase.ErrDoctorProfileExists:
			response.Error(w, http.StatusBadRequest, "Doctor profile already exists", nil)
		default:
			response.InternalServerError(w, "Failed to create doctor profile")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor profile created successfully", profile)
}

// UpdateProfile handles updating the caller's doctor profile
// @Summary Update doctor profile
// @Description Update fields of the authenticated doctor's profile
// @Tags Doctor Profiles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateDoctorProfileRequest true "Update Doctor Profile Request"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/doctor_profile [put]
func (h *DoctorProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req dto.UpdateDoctorProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	profile, err := h.profileUsecase.UpdateProfile(r.Context(), identity, &req)
	if err != nil {
		switch {
		case access.IsPermission(err):
			response.Forbidden(w, err.Error())
		case err == usecase.ErrDoctorProfileNotFound:
			response.NotFound(w, "Doctor profile not found")
		default:
			response.InternalServerError(w, "Failed to update doctor profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor profile updated successfully", profile)
}

// GetProfile handles getting the caller's doctor profile
// @Summary Get doctor profile
// @Description Get the authenticated doctor's profile
// @Tags Doctor Profiles
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /users/doctor_profile [get]
func (h *DoctorProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	profile, err := h.profileUsecase.GetProfile(r.Context(), identity)
	if err != nil {
		switch {
		case access.IsPermission(err):
			response.Forbidden(w, err.Error())
		case err == usecase.ErrDoctorProfileNotFound:
			response.NotFound(w, "Doctor profile not found")
		default:
			response.InternalServerError(w, "Failed to get doctor profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor profile retrieved successfully", profile)
}
