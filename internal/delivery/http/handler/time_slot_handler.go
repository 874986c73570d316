package handler

import (
	"encoding/json"
	"net/http"

	"go-hospital-booking/internal/delivery/dto"
	"go-hospital-booking/internal/delivery/http/middleware"
	"go-hospital-booking/internal/domain/access"
	"go-hospital-booking/internal/domain/entity"
	"go-hospital-booking/internal/usecase"
	"go-hospital-booking/pkg/response"
	"go-hospital-booking/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type TimeSlotHandler struct {
	availabilityUsecase usecase.AvailabilityUsecase
	validator           *validator.CustomValidator
}

func NewTimeSlotHandler(availabilityUsecase usecase.AvailabilityUsecase, validator *validator.CustomValidator) *TimeSlotHandler {
	return &TimeSlotHandler{
		availabilityUsecase: availabilityUsecase,
		validator:           validator,
	}
}

// CreateSlot handles publishing a new availability window
// @Summary Create time slot
// @Description Publish an availability window for the authenticated doctor
// @Tags Time Slots
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTimeSlotRequest true "Create Time Slot Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /appointments/create-time-slot [post]
func (h *TimeSlotHandler) CreateSlot(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	var req dto.CreateTimeSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.availabilityUsecase.CreateSlot(r.Context(), identity, &req)
	if err != nil {
		switch {
		case access.IsPermission(err):
			response.Forbidden(w, err.Error())
		case err == usecase.ErrSlotInterval, err == usecase.ErrSlotOverlap:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create time slot")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Time slot created successfully", slot)
}

// GetSlot handles getting a time slot by ID
// @Summary Get time slot
// @Description Get a single availability window
// @Tags Time Slots
// @Security BearerAuth
// @Produce json
// @Param id path string true "Time Slot ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/get-time-slot/{id} [get]
func (h *TimeSlotHandler) GetSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	slotID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid time slot ID", nil)
		return
	}

	slot, err := h.availabilityUsecase.GetSlot(r.Context(), slotID)
	if err != nil {
		if err == usecase.ErrSlotNotFound {
			response.NotFound(w, "Time slot not found")
			return
		}
		response.InternalServerError(w, "Failed to get time slot")
		return
	}

	response.Success(w, http.StatusOK, "Time slot retrieved successfully", slot)
}

// UpdateSlot handles updating an availability window
// @Summary Update time slot
// @Description Update the bounds of an availability window owned by the caller
// @Tags Time Slots
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Time Slot ID"
// @Param request body dto.UpdateTimeSlotRequest true "Update Time Slot Request"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/update-time-slot/{id} [put]
func (h *TimeSlotHandler) UpdateSlot(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	vars := mux.Vars(r)
	slotID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid time slot ID", nil)
		return
	}

	var req dto.UpdateTimeSlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	slot, err := h.availabilityUsecase.UpdateSlot(r.Context(), identity, slotID, &req)
	if err != nil {
		switch {
		case access.IsPermission(err):
			response.Forbidden(w, err.Error())
		case err == usecase.ErrSlotNotFound:
			response.NotFound(w, "Time slot not found")
		case err == usecase.ErrSlotInterval, err == usecase.ErrSlotOverlap:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to update time slot")
		}
		return
	}

	response.Success(w, http.StatusOK, "Time slot updated successfully", slot)
}

// DeleteSlot handles removing an availability window
// @Summary Delete time slot
// @Description Remove an availability window owned by the caller
// @Tags Time Slots
// @Security BearerAuth
// @Produce json
// @Param id path string true "Time Slot ID"
// @Success 204 "No Content"
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /appointments/delete-time-slot/{id} [delete]
func (h *TimeSlotHandler) DeleteSlot(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	vars := mux.Vars(r)
	slotID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid time slot ID", nil)
		return
	}

	if err := h.availabilityUsecase.DeleteSlot(r.Context(), identity, slotID); err != nil {
		switch {
		case access.IsPermission(err):
			response.Forbidden(w, err.Error())
		case err == usecase.ErrSlotNotFound:
			response.NotFound(w, "Time slot not found")
		case err == usecase.ErrSlotHasAppointments:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to delete time slot")
		}
		return
	}

	response.NoContent(w)
}

// ListSlots handles listing availability windows
// @Summary List time slots
// @Description List availability windows across all doctors
// @Tags Time Slots
// @Security BearerAuth
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Param sort_order query string false "asc or desc"
// @Success 200 {object} response.Response
// @Router /appointments/get-all-time-slots [get]
func (h *TimeSlotHandler) ListSlots(w http.ResponseWriter, r *http.Request) {
	opts := &entity.ListOptions{
		Skip:      parseIntQuery(r, "skip", 0),
		Limit:     parseIntQuery(r, "limit", 10),
		SortOrder: r.URL.Query().Get("sort_order"),
	}

	slots, err := h.availabilityUsecase.ListSlots(r.Context(), opts)
	if err != nil {
		response.InternalServerError(w, "Failed to list time slots")
		return
	}

	response.Success(w, http.StatusOK, "Time slots retrieved successfully", slots)
}
