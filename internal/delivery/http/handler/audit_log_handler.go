package handler

import (
	"net/http"

	"go-hospital-booking/internal/delivery/http/middleware"
	"go-hospital-booking/internal/domain/access"
	"go-hospital-booking/internal/domain/entity"
	"go-hospital-booking/internal/usecase"
	"go-hospital-booking/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// ListAuditLogs handles listing audit log entries
// @Summary List audit logs
// @Description List recorded audit events, newest first (admin only)
// @Tags Audit Logs
// @Security BearerAuth
// @Produce json
// @Param skip query int false "Offset"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/audit-logs [get]
func (h *AuditLogHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Authentication required")
		return
	}

	opts := &entity.ListOptions{
		Skip:      parseIntQuery(r, "skip", 0),
		Limit:     parseIntQuery(r, "limit", 10),
		SortOrder: r.URL.Query().Get("sort_order"),
	}

	logs, err := h.auditLogUsecase.ListAuditLogs(r.Context(), identity, opts)
	if err != nil {
		if access.IsPermission(err) {
			response.Forbidden(w, err.Error())
			return
		}
		response.InternalServerError(w, "Failed to list audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}
