package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/dangerclosesec/resadmin/internal/audit"
	"github.com/dangerclosesec/resadmin/internal/model"
	"github.com/dangerclosesec/resadmin/internal/repository"
	"github.com/go-chi/chi/v5"
)

// AuditLogHandler handles API requests for the mutation audit trail
type AuditLogHandler struct {
	auditService audit.Trail
}

// NewAuditLogHandler creates a new audit log handler
func NewAuditLogHandler(auditService audit.Trail) *AuditLogHandler {
	return &AuditLogHandler{
		auditService: auditService,
	}
}

// GetAuditLogs handles requests to retrieve audit logs with filtering
func (h *AuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := repository.AuditQuery{
		Action:   model.AuditAction(query.Get("action")),
		Entity:   query.Get("entity"),
		EntityID: query.Get("entity_id"),
		Actor:    query.Get("actor"),
	}

	if startTimeStr := query.Get("start_time"); startTimeStr != "" {
		startTime, err := time.Parse(time.RFC3339, startTimeStr)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid start_time, expected RFC3339")
			return
		}
		params.StartTime = startTime
	}

	if endTimeStr := query.Get("end_time"); endTimeStr != "" {
		endTime, err := time.Parse(time.RFC3339, endTimeStr)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid end_time, expected RFC3339")
			return
		}
		params.EndTime = endTime
	}

	// Pagination
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err == nil && limit > 0 {
			params.Limit = min(limit, maxLimit)
		}
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err == nil && offset >= 0 {
			params.Offset = offset
		}
	}

	logs, total, err := h.auditService.QueryLogs(r.Context(), params)
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ListResponse[model.AuditLog]{Items: logs, Total: total})
}

// GetAuditLogByID handles requests to retrieve a specific audit log by ID
func (h *AuditLogHandler) GetAuditLogByID(w http.ResponseWriter, r *http.Request) {
	log, err := h.auditService.GetLog(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, log)
}
